package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-tailor/internal/types"
)

func populatedSession() *Session {
	s := &Session{ID: "test"}
	s.SetResume("resume text", "resume.pdf")
	s.SetJob(&types.JobPosting{Title: "Backend Engineer", Company: "Acme"})
	s.SetAnalysis(&types.GapAnalysisResult{
		Gaps: []types.GapQuestion{{ID: "gap-1", Skill: "Kubernetes"}},
	})
	s.SetAnswers([]types.GapAnswer{{QuestionID: "gap-1", Skill: "Kubernetes", HasExperience: true, UserResponse: "yes"}})
	s.SetTailored(&types.TailoredData{
		Sections: []types.Section{{Title: "Experience", TailoredBullets: []string{"Did a thing"}}},
	})
	return s
}

func TestNewJobClearsDownstreamState(t *testing.T) {
	s := populatedSession()

	s.SetJob(&types.JobPosting{Title: "Platform Engineer", Company: "Other"})

	assert.Nil(t, s.Analysis())
	assert.Nil(t, s.Answers())
	assert.Nil(t, s.Tailored())

	// Upstream inputs survive.
	text, filename := s.Resume()
	assert.Equal(t, "resume text", text)
	assert.Equal(t, "resume.pdf", filename)
	require.NotNil(t, s.Job())
	assert.Equal(t, "Platform Engineer", s.Job().Title)
}

func TestNewResumeClearsDownstreamState(t *testing.T) {
	s := populatedSession()

	s.SetResume("other resume", "other.docx")

	assert.Nil(t, s.Analysis())
	assert.Nil(t, s.Answers())
	assert.Nil(t, s.Tailored())
	assert.NotNil(t, s.Job())
}

func TestNewAnalysisClearsAnswersAndTailoring(t *testing.T) {
	s := populatedSession()

	s.SetAnalysis(&types.GapAnalysisResult{})

	assert.Nil(t, s.Answers())
	assert.Nil(t, s.Tailored())
	assert.NotNil(t, s.Analysis())
}

func TestAnswersReturnsCopy(t *testing.T) {
	s := populatedSession()

	answers := s.Answers()
	require.Len(t, answers, 1)
	answers[0].Skill = "mutated"

	assert.Equal(t, "Kubernetes", s.Answers()[0].Skill)
}

func TestEditBullet(t *testing.T) {
	s := populatedSession()

	assert.True(t, s.EditBullet(0, 0, "Did a better thing"))
	assert.Equal(t, "Did a better thing", s.Tailored().Sections[0].TailoredBullets[0])

	assert.False(t, s.EditBullet(1, 0, "nope"))
	assert.False(t, s.EditBullet(0, 5, "nope"))

	empty := &Session{ID: "empty"}
	assert.False(t, empty.EditBullet(0, 0, "nope"))
}

func TestAcquireRelease(t *testing.T) {
	s := &Session{ID: "test"}

	require.NoError(t, s.Acquire("tailor"))

	err := s.Acquire("tailor")
	var busy *BusyError
	require.ErrorAs(t, err, &busy)
	assert.Equal(t, "tailor", busy.Operation)

	s.Release()
	assert.NoError(t, s.Acquire("analyze"))
}

func TestManagerLifecycle(t *testing.T) {
	m := NewManager()

	s := m.Create()
	assert.NotEmpty(t, s.ID)
	assert.Equal(t, 1, m.Len())

	got, err := m.Get(s.ID)
	require.NoError(t, err)
	assert.Same(t, s, got)

	_, err = m.Get("missing")
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "missing", notFound.ID)

	m.End(s.ID)
	assert.Equal(t, 0, m.Len())
	_, err = m.Get(s.ID)
	require.ErrorAs(t, err, &notFound)
}
