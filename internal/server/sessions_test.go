package server

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-tailor/internal/scrape"
	"github.com/jonathan/resume-tailor/internal/types"
)

func createSession(t *testing.T, handler http.Handler) string {
	t.Helper()
	rec := doJSON(t, handler, "POST", "/sessions", "", nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp["sessionId"])
	return resp["sessionId"]
}

func getSummary(t *testing.T, handler http.Handler, id string) sessionSummary {
	t.Helper()
	rec := doJSON(t, handler, "GET", "/sessions/"+id, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var summary sessionSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	return summary
}

func TestSessionLifecycle(t *testing.T) {
	s := newTestServer(&mockClient{})
	handler := s.Handler()

	id := createSession(t, handler)

	summary := getSummary(t, handler, id)
	assert.Equal(t, id, summary.ID)
	assert.False(t, summary.HasResume)
	assert.Nil(t, summary.Job)

	rec := doJSON(t, handler, "DELETE", "/sessions/"+id, "", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, handler, "GET", "/sessions/"+id, "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSessionUnknownHeader(t *testing.T) {
	s := newTestServer(&mockClient{response: gapsResponse})

	body := `{"resumeContent": "resume", "jobDescription": "job"}`
	rec := doJSON(t, s.Handler(), "POST", "/analyze-gaps", body, map[string]string{"X-Session-ID": "missing"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNewJobPostingClearsTailoredResult(t *testing.T) {
	s := newTestServer(&mockClient{response: tailorResponse})
	s.scrapeJob = func(_ context.Context, _ string, _ *scrape.Options) (*types.JobPosting, error) {
		return &types.JobPosting{Title: "Engineer", Company: "Acme", Description: "desc", RawText: "raw"}, nil
	}
	handler := s.Handler()

	id := createSession(t, handler)
	headers := map[string]string{"X-Session-ID": id}

	rec := doJSON(t, handler, "POST", "/scrape-job", `{"url": "https://example.com/job/a"}`, headers)
	require.Equal(t, http.StatusOK, rec.Code)

	body := `{"resumeContent": "resume", "jobDescription": "job", "gapAnswers": [{"questionId": "gap-1", "skill": "Go", "hasExperience": true, "userResponse": "yes"}]}`
	rec = doJSON(t, handler, "POST", "/tailor-resume", body, headers)
	require.Equal(t, http.StatusOK, rec.Code)

	summary := getSummary(t, handler, id)
	require.NotNil(t, summary.Tailored)
	assert.Equal(t, 1, summary.AnswerCount)

	// Loading a different posting drops the tailoring and the answers.
	rec = doJSON(t, handler, "POST", "/scrape-job", `{"url": "https://example.com/job/b"}`, headers)
	require.Equal(t, http.StatusOK, rec.Code)

	summary = getSummary(t, handler, id)
	assert.Nil(t, summary.Tailored)
	assert.Equal(t, 0, summary.AnswerCount)
	require.NotNil(t, summary.Job)
}

func TestSessionEditBullet(t *testing.T) {
	s := newTestServer(&mockClient{response: tailorResponse})
	handler := s.Handler()

	id := createSession(t, handler)
	headers := map[string]string{"X-Session-ID": id}

	body := `{"resumeContent": "resume", "jobDescription": "job"}`
	rec := doJSON(t, handler, "POST", "/tailor-resume", body, headers)
	require.Equal(t, http.StatusOK, rec.Code)

	edit := `{"sectionIndex": 0, "bulletIndex": 0, "text": "Shipped x to production"}`
	rec = doJSON(t, handler, "POST", "/sessions/"+id+"/edit-bullet", edit, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var data types.TailoredData
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &data))
	assert.Equal(t, "Shipped x to production", data.Sections[0].TailoredBullets[0])
	// Originals are untouched.
	assert.Equal(t, "did x", data.Sections[0].OriginalBullets[0])

	// Out of range.
	edit = `{"sectionIndex": 3, "bulletIndex": 0, "text": "nope"}`
	rec = doJSON(t, handler, "POST", "/sessions/"+id+"/edit-bullet", edit, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSessionEditBulletWithoutTailoring(t *testing.T) {
	s := newTestServer(&mockClient{})
	handler := s.Handler()

	id := createSession(t, handler)

	edit := `{"sectionIndex": 0, "bulletIndex": 0, "text": "text"}`
	rec := doJSON(t, handler, "POST", "/sessions/"+id+"/edit-bullet", edit, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSessionParseResumeStoresText(t *testing.T) {
	s := newTestServer(&mockClient{})
	handler := s.Handler()

	id := createSession(t, handler)

	rec := uploadResume(t, handler, "resume.tex", "\\section{Skills}\n\\resumeItem{Go}", map[string]string{"X-Session-ID": id})
	require.Equal(t, http.StatusOK, rec.Code)

	summary := getSummary(t, handler, id)
	assert.True(t, summary.HasResume)
	assert.Equal(t, "resume.tex", summary.ResumeFilename)
}
