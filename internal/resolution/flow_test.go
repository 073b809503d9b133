package resolution

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-tailor/internal/types"
)

func twoGapResult() *types.GapAnalysisResult {
	return &types.GapAnalysisResult{
		Gaps: []types.GapQuestion{
			{ID: "gap-1", Skill: "Kubernetes", Question: "Have you worked with Kubernetes?", Priority: types.PriorityHigh},
			{ID: "gap-2", Skill: "Terraform", Question: "Have you used Terraform?", Priority: types.PriorityMedium},
		},
	}
}

func TestFlowHappyPath(t *testing.T) {
	flow := New()
	assert.Equal(t, StateAnalyzing, flow.State())

	require.NoError(t, flow.Begin(twoGapResult()))
	assert.Equal(t, StateQuestions, flow.State())

	question, ok := flow.Question()
	require.True(t, ok)
	assert.Equal(t, "gap-1", question.ID)

	require.NoError(t, flow.Choose(true))
	require.NoError(t, flow.SetResponse("ran a homelab cluster for two years"))
	require.NoError(t, flow.Submit())

	answered, total := flow.Progress()
	assert.Equal(t, 1, answered)
	assert.Equal(t, 2, total)

	question, ok = flow.Question()
	require.True(t, ok)
	assert.Equal(t, "gap-2", question.ID)

	require.NoError(t, flow.Choose(false))
	require.NoError(t, flow.Submit())
	assert.Equal(t, StateComplete, flow.State())

	answers, err := flow.Answers()
	require.NoError(t, err)
	require.Len(t, answers, 2)

	assert.Equal(t, "gap-1", answers[0].QuestionID)
	assert.True(t, answers[0].HasExperience)
	assert.Equal(t, "ran a homelab cluster for two years", answers[0].UserResponse)
	assert.Empty(t, answers[0].CompensationStrategy)
	assert.True(t, answers[0].Valid())

	assert.Equal(t, "gap-2", answers[1].QuestionID)
	assert.False(t, answers[1].HasExperience)
	assert.Empty(t, answers[1].UserResponse)
	assert.Equal(t, "Emphasize transferable skills related to Terraform", answers[1].CompensationStrategy)
	assert.True(t, answers[1].Valid())
}

func TestFlowAnswersEmitOnce(t *testing.T) {
	flow := New()
	require.NoError(t, flow.Begin(nil))
	require.NoError(t, flow.Continue())

	answers, err := flow.Answers()
	require.NoError(t, err)
	assert.Empty(t, answers)

	_, err = flow.Answers()
	var transitionErr *InvalidTransitionError
	require.ErrorAs(t, err, &transitionErr)
}

func TestFlowNoGaps(t *testing.T) {
	flow := New()
	require.NoError(t, flow.Begin(&types.GapAnalysisResult{MatchedSkills: []string{"Go"}}))
	assert.Equal(t, StateNoGaps, flow.State())

	_, ok := flow.Question()
	assert.False(t, ok)

	require.NoError(t, flow.Continue())
	assert.Equal(t, StateComplete, flow.State())
}

func TestFlowSubmitRequiresResponse(t *testing.T) {
	flow := New()
	require.NoError(t, flow.Begin(twoGapResult()))
	require.NoError(t, flow.Choose(true))

	err := flow.Submit()
	var emptyErr *EmptyResponseError
	require.ErrorAs(t, err, &emptyErr)
	assert.Equal(t, "Kubernetes", emptyErr.Skill)

	err = flow.SetResponse("   ")
	require.NoError(t, err)
	require.ErrorAs(t, flow.Submit(), &emptyErr)

	// Still on the first question.
	question, ok := flow.Question()
	require.True(t, ok)
	assert.Equal(t, "gap-1", question.ID)
}

func TestFlowRevert(t *testing.T) {
	flow := New()
	require.NoError(t, flow.Begin(twoGapResult()))
	require.NoError(t, flow.Choose(false))
	require.NoError(t, flow.Revert())

	err := flow.Submit()
	var transitionErr *InvalidTransitionError
	require.ErrorAs(t, err, &transitionErr)

	require.NoError(t, flow.Choose(true))
	require.NoError(t, flow.SetResponse("built modules at work"))
	require.NoError(t, flow.Submit())
	answered, _ := flow.Progress()
	assert.Equal(t, 1, answered)
}

func TestFlowSetResponseOnDeclinedAnswer(t *testing.T) {
	flow := New()
	require.NoError(t, flow.Begin(twoGapResult()))
	require.NoError(t, flow.Choose(false))

	var transitionErr *InvalidTransitionError
	require.ErrorAs(t, flow.SetResponse("text"), &transitionErr)
}

func TestFlowSkipDiscardsSubmittedAnswers(t *testing.T) {
	flow := New()
	require.NoError(t, flow.Begin(twoGapResult()))
	require.NoError(t, flow.Choose(true))
	require.NoError(t, flow.SetResponse("some experience"))
	require.NoError(t, flow.Submit())

	require.NoError(t, flow.Skip())
	assert.Equal(t, StateComplete, flow.State())

	answers, err := flow.Answers()
	require.NoError(t, err)
	assert.Empty(t, answers)
}

func TestFlowFailureRetryAndSkip(t *testing.T) {
	analysisErr := errors.New("model unavailable")

	flow := New()
	require.NoError(t, flow.Fail(analysisErr))
	assert.Equal(t, StateError, flow.State())
	assert.Equal(t, analysisErr, flow.Err())

	require.NoError(t, flow.Retry())
	assert.Equal(t, StateAnalyzing, flow.State())
	assert.NoError(t, flow.Err())

	require.NoError(t, flow.Fail(analysisErr))
	require.NoError(t, flow.Skip())
	answers, err := flow.Answers()
	require.NoError(t, err)
	assert.Empty(t, answers)
}

func TestFlowInvalidTransitions(t *testing.T) {
	flow := New()

	var transitionErr *InvalidTransitionError
	require.ErrorAs(t, flow.Choose(true), &transitionErr)
	require.ErrorAs(t, flow.Submit(), &transitionErr)
	require.ErrorAs(t, flow.Skip(), &transitionErr)
	require.ErrorAs(t, flow.Continue(), &transitionErr)
	require.ErrorAs(t, flow.Retry(), &transitionErr)

	_, err := flow.Answers()
	require.ErrorAs(t, err, &transitionErr)

	require.NoError(t, flow.Begin(twoGapResult()))
	require.ErrorAs(t, flow.Begin(twoGapResult()), &transitionErr)
	require.ErrorAs(t, flow.Fail(errors.New("late")), &transitionErr)
}
