// Package resolution drives the question-and-answer flow that follows a
// gap analysis. Each identified gap is presented one at a time; the user
// either describes relevant experience or declines, and the collected
// answers feed the tailoring step.
package resolution

import (
	"strings"

	"github.com/jonathan/resume-tailor/internal/types"
)

// State names a phase of the resolution flow.
type State string

const (
	StateAnalyzing State = "analyzing"
	StateQuestions State = "questions"
	StateNoGaps    State = "no-gaps"
	StateError     State = "error"
	StateComplete  State = "complete"
)

// draft holds an in-progress answer for the current question. It is
// discarded on revert and converted to a GapAnswer on submit.
type draft struct {
	hasExperience bool
	response      string
}

// Flow is the per-analysis state machine. It starts in StateAnalyzing;
// Begin or Fail moves it forward once the analysis resolves. A Flow is
// single-use and not safe for concurrent access.
type Flow struct {
	state     State
	questions []types.GapQuestion
	answers   []types.GapAnswer
	index     int
	draft     *draft
	failure   error
	emitted   bool
}

// New returns a Flow in StateAnalyzing.
func New() *Flow {
	return &Flow{state: StateAnalyzing}
}

// State reports the current phase.
func (f *Flow) State() State { return f.state }

// Begin records a completed analysis. Zero gaps moves the flow to
// StateNoGaps; otherwise questioning starts at the first gap.
func (f *Flow) Begin(result *types.GapAnalysisResult) error {
	if f.state != StateAnalyzing {
		return &InvalidTransitionError{State: f.state, Action: "begin questioning"}
	}
	if result == nil || len(result.Gaps) == 0 {
		f.state = StateNoGaps
		return nil
	}
	f.questions = result.Gaps
	f.index = 0
	f.state = StateQuestions
	return nil
}

// Fail records an analysis failure and moves the flow to StateError.
func (f *Flow) Fail(err error) error {
	if f.state != StateAnalyzing {
		return &InvalidTransitionError{State: f.state, Action: "record failure"}
	}
	f.failure = err
	f.state = StateError
	return nil
}

// Err returns the recorded analysis failure, if any.
func (f *Flow) Err() error { return f.failure }

// Retry re-enters StateAnalyzing after a failure so the caller can run
// the analysis again and Begin anew.
func (f *Flow) Retry() error {
	if f.state != StateError {
		return &InvalidTransitionError{State: f.state, Action: "retry"}
	}
	f.failure = nil
	f.state = StateAnalyzing
	return nil
}

// Question returns the gap currently awaiting an answer.
func (f *Flow) Question() (types.GapQuestion, bool) {
	if f.state != StateQuestions {
		return types.GapQuestion{}, false
	}
	return f.questions[f.index], true
}

// Progress reports how many questions have been answered out of the total.
func (f *Flow) Progress() (answered, total int) {
	return len(f.answers), len(f.questions)
}

// Choose starts an answer for the current question. Choosing experience
// requires a follow-up SetResponse before Submit; declining needs nothing
// further.
func (f *Flow) Choose(hasExperience bool) error {
	if f.state != StateQuestions {
		return &InvalidTransitionError{State: f.state, Action: "answer"}
	}
	f.draft = &draft{hasExperience: hasExperience}
	return nil
}

// SetResponse attaches the free-text experience description to the
// in-progress answer.
func (f *Flow) SetResponse(text string) error {
	if f.state != StateQuestions || f.draft == nil {
		return &InvalidTransitionError{State: f.state, Action: "set response"}
	}
	if !f.draft.hasExperience {
		return &InvalidTransitionError{State: f.state, Action: "describe experience on a declined answer"}
	}
	f.draft.response = text
	return nil
}

// Revert discards the in-progress answer, returning the current question
// to the unanswered state.
func (f *Flow) Revert() error {
	if f.state != StateQuestions {
		return &InvalidTransitionError{State: f.state, Action: "revert"}
	}
	f.draft = nil
	return nil
}

// Submit finalizes the in-progress answer and advances to the next
// question. Answering the last question moves the flow to StateComplete.
func (f *Flow) Submit() error {
	if f.state != StateQuestions {
		return &InvalidTransitionError{State: f.state, Action: "submit"}
	}
	if f.draft == nil {
		return &InvalidTransitionError{State: f.state, Action: "submit without choosing"}
	}
	question := f.questions[f.index]
	answer := types.GapAnswer{
		QuestionID:    question.ID,
		Skill:         question.Skill,
		HasExperience: f.draft.hasExperience,
	}
	if f.draft.hasExperience {
		if strings.TrimSpace(f.draft.response) == "" {
			return &EmptyResponseError{Skill: question.Skill}
		}
		answer.UserResponse = f.draft.response
	} else {
		answer.CompensationStrategy = types.CompensationStrategy(question.Skill)
	}
	f.answers = append(f.answers, answer)
	f.draft = nil
	f.index++
	if f.index == len(f.questions) {
		f.state = StateComplete
	}
	return nil
}

// Skip aborts questioning, discarding any answers already submitted. It
// is also how the user declines to retry after an analysis failure.
// Partial answer sets are never emitted; tailoring proceeds without gap
// context instead.
func (f *Flow) Skip() error {
	if f.state != StateQuestions && f.state != StateError {
		return &InvalidTransitionError{State: f.state, Action: "skip"}
	}
	f.answers = nil
	f.draft = nil
	f.failure = nil
	f.state = StateComplete
	return nil
}

// Continue acknowledges a no-gaps result and finishes with an empty
// answer set.
func (f *Flow) Continue() error {
	if f.state != StateNoGaps {
		return &InvalidTransitionError{State: f.state, Action: "continue"}
	}
	f.state = StateComplete
	return nil
}

// Answers emits the accumulated answers in question order. It succeeds
// exactly once per flow.
func (f *Flow) Answers() ([]types.GapAnswer, error) {
	if f.state != StateComplete {
		return nil, &InvalidTransitionError{State: f.state, Action: "collect answers"}
	}
	if f.emitted {
		return nil, &InvalidTransitionError{State: f.state, Action: "collect answers twice"}
	}
	f.emitted = true
	return f.answers, nil
}
