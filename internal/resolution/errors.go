package resolution

import "fmt"

// InvalidTransitionError indicates an action was attempted in a state
// that does not permit it.
type InvalidTransitionError struct {
	State  State
	Action string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot %s in state %q", e.Action, e.State)
}

// EmptyResponseError indicates a has-experience answer was submitted
// without the required free-text description.
type EmptyResponseError struct {
	Skill string
}

func (e *EmptyResponseError) Error() string {
	return fmt.Sprintf("a description of your experience with %q is required", e.Skill)
}
