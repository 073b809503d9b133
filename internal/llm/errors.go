package llm

import (
	"context"
	"errors"
	"fmt"
)

// ModelError represents a failure of the external model call itself
// (network, auth, rate limit). It is retryable by the caller.
type ModelError struct {
	Message string
	Cause   error
}

func (e *ModelError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("model call failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("model call failed: %s", e.Message)
}

func (e *ModelError) Unwrap() error {
	return e.Cause
}

// MalformedResponseError represents a model response that could not be parsed
// as the expected structure. Raw carries the unparsed response text so callers
// can log or surface it.
type MalformedResponseError struct {
	Message string
	Raw     string
	Cause   error
}

func (e *MalformedResponseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("malformed model response: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("malformed model response: %s", e.Message)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Cause
}

// TimeoutError represents an outbound call that exceeded its deadline.
// Kept distinct from ModelError so the interactive layer can message it
// differently.
type TimeoutError struct {
	Operation string
	Cause     error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("%s timed out: %v", e.Operation, e.Cause)
}

func (e *TimeoutError) Unwrap() error {
	return e.Cause
}

// WrapCallError classifies an error from an outbound model call as either a
// deadline expiry or a general model failure.
func WrapCallError(operation string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return &TimeoutError{Operation: operation, Cause: err}
	}
	return &ModelError{Message: operation, Cause: err}
}
