package session

import "fmt"

// NotFoundError indicates no session exists for the given ID.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("session %q not found", e.ID)
}

// BusyError indicates a session already has an operation in flight.
type BusyError struct {
	Operation string
}

func (e *BusyError) Error() string {
	return fmt.Sprintf("session busy: %s already in progress", e.Operation)
}
