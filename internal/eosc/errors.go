package eosc

import (
	"errors"
	"fmt"
)

// Sentinel errors for destination API interactions.
var (
	// ErrNotFound indicates the portal has no record under the requested id.
	ErrNotFound = errors.New("not found")

	// ErrUnchanged indicates the portal acknowledged an update with a 200
	// but a non-JSON body, which it does when no field actually changed.
	ErrUnchanged = errors.New("no changes")
)

// StatusError reports an unexpected HTTP status from a destination API.
type StatusError struct {
	Operation string
	Status    int
	Body      string
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return fmt.Sprintf("%s returned %d: %s", e.Operation, e.Status, e.Body)
}

func newStatusError(operation string, status int, body []byte) *StatusError {
	return &StatusError{Operation: operation, Status: status, Body: string(body)}
}
