package server

import (
	"errors"
	"fmt"
)

// Sentinel errors for session operations.
var (
	// ErrSessionClosed is returned when an operation is attempted on a closed session.
	ErrSessionClosed = errors.New("server: session closed")

	// ErrAlreadyMounted is returned when Mount is called twice.
	ErrAlreadyMounted = errors.New("server: session already mounted")

	// ErrNotMounted is returned by Flush and Dispatch before Mount.
	ErrNotMounted = errors.New("server: session not mounted")

	// ErrFlushLimit is returned when a flush does not settle within
	// SessionConfig.MaxFlushPasses passes, usually because an effect keeps
	// writing a signal its own component reads.
	ErrFlushLimit = errors.New("server: flush limit exceeded")
)

// SessionError wraps an error with session context for debugging.
type SessionError struct {
	SessionID string
	Op        string // Operation that failed
	Err       error  // Underlying error
}

// Error returns the error message with session context.
func (e *SessionError) Error() string {
	if e.SessionID == "" {
		return fmt.Sprintf("server: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("server: session %s: %s: %v", e.SessionID, e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *SessionError) Unwrap() error {
	return e.Err
}
