package apperrors

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthenticated means no usable credential is stored locally.
	// Protected flows must fail with this before any network call.
	ErrUnauthenticated = errors.New("not logged in")

	// ErrAuthExpired means the backend rejected the credential (401).
	// The session has already been cleared when this is returned.
	ErrAuthExpired = errors.New("authentication expired, log in again")

	ErrBackendUnreachable = errors.New("cannot reach the backend")
	ErrValidation         = errors.New("invalid input")
	ErrContentBlocked     = errors.New("request blocked by content policy")
	ErrNoPlan             = errors.New("no active study plan")
)

// StatusError is a non-2xx, non-401 backend response. Callers interpret the
// detail text per flow; there is no automatic retry.
type StatusError struct {
	StatusCode int
	Detail     string
}

func (e *StatusError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("server error: %d: %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("server error: %d", e.StatusCode)
}
