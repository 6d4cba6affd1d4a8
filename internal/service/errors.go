package service

import (
	"errors"
	"fmt"
)

// Error taxonomy surfaced to the HTTP layer. Every failure below is
// recoverable at the request boundary and maps to a distinct status code.
var (
	ErrNotFound           = errors.New("record not found")            // Referenced user or library does not exist
	ErrInvalidCredentials = errors.New("invalid credentials")         // Login failed; does not say whether email or password was wrong
	ErrNotAuthorized      = errors.New("not authorized")              // Acting user tried to manage another user's membership
	ErrEmailTaken         = errors.New("email already registered")    // Registration hit the unique email constraint
)

// ValidationError reports a malformed input field.
type ValidationError struct {
	Field  string // Offending field name
	Reason string // Human-readable reason
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
