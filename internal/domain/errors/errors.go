package errors

import (
	"errors"
	"strings"
)

var (
	ErrAlreadyExists       = errors.New("already exists")
	ErrNotFound            = errors.New("not found")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrAlreadyProcessed    = errors.New("order already processed")
	ErrNotAuthorized       = errors.New("not authorized")
	ErrSubmitterUnresolved = errors.New("submitter account not found")
	ErrInvalidAmount       = errors.New("invalid amount")
)

// ValidationError aggregates every violated input rule so the caller can
// re-prompt with the full list instead of the first failure.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Violations, ", ")
}

// NewValidation builds a ValidationError from one or more violations.
func NewValidation(violations ...string) *ValidationError {
	return &ValidationError{Violations: violations}
}

// AsValidation extracts a ValidationError from err if present.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
