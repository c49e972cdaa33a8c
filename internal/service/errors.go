package service

import "errors"

// ErrNotFound is returned when no entity carries the requested identity.
var ErrNotFound = errors.New("entity not found")

// ValidationError wraps a field-level input problem. The operation that
// produced it made no state change.
type ValidationError struct {
	Reason string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return e.Reason
}

// NewValidationError creates a validation error
func NewValidationError(reason string) *ValidationError {
	return &ValidationError{Reason: reason}
}

// IsValidationError checks whether err is a validation error
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
