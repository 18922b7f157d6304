package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an entity is not found
	ErrNotFound = errors.New("entity not found")

	// ErrAlreadyExists is returned when attempting to create a duplicate entity
	ErrAlreadyExists = errors.New("entity already exists")

	// ErrSessionTerminal is returned when mutating a completed session
	ErrSessionTerminal = errors.New("session is completed and immutable")

	// ErrPreconditionFailed is returned when a state-machine transition is
	// not allowed from the current status
	ErrPreconditionFailed = errors.New("operation not allowed in current state")

	// ErrGenerationExhausted is returned when all generation attempts
	// produced zero usable items
	ErrGenerationExhausted = errors.New("generation exhausted: no usable items produced")

	// ErrGenerationBusy is returned when the concurrent-generation cap is hit
	ErrGenerationBusy = errors.New("generation capacity exhausted, retry later")
)

// ValidationError wraps field-specific validation errors
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
