package domain

import (
	"errors"
	"strings"
)

var (
	// ErrNotFound is returned when a resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrAlreadyExists is returned when a resource already exists
	ErrAlreadyExists = errors.New("resource already exists")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrConflict is returned when there's a conflict (e.g., optimistic locking)
	ErrConflict = errors.New("conflict occurred")

	// ErrInternal is returned when an internal error occurs
	ErrInternal = errors.New("internal error")

	// ErrInvalidCoordinates is returned for NaN or out-of-range lat/lng values
	ErrInvalidCoordinates = errors.New("invalid coordinates")
)

// ValidationDetail describes a single rejected field
type ValidationDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries field-level reasons for a rejected write.
// It matches ErrInvalidInput under errors.Is.
type ValidationError struct {
	Message string
	Details []ValidationDetail
}

// NewValidationError creates a validation error with optional details
func NewValidationError(message string, details ...ValidationDetail) *ValidationError {
	return &ValidationError{
		Message: message,
		Details: details,
	}
}

func (e *ValidationError) Error() string {
	if len(e.Details) == 0 {
		return e.Message
	}

	parts := make([]string, 0, len(e.Details))
	for _, d := range e.Details {
		parts = append(parts, d.Field+": "+d.Message)
	}
	return e.Message + " (" + strings.Join(parts, "; ") + ")"
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// Add appends a field detail
func (e *ValidationError) Add(field, message string) {
	e.Details = append(e.Details, ValidationDetail{Field: field, Message: message})
}

// HasDetails reports whether any field was rejected
func (e *ValidationError) HasDetails() bool {
	return len(e.Details) > 0
}

// AsValidationError extracts a *ValidationError from an error chain
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
