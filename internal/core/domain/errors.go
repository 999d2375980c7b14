package domain

import (
	"errors"
	"strings"
)

var (
	ErrUserNotFound          = errors.New("user not found")
	ErrAccommodationNotFound = errors.New("accommodation not found")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrInvalidToken          = errors.New("invalid token")
	ErrSigningKey            = errors.New("signing key unavailable")
	ErrForbidden             = errors.New("access forbidden")
	ErrValidation            = errors.New("validation failed")
)

// FieldViolation describes a single rejected input field.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every field that failed validation for one request.
type ValidationError struct {
	Violations []FieldViolation
}

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Violations: []FieldViolation{{Field: field, Message: message}}}
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		msgs = append(msgs, v.Message)
	}
	return ErrValidation.Error() + ": " + strings.Join(msgs, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
