package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")

	// ErrNotConfigured reports that a backing store or secret is missing.
	ErrNotConfigured = errors.New("not configured")
	// ErrInvalidCode is returned when an admin access code does not match.
	ErrInvalidCode = errors.New("invalid code")
)

// FieldError is one rejected input field. Field uses the request path,
// e.g. "rules[2].variable_mapping".
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError collects every rejected field of a single request so the
// caller can fix them in one round trip.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	switch len(e.Errors) {
	case 0:
		return "validation: invalid input"
	case 1:
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return "validation: invalid " + strings.Join(e.Fields(), ", ")
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// Summary is the human-facing headline: the message itself when only one
// field failed, a count otherwise.
func (e *ValidationError) Summary() string {
	switch len(e.Errors) {
	case 0:
		return "Invalid input"
	case 1:
		return e.Errors[0].Message
	}
	return fmt.Sprintf("%d fields are invalid", len(e.Errors))
}

// Fields lists the rejected field paths in order, without duplicates.
func (e *ValidationError) Fields() []string {
	seen := make(map[string]struct{}, len(e.Errors))
	out := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		if _, ok := seen[fe.Field]; ok {
			continue
		}
		seen[fe.Field] = struct{}{}
		out = append(out, fe.Field)
	}
	return out
}

// Has reports whether field was rejected.
func (e *ValidationError) Has(field string) bool {
	for _, fe := range e.Errors {
		if fe.Field == field {
			return true
		}
	}
	return false
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}
