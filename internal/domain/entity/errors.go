package entity

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for domain layer operations.
var (
	// ErrNotFound indicates that a requested entity was not found
	ErrNotFound = errors.New("entity not found")

	// ErrInvalidInput indicates that the provided input is invalid
	ErrInvalidInput = errors.New("invalid input")
)

// ValidationError represents a validation error with detailed field information.
// It implements the error interface and provides context about which field failed validation.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns a formatted error message for the validation error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// Unwrap classifies every validation failure as ErrInvalidInput so callers
// can branch with errors.Is without inspecting the concrete type.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// ValidationErrors aggregates every field that failed validation so callers
// can report all problems in one response instead of only the first one hit.
type ValidationErrors []*ValidationError

// Error joins the individual field errors into one message.
func (e ValidationErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, v := range e {
		msgs = append(msgs, v.Error())
	}
	return strings.Join(msgs, "; ")
}

// Unwrap classifies the aggregate the same way as its elements.
func (e ValidationErrors) Unwrap() error {
	return ErrInvalidInput
}

// Fields returns a field-to-reason map suitable for JSON error bodies.
func (e ValidationErrors) Fields() map[string]string {
	out := make(map[string]string, len(e))
	for _, v := range e {
		out[v.Field] = v.Message
	}
	return out
}
