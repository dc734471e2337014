package errors

import (
	"fmt"
	"strings"
)

// FieldError describes a single invalid field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrValidation is returned when input fails field-level validation.
// It is always recoverable by correcting the input and resubmitting.
type ErrValidation struct {
	Fields []FieldError
}

func (e *ErrValidation) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	names := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		names = append(names, f.Field)
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(names, ", "))
}

// HasField reports whether the error names the given field.
func (e *ErrValidation) HasField(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

// NewValidation builds a validation error for a single field.
func NewValidation(field, message string) *ErrValidation {
	return &ErrValidation{Fields: []FieldError{{Field: field, Message: message}}}
}

// ErrPrecondition is returned when an operation is invoked in a state
// that does not permit it.
type ErrPrecondition struct {
	Message string
}

func (e *ErrPrecondition) Error() string {
	return e.Message
}

// ErrSubmission wraps a failure from the order service during checkout
// submission. The checkout session stays intact so the user can retry.
type ErrSubmission struct {
	Message string
	Cause   error
}

func (e *ErrSubmission) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *ErrSubmission) Unwrap() error {
	return e.Cause
}

// ErrNotFound is returned when a resource doesn't exist.
type ErrNotFound struct {
	Resource string
	ID       string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ErrUnauthorized is returned for authentication failures.
type ErrUnauthorized struct {
	Message string
}

func (e *ErrUnauthorized) Error() string {
	return e.Message
}

// ErrInvalidStateTransition is returned when an order status change
// violates the status state machine.
type ErrInvalidStateTransition struct {
	From string
	To   string
}

func (e *ErrInvalidStateTransition) Error() string {
	return fmt.Sprintf("invalid state transition from %s to %s", e.From, e.To)
}
