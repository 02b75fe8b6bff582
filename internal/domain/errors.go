package domain

import (
	"errors"
	"strings"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation error")
	ErrInvalidID   = errors.New("invalid id format")
	ErrUnavailable = errors.New("unavailable")
)

// Violation is a single failed field rule.
type Violation struct {
	Field   string
	Message string
}

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// access verr.Violations. Violations keep the order in which the rules ran so the
// rendered message is stable.
type ValidationError struct {
	Violations []Violation
}

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Violations: []Violation{{Field: field, Message: message}}}
}

// Add appends a violation.
func (e *ValidationError) Add(field, message string) {
	e.Violations = append(e.Violations, Violation{Field: field, Message: message})
}

// Empty reports whether no violations were recorded.
func (e *ValidationError) Empty() bool {
	return len(e.Violations) == 0
}

// Has reports whether the given field has at least one violation.
func (e *ValidationError) Has(field string) bool {
	for _, v := range e.Violations {
		if v.Field == field {
			return true
		}
	}
	return false
}

// Messages returns the violation messages in rule order.
func (e *ValidationError) Messages() []string {
	msgs := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		msgs[i] = v.Message
	}
	return msgs
}

// Message joins all violation messages into a single human-readable string.
func (e *ValidationError) Message() string {
	return strings.Join(e.Messages(), ", ")
}

// OrNil returns nil when no violations were recorded, so callers can write
// `return verr.OrNil()` without returning a typed nil inside an error.
func (e *ValidationError) OrNil() error {
	if e == nil || e.Empty() {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	return ErrValidation.Error() + ": " + e.Message()
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
