package domain

import (
	"errors"
	"fmt"
)

// Error kinds. None of them is ever retried.
var (
	ErrValidation          = errors.New("validation error")
	ErrNotFound            = errors.New("not found")
	ErrPastWeek            = errors.New("past week")
	ErrInvariantViolation  = errors.New("invariant violation")
	ErrSourceNotConfigured = errors.New("source week not configured")
)

// Error is a domain error carrying one of the kinds above. Use errors.Is
// against the kind to branch on it.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func newError(kind error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func NewValidationError(format string, args ...any) error {
	return newError(ErrValidation, format, args...)
}

func NewNotFoundError(format string, args ...any) error {
	return newError(ErrNotFound, format, args...)
}

func NewPastWeekError(format string, args ...any) error {
	return newError(ErrPastWeek, format, args...)
}

func NewInvariantViolation(format string, args ...any) error {
	return newError(ErrInvariantViolation, format, args...)
}

func NewSourceNotConfiguredError(format string, args ...any) error {
	return newError(ErrSourceNotConfigured, format, args...)
}
