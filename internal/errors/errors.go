// Package errors provides structured errors for the tell CLI: a code for
// categorization, a message for what failed, and a suggestion for how to fix
// it. The demo commands hand these to the logger, which prints the message
// and gates the trace display.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Error codes for categorizing errors
const (
	ErrConfig = "CONFIG"
	ErrUsage  = "USAGE"
	ErrIO     = "IO"
)

// Error is a structured error with code, message, suggestion, and optional
// cause.
type Error struct {
	Code       string
	Message    string
	Suggestion string
	Cause      error
}

// New creates a new structured error with the given code, message, and
// suggestion.
func New(code, message, suggestion string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Suggestion: suggestion,
	}
}

// Wrap wraps an existing error with a message, defaulting to ErrIO code.
func Wrap(err error, message string) *Error {
	return &Error{
		Code:    ErrIO,
		Message: message,
		Cause:   err,
	}
}

// WrapWithCode wraps an existing error with a specific code, message, and
// suggestion.
func WrapWithCode(err error, code, message, suggestion string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Suggestion: suggestion,
		Cause:      err,
	}
}

// Error implements the error interface. The message leads; the cause and
// suggestion follow on indented lines.
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Message)

	if e.Cause != nil {
		b.WriteString(fmt.Sprintf("\n  %s", e.Cause.Error()))
	}
	if e.Suggestion != "" {
		b.WriteString(fmt.Sprintf("\n  %s", e.Suggestion))
	}
	return b.String()
}

// Unwrap returns the underlying cause for use with errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// IsCode checks if an error is a structured Error with the given code.
func IsCode(err error, code string) bool {
	if err == nil {
		return false
	}
	var tellErr *Error
	if errors.As(err, &tellErr) {
		return tellErr.Code == code
	}
	return false
}
