// Package errors provides structured error types for viewlayout.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the library and the CLI
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input validation failures (scene files, attribute names)
//   - *_NOT_FOUND: Resource not found
//   - UNCONFIGURED_CONSTRAINT: a constraint used before its first term exists
//   - INTERNAL_*: Unexpected internal errors
//
// # Programmer errors
//
// Using a constraint whose first term was never established is a bug in the
// caller, not a runtime condition. Those paths panic with an [*Error] built
// by [Unconfigured]; everything else returns errors normally.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidAttribute, "unknown attribute %q", name)
//	if errors.Is(err, errors.ErrCodeInvalidAttribute) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidScene, origErr, "decode %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput     Code = "INVALID_INPUT"
	ErrCodeInvalidAttribute Code = "INVALID_ATTRIBUTE"
	ErrCodeInvalidRelation  Code = "INVALID_RELATION"
	ErrCodeInvalidPriority  Code = "INVALID_PRIORITY"
	ErrCodeInvalidScene     Code = "INVALID_SCENE"
	ErrCodeInvalidFormat    Code = "INVALID_FORMAT"
	ErrCodeInvalidName      Code = "INVALID_NAME"

	// Resource errors
	ErrCodeViewNotFound  Code = "VIEW_NOT_FOUND"
	ErrCodeDuplicateView Code = "DUPLICATE_VIEW"

	// Programmer errors
	ErrCodeUnconfigured Code = "UNCONFIGURED_CONSTRAINT"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Unconfigured returns the panic value used when a constraint is resolved or
// assigned before its first term exists.
func Unconfigured(op string) *Error {
	return New(ErrCodeUnconfigured, "trying to %s unconfigured constraint", op)
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// FromPanic converts a recovered panic value into an error. Values that are
// already errors keep their chain; anything else becomes ErrCodeInternal.
// It returns nil for a nil value.
func FromPanic(v any) error {
	switch p := v.(type) {
	case nil:
		return nil
	case error:
		return p
	default:
		return New(ErrCodeInternal, "%v", p)
	}
}
