// Package errors provides structured error types for the buildstamp tool.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across capture, emit, and CLI layers
//   - Machine-readable error codes for programmatic handling
//   - User-friendly diagnostics identifying which capture step failed
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Every fatal condition the generator can hit has a distinct code so
// that build logs identify the failing step without guesswork:
//   - CLOCK_UNAVAILABLE: the build machine's clock could not be read
//   - TOOLCHAIN_UNREADABLE: the toolchain's version report is missing or unusable
//   - VERSION_FORMAT: the version core is not exactly major.minor.patch
//   - INVALID_SHAPE / INVALID_CONFIG: bad generator input
//   - WRITE_FAILED: the generated file could not be written
//   - INTERNAL_ERROR: an invariant violation inside the emitter
//
// # Usage
//
//	err := errors.New(errors.ErrCodeVersionFormat, "version core %q is not major.minor.patch", core)
//	if errors.Is(err, errors.ErrCodeVersionFormat) {
//	    // Handle the unsupported toolchain
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeToolchainUnreadable, origErr, "run %s", cmd)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for each failure class the generator distinguishes.
const (
	// Capture failures (always fatal, the build must not produce an artifact)
	ErrCodeClockUnavailable    Code = "CLOCK_UNAVAILABLE"
	ErrCodeToolchainUnreadable Code = "TOOLCHAIN_UNREADABLE"
	ErrCodeVersionFormat       Code = "VERSION_FORMAT"

	// Input validation failures
	ErrCodeInvalidShape  Code = "INVALID_SHAPE"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"

	// Output failures
	ErrCodeWriteFailed Code = "WRITE_FAILED"

	// Internal invariant violations
	ErrCodeInternal Code = "INTERNAL_ERROR"
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
