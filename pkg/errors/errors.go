// Package errors gives every failure in shapealign a [Code] and sorts the
// codes into two kinds.
//
// Fatal codes (INVALID_*, *_NOT_FOUND, NO_MATCHING_SHAPES, INTERNAL_ERROR and
// RENDER_ERROR) mean the input was rejected and nothing was written. Notice
// codes mean the engine made a deliberate, reportable choice:
//
//   - INSUFFICIENT_INPUT: fewer than two distinct shapes, nothing moved
//   - UNSUPPORTED_MODE: unknown alignment string, nothing moved
//   - UNRESOLVED_IDENTIFIER: some order entries matched no shape and were
//     skipped while the rest were still placed
//
// Callers print notices as warnings and exit successfully:
//
//	if errors.IsNotice(err) {
//	    logger.Warn(errors.UserMessage(err), "code", errors.GetCode(err))
//	    return nil
//	}
//
// Use [Is] with a Code to test for one specific failure.
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
	ErrCodeInvalidGeometry  Code = "INVALID_GEOMETRY"
	ErrCodeInvalidCanvas    Code = "INVALID_CANVAS"
	ErrCodeInvalidDirective Code = "INVALID_DIRECTIVE"
	ErrCodeInvalidConfig    Code = "INVALID_CONFIG"
	ErrCodeInvalidPath      Code = "INVALID_PATH"

	// Arrangement notices
	ErrCodeInsufficientInput    Code = "INSUFFICIENT_INPUT"
	ErrCodeUnresolvedIdentifier Code = "UNRESOLVED_IDENTIFIER"
	ErrCodeUnsupportedMode      Code = "UNSUPPORTED_MODE"
	ErrCodeNoMatchingShapes     Code = "NO_MATCHING_SHAPES"

	// Resource not found errors
	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
	ErrCodeRender   Code = "RENDER_ERROR"
)

var notices = map[Code]bool{
	ErrCodeInsufficientInput:    true,
	ErrCodeUnresolvedIdentifier: true,
	ErrCodeUnsupportedMode:      true,
}

// Notice reports whether c is a notice code rather than a failure.
func (c Code) Notice() bool { return notices[c] }

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

// IsNotice reports whether err carries a notice code anywhere in its chain.
func IsNotice(err error) bool {
	return GetCode(err).Notice()
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
