// Package errors provides structured error types for squared.
//
// Core resolvers never fail; every error a user can see originates at a
// boundary (reading documents, loading config, talking to a cache or store).
// Those boundaries return an [*Error] carrying a machine-readable [Code] so
// the CLI can print a clean message and scripts can branch on the code.
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input validation failures
//   - *_NOT_FOUND: Resource not found
//   - NETWORK_*, TIMEOUT: Cache or store backends unreachable
//   - INTERNAL_*: Unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidGeometry, "element %s: box is not finite", id)
//	if errors.Is(err, errors.ErrCodeInvalidGeometry) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeNetwork, origErr, "failed to reach redis at %s", addr)
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeInvalidDocument Code = "INVALID_DOCUMENT"
	ErrCodeInvalidElement  Code = "INVALID_ELEMENT"
	ErrCodeInvalidGeometry Code = "INVALID_GEOMETRY"
	ErrCodeInvalidBias     Code = "INVALID_BIAS"
	ErrCodeInvalidChain    Code = "INVALID_CHAIN"
	ErrCodeInvalidFormat   Code = "INVALID_FORMAT"
	ErrCodeInvalidPath     Code = "INVALID_PATH"
	ErrCodeInvalidConfig   Code = "INVALID_CONFIG"

	// Resource not found errors
	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"
	ErrCodeRunNotFound  Code = "RUN_NOT_FOUND"

	// Backend errors
	ErrCodeNetwork Code = "NETWORK_ERROR"
	ErrCodeTimeout Code = "TIMEOUT"

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

// Issues collects every validation failure found in one document so users
// can fix them in a single pass.
type Issues struct {
	Source string   // File or document name
	Errs   []*Error // Individual failures in discovery order
}

// Add records a failure. Nil errors are ignored so validator results can
// be passed straight in; errors without a code become INVALID_INPUT.
func (i *Issues) Add(err error) {
	if err == nil {
		return
	}
	var e *Error
	if !errors.As(err, &e) {
		e = Wrap(ErrCodeInvalidInput, err, "%s", err.Error())
	}
	i.Errs = append(i.Errs, e)
}

// Addf records a failure built from code and message.
func (i *Issues) Addf(code Code, format string, args ...any) {
	i.Add(New(code, format, args...))
}

// Len returns the number of recorded failures.
func (i *Issues) Len() int { return len(i.Errs) }

// Err returns nil when no failures were recorded, the single failure when
// there is one, and otherwise an INVALID_DOCUMENT error listing them all.
func (i *Issues) Err() error {
	switch len(i.Errs) {
	case 0:
		return nil
	case 1:
		return i.Errs[0]
	}
	msgs := make([]string, len(i.Errs))
	for n, e := range i.Errs {
		msgs[n] = e.Message
	}
	src := i.Source
	if src == "" {
		src = "document"
	}
	return &Error{
		Code:    ErrCodeInvalidDocument,
		Message: fmt.Sprintf("%s has %d problems:\n  - %s", src, len(i.Errs), strings.Join(msgs, "\n  - ")),
		Cause:   errors.Join(errorSlice(i.Errs)...),
	}
}

func errorSlice(errs []*Error) []error {
	out := make([]error, len(errs))
	for i, e := range errs {
		out[i] = e
	}
	return out
}
