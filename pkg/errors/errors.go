// Package errors provides structured error types for plannergen.
//
// Every failure the generator can report carries a machine-readable [Code] so
// the CLI (and any other orchestrator) can decide how to present it without
// string matching.
//
// # Error Codes
//
// Codes follow a hierarchical naming convention:
//   - INVALID_*: configuration or input validation failures
//   - *_NOT_FOUND: a lookup miss (component, file)
//   - UNIMPLEMENTED_*: an incomplete section type
//   - INTERNAL_*: unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidConfig, "unknown weekday %q", v)
//	if errors.Is(err, errors.ErrCodeInvalidConfig) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeFileNotFound, origErr, "read %s", path)
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
	ErrCodeInvalidConfig    Code = "INVALID_CONFIG"
	ErrCodeInvalidDimension Code = "INVALID_DIMENSION"
	ErrCodeInvalidPlacement Code = "INVALID_PLACEMENT"
	ErrCodeInvalidName      Code = "INVALID_NAME"
	ErrCodeInvalidPath      Code = "INVALID_PATH"

	// Lookup errors
	ErrCodeComponentNotFound Code = "COMPONENT_NOT_FOUND"
	ErrCodeFileNotFound      Code = "FILE_NOT_FOUND"

	// Registration errors
	ErrCodeDuplicateComponent Code = "DUPLICATE_COMPONENT"

	// Incomplete implementations
	ErrCodeUnimplementedPageSequence Code = "UNIMPLEMENTED_PAGE_SEQUENCE"

	// Internal errors
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

// coder is implemented by the typed errors below so Is and GetCode can see
// through them without knowing their concrete type.
type coder interface {
	error
	Code() Code
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error or a typed error with a
// matching code.
func Is(err error, code Code) bool {
	return GetCode(err) == code && code != ""
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the chain holds no coded error.
func GetCode(err error) Code {
	for err != nil {
		switch e := err.(type) {
		case *Error:
			return e.Code
		case coder:
			return e.Code()
		}
		err = errors.Unwrap(err)
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

// ComponentNotFoundError is returned when a template family provides no
// implementation for one of the identifiers a section needs.
type ComponentNotFoundError struct {
	Identifier string // e.g. "Mos.Components.MonthlyHeader"
	Section    string // raw section name from configuration
	Family     string // effective template family
}

// Error implements the error interface.
func (e *ComponentNotFoundError) Error() string {
	return fmt.Sprintf("component %s not found for section %q in template family %q",
		e.Identifier, e.Section, e.Family)
}

// Code returns the error code for this error type.
func (e *ComponentNotFoundError) Code() Code {
	return ErrCodeComponentNotFound
}

// InvalidDimensionError is returned when a layout receives a length that is
// zero, negative, or not a length at all.
type InvalidDimensionError struct {
	Name  string // which dimension, e.g. "width"
	Value string // the raw value as given
	Cause error
}

// Error implements the error interface.
func (e *InvalidDimensionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid %s %q: %v", e.Name, e.Value, e.Cause)
	}
	return fmt.Sprintf("invalid %s %q: must be positive", e.Name, e.Value)
}

// Unwrap returns the underlying parse error, if any.
func (e *InvalidDimensionError) Unwrap() error {
	return e.Cause
}

// Code returns the error code for this error type.
func (e *InvalidDimensionError) Code() Code {
	return ErrCodeInvalidDimension
}

// UnimplementedPageSequenceError marks a section type that was wired without
// a page source.
type UnimplementedPageSequenceError struct {
	Section string
}

// Error implements the error interface.
func (e *UnimplementedPageSequenceError) Error() string {
	return fmt.Sprintf("section %q does not provide a page sequence", e.Section)
}

// Code returns the error code for this error type.
func (e *UnimplementedPageSequenceError) Code() Code {
	return ErrCodeUnimplementedPageSequence
}
