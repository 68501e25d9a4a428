// Package errors provides custom error types for the brickline system.
// The codec reports malformed wanted lists through DecodeError and
// EncodeError, and the CLI shell reports file and configuration problems
// through IOError and ConfigError. All types support errors.Is against the
// sentinels below so callers can branch without type assertions.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Sentinel errors for the brickline system
var (
	// ErrDecode matches every DecodeError
	ErrDecode = errors.New("decode failed")

	// ErrEncode matches every EncodeError
	ErrEncode = errors.New("encode failed")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownCode indicates an enumeration code outside its code table
	ErrUnknownCode = errors.New("unknown code")

	// ErrMissingField indicates that a required wire element was absent
	ErrMissingField = errors.New("missing required field")

	// ErrDuplicateField indicates that a wire element appeared twice in one item
	ErrDuplicateField = errors.New("duplicate field")

	// ErrMalformed indicates text that could not be parsed at all
	ErrMalformed = errors.New("malformed")

	// ErrOutOfRange indicates a numeric value outside its representable range
	ErrOutOfRange = errors.New("out of range")

	// ErrNotFound indicates that a requested file or resource was not found
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates that a destination already exists
	ErrAlreadyExists = errors.New("already exists")

	// ErrCanceled indicates that an operation was canceled
	ErrCanceled = errors.New("operation canceled")
)

// NoIndex marks a DecodeError or EncodeError that is not tied to one item.
const NoIndex = -1

// DecodeError reports wire text that could not be turned into a wanted list.
// Field is the wire element name (ITEMTYPE, COLOR, ...) and Value the raw
// text found there. Index is the 0-based position of the offending ITEM.
type DecodeError struct {
	Field   string
	Value   string
	Index   int
	Message string
	Err     error
}

// Error implements the error interface
func (e *DecodeError) Error() string {
	switch {
	case e.Field != "" && e.Index >= 0:
		return fmt.Sprintf("decode error in ITEM %d, field %s (value %q): %s", e.Index, e.Field, e.Value, e.Message)
	case e.Field != "":
		return fmt.Sprintf("decode error in field %s (value %q): %s", e.Field, e.Value, e.Message)
	case e.Index >= 0:
		return fmt.Sprintf("decode error in ITEM %d: %s", e.Index, e.Message)
	default:
		return fmt.Sprintf("decode error: %s", e.Message)
	}
}

// Unwrap implements errors.Unwrap
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode || target == ErrInvalidInput
}

// NewDecodeError creates a new DecodeError
func NewDecodeError(field, value string, index int, message string, err error) *DecodeError {
	return &DecodeError{
		Field:   field,
		Value:   value,
		Index:   index,
		Message: message,
		Err:     err,
	}
}

// EncodeError reports a wanted list that could not be written as wire text.
type EncodeError struct {
	Field   string
	Value   string
	Index   int
	Message string
	Err     error
}

// Error implements the error interface
func (e *EncodeError) Error() string {
	switch {
	case e.Field != "" && e.Index >= 0:
		return fmt.Sprintf("encode error in item %d, field %s (value %q): %s", e.Index, e.Field, e.Value, e.Message)
	case e.Field != "":
		return fmt.Sprintf("encode error in field %s (value %q): %s", e.Field, e.Value, e.Message)
	default:
		return fmt.Sprintf("encode error: %s", e.Message)
	}
}

// Unwrap implements errors.Unwrap
func (e *EncodeError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *EncodeError) Is(target error) bool {
	return target == ErrEncode
}

// NewEncodeError creates a new EncodeError
func NewEncodeError(field, value string, index int, message string, err error) *EncodeError {
	return &EncodeError{
		Field:   field,
		Value:   value,
		Index:   index,
		Message: message,
		Err:     err,
	}
}

// ValidationError represents a validation failure
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value any, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// ConfigError represents a configuration error
type ConfigError struct {
	Component string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError
func NewConfigError(component, message string, err error) *ConfigError {
	return &ConfigError{
		Component: component,
		Message:   message,
		Err:       err,
	}
}

// IOError represents an error during I/O operations
type IOError struct {
	Operation string // "read", "write", "stat", "prompt"
	Path      string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("IO error during %s of %s: %s", e.Operation, e.Path, e.Message)
	}
	return fmt.Sprintf("IO error during %s: %s", e.Operation, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new IOError
func NewIOError(operation, path string, err error) *IOError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &IOError{
		Operation: operation,
		Path:      path,
		Message:   message,
		Err:       err,
	}
}

// SideError tags an error with the input list it came from
// ("primary" or "secondary") during a merge.
type SideError struct {
	Side string
	Err  error
}

// Error implements the error interface
func (e *SideError) Error() string {
	return fmt.Sprintf("%s list: %v", e.Side, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *SideError) Unwrap() error {
	return e.Err
}

// Helper functions for error checking

// IsDecodeError checks if an error is a decode error
func IsDecodeError(err error) bool {
	return errors.Is(err, ErrDecode)
}

// IsEncodeError checks if an error is an encode error
func IsEncodeError(err error) bool {
	return errors.Is(err, ErrEncode)
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAlreadyExists checks if an error is an already exists error
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsCanceled checks if an error is a cancellation error
func IsCanceled(err error) bool {
	return errors.Is(err, ErrCanceled)
}

// As is errors.As, re-exported so callers importing this package under the
// name "errors" keep access to it.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Is is errors.Is, re-exported for the same reason as As.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewIOError(operation, path, err)
}

// WrapSide wraps an error with the merge side it belongs to
func WrapSide(side string, err error) error {
	if err == nil {
		return nil
	}
	return &SideError{Side: side, Err: err}
}
