package errorwrapper

import (
	"errors"
	"fmt"
)

// Common error types used across the application
var (
	// ErrNoData indicates a query arrived before any document was loaded
	ErrNoData = errors.New("no data loaded")
	// ErrNotFound indicates a parameter is absent from the current index
	ErrNotFound = errors.New("not found")
	// ErrTooLarge indicates input exceeded the configured size ceiling
	ErrTooLarge = errors.New("input exceeds size limit")
	// ErrInvalidConfiguration indicates configuration issues
	ErrInvalidConfiguration = errors.New("invalid configuration")
)

// WrapError wraps an error with additional context information
func WrapError(err error, message string) error {
	if err == nil {
		return fmt.Errorf("%s: <nil>", message)
	}
	return fmt.Errorf("%s: %w", message, err)
}

// NewError creates a new error with a formatted message
func NewError(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}

// ValidationError represents validation errors with field-specific information
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: field '%s' with value '%v': %s", e.Field, e.Value, e.Message)
}

// Is lets callers match any validation failure against ErrInvalidConfiguration.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidConfiguration
}

// NewValidationError creates a new validation error
func NewValidationError(field string, value any, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// ParseError reports input that could not be read or decoded at all.
// The caller may retry with corrected input.
type ParseError struct {
	Source  string
	Reason  string
	Wrapped error
}

func (e *ParseError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("parse error for '%s': %s", e.Source, e.Reason)
	}
	return fmt.Sprintf("parse error: %s", e.Reason)
}

func (e *ParseError) Unwrap() error {
	return e.Wrapped
}

// NewParseError creates a new parse error
func NewParseError(source, reason string, wrapped error) *ParseError {
	return &ParseError{
		Source:  source,
		Reason:  reason,
		Wrapped: wrapped,
	}
}

// NotFoundError reports a parameter name missing from the loaded index
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("parameter '%s' not found", e.Name)
}

// Is matches ErrNotFound so callers can use errors.Is.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFoundError creates a new not-found error
func NewNotFoundError(name string) *NotFoundError {
	return &NotFoundError{Name: name}
}
