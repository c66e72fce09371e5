// ABOUTME: Error types and handling for the Bingefeed library
// ABOUTME: Structured configuration errors plus helpers over controller and catalog failures

package bingefeed

import (
	"errors"
	"fmt"

	apperrors "bingefeed-api/core/errors"
	"bingefeed-api/core/feed"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// ErrorTypeValidation indicates invalid call arguments
	ErrorTypeValidation ErrorType = "validation"

	// ErrorTypeConfiguration indicates an unusable client configuration
	ErrorTypeConfiguration ErrorType = "configuration"
)

// Error represents a structured error from the library
type Error struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError creates a new error with the given type and message
func NewError(errType ErrorType, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Context: make(map[string]interface{}),
	}
}

// WithCause adds a cause to the error
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

var (
	// ErrBusy is returned when a load for the category is already running
	ErrBusy = feed.ErrBusy

	// ErrExhausted is returned by LoadMore once the catalog has no more pages
	ErrExhausted = feed.ErrExhausted
)

// IsConfigurationError checks if an error is a configuration error
func IsConfigurationError(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Type == ErrorTypeConfiguration
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Type == ErrorTypeValidation
	}
	return apperrors.IsValidation(err)
}

// IsNotFound reports whether the catalog has no title with the requested id
func IsNotFound(err error) bool {
	return apperrors.IsNotFound(err)
}

// IsRateLimited reports whether the catalog rejected the request with 429
func IsRateLimited(err error) bool {
	return apperrors.IsRateLimited(err)
}

// ErrorKind returns the catalog failure kind name, such as "server_failure"
func ErrorKind(err error) string {
	return apperrors.KindOf(err).String()
}
