package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// File errors
	ErrFileRead   ErrorCode = "FILE_READ"
	ErrFileAccess ErrorCode = "FILE_ACCESS"

	// Resolution errors
	ErrConfigLoad        ErrorCode = "CONFIG_LOAD"
	ErrConfigParse       ErrorCode = "CONFIG_PARSE"
	ErrCyclicInclude     ErrorCode = "CYCLIC_INCLUDE"
	ErrUnsupportedFormat ErrorCode = "UNSUPPORTED_FORMAT"
)

// HyprconfError represents a structured error with code and details
type HyprconfError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *HyprconfError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *HyprconfError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *HyprconfError) Is(target error) bool {
	var targetErr *HyprconfError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new HyprconfError with the given code and message
func New(code ErrorCode, message string) *HyprconfError {
	return &HyprconfError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new HyprconfError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *HyprconfError {
	return &HyprconfError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a HyprconfError
func Wrap(err error, code ErrorCode, message string) *HyprconfError {
	if err == nil {
		return nil
	}
	return &HyprconfError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *HyprconfError {
	if err == nil {
		return nil
	}
	return &HyprconfError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *HyprconfError) WithDetail(key string, value interface{}) *HyprconfError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *HyprconfError) WithDetails(details map[string]interface{}) *HyprconfError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var confErr *HyprconfError
	if errors.As(err, &confErr) {
		return confErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a HyprconfError
func GetErrorCode(err error) ErrorCode {
	var confErr *HyprconfError
	if errors.As(err, &confErr) {
		return confErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a HyprconfError
func GetErrorDetails(err error) map[string]interface{} {
	var confErr *HyprconfError
	if errors.As(err, &confErr) {
		return confErr.Details
	}
	return nil
}
