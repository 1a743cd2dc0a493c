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

	// Environment errors
	ErrPlatformUnsupported ErrorCode = "PLATFORM_UNSUPPORTED"
	ErrToolMissing         ErrorCode = "TOOL_MISSING"

	// Subprocess errors
	ErrSubprocess ErrorCode = "SUBPROCESS"
	ErrParse      ErrorCode = "PARSE"

	// Configuration errors
	ErrConfigLoad     ErrorCode = "CONFIG_LOAD"
	ErrConfigParse    ErrorCode = "CONFIG_PARSE"
	ErrPatternInvalid ErrorCode = "PATTERN_INVALID"

	// Package errors
	ErrPackageNotFound ErrorCode = "PACKAGE_NOT_FOUND"
	ErrPackageQuery    ErrorCode = "PACKAGE_QUERY"

	// FileSystem errors
	ErrFileAccess ErrorCode = "FILE_ACCESS"
	ErrFileCopy   ErrorCode = "FILE_COPY"
	ErrDirCreate  ErrorCode = "DIR_CREATE"
)

// PayloadError represents a structured error with code and details
type PayloadError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *PayloadError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *PayloadError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *PayloadError) Is(target error) bool {
	var targetErr *PayloadError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new PayloadError with the given code and message
func New(code ErrorCode, message string) *PayloadError {
	return &PayloadError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new PayloadError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *PayloadError {
	return &PayloadError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a PayloadError
func Wrap(err error, code ErrorCode, message string) *PayloadError {
	if err == nil {
		return nil
	}
	return &PayloadError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *PayloadError {
	if err == nil {
		return nil
	}
	return &PayloadError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *PayloadError) WithDetail(key string, value interface{}) *PayloadError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var perr *PayloadError
	if errors.As(err, &perr) {
		return perr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a PayloadError
func GetErrorCode(err error) ErrorCode {
	var perr *PayloadError
	if errors.As(err, &perr) {
		return perr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a PayloadError
func GetErrorDetails(err error) map[string]interface{} {
	var perr *PayloadError
	if errors.As(err, &perr) {
		return perr.Details
	}
	return nil
}
