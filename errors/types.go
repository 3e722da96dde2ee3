package errors

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific error condition
type ErrorCode string

const (
	// Input errors
	ErrCodeParseFailed ErrorCode = "PARSE_FAILED"
	ErrCodeInputEmpty  ErrorCode = "INPUT_EMPTY"

	// Query errors
	ErrCodeQueryInvalid ErrorCode = "QUERY_INVALID"

	// Configuration errors
	ErrCodeConfigNotFound ErrorCode = "CONFIG_NOT_FOUND"
	ErrCodeConfigInvalid  ErrorCode = "CONFIG_INVALID"

	// Output errors
	ErrCodeClipboardUnavailable ErrorCode = "CLIPBOARD_UNAVAILABLE"

	// General errors
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// ExplorerError represents a structured error with context
type ExplorerError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
	Cause   error                  `json:"-"`
}

// Error implements the error interface
func (e *ExplorerError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ExplorerError) Unwrap() error {
	return e.Cause
}

// WithDetail adds a detail to the error
func (e *ExplorerError) WithDetail(key string, value interface{}) *ExplorerError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// ToJSON converts the error to JSON
func (e *ExplorerError) ToJSON() string {
	data, _ := json.MarshalIndent(e, "", "  ")
	return string(data)
}

// New creates a new ExplorerError
func New(code ErrorCode, message string) *ExplorerError {
	return &ExplorerError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a code and message
func Wrap(err error, code ErrorCode, message string) *ExplorerError {
	return &ExplorerError{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// GetCode extracts the error code from an error, or ErrCodeInternal if it is
// not an ExplorerError.
func GetCode(err error) ErrorCode {
	if e, ok := err.(*ExplorerError); ok {
		return e.Code
	}
	return ErrCodeInternal
}
