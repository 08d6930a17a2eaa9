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
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Configuration loading errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Plot configuration errors. These are raised while a plot is being
	// configured, never while it renders.
	ErrConfigValid      ErrorCode = "CONFIG_INVALID"
	ErrUnknownOption    ErrorCode = "UNKNOWN_OPTION"
	ErrOptionType       ErrorCode = "OPTION_TYPE"
	ErrUnknownStyle     ErrorCode = "UNKNOWN_STYLE"
	ErrUnknownTheme     ErrorCode = "UNKNOWN_THEME"
	ErrUnknownMode      ErrorCode = "UNKNOWN_MODE"
	ErrUnknownShape     ErrorCode = "UNKNOWN_SHAPE"
	ErrUnknownColor     ErrorCode = "UNKNOWN_COLOR"
	ErrThresholdInvalid ErrorCode = "THRESHOLD_INVALID"
	ErrUnknownFunction  ErrorCode = "UNKNOWN_FUNCTION"
	ErrUnknownPreset    ErrorCode = "UNKNOWN_PRESET"

	// Input errors
	ErrInputParse ErrorCode = "INPUT_PARSE"
)

var configCodes = map[ErrorCode]bool{
	ErrConfigValid:      true,
	ErrUnknownOption:    true,
	ErrOptionType:       true,
	ErrUnknownStyle:     true,
	ErrUnknownTheme:     true,
	ErrUnknownMode:      true,
	ErrUnknownShape:     true,
	ErrUnknownColor:     true,
	ErrThresholdInvalid: true,
	ErrUnknownFunction:  true,
	ErrUnknownPreset:    true,
}

// TextplotError represents a structured error with code and details
type TextplotError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *TextplotError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *TextplotError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *TextplotError) Is(target error) bool {
	var targetErr *TextplotError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new TextplotError with the given code and message
func New(code ErrorCode, message string) *TextplotError {
	return &TextplotError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new TextplotError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *TextplotError {
	return &TextplotError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a TextplotError
func Wrap(err error, code ErrorCode, message string) *TextplotError {
	if err == nil {
		return nil
	}
	return &TextplotError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *TextplotError {
	if err == nil {
		return nil
	}
	return &TextplotError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *TextplotError) WithDetail(key string, value interface{}) *TextplotError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *TextplotError) WithDetails(details map[string]interface{}) *TextplotError {
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
	var tpErr *TextplotError
	if errors.As(err, &tpErr) {
		return tpErr.Code == code
	}
	return false
}

// IsConfigError reports whether err was raised while configuring a plot.
// The outermost TextplotError in the chain decides.
func IsConfigError(err error) bool {
	var tpErr *TextplotError
	if errors.As(err, &tpErr) {
		return configCodes[tpErr.Code]
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a TextplotError
func GetErrorCode(err error) ErrorCode {
	var tpErr *TextplotError
	if errors.As(err, &tpErr) {
		return tpErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a TextplotError
func GetErrorDetails(err error) map[string]interface{} {
	var tpErr *TextplotError
	if errors.As(err, &tpErr) {
		return tpErr.Details
	}
	return nil
}
