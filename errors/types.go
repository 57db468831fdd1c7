package errors

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific error condition
type ErrorCode string

const (
	// Configuration errors
	ErrCodeConfigNotFound ErrorCode = "CONFIG_NOT_FOUND"
	ErrCodeConfigInvalid  ErrorCode = "CONFIG_INVALID"

	// Command execution errors
	ErrCodeCommandFailed ErrorCode = "COMMAND_FAILED"

	// Session errors
	ErrCodeNotGitRepo      ErrorCode = "NOT_GIT_REPO"
	ErrCodeProtectedBranch ErrorCode = "PROTECTED_BRANCH"
	ErrCodeSessionExists   ErrorCode = "SESSION_EXISTS"
	ErrCodeSessionNotFound ErrorCode = "SESSION_NOT_FOUND"

	// General errors
	ErrCodeInternal     ErrorCode = "INTERNAL_ERROR"
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
)

// MantraError represents a structured error with context
type MantraError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
	Cause   error                  `json:"-"`

	// Silent errors still fail the command but print nothing.
	Silent bool `json:"-"`
}

// Error implements the error interface
func (e *MantraError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *MantraError) Unwrap() error {
	return e.Cause
}

// WithDetail adds a detail to the error
func (e *MantraError) WithDetail(key string, value interface{}) *MantraError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// Quiet marks the error as silent
func (e *MantraError) Quiet() *MantraError {
	e.Silent = true
	return e
}

// DetailString returns a detail as a string, or "" if it is missing.
func (e *MantraError) DetailString(key string) string {
	v, ok := e.Details[key]
	if !ok || v == nil {
		return ""
	}
	return fmt.Sprintf("%v", v)
}

// ToJSON converts the error to JSON
func (e *MantraError) ToJSON() string {
	data, _ := json.MarshalIndent(e, "", "  ")
	return string(data)
}

// New creates a new MantraError
func New(code ErrorCode, message string) *MantraError {
	return &MantraError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a MantraError
func Wrap(err error, code ErrorCode, message string) *MantraError {
	return &MantraError{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// As finds the first MantraError in err's chain.
func As(err error) (*MantraError, bool) {
	for err != nil {
		if mErr, ok := err.(*MantraError); ok {
			return mErr, true
		}
		unwrapper, ok := err.(interface{ Unwrap() error })
		if !ok {
			return nil, false
		}
		err = unwrapper.Unwrap()
	}
	return nil, false
}

// Is checks if an error is a specific MantraError code
func Is(err error, code ErrorCode) bool {
	mErr, ok := As(err)
	if !ok {
		return false
	}
	return mErr.Code == code
}

// GetCode extracts the error code from an error
func GetCode(err error) ErrorCode {
	mErr, ok := As(err)
	if !ok {
		return ""
	}
	return mErr.Code
}

// IsSilent reports whether err carries a silent MantraError.
func IsSilent(err error) bool {
	mErr, ok := As(err)
	return ok && mErr.Silent
}
