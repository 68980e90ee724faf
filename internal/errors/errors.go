package errors

import (
	"fmt"
	"net/http"

	"github.com/cockroachdb/errors"
)

// Common error types that can be used across the application
var (
	ErrNotFound   = new(ErrCodeNotFound, "resource not found")
	ErrValidation = new(ErrCodeValidation, "validation error")
	ErrBadFormat  = new(ErrCodeBadFormat, "malformed billing record")
	ErrDatabase   = new(ErrCodeDatabase, "database error")
	ErrSystem     = new(ErrCodeSystemError, "system error")

	// maps errors to http status codes
	statusCodeMap = map[error]int{
		ErrNotFound:   http.StatusNotFound,
		ErrValidation: http.StatusBadRequest,
		ErrBadFormat:  http.StatusUnprocessableEntity,
		ErrDatabase:   http.StatusInternalServerError,
		ErrSystem:     http.StatusInternalServerError,
	}
)

const (
	ErrCodeNotFound    = "not_found"
	ErrCodeValidation  = "validation_error"
	ErrCodeBadFormat   = "bad_format"
	ErrCodeDatabase    = "database_error"
	ErrCodeSystemError = "system_error"
)

// InternalError represents a domain error
type InternalError struct {
	Code    string // Machine-readable error code
	Message string // Human-readable error message
	Err     error  // Underlying error
}

func (e *InternalError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Err.Error())
}

func (e *InternalError) Unwrap() error {
	return e.Err
}

// Is implements error matching for wrapped errors
func (e *InternalError) Is(target error) bool {
	if target == nil {
		return false
	}

	t, ok := target.(*InternalError)
	if !ok {
		return errors.Is(e.Err, target)
	}

	return e.Code == t.Code
}

// new creates a new InternalError sentinel
func new(code string, message string) *InternalError {
	return &InternalError{
		Code:    code,
		Message: message,
	}
}

func As(err error, target any) bool {
	return errors.As(err, target)
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidation checks if an error is a validation error
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsBadFormat checks if an error is a malformed record error
func IsBadFormat(err error) bool {
	return errors.Is(err, ErrBadFormat)
}

func HTTPStatusFromErr(err error) int {
	for e, status := range statusCodeMap {
		if errors.Is(err, e) {
			return status
		}
	}
	return http.StatusInternalServerError
}
