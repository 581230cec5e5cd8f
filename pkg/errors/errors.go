package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCode represents a unique error code
type ErrorCode int

// Common error codes
const (
	ErrUnknownIntent ErrorCode = iota + 1000
	ErrMissingField
	ErrNotFound
	ErrAlreadyExists
	ErrInvalidEnum
	ErrUnavailable
	ErrInternal
)

// AppError represents an application error
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// HTTPStatus maps an error code to the HTTP status the handlers respond with.
func (e *AppError) HTTPStatus() int {
	switch e.Code {
	case ErrNotFound:
		return http.StatusNotFound
	case ErrAlreadyExists:
		return http.StatusConflict
	case ErrUnknownIntent, ErrMissingField, ErrInvalidEnum:
		return http.StatusBadRequest
	case ErrUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Error constructors
func UnknownIntent() *AppError {
	return &AppError{
		Code:    ErrUnknownIntent,
		Message: "Unknown request type",
	}
}

func MissingField(field string) *AppError {
	return &AppError{
		Code:    ErrMissingField,
		Message: fmt.Sprintf("%s is required", field),
	}
}

func NotFound(resource string) *AppError {
	return &AppError{
		Code:    ErrNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

func AlreadyExists(resource string) *AppError {
	return &AppError{
		Code:    ErrAlreadyExists,
		Message: fmt.Sprintf("%s already exists", resource),
	}
}

func InvalidEnum(message string) *AppError {
	return &AppError{
		Code:    ErrInvalidEnum,
		Message: message,
	}
}

func Unavailable(message string) *AppError {
	return &AppError{
		Code:    ErrUnavailable,
		Message: message,
	}
}

func Internal(err error) *AppError {
	return &AppError{
		Code:    ErrInternal,
		Message: "internal error",
		Err:     err,
	}
}

// CodeOf extracts the error code from err, or ErrInternal for plain errors.
func CodeOf(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ErrInternal
}

// AsAppError converts any error into an *AppError, wrapping plain errors
// as internal ones so callers always get a coded error.
func AsAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal(err)
}
