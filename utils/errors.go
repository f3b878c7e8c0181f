package utils

import (
	"fmt"
)

// AppError represents a custom application error with an HTTP status code
type AppError struct {
	Code    int    // HTTP status code
	Message string // User-friendly message
	Err     error  // Underlying error
}

// NewAppError creates a new AppError
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap exposes the underlying error to errors.Is / errors.As
func (e *AppError) Unwrap() error {
	return e.Err
}

// Common error constructors

// ValidationError reports malformed or missing input (400)
func ValidationError(message string, err error) *AppError {
	return NewAppError(400, message, err)
}

// UnauthenticatedError reports a missing or unknown session token (401)
func UnauthenticatedError(message string, err error) *AppError {
	return NewAppError(401, message, err)
}

// NotFoundError reports a referenced entity that does not exist (404)
func NotFoundError(message string, err error) *AppError {
	return NewAppError(404, message, err)
}

// InternalServerError reports an unexpected server-side failure (500)
func InternalServerError(message string, err error) *AppError {
	return NewAppError(500, message, err)
}
