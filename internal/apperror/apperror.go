// Package apperror defines the application's error taxonomy.
//
// Services return these typed errors; the HTTP layer maps each kind to a
// status code in exactly one place (handler.writeError). The service layer
// never sees a status code, and the handler layer never inspects error text.
package apperror

import (
	"errors"
	"fmt"
)

// Sentinel errors — one per failure class the API distinguishes.
//
// errors.Is() walks the error chain (via Unwrap) looking for these, so a
// service can wrap an AppError with extra context and the handler still
// classifies it correctly.
var (
	ErrValidation   = errors.New("validation failed")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
)

// AppError carries a sentinel (for classification) plus a human-readable
// message (for the response body).
type AppError struct {
	Err     error  // sentinel identifying the failure class
	Message string // human-readable error message
	Field   string // optional: field causing the error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// ValidationFailed reports a missing or malformed required field.
// HTTP handlers map this to 400 Bad Request.
func ValidationFailed(field, message string) *AppError {
	return &AppError{
		Err:     ErrValidation,
		Message: message,
		Field:   field,
	}
}

// NotFound reports that a referenced resource does not exist.
// HTTP handlers map this to 404 Not Found.
func NotFound(message string) *AppError {
	return &AppError{
		Err:     ErrNotFound,
		Message: message,
	}
}

// NotFoundID is NotFound for integer-keyed resources.
func NotFoundID(resource string, id int64) *AppError {
	return &AppError{
		Err:     ErrNotFound,
		Message: fmt.Sprintf("%s not found with id %d", resource, id),
	}
}

// Conflict reports a uniqueness violation (e.g. duplicate email).
// HTTP handlers map this to 409 Conflict.
func Conflict(message string) *AppError {
	return &AppError{
		Err:     ErrConflict,
		Message: message,
	}
}

// Unauthorized reports a credential mismatch.
// HTTP handlers map this to 401 Unauthorized.
func Unauthorized(message string) *AppError {
	return &AppError{
		Err:     ErrUnauthorized,
		Message: message,
	}
}
