// Package apperror defines the domain error taxonomy shared by the service
// and repository layers. HTTP handlers translate these sentinels into status
// codes at the response boundary; nothing below the handlers knows about HTTP.
package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation error")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
)

// AppError carries a sentinel plus the human-readable message returned to the
// client. Field is set for validation errors so the UI can highlight the
// offending input.
type AppError struct {
	Err     error
	Message string
	Field   string
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NotFound reports that a resource with the given id does not exist.
// HTTP handlers map this to 404.
func NotFound(resource, id string) *AppError {
	return &AppError{
		Err:     ErrNotFound,
		Message: fmt.Sprintf("%s not found with id %s", resource, id),
	}
}

// ValidationFailed reports a missing or malformed input field.
// HTTP handlers map this to 400.
func ValidationFailed(field, message string) *AppError {
	return &AppError{
		Err:     ErrValidation,
		Message: message,
		Field:   field,
	}
}

// Conflict reports a unique-constraint violation (duplicate email, etc.).
// HTTP handlers map this to 409.
func Conflict(message string) *AppError {
	return &AppError{
		Err:     ErrConflict,
		Message: message,
	}
}

// Unauthorized reports failed or missing credentials.
// HTTP handlers map this to 401.
func Unauthorized(message string) *AppError {
	return &AppError{
		Err:     ErrUnauthorized,
		Message: message,
	}
}

// Forbidden reports a credential that is present but not acceptable
// (tampered or expired token). HTTP handlers map this to 403.
func Forbidden(message string) *AppError {
	return &AppError{
		Err:     ErrForbidden,
		Message: message,
	}
}
