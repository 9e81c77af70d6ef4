package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds. Match with errors.Is against an *AppError.
var (
	ErrValidation   = errors.New("validation failed")
	ErrNotFound     = errors.New("not found")
	ErrPersistence  = errors.New("persistence failure")
	ErrForbidden    = errors.New("forbidden")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
)

// AppError is the single failure type returned by services.
// Message is safe to show to API callers; Err is the underlying cause and is only logged.
type AppError struct {
	Kind    error
	Message string
	Details []string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

func NewValidationError(details []string) *AppError {
	return &AppError{
		Kind:    ErrValidation,
		Message: strings.Join(details, "; "),
		Details: details,
	}
}

func NewNotFoundError(entity string, id uint) *AppError {
	return &AppError{
		Kind:    ErrNotFound,
		Message: fmt.Sprintf("%s %d not found", entity, id),
	}
}

// NewPersistenceError wraps a storage failure. action completes "an error occurred while ...".
func NewPersistenceError(action string, err error) *AppError {
	return &AppError{
		Kind:    ErrPersistence,
		Message: "an error occurred while " + action,
		Err:     err,
	}
}

func NewForbiddenError(message string) *AppError {
	if message == "" {
		message = "forbidden"
	}
	return &AppError{
		Kind:    ErrForbidden,
		Message: message,
	}
}

func NewConflictError(message string) *AppError {
	return &AppError{
		Kind:    ErrConflict,
		Message: message,
	}
}

// NewUnauthorizedError is returned for bad credentials. The message never says which part was wrong.
func NewUnauthorizedError() *AppError {
	return &AppError{
		Kind:    ErrUnauthorized,
		Message: "invalid username or password",
	}
}

// PublicMessage returns the caller-facing message for err.
func PublicMessage(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "internal server error"
}
