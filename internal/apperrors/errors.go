// Package apperrors defines the error taxonomy shared by services and handlers.
package apperrors

import "errors"

// Error kinds. Handlers map these to HTTP status codes.
var (
	ErrValidation      = errors.New("validation failed")
	ErrConflict        = errors.New("conflict")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrNotFound        = errors.New("resource not found")
)

// Error is an error of a known kind with a message safe to show to users.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// Validation returns an ErrValidation with message.
func Validation(message string) error {
	return &Error{Kind: ErrValidation, Message: message}
}

// Conflict returns an ErrConflict with message.
func Conflict(message string) error {
	return &Error{Kind: ErrConflict, Message: message}
}

// Unauthenticated returns an ErrUnauthenticated with message.
func Unauthenticated(message string) error {
	return &Error{Kind: ErrUnauthenticated, Message: message}
}

// NotFound returns an ErrNotFound with message.
func NotFound(message string) error {
	return &Error{Kind: ErrNotFound, Message: message}
}

// Message extracts the user-facing message of err, or fallback when err
// does not carry one.
func Message(err error, fallback string) string {
	var appErr *Error
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	return fallback
}
