// Package apperrors defines the error taxonomy shared by services and
// handlers. Every failure is terminal for the current request; nothing in
// this system is retried automatically.
package apperrors

import "fmt"

// ValidationError means form input failed schema validation. Recovered
// locally by the caller and shown inline.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// PreconditionError means a referenced document (project, manager,
// company) does not resolve, or resolves to a state that forbids the
// operation.
type PreconditionError struct {
	Message string
}

func (e *PreconditionError) Error() string {
	return e.Message
}

// WriteConflictError means the backing store rejected an atomic
// multi-document commit. No partial state is retained; the user retries
// by re-submitting the form.
type WriteConflictError struct {
	Err error
}

func (e *WriteConflictError) Error() string {
	return fmt.Sprintf("write conflict: %v", e.Err)
}

func (e *WriteConflictError) Unwrap() error {
	return e.Err
}

// AuthError means the identity layer rejected the request. Message is a
// localized user-facing string; provider-internal codes never leak out.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}

func NewValidation(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

func NewPrecondition(format string, args ...interface{}) error {
	return &PreconditionError{Message: fmt.Sprintf(format, args...)}
}

func NewAuth(message string) error {
	return &AuthError{Message: message}
}
