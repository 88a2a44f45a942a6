package services

import (
	"errors"
	"fmt"
)

// ErrorKind classifies workflow failures so controllers can map them to
// status codes and user-renderable messages without string matching.
type ErrorKind string

const (
	KindUnauthorized       ErrorKind = "unauthorized"
	KindInvalidState       ErrorKind = "invalid_state"
	KindLimitExceeded      ErrorKind = "limit_exceeded"
	KindAlreadyInitialized ErrorKind = "already_initialized"
	KindGenerationFailed   ErrorKind = "generation_failed"
	KindNotFound           ErrorKind = "not_found"
	KindPersistenceFailure ErrorKind = "persistence_failure"
)

// Error is a typed workflow error. Cause, when set, carries the underlying
// storage or database failure for logging; Message is safe to show users.
type Error struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

func newError(kind ErrorKind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func wrapError(kind ErrorKind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

// KindOf extracts the ErrorKind from err, or KindPersistenceFailure when err
// is not a workflow error.
func KindOf(err error) ErrorKind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindPersistenceFailure
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind ErrorKind) bool {
	return KindOf(err) == kind
}
