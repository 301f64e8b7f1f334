package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind classifies an error so callers can branch on it without string matching
type Kind string

const (
	// KindInput covers missing or empty audio and missing search queries
	KindInput Kind = "input"
	// KindNotFound is a lookup for an id that was never issued
	KindNotFound Kind = "not_found"
	// KindCollaborator means the ASR service answered but declined to transcribe
	KindCollaborator Kind = "collaborator"
	// KindTransport covers HTTP and network failures reaching the ASR service
	KindTransport Kind = "transport"
	// KindInternal is everything else
	KindInternal Kind = "internal"
)

// Error is a classified error carrying a user-facing message and an optional cause
type Error struct {
	Kind    Kind
	Message string
	cause   error
}

// New creates a new error of the given kind
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf creates a new formatted error of the given kind
func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap wraps an error with a kind and a user-facing message.
// The cause is kept for logging and errors.Is/As but never shown to API clients.
func Wrap(err error, kind Kind, message string) error {
	if err == nil {
		return nil
	}
	return &Error{
		Kind:    kind,
		Message: message,
		cause:   err,
	}
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.cause
}

// Is matches another *Error with the same kind and message
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Message == t.Message
}

// KindOf returns the kind of the first *Error in err's chain, or KindInternal
func KindOf(err error) Kind {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// MessageOf returns the user-facing message of err.
// Errors that are not classified get a generic message.
func MessageOf(err error) string {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Message
	}
	return "Internal server error"
}

// Input returns an input error
func Input(message string) *Error {
	return New(KindInput, message)
}

// NotFound returns a not-found error for the given resource
func NotFound(message string) *Error {
	return New(KindNotFound, message)
}

// IsNotFound reports whether err is classified as not found
func IsNotFound(err error) bool {
	return err != nil && KindOf(err) == KindNotFound
}

// IsInput reports whether err is classified as an input error
func IsInput(err error) bool {
	return err != nil && KindOf(err) == KindInput
}
