package errors

import (
	stderrors "errors"
	"net/http"

	apperrors "speech-search/internal/app/errors"
)

// ErrorKind represents different types of API errors
type ErrorKind string

const (
	KindInput        ErrorKind = ErrorKind(apperrors.KindInput)
	KindNotFound     ErrorKind = ErrorKind(apperrors.KindNotFound)
	KindCollaborator ErrorKind = ErrorKind(apperrors.KindCollaborator)
	KindTransport    ErrorKind = ErrorKind(apperrors.KindTransport)
	KindInternal     ErrorKind = ErrorKind(apperrors.KindInternal)
)

// StatusError is the value of the status field in every error body
const StatusError = "error"

// APIError represents a structured API error response
type APIError struct {
	Status    string            `json:"status" example:"error"`
	Kind      ErrorKind         `json:"kind" example:"input"`
	Message   string            `json:"message" example:"No audio file provided"`
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty"`

	cause error
}

// Error implements the error interface
func (e *APIError) Error() string {
	return e.Message
}

// Unwrap exposes the domain error for logging
func (e *APIError) Unwrap() error {
	return e.cause
}

// HTTPStatus returns the appropriate HTTP status code for the error kind
func (e *APIError) HTTPStatus() int {
	switch e.Kind {
	case KindInput:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindCollaborator:
		return http.StatusUnprocessableEntity
	case KindTransport:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func newError(kind ErrorKind, message string) *APIError {
	return &APIError{
		Status:  StatusError,
		Kind:    kind,
		Message: message,
	}
}

// NewValidationError creates an input error with field details
func NewValidationError(message string, fields map[string]string) *APIError {
	apiErr := newError(KindInput, message)
	apiErr.Details = fields
	return apiErr
}

// NewBadRequestError creates an input error
func NewBadRequestError(message string) *APIError {
	return newError(KindInput, message)
}

// NewInternalError creates an internal server error
func NewInternalError(message string) *APIError {
	return newError(KindInternal, message)
}

// FromDomain converts any error into an APIError. Classified domain errors
// keep their kind and message; anything else becomes a generic internal error.
func FromDomain(err error) *APIError {
	if err == nil {
		return nil
	}

	var apiErr *APIError
	if stderrors.As(err, &apiErr) {
		return apiErr
	}

	converted := newError(ErrorKind(apperrors.KindOf(err)), apperrors.MessageOf(err))
	converted.cause = err
	return converted
}
