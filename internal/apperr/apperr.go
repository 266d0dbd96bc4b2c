// Package apperr is the error taxonomy handlers return to the HTTP boundary.
package apperr

import (
	"errors"
	"net/http"
)

// Kind classifies an error by how it is reported to the client.
type Kind int

const (
	Server Kind = iota
	Validation
	Conflict
	Auth
	NotFound
)

// Status maps a kind to its HTTP status code.
func (k Kind) Status() int {
	switch k {
	case Validation:
		return http.StatusBadRequest
	case Conflict:
		return http.StatusConflict
	case Auth:
		return http.StatusUnauthorized
	case NotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func (k Kind) String() string {
	switch k {
	case Validation:
		return "validation"
	case Conflict:
		return "conflict"
	case Auth:
		return "auth"
	case NotFound:
		return "not_found"
	default:
		return "server"
	}
}

// Error carries a client-safe message and, for server errors, the
// underlying cause that must only be logged.
type Error struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

func NewValidation(message string) *Error {
	return &Error{Kind: Validation, Message: message}
}

func NewConflict(message string) *Error {
	return &Error{Kind: Conflict, Message: message}
}

func NewAuth(message string) *Error {
	return &Error{Kind: Auth, Message: message}
}

func NewNotFound(message string) *Error {
	return &Error{Kind: NotFound, Message: message}
}

// NewServer wraps an unexpected failure. message is what the client sees.
func NewServer(message string, cause error) *Error {
	return &Error{Kind: Server, Message: message, cause: cause}
}

// As extracts an *Error from err. Anything that is not one is treated as
// an unclassified server error with a generic message.
func As(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return NewServer("Server error", err)
}
