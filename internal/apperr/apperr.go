// Package apperr defines the typed application error used to carry an
// HTTP status code from validators and services to the API boundary.
//
// Expected failures (validation, not-found) are raised as *Error and
// translated by the handlers into the standard JSON error envelope.
// Anything else is treated as unexpected and becomes a generic 500.
package apperr

import (
	"errors"
	"net/http"
)

// Error is an application error with a client-safe message and the HTTP
// status code the API should respond with.
type Error struct {
	// Message is a human-readable description safe to return to the client.
	Message string

	// Status is the HTTP response status code. Defaults to 500 when
	// constructed with a zero status.
	Status int
}

// Error implements the error interface. It returns the client-safe message.
func (e *Error) Error() string {
	return e.Message
}

// New creates an Error with the given message and HTTP status.
// A zero status defaults to 500.
func New(message string, status int) *Error {
	if status == 0 {
		status = http.StatusInternalServerError
	}
	return &Error{
		Message: message,
		Status:  status,
	}
}

// BadRequest creates a 400 Error.
func BadRequest(message string) *Error {
	return New(message, http.StatusBadRequest)
}

// NotFound creates a 404 Error.
func NotFound(message string) *Error {
	return New(message, http.StatusNotFound)
}

// As extracts an *Error from err's chain.
// It returns nil and false if err does not carry one.
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
