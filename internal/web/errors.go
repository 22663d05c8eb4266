package web

import (
	"errors"
	"net/http"
)

// HTTPError is an error carrying the status and message to send to the client.
type HTTPError struct {
	// Err is the underlying error, logged but never sent.
	Err error

	// Message is the client-facing error message.
	Message string

	// Code is the HTTP status code.
	Code int
}

func (e *HTTPError) Error() string {
	return e.Message
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

// HTTPErrorOption configures an HTTPError.
type HTTPErrorOption func(*HTTPError)

// NewHTTPError creates a new HTTPError with the given status code and message.
func NewHTTPError(code int, message string, opts ...HTTPErrorOption) *HTTPError {
	e := &HTTPError{Code: code, Message: message}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func WithError(err error) HTTPErrorOption {
	return func(e *HTTPError) {
		e.Err = err
	}
}

func ErrNotFound(message string, opts ...HTTPErrorOption) *HTTPError {
	return NewHTTPError(http.StatusNotFound, message, opts...)
}

func ErrInternal(message string, opts ...HTTPErrorOption) *HTTPError {
	return NewHTTPError(http.StatusInternalServerError, message, opts...)
}

// AsHTTPError extracts an HTTPError from err's chain. Returns nil if absent.
func AsHTTPError(err error) *HTTPError {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	return nil
}

// ToHTTPError returns the HTTPError in err's chain, or a 500 wrapping err
// with the given client-facing message.
func ToHTTPError(err error, message string) *HTTPError {
	if httpErr := AsHTTPError(err); httpErr != nil {
		return httpErr
	}
	return ErrInternal(message, WithError(err))
}
