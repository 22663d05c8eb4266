package middlewares

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedJSON indicates a JSON request body failed to parse.
	ErrMalformedJSON = errors.New("malformed JSON body")

	// ErrBodyTooLarge indicates a request body exceeded the configured limit.
	ErrBodyTooLarge = errors.New("request body too large")
)

// PanicError is returned by Recover when a handler panics.
type PanicError struct {
	Value any    // The panic value
	Stack []byte // Stack trace (nil if disabled)
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// AsPanicError extracts the PanicError from an error if present.
func AsPanicError(err error) (*PanicError, bool) {
	var pe *PanicError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

// IsBodyError returns true if err was produced by JSONBody.
func IsBodyError(err error) bool {
	return errors.Is(err, ErrMalformedJSON) || errors.Is(err, ErrBodyTooLarge)
}
