package contact

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Submission is a validated contact-form message. It lives for one request.
type Submission struct {
	Name    string
	Email   string
	Message string
}

// RawSubmission is the decoded request body before validation.
// A nil field means the key was absent, null or not a string.
type RawSubmission struct {
	Name    *string
	Email   *string
	Message *string
}

// DecodeSubmission parses a JSON request body. Only syntactically invalid
// JSON is an error. An empty body, a JSON value that is not an object, and
// fields that are not strings all decode as absent so that they fail
// validation rather than parsing.
func DecodeSubmission(body []byte) (RawSubmission, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return RawSubmission{}, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return RawSubmission{}, nil
		}
		return RawSubmission{}, fmt.Errorf("decode submission: %w", err)
	}

	return RawSubmission{
		Name:    stringField(fields, "name"),
		Email:   stringField(fields, "email"),
		Message: stringField(fields, "message"),
	}, nil
}

// stringField returns the named field when it holds a JSON string.
func stringField(fields map[string]json.RawMessage, key string) *string {
	v, ok := fields[key]
	if !ok {
		return nil
	}
	var s *string
	if err := json.Unmarshal(v, &s); err != nil {
		return nil
	}
	return s
}
