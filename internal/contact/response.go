package contact

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Client-facing messages.
const (
	MsgMissingFields        = "Missing required fields"
	MsgInvalidEmail         = "Invalid email format"
	MsgServiceNotConfigured = "Email service not configured"
	MsgSendFailed           = "Failed to send email"
	MsgSent                 = "Email sent successfully!"
	MsgMethodNotAllowed     = "Method not allowed"
	MsgNotFound             = "Endpoint not found"
	MsgInternal             = "Internal server error"
)

// CORS values attached to every response.
const (
	AllowOrigin  = "*"
	AllowHeaders = "Content-Type"
	AllowMethods = "POST, OPTIONS"
)

// ErrorBody is the JSON body of every failure response.
type ErrorBody struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// SuccessBody is the JSON body of a delivered submission.
type SuccessBody struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      string `json:"id,omitempty"`
}

// Response is a transport-neutral HTTP answer.
type Response struct {
	Status int
	Body   any
}

// JSON encodes the body. Bodies are plain structs so encoding cannot fail in
// practice; a failure falls back to a fixed internal error body.
func (r Response) JSON() []byte {
	b, err := json.Marshal(r.Body)
	if err != nil {
		return []byte(`{"error":"` + MsgInternal + `"}`)
	}
	return b
}

// Headers returns the content type and CORS headers for a response.
func Headers() http.Header {
	h := make(http.Header, 4)
	h.Set("Content-Type", "application/json")
	h.Set("Access-Control-Allow-Origin", AllowOrigin)
	h.Set("Access-Control-Allow-Headers", AllowHeaders)
	h.Set("Access-Control-Allow-Methods", AllowMethods)
	return h
}

// MapResponse turns a validation error or a delivery outcome into a response.
// A non-nil validationErr takes precedence and outcome is ignored.
func MapResponse(validationErr error, outcome DeliveryOutcome) Response {
	if validationErr != nil {
		msg := MsgMissingFields
		if errors.Is(validationErr, ErrInvalidEmailFormat) {
			msg = MsgInvalidEmail
		}
		return Response{Status: http.StatusBadRequest, Body: ErrorBody{Error: msg}}
	}

	switch {
	case outcome.Success:
		return Response{
			Status: http.StatusOK,
			Body:   SuccessBody{Success: true, Message: MsgSent, ID: outcome.MessageID},
		}
	case outcome.ErrorKind == KindServiceNotConfigured:
		return Response{Status: http.StatusInternalServerError, Body: ErrorBody{Error: MsgServiceNotConfigured}}
	default:
		return Response{
			Status: http.StatusInternalServerError,
			Body:   ErrorBody{Error: MsgSendFailed, Details: outcome.ErrorDetail},
		}
	}
}

// UnhandledResponse describes a failure outside the normal pipeline,
// such as a malformed body or a recovered panic.
func UnhandledResponse(cause any) Response {
	return Response{
		Status: http.StatusInternalServerError,
		Body:   ErrorBody{Error: MsgSendFailed, Details: fmt.Sprint(cause)},
	}
}

// MethodNotAllowedResponse answers non-POST requests to the function.
func MethodNotAllowedResponse() Response {
	return Response{Status: http.StatusMethodNotAllowed, Body: ErrorBody{Error: MsgMethodNotAllowed}}
}
