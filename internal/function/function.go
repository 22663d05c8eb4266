// Package function runs the contact pipeline as an API Gateway proxy
// Lambda handler. One Handler is built per cold start and reused across
// invocations.
package function

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/aws/aws-lambda-go/events"

	"github.com/portfolio/contactmail/internal/contact"
	"github.com/portfolio/contactmail/pkg/logger"
)

// flushTimeout bounds the wait for buffered log events after each invocation.
const flushTimeout = 2 * time.Second

// Handler adapts API Gateway proxy events to the contact service.
type Handler struct {
	service *contact.Service
	logger  *slog.Logger
	flush   func(time.Duration) bool
}

// NewHandler creates a handler for svc.
func NewHandler(svc *contact.Service, log *slog.Logger) *Handler {
	if log == nil {
		log = logger.NewNope()
	}
	return &Handler{service: svc, logger: log, flush: logger.Flush}
}

// Handle answers one event. It never returns an error: every failure,
// including a panic, becomes a JSON response with CORS headers.
func (h *Handler) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (resp events.APIGatewayProxyResponse, err error) {
	defer h.flush(flushTimeout)
	defer func() {
		if r := recover(); r != nil {
			h.logger.ErrorContext(ctx, "function panicked",
				slog.Any("panic", r),
				slog.String("stack", string(debug.Stack())),
			)
			resp, err = toProxyResponse(contact.UnhandledResponse(r)), nil
		}
	}()

	switch req.HTTPMethod {
	case http.MethodOptions:
		return preflightResponse(), nil
	case http.MethodPost:
	default:
		return toProxyResponse(contact.MethodNotAllowedResponse()), nil
	}

	body := []byte(req.Body)
	if req.IsBase64Encoded {
		decoded, derr := base64.StdEncoding.DecodeString(req.Body)
		if derr != nil {
			h.logger.ErrorContext(ctx, "failed to decode base64 body", slog.String("error", derr.Error()))
			return toProxyResponse(contact.UnhandledResponse(fmt.Errorf("decode body: %w", derr))), nil
		}
		body = decoded
	}

	return toProxyResponse(h.service.HandleBody(ctx, body)), nil
}

func corsHeaders() map[string]string {
	return map[string]string{
		"Access-Control-Allow-Origin":  contact.AllowOrigin,
		"Access-Control-Allow-Headers": contact.AllowHeaders,
		"Access-Control-Allow-Methods": contact.AllowMethods,
	}
}

func preflightResponse() events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: http.StatusOK,
		Headers:    corsHeaders(),
		Body:       "",
	}
}

func toProxyResponse(r contact.Response) events.APIGatewayProxyResponse {
	h := contact.Headers()
	headers := make(map[string]string, len(h))
	for k := range h {
		headers[k] = h.Get(k)
	}
	return events.APIGatewayProxyResponse{
		StatusCode: r.Status,
		Headers:    headers,
		Body:       string(r.JSON()),
	}
}
