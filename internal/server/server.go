// Package server runs the contact pipeline as a long-lived HTTP server.
package server

import (
	"log/slog"
	"net/http"

	"github.com/portfolio/contactmail/internal/contact"
	"github.com/portfolio/contactmail/internal/metrics"
	"github.com/portfolio/contactmail/internal/web"
	"github.com/portfolio/contactmail/middlewares"
	"github.com/portfolio/contactmail/pkg/logger"
)

// LivenessMessage is returned by GET /health.
const LivenessMessage = "Server is running"

// New builds the HTTP application. m may be nil to disable /metrics.
//
// Middleware order: CORS, RequestID, metrics, Recover, JSONBody.
func New(svc *contact.Service, m *metrics.Metrics, log *slog.Logger) *web.App {
	if log == nil {
		log = logger.NewNope()
	}

	mw := []web.Middleware{
		middlewares.CORS(),
		middlewares.RequestID(),
	}
	handlers := []web.Handler{NewContactHandler(svc)}
	if m != nil {
		mw = append(mw, m.Middleware())
		handlers = append(handlers, metricsHandler{handler: m.Handler()})
	}
	mw = append(mw,
		middlewares.Recover(),
		middlewares.JSONBody(),
	)

	return web.New(
		web.WithLogger(log),
		web.WithMiddleware(mw...),
		web.WithHandlers(handlers...),
		web.WithErrorHandler(errorHandler),
		web.WithNotFoundHandler(notFound),
		web.WithMethodNotAllowedHandler(notFound),
		web.WithHealthChecks(
			web.WithLivenessPath("/health"),
			web.WithLivenessMessage(LivenessMessage),
			web.WithReadinessCheck("email_provider", svc.Healthcheck()),
		),
	)
}

func notFound(c web.Context) error {
	return web.ErrNotFound(contact.MsgNotFound)
}

// errorHandler renders err as {"error": message}. Errors that are not
// *web.HTTPError become a generic 500 and their details never reach the client.
func errorHandler(c web.Context, err error) error {
	httpErr := web.ToHTTPError(err, contact.MsgInternal)

	attrs := []any{
		slog.Int("status", httpErr.Code),
		slog.String("method", c.Request().Method),
		slog.String("path", c.Request().URL.Path),
	}
	if httpErr.Err != nil {
		attrs = append(attrs, slog.String("error", httpErr.Err.Error()))
	}
	if pe, ok := middlewares.AsPanicError(err); ok && len(pe.Stack) > 0 {
		attrs = append(attrs, slog.String("stack", string(pe.Stack)))
	}

	switch {
	case httpErr.Code < http.StatusInternalServerError:
		c.LogDebug("request rejected", attrs...)
	case middlewares.IsBodyError(err):
		c.LogWarn("rejected request body", attrs...)
	default:
		c.LogError("unhandled request error", attrs...)
	}

	return c.JSON(httpErr.Code, contact.ErrorBody{Error: httpErr.Message})
}
