// Package logger builds the structured slog loggers used by both entry points.
//
// Loggers write JSON (or text) to stdout and can additionally ship warnings
// and errors to Sentry when a DSN is configured. Context extractors inject
// request-scoped attributes, such as the request ID, into every record:
//
//	log := logger.NewWithSentry(cfg.Log, middlewares.RequestIDExtractor())
//	log.InfoContext(ctx, "email sent", slog.String("id", id))
//	// {"level":"INFO","msg":"email sent","id":"...","request_id":"..."}
//
// Without a DSN the Sentry variant behaves exactly like New, so the same
// wiring is used in development and production. Serverless handlers call
// Flush before returning so buffered events are not lost when the runtime
// freezes the process.
package logger
