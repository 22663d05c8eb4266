// Package middlewares provides HTTP middleware for web applications.
//
// # CORS
//
// CORS answers preflight requests and sets Access-Control-* headers for
// allowed origins.
//
//	web.WithMiddleware(middlewares.CORS(
//	    middlewares.WithAllowMethods(http.MethodGet, http.MethodPost, http.MethodOptions),
//	    middlewares.WithAllowHeaders("Content-Type"),
//	))
//
// # Request ID
//
// RequestID assigns a unique ID to each request. It reuses an incoming
// X-Request-ID (or a configured header) and generates a UUIDv4 otherwise.
// RequestIDExtractor adds request_id to every log record:
//
//	log := logger.New(cfg, middlewares.RequestIDExtractor())
//
// # Recover
//
// Recover converts panics into *PanicError so the app's ErrorHandler can
// answer with a generic 500.
//
// # JSON body
//
// JSONBody reads application/json request bodies up to a size limit,
// rejects malformed JSON and stores the raw bytes for handlers:
//
//	body := middlewares.RawBody(c)
//
// Bodies with any other content type are left unread and RawBody returns nil.
package middlewares
