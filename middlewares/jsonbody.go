package middlewares

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/portfolio/contactmail/internal/web"
)

// DefaultJSONBodyLimit is the maximum accepted JSON body size.
const DefaultJSONBodyLimit int64 = 100 << 10

type rawBodyKey struct{}

// JSONBodyOption configures the JSONBody middleware.
type JSONBodyOption func(*jsonBodyConfig)

type jsonBodyConfig struct {
	limit int64
}

// WithJSONBodyLimit sets the maximum body size in bytes.
func WithJSONBodyLimit(n int64) JSONBodyOption {
	return func(cfg *jsonBodyConfig) {
		if n > 0 {
			cfg.limit = n
		}
	}
}

// JSONBody returns middleware that reads application/json bodies.
//
// The body must be empty or a JSON object or array; anything else returns an
// error wrapping ErrMalformedJSON. Bodies over the limit return an error
// wrapping ErrBodyTooLarge. Accepted bytes are available through RawBody and
// the request body is replaced so it can be read again.
func JSONBody(opts ...JSONBodyOption) web.Middleware {
	cfg := &jsonBodyConfig{limit: DefaultJSONBodyLimit}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next web.HandlerFunc) web.HandlerFunc {
		return func(c web.Context) error {
			req := c.Request()
			if req.Body == nil || req.Body == http.NoBody || !isJSON(req.Header.Get("Content-Type")) {
				return next(c)
			}

			body, err := io.ReadAll(http.MaxBytesReader(c.Response(), req.Body, cfg.limit))
			if err != nil {
				var maxErr *http.MaxBytesError
				if errors.As(err, &maxErr) {
					return fmt.Errorf("%w: limit is %d bytes", ErrBodyTooLarge, maxErr.Limit)
				}
				return fmt.Errorf("read body: %w", err)
			}

			if trimmed := bytes.TrimSpace(body); len(trimmed) > 0 {
				if trimmed[0] != '{' && trimmed[0] != '[' {
					return fmt.Errorf("%w: expected object or array", ErrMalformedJSON)
				}
				if !json.Valid(trimmed) {
					return ErrMalformedJSON
				}
			}

			req.Body = io.NopCloser(bytes.NewReader(body))
			c.Set(rawBodyKey{}, body)
			return next(c)
		}
	}
}

// RawBody returns the JSON body read by JSONBody, or nil when the request
// had no JSON body.
func RawBody(c web.Context) []byte {
	return web.ContextValue[[]byte](c, rawBodyKey{})
}

func isJSON(contentType string) bool {
	if contentType == "" {
		return false
	}
	mt, _, err := mime.ParseMediaType(contentType)
	return err == nil && mt == "application/json"
}
