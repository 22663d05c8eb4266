package middlewares_test

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/portfolio/contactmail/internal/web"
)

type testContext struct {
	response http.ResponseWriter
	request  *http.Request
	written  bool
}

func newTestContext(w http.ResponseWriter, r *http.Request) *testContext {
	return &testContext{response: w, request: r}
}

func (c *testContext) Request() *http.Request        { return c.request }
func (c *testContext) Response() http.ResponseWriter { return c.response }
func (c *testContext) Context() context.Context      { return c.request.Context() }

func (c *testContext) Deadline() (time.Time, bool) { return c.request.Context().Deadline() }
func (c *testContext) Done() <-chan struct{}       { return c.request.Context().Done() }
func (c *testContext) Err() error                  { return c.request.Context().Err() }
func (c *testContext) Value(key any) any           { return c.request.Context().Value(key) }

func (c *testContext) Header(name string) string    { return c.request.Header.Get(name) }
func (c *testContext) SetHeader(name, value string) { c.response.Header().Set(name, value) }

func (c *testContext) JSON(code int, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.Blob(code, "application/json", b)
}

func (c *testContext) Blob(code int, contentType string, b []byte) error {
	c.response.Header().Set("Content-Type", contentType)
	c.response.WriteHeader(code)
	c.written = true
	_, err := c.response.Write(b)
	return err
}

func (c *testContext) NoContent(code int) error {
	c.response.WriteHeader(code)
	c.written = true
	return nil
}

func (c *testContext) Written() bool                     { return c.written }
func (c *testContext) LogDebug(msg string, attrs ...any) {}
func (c *testContext) LogWarn(msg string, attrs ...any)  {}
func (c *testContext) LogError(msg string, attrs ...any) {}

func (c *testContext) Set(key, value any) {
	ctx := context.WithValue(c.request.Context(), key, value)
	c.request = c.request.WithContext(ctx)
}

func (c *testContext) Get(key any) any {
	return c.request.Context().Value(key)
}

var _ web.Context = (*testContext)(nil)
