package server_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portfolio/contactmail/internal/contact"
	"github.com/portfolio/contactmail/internal/metrics"
	"github.com/portfolio/contactmail/internal/server"
	"github.com/portfolio/contactmail/pkg/mailer"
)

type stubSender struct {
	mu    sync.Mutex
	sent  []*mailer.Email
	id    string
	err   error
	calls int
}

func (s *stubSender) Send(_ context.Context, e *mailer.Email) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	s.sent = append(s.sent, e)
	return s.id, s.err
}

func newApp(t *testing.T, sender *stubSender, apiKey string) (http.Handler, *metrics.Metrics) {
	t.Helper()

	composer, err := contact.NewComposer(contact.HTMLEscape)
	require.NoError(t, err)

	m := metrics.New(prometheus.NewRegistry())
	var s mailer.Sender
	if sender != nil {
		s = sender
	}
	svc := contact.NewService(composer,
		contact.NewDeliveryClient(s, contact.NewProviderConfig(apiKey, 0), nil),
		contact.WithRecorder(m),
	)
	return server.New(svc, m, nil), m
}

func request(t *testing.T, h http.Handler, method, path, contentType, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Origin", "https://portfolio.example")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestServer_SendContactEmail(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		sender := &stubSender{id: "provider-id"}
		app, _ := newApp(t, sender, "re_test")

		rec := request(t, app, http.MethodPost, server.ContactPath, "application/json",
			`{"name":"Ada","email":"ada@example.com","message":"Hi\nthere"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"success":true,"message":"Email sent successfully!","id":"provider-id"}`, rec.Body.String())
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

		require.Len(t, sender.sent, 1)
		assert.Contains(t, sender.sent[0].HTML, "Hi<br>there")
		assert.Equal(t, "ada@example.com", sender.sent[0].ReplyTo)
	})

	t.Run("missing fields", func(t *testing.T) {
		t.Parallel()

		sender := &stubSender{}
		app, _ := newApp(t, sender, "re_test")

		rec := request(t, app, http.MethodPost, server.ContactPath, "application/json", `{"name":"Ada"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"Missing required fields"}`, rec.Body.String())
		assert.Zero(t, sender.calls)
	})

	t.Run("array body", func(t *testing.T) {
		t.Parallel()

		sender := &stubSender{}
		app, _ := newApp(t, sender, "re_test")

		rec := request(t, app, http.MethodPost, server.ContactPath, "application/json", `[]`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"Missing required fields"}`, rec.Body.String())
		assert.Zero(t, sender.calls)
	})

	t.Run("invalid email", func(t *testing.T) {
		t.Parallel()

		app, _ := newApp(t, &stubSender{}, "re_test")
		rec := request(t, app, http.MethodPost, server.ContactPath, "application/json",
			`{"name":"Ada","email":"ada","message":"Hi"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"Invalid email format"}`, rec.Body.String())
	})

	t.Run("non-JSON content type", func(t *testing.T) {
		t.Parallel()

		app, _ := newApp(t, &stubSender{}, "re_test")
		rec := request(t, app, http.MethodPost, server.ContactPath, "text/plain",
			`{"name":"Ada","email":"ada@example.com","message":"Hi"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"Missing required fields"}`, rec.Body.String())
	})

	t.Run("malformed JSON", func(t *testing.T) {
		t.Parallel()

		app, _ := newApp(t, &stubSender{}, "re_test")
		rec := request(t, app, http.MethodPost, server.ContactPath, "application/json", `{"name":`)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"error":"Internal server error"}`, rec.Body.String())
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("body too large", func(t *testing.T) {
		t.Parallel()

		app, _ := newApp(t, &stubSender{}, "re_test")
		body := `{"name":"Ada","email":"ada@example.com","message":"` + strings.Repeat("x", 200<<10) + `"}`
		rec := request(t, app, http.MethodPost, server.ContactPath, "application/json", body)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"error":"Internal server error"}`, rec.Body.String())
	})

	t.Run("not configured", func(t *testing.T) {
		t.Parallel()

		app, _ := newApp(t, nil, "")
		rec := request(t, app, http.MethodPost, server.ContactPath, "application/json",
			`{"name":"Ada","email":"ada@example.com","message":"Hi"}`)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"error":"Email service not configured"}`, rec.Body.String())
	})

	t.Run("provider rejection", func(t *testing.T) {
		t.Parallel()

		sender := &stubSender{err: &mailer.ProviderError{
			Err:      errors.New("422"),
			Provider: "resend",
			Detail:   "The gmail.com domain is not verified",
		}}
		app, _ := newApp(t, sender, "re_test")

		rec := request(t, app, http.MethodPost, server.ContactPath, "application/json",
			`{"name":"Ada","email":"ada@example.com","message":"Hi"}`)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"error":"Failed to send email","details":"The gmail.com domain is not verified"}`, rec.Body.String())
	})
}

func TestServer_Routes(t *testing.T) {
	t.Parallel()

	app, _ := newApp(t, &stubSender{id: "x"}, "re_test")

	t.Run("wrong method on contact path", func(t *testing.T) {
		t.Parallel()
		rec := request(t, app, http.MethodGet, server.ContactPath, "", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"Endpoint not found"}`, rec.Body.String())
	})

	t.Run("unknown route", func(t *testing.T) {
		t.Parallel()
		rec := request(t, app, http.MethodGet, "/nope", "", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"Endpoint not found"}`, rec.Body.String())
	})

	t.Run("preflight", func(t *testing.T) {
		t.Parallel()
		rec := request(t, app, http.MethodOptions, server.ContactPath, "", "")
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "POST")
		assert.Equal(t, "Content-Type", rec.Header().Get("Access-Control-Allow-Headers"))
	})

	t.Run("health", func(t *testing.T) {
		t.Parallel()
		rec := request(t, app, http.MethodGet, "/health", "", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"OK","message":"Server is running"}`, rec.Body.String())
	})

	t.Run("readiness", func(t *testing.T) {
		t.Parallel()
		rec := request(t, app, http.MethodGet, "/health/ready", "", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"email_provider"`)
	})
}

func TestServer_ReadinessWithoutKey(t *testing.T) {
	t.Parallel()

	app, _ := newApp(t, nil, "")
	rec := request(t, app, http.MethodGet, "/health/ready", "", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "email service not configured")
}

func TestServer_Metrics(t *testing.T) {
	t.Parallel()

	app, _ := newApp(t, &stubSender{id: "x"}, "re_test")
	request(t, app, http.MethodPost, server.ContactPath, "application/json",
		`{"name":"Ada","email":"ada@example.com","message":"Hi"}`)

	rec := request(t, app, http.MethodGet, "/metrics", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `contactmail_submissions_total{result="sent"} 1`)
	assert.Contains(t, body, `contactmail_http_requests_total{method="POST",path="/api/send-contact-email",status="200"} 1`)
}
