package health_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/portfolio/contactmail/pkg/health"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) health.Response {
	t.Helper()

	var resp health.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestLivenessHandler(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	health.LivenessHandler("Server is running")(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status":"OK","message":"Server is running"}`, rec.Body.String())
}

func TestReadinessHandler(t *testing.T) {
	t.Parallel()

	t.Run("no checks is healthy", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		health.ReadinessHandler(nil)(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, health.StatusOK, decode(t, rec).Status)
	})

	t.Run("failing check makes service unavailable", func(t *testing.T) {
		t.Parallel()

		checks := health.Checks{
			"email": func(context.Context) error { return errors.New("not configured") },
			"other": func(context.Context) error { return nil },
		}

		rec := httptest.NewRecorder()
		health.ReadinessHandler(checks)(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
		resp := decode(t, rec)
		require.Equal(t, health.StatusUnavailable, resp.Status)
		require.Equal(t, "not configured", resp.Checks["email"].Error)
		require.Equal(t, health.StatusOK, resp.Checks["other"].Status)
	})

	t.Run("slow check times out", func(t *testing.T) {
		t.Parallel()

		checks := health.Checks{
			"slow": func(ctx context.Context) error {
				time.Sleep(time.Second)
				return nil
			},
		}

		rec := httptest.NewRecorder()
		health.ReadinessHandler(checks, health.WithTimeout(20*time.Millisecond))(
			rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
		require.Equal(t, health.ErrCheckTimeout.Error(), decode(t, rec).Checks["slow"].Error)
	})
}
