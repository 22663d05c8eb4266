package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type ctxKey struct{}

func requestIDFromCtx(ctx context.Context) (slog.Attr, bool) {
	if v, ok := ctx.Value(ctxKey{}).(string); ok {
		return slog.String("request_id", v), true
	}
	return slog.Attr{}, false
}

func TestLogHandlerDecorator(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(NewLogHandlerDecorator(slog.NewJSONHandler(&buf, nil), nil, requestIDFromCtx))

	ctx := context.WithValue(context.Background(), ctxKey{}, "req-1")
	log.With(slog.String("component", "test")).InfoContext(ctx, "hello")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	require.Equal(t, "hello", rec["msg"])
	require.Equal(t, "req-1", rec["request_id"])
	require.Equal(t, "test", rec["component"])
}

func TestLogHandlerDecorator_NoExtractors(t *testing.T) {
	t.Parallel()

	base := slog.NewJSONHandler(&bytes.Buffer{}, nil)
	require.Same(t, base, NewLogHandlerDecorator(base, nil))
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	require.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	require.Equal(t, slog.LevelWarn, ParseLevel("WARN"))
	require.Equal(t, slog.LevelError, ParseLevel(" error "))
	require.Equal(t, slog.LevelInfo, ParseLevel("loud"))
	require.Equal(t, slog.LevelInfo, ParseLevel(""))
}

func TestNewStdoutHandler_Format(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	slog.New(newStdoutHandler(&buf, Config{Format: "text", Level: "info"})).Info("plain")
	require.Contains(t, buf.String(), "msg=plain")

	buf.Reset()
	slog.New(newStdoutHandler(&buf, Config{Level: "info"})).Debug("hidden")
	require.Empty(t, buf.String())
}

type failingHandler struct{ slog.Handler }

func (failingHandler) Handle(context.Context, slog.Record) error { return errors.New("sink down") }

func TestMultiHandler_ContinuesAfterFailure(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	ok := slog.NewJSONHandler(&buf, nil)
	bad := failingHandler{Handler: slog.NewJSONHandler(&bytes.Buffer{}, nil)}

	h := newMultiHandler(bad, ok)
	err := h.Handle(context.Background(), slog.NewRecord(time.Time{}, slog.LevelInfo, "both", 0))
	require.Error(t, err)
	require.Contains(t, buf.String(), `"msg":"both"`)
}
