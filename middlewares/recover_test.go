package middlewares_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/portfolio/contactmail/internal/web"
	"github.com/portfolio/contactmail/middlewares"
)

func TestRecover(t *testing.T) {
	t.Parallel()

	t.Run("recovers panic into PanicError", func(t *testing.T) {
		t.Parallel()

		ctx := newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		err := middlewares.Recover()(func(c web.Context) error {
			panic("test panic")
		})(ctx)

		require.Error(t, err)

		pe, ok := middlewares.AsPanicError(err)
		require.True(t, ok)
		require.Equal(t, "test panic", pe.Value)
		require.NotEmpty(t, pe.Stack)
		require.Equal(t, "panic: test panic", pe.Error())
	})

	t.Run("passes errors through", func(t *testing.T) {
		t.Parallel()

		want := errors.New("handler error")
		ctx := newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		err := middlewares.Recover()(func(c web.Context) error {
			return want
		})(ctx)

		require.ErrorIs(t, err, want)
		_, ok := middlewares.AsPanicError(err)
		require.False(t, ok)
	})

	t.Run("stack disabled", func(t *testing.T) {
		t.Parallel()

		ctx := newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		err := middlewares.Recover(middlewares.WithRecoverDisablePrintStack())(func(c web.Context) error {
			panic(errors.New("boom"))
		})(ctx)

		pe, ok := middlewares.AsPanicError(err)
		require.True(t, ok)
		require.Nil(t, pe.Stack)
	})

	t.Run("stack size limit", func(t *testing.T) {
		t.Parallel()

		ctx := newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		err := middlewares.Recover(middlewares.WithRecoverStackSize(64))(func(c web.Context) error {
			panic("small")
		})(ctx)

		pe, ok := middlewares.AsPanicError(err)
		require.True(t, ok)
		require.LessOrEqual(t, len(pe.Stack), 64)
	})
}
