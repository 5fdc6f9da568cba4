package context

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestRequestID(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	generated := RequestID(c)
	assert.Len(t, generated, 36)

	SetRequestID(c, "req-1")
	assert.Equal(t, "req-1", RequestID(c))
}

func TestWithRequest(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	assert.Same(t, fallback, LoggerFrom(context.Background(), fallback))
	assert.Empty(t, RequestIDFrom(context.Background()))

	reqLogger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	ctx := WithRequest(context.Background(), "req-2", reqLogger)

	assert.Equal(t, "req-2", RequestIDFrom(ctx))
	assert.Same(t, reqLogger, LoggerFrom(ctx, fallback))
}

func TestWithLogAttrs(t *testing.T) {
	t.Run("without logger", func(t *testing.T) {
		ctx := context.Background()

		assert.Equal(t, ctx, WithLogAttrs(ctx, "user_id", "u-1"))
	})

	t.Run("adds attributes", func(t *testing.T) {
		var buf bytes.Buffer
		ctx := WithLogger(context.Background(), slog.New(slog.NewTextHandler(&buf, nil)))

		ctx = WithLogAttrs(ctx, slog.String("user_id", "u-1"))
		LoggerFrom(ctx, nil).Info("hello")

		assert.Contains(t, buf.String(), "user_id=u-1")
	})
}
