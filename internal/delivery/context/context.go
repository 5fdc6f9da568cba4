// Package context moves request-scoped values between echo.Context and context.Context
// so that use cases log with the request's ID and caller.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type key int

const (
	requestIDKey key = iota
	loggerKey
)

// echoRequestIDKey holds the request ID on echo.Context
const echoRequestIDKey = "request_id"

// HeaderXRequestID carries the request ID in and out of the service.
const HeaderXRequestID = echo.HeaderXRequestID

// RequestID returns the request ID stored on c, or a fresh one when none was set.
func RequestID(c echo.Context) string {
	if id, ok := c.Get(echoRequestIDKey).(string); ok && id != "" {
		return id
	}

	return uuid.NewString()
}

// SetRequestID stores the request ID on c.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoRequestIDKey, requestID)
}

// RequestIDFrom returns the request ID carried by ctx, or "".
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

// WithRequestID returns ctx carrying requestID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// WithLogger returns ctx carrying a request-scoped logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// WithRequest returns ctx carrying both the request ID and its logger.
func WithRequest(ctx context.Context, requestID string, logger *slog.Logger) context.Context {
	return WithLogger(WithRequestID(ctx, requestID), logger)
}

// LoggerFrom returns the request-scoped logger, or fallback when ctx has none.
func LoggerFrom(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}

// WithLogAttrs adds attributes to the request-scoped logger. ctx is returned unchanged when it has no logger.
func WithLogAttrs(ctx context.Context, args ...any) context.Context {
	logger := LoggerFrom(ctx, nil)
	if logger == nil {
		return ctx
	}

	return WithLogger(ctx, logger.With(args...))
}
