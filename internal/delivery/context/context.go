// Package context carries the request ID and request-scoped logger from the
// control API down to the controller and registry calls it makes.
package context

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is read from callers and echoed back on every response.
const HeaderXRequestID = echo.HeaderXRequestID

// echoRequestIDKey is where Bind stores the ID on echo.Context for response envelopes.
const echoRequestIDKey = "request_id"

type key int

const (
	requestIDKey key = iota
	loggerKey
)

// Bind attaches requestID to c and to its request context, together with a
// logger tagged with the ID. The tagged logger is returned.
func Bind(c echo.Context, requestID string, logger *slog.Logger) *slog.Logger {
	reqLogger := logger.With(slog.String("request_id", requestID))

	c.Set(echoRequestIDKey, requestID)
	c.SetRequest(c.Request().WithContext(WithRequest(c.Request().Context(), requestID, reqLogger)))

	return reqLogger
}

// RequestID returns the ID bound to c, falling back to the caller's header.
func RequestID(c echo.Context) string {
	if id, ok := c.Get(echoRequestIDKey).(string); ok && id != "" {
		return id
	}

	return c.Request().Header.Get(HeaderXRequestID)
}

// WithRequest stores requestID and logger in ctx.
func WithRequest(ctx context.Context, requestID string, logger *slog.Logger) context.Context {
	ctx = context.WithValue(ctx, requestIDKey, requestID)

	return context.WithValue(ctx, loggerKey, logger)
}

// RequestIDFrom returns the request ID in ctx, or "".
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

// Logger returns the request-scoped logger in ctx, or fallback.
func Logger(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}
