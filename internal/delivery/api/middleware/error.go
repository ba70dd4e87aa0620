package middleware

import (
	"log/slog"

	"devicestore/internal/delivery/api/response"
	deliverycontext "devicestore/internal/delivery/context"
	domainerrors "devicestore/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware renders errors returned by control API handlers.
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates the middleware.
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError is installed as echo's HTTPErrorHandler. Server-side
// failures are logged with their cause; clients only see the error code.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	ctx := c.Request().Context()
	logger := deliverycontext.Logger(ctx, m.logger)
	attrs := []any{
		slog.Any("error", err),
		slog.String("method", c.Request().Method),
		slog.String("path", c.Request().URL.Path),
	}

	var appErr domainerrors.AppError
	var httpErr *echo.HTTPError

	switch {
	case errors.As(err, &appErr):
		if appErr.HTTPCode() >= 500 {
			logger.ErrorContext(ctx, "Control API call failed", append(attrs, slog.String("code", appErr.ErrorCode()))...)
		}
		_ = response.HandleAppError(c, appErr)

	case errors.As(err, &httpErr):
		message := "An error occurred"
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, nil)

	default:
		logger.ErrorContext(ctx, "Unhandled control API error", attrs...)
		_ = response.InternalServerError(c, "INTERNAL_ERROR", "Internal server error, please try again later")
	}
}
