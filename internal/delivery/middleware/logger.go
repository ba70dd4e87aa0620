package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"devicestore/config"
	deliverycontext "devicestore/internal/delivery/context"
	domainerrors "devicestore/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// healthPath is polled by probes and never logged.
const healthPath = "/health"

// LoggerMiddleware logs control API calls. In debug mode every call is
// logged; otherwise only calls that end in a server error.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
}

// NewLoggerMiddleware creates the middleware.
func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  config.Env.Debug,
	}
}

// Handle wraps next with request logging.
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if c.Request().URL.Path == healthPath {
			return next(c)
		}

		start := time.Now()
		err := next(c)

		status := responseStatus(c, err)
		if m.debug || status >= http.StatusInternalServerError {
			m.logRequest(c, start, status, err)
		}

		return err
	}
}

func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, status int, err error) {
	req := c.Request()

	attrs := []slog.Attr{
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
		slog.Int("status", status),
		slog.Duration("latency", time.Since(start)),
		slog.String("remote_ip", c.RealIP()),
	}
	if req.URL.RawQuery != "" {
		attrs = append(attrs, slog.String("query", req.URL.RawQuery))
	}
	if err != nil {
		attrs = append(attrs, slog.Any("error", err))
	}

	level := slog.LevelInfo
	switch {
	case status >= http.StatusInternalServerError:
		level = slog.LevelError
	case status >= http.StatusBadRequest:
		level = slog.LevelWarn
	}

	ctx := req.Context()
	deliverycontext.Logger(ctx, m.logger).LogAttrs(ctx, level, "Control API request", attrs...)
}

// responseStatus predicts the status the error handler will write for err,
// since echo renders handler errors only after the middleware chain returns.
func responseStatus(c echo.Context, err error) int {
	if err == nil || c.Response().Committed {
		return c.Response().Status
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode()
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}

	return http.StatusInternalServerError
}
