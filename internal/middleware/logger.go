package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"
)

type contextKey string

const loggerKey = contextKey("logger")

// Logger is a middleware that injects a request-scoped logger into the context
// and logs one line per request once the handler returns.
// The logger is pre-configured with the request ID from the RequestID middleware,
// so it should be placed after the RequestID middleware in the chain.
func Logger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		reqID := c.Response().Header().Get(echo.HeaderXRequestID)
		requestLogger := slog.Default().With("request_id", reqID)

		c.SetRequest(req.WithContext(WithLogger(req.Context(), requestLogger)))

		start := time.Now()
		err := next(c)
		if err != nil {
			// Let echo's error handler settle the status before it is logged.
			c.Error(err)
		}

		level := slog.LevelInfo
		if c.Response().Status >= 500 {
			level = slog.LevelError
		}
		requestLogger.Log(req.Context(), level, "Request handled",
			"method", req.Method,
			"path", req.URL.Path,
			"status", c.Response().Status,
			"duration", time.Since(start),
			"htmx", req.Header.Get("HX-Request") == "true",
		)
		return nil
	}
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext returns the request-scoped logger, or the default logger when
// ctx carries none.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
