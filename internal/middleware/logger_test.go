package middleware

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/assert"
)

func captureDefault(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestLogger_InjectsRequestLogger(t *testing.T) {
	buf := captureDefault(t)

	e := echo.New()
	e.Use(echomw.RequestID(), Logger)
	e.GET("/", func(c echo.Context) error {
		FromContext(c.Request().Context()).Info("inside handler")
		return c.String(http.StatusOK, "OK")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	reqID := rec.Header().Get(echo.HeaderXRequestID)
	assert.NotEmpty(t, reqID)
	assert.Contains(t, buf.String(), "msg=\"inside handler\" request_id="+reqID)
	assert.Contains(t, buf.String(), "status=200")
}

func TestLogger_LogsErrorStatus(t *testing.T) {
	buf := captureDefault(t)

	e := echo.New()
	e.Use(Logger)
	e.GET("/", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusBadRequest, "nope")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, buf.String(), "status=400")
}

func TestFromContext_FallsBackToDefault(t *testing.T) {
	assert.Same(t, slog.Default(), FromContext(context.Background()))
}
