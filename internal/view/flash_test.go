package view_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/salon/internal/view"
	"github.com/stretchr/testify/assert"
)

const testSessionSecret = "a-very-secret-key-for-testing-!"

// newSessionContext returns an echo context that has passed through the
// session middleware.
func newSessionContext() echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	var c echo.Context
	capture := func(ctx echo.Context) error { c = ctx; return nil }
	_ = session.Middleware(sessions.NewCookieStore([]byte(testSessionSecret)))(capture)(e.NewContext(req, rec))
	return c
}

func TestFlashMessages(t *testing.T) {
	t.Run("success flash is read once", func(t *testing.T) {
		c := newSessionContext()

		view.SetFlashSuccess(c, "Thanks! We'll be in touch soon.")

		flashes := view.GetFlashData(c)
		assert.Equal(t, []string{"Thanks! We'll be in touch soon."}, flashes.Success)
		assert.Empty(t, flashes.Error)

		assert.True(t, view.GetFlashData(c).Empty(), "flashes should be cleared after being read")
	})

	t.Run("error flash", func(t *testing.T) {
		c := newSessionContext()

		view.SetFlashError(c, "Something went wrong.")

		flashes := view.GetFlashData(c)
		assert.Equal(t, []string{"Something went wrong."}, flashes.Error)
		assert.Empty(t, flashes.Success)
		assert.False(t, flashes.Empty())
	})

	t.Run("nothing set", func(t *testing.T) {
		c := newSessionContext()
		assert.True(t, view.GetFlashData(c).Empty())
	})
}
