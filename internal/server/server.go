package server

import (
	"errors"
	"net/http"
	"runtime/debug"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/nfrund/salon/internal/config"
	"github.com/nfrund/salon/internal/contact"
	"github.com/nfrund/salon/internal/content"
	"github.com/nfrund/salon/internal/handlers"
	"github.com/nfrund/salon/internal/hub"
	"github.com/nfrund/salon/internal/livereload"
	"github.com/nfrund/salon/internal/middleware"
	"github.com/nfrund/salon/internal/pubsub"
	"github.com/nfrund/salon/internal/rendering"
)

// Dependencies are the services the server routes to and runs alongside
// the HTTP listener.
type Dependencies struct {
	Config     config.Provider
	Content    *content.Store
	Bus        *pubsub.WatermillBridge
	Contact    *contact.Service
	Notifier   *contact.Notifier
	Hub        *hub.Hub
	LiveReload *livereload.Handler
}

// Server holds the dependencies for the HTTP server.
type Server struct {
	E   *echo.Echo
	Cfg config.Provider

	deps           Dependencies
	siteHandler    *handlers.SiteHandler
	contactHandler *handlers.ContactHandler
}

// New creates a new Server instance with its middleware chain configured.
// Routes are added by RegisterRoutes.
func New(deps Dependencies) *Server {
	cfg := deps.Config

	e := echo.New()
	e.HideBanner = true
	e.Renderer = rendering.NewUniversalRenderer()
	e.Validator = handlers.NewValidator()
	setupErrorHandling(e)

	e.Use(echomw.RequestID())
	e.Use(middleware.Logger)
	e.Use(echomw.Recover())

	// Configure and use session middleware for flash messages.
	store := sessions.NewCookieStore([]byte(cfg.GetSessionSecret()))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   3600,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	e.Use(session.Middleware(store))

	siteHandler := handlers.NewSiteHandler(deps.Content, cfg.GetLiveReload())

	return &Server{
		E:              e,
		Cfg:            cfg,
		deps:           deps,
		siteHandler:    siteHandler,
		contactHandler: handlers.NewContactHandler(siteHandler, deps.Contact),
	}
}

// setupErrorHandling installs an error handler that logs unexpected errors
// with a stack trace before echo writes the response.
func setupErrorHandling(e *echo.Echo) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		var he *echo.HTTPError
		if !errors.As(err, &he) {
			middleware.FromContext(c.Request().Context()).Error("Internal Server Error (Unhandled)",
				"error", err.Error(),
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"stack_trace", string(debug.Stack()),
			)
		} else if he.Code >= http.StatusInternalServerError && he.Internal != nil {
			middleware.FromContext(c.Request().Context()).Error("Request failed",
				"status", he.Code,
				"error", he.Internal.Error(),
			)
		}
		e.DefaultHTTPErrorHandler(err, c)
	}
}
