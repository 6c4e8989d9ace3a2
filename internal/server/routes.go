package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/salon/internal/middleware"
	"github.com/nfrund/salon/internal/routes"
	"github.com/nfrund/salon/web"
)

// RegisterRoutes sets up all the application routes.
func (s *Server) RegisterRoutes() {
	s.E.StaticFS(routes.Static, echo.MustSubFS(web.FS, "static"))

	s.E.GET(routes.Home, s.siteHandler.HomeGet)

	// Fragments re-render one section for HTMX swaps.
	s.E.GET(routes.CarouselNext, s.siteHandler.CarouselNext)
	s.E.GET(routes.CarouselPrev, s.siteHandler.CarouselPrev)
	s.E.GET(routes.ServicesTab, s.siteHandler.ServicesTab)
	s.E.GET(routes.MenuToggle, s.siteHandler.MenuToggle)

	s.E.POST(routes.Contact, s.contactHandler.ContactPost, middleware.RateLimiter())

	if s.Cfg.GetLiveReload() && s.deps.LiveReload != nil {
		s.E.GET(routes.LiveReload, s.deps.LiveReload.ServeWS)
	}

	s.E.GET(routes.Health, func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
}
