package handlers

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/salon/internal/content"
	"github.com/nfrund/salon/internal/domain"
	"github.com/nfrund/salon/internal/middleware"
	"github.com/nfrund/salon/internal/routes"
	"github.com/nfrund/salon/internal/selection"
	"github.com/nfrund/salon/internal/view"
	"github.com/nfrund/salon/web/src/templates/layouts"
	"github.com/nfrund/salon/web/src/templates/pages"
	"github.com/nfrund/salon/web/src/templates/partials"
)

// SiteHandler serves the landing page and the fragments its controls swap in.
// The page's full selection lives in its URL; the handler rebuilds the state,
// applies at most one transition and renders.
type SiteHandler struct {
	content    content.Provider
	liveReload bool
}

// NewSiteHandler creates a new SiteHandler.
func NewSiteHandler(p content.Provider, liveReload bool) *SiteHandler {
	return &SiteHandler{content: p, liveReload: liveReload}
}

// HomeGet renders the full page (GET /).
func (h *SiteHandler) HomeGet(c echo.Context) error {
	cat := h.content.Catalog()
	state, err := restore(c, cat)
	if err != nil {
		return err
	}
	return h.renderPage(c, http.StatusOK, cat, state.Snapshot(), partials.ContactForm{})
}

// CarouselNext renders the about carousel one image forward.
func (h *SiteHandler) CarouselNext(c echo.Context) error {
	cat := h.content.Catalog()
	state, err := restore(c, cat)
	if err != nil {
		return err
	}
	state.Carousel.Advance()
	return renderFragment(c, state, partials.Carousel(cat.About.Images, state.Snapshot()))
}

// CarouselPrev renders the about carousel one image back.
func (h *SiteHandler) CarouselPrev(c echo.Context) error {
	cat := h.content.Catalog()
	state, err := restore(c, cat)
	if err != nil {
		return err
	}
	state.Carousel.Retreat()
	return renderFragment(c, state, partials.Carousel(cat.About.Images, state.Snapshot()))
}

// ServicesTab renders the services tabs with the category from the path
// selected. An unknown category leaves the current tab in place.
func (h *SiteHandler) ServicesTab(c echo.Context) error {
	cat := h.content.Catalog()
	state, err := restore(c, cat)
	if err != nil {
		return err
	}
	if id := c.Param("category"); !state.Category.Select(id) {
		middleware.FromContext(c.Request().Context()).Warn("Ignoring unknown service category", "category", id)
	}
	return renderFragment(c, state, partials.ServiceTabs(cat.Services, state.Snapshot()))
}

// MenuToggle renders the header with the mobile menu flipped.
func (h *SiteHandler) MenuToggle(c echo.Context) error {
	cat := h.content.Catalog()
	state, err := restore(c, cat)
	if err != nil {
		return err
	}
	state.Menu.Toggle()
	return renderFragment(c, state, partials.Header(cat, state.Snapshot()))
}

func (h *SiteHandler) renderPage(c echo.Context, status int, cat *domain.Catalog, snap selection.Snapshot, form partials.ContactForm) error {
	body := pages.Home(pages.HomeData{Catalog: cat, State: snap, Form: form})
	page := layouts.Base(layouts.BaseProps{
		Business:    cat.Business,
		Description: cat.Hero.Tagline,
		Flash:       view.GetFlashData(c),
		LiveReload:  h.liveReload,
	}, view.Templ(body))
	return c.Render(status, "", page)
}

// restore rebuilds the selection against cat. HTMX requests take it from the
// page's address bar (HX-Current-URL), which every fragment response keeps
// current, so sections whose links were rendered before the last swap
// cannot roll it back. The request's own query is the fallback.
func restore(c echo.Context, cat *domain.Catalog) (*selection.State, error) {
	if isHTMX(c) {
		if q, ok := originQuery(c, "HX-Current-URL"); ok {
			return restoreFrom(withQuery(c, q), cat)
		}
	}
	return restoreFrom(c, cat)
}

// originSnapshot is the selection of the page a form was posted from, or the
// zero snapshot when the referring page is unknown or its query is malformed.
func originSnapshot(c echo.Context, cat *domain.Catalog) selection.Snapshot {
	if q, ok := originQuery(c, "Referer"); ok {
		if state, err := restoreFrom(withQuery(c, q), cat); err == nil {
			return state.Snapshot()
		}
	}
	return selection.Snapshot{}
}

// originQuery returns the raw query of the URL in header when it points at
// the landing page.
func originQuery(c echo.Context, header string) (string, bool) {
	raw := c.Request().Header.Get(header)
	if raw == "" {
		return "", false
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Path != "" && u.Path != routes.Home) {
		return "", false
	}
	return u.RawQuery, true
}

// withQuery returns a context for a copy of the request carrying rawQuery.
func withQuery(c echo.Context, rawQuery string) echo.Context {
	req := c.Request().Clone(c.Request().Context())
	req.URL.RawQuery = rawQuery
	return c.Echo().NewContext(req, c.Response())
}

// restoreFrom binds the page query of c and rebuilds the selection.
func restoreFrom(c echo.Context, cat *domain.Catalog) (*selection.State, error) {
	var q PageQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &q); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid page state").SetInternal(err)
	}
	state, err := selection.Restore(cat.CategoryIDs(), len(cat.About.Images), selection.Snapshot{
		Category: q.Tab,
		Image:    q.Image,
		MenuOpen: q.Menu,
	})
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusInternalServerError).SetInternal(err)
	}
	return state, nil
}

// renderFragment writes one section and points the browser's address bar at
// the equivalent full page, so a reload keeps the visitor's place.
func renderFragment(c echo.Context, state *selection.State, fragment interface{}) error {
	c.Response().Header().Set("HX-Replace-Url", routes.PageURL(state.Snapshot(), ""))
	return c.Render(http.StatusOK, "", fragment)
}
