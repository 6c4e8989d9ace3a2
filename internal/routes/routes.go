// Package routes names the site's HTTP paths and builds the URLs the page
// links to, so handlers and templates agree on both.
package routes

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/nfrund/salon/internal/selection"
)

const (
	Home         = "/"
	Health       = "/health"
	Contact      = "/contact"
	Static       = "/static"
	LiveReload   = "/ws/livereload"
	CarouselNext = "/fragments/carousel/next"
	CarouselPrev = "/fragments/carousel/prev"
	ServicesTab  = "/fragments/services/:category"
	MenuToggle   = "/fragments/menu/toggle"
)

// Query parameters carrying page state.
const (
	ParamTab   = "tab"
	ParamImage = "image"
	ParamMenu  = "menu"
)

// PageURL links to the full page rendered at the given state, scrolled to
// anchor when one is given. It is the no-JavaScript path for every control.
func PageURL(s selection.Snapshot, anchor string) string {
	u := withState(Home, s)
	if anchor != "" {
		u += "#" + anchor
	}
	return u
}

// CarouselNextURL is the fragment URL that advances the carousel from s.
func CarouselNextURL(s selection.Snapshot) string {
	return withState(CarouselNext, s)
}

// CarouselPrevURL is the fragment URL that retreats the carousel from s.
func CarouselPrevURL(s selection.Snapshot) string {
	return withState(CarouselPrev, s)
}

// ServicesTabURL is the fragment URL selecting category from s.
func ServicesTabURL(category string, s selection.Snapshot) string {
	return withState(strings.Replace(ServicesTab, ":category", url.PathEscape(category), 1), s)
}

// MenuToggleURL is the fragment URL that flips the menu from s.
func MenuToggleURL(s selection.Snapshot) string {
	return withState(MenuToggle, s)
}

// withState appends the non-default parts of s as query parameters.
func withState(path string, s selection.Snapshot) string {
	q := url.Values{}
	if s.Category != "" {
		q.Set(ParamTab, s.Category)
	}
	if s.Image != 0 {
		q.Set(ParamImage, strconv.Itoa(s.Image))
	}
	if s.MenuOpen {
		q.Set(ParamMenu, "1")
	}
	if len(q) == 0 {
		return path
	}
	return path + "?" + q.Encode()
}
