package partials

import (
	"strconv"

	"github.com/nfrund/salon/internal/domain"
	"github.com/nfrund/salon/internal/routes"
	"github.com/nfrund/salon/internal/selection"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

// HeaderID is the swap target for menu toggles.
const HeaderID = "site-header"

var titleCaser = cases.Title(language.English)

// NavLabel turns a section anchor such as "testimonials" into its menu label.
func NavLabel(anchor string) string {
	return titleCaser.String(anchor)
}

// Header renders the sticky navigation bar with the mobile menu in the state
// given by s.
func Header(cat *domain.Catalog, s selection.Snapshot) g.Node {
	toggled := s
	toggled.MenuOpen = !s.MenuOpen

	return h.Header(
		h.ID(HeaderID),
		h.Class("bg-white shadow-sm sticky top-0 z-10"),
		h.Nav(
			h.Class("container mx-auto px-4 py-4 flex justify-between items-center relative"),
			h.A(
				h.Href("#hero"),
				h.Class("flex items-center transition-transform hover:scale-105 active:scale-95"),
				g.Iff(cat.Logo != nil, func() g.Node {
					return h.Img(h.Src(cat.Logo.Src), h.Alt(cat.Logo.Alt), h.Width("50"), h.Height("50"), h.Class("mr-2"))
				}),
				h.H1(h.Class("text-xl md:text-2xl font-bold text-gray-800"), g.Text(cat.Business)),
			),
			h.Div(
				h.Class("md:hidden"),
				h.A(
					h.Href(routes.PageURL(toggled, "")),
					hx.Get(routes.MenuToggleURL(s)),
					hx.Target("#"+HeaderID),
					hx.Swap("outerHTML"),
					h.Class("inline-flex h-10 w-10 items-center justify-center rounded-md hover:bg-gray-100"),
					h.Aria("label", "Toggle navigation"),
					h.Aria("expanded", strconv.FormatBool(s.MenuOpen)),
					g.Attr("aria-controls", "site-menu"),
					Icon("menu", "h-6 w-6"),
				),
			),
			h.Ul(
				h.ID("site-menu"),
				h.Class(menuClass(s.MenuOpen)),
				g.Map(cat.Nav, func(anchor string) g.Node {
					return h.Li(
						h.A(
							h.Href("#"+anchor),
							h.Class("block text-gray-600 hover:text-gray-800 transition-transform hover:scale-110 active:scale-90"),
							g.Text(NavLabel(anchor)),
						),
					)
				}),
			),
		),
	)
}

func menuClass(open bool) string {
	visibility := "hidden"
	if open {
		visibility = "block"
	}
	return "md:flex space-y-2 md:space-y-0 md:space-x-4 " + visibility +
		" absolute md:relative top-full left-0 right-0 bg-white md:bg-transparent p-4 md:p-0"
}
