package partials

import (
	"fmt"

	"github.com/nfrund/salon/internal/domain"
	"github.com/nfrund/salon/internal/routes"
	"github.com/nfrund/salon/internal/selection"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

// ServicesID is the swap target for tab selection.
const ServicesID = "services-tabs"

// ServiceTabs renders the tab list with the price list of s.Category.
func ServiceTabs(categories []domain.ServiceCategory, s selection.Snapshot) g.Node {
	var active domain.ServiceCategory
	for _, c := range categories {
		if c.ID == s.Category {
			active = c
		}
	}

	return h.Div(
		h.ID(ServicesID),
		h.Class("w-full max-w-2xl mx-auto"),
		h.Div(
			g.Attr("role", "tablist"),
			h.Class(fmt.Sprintf("grid w-full grid-cols-%d rounded-md bg-gray-100 p-1", len(categories))),
			g.Map(categories, func(c domain.ServiceCategory) g.Node {
				return tab(c, s)
			}),
		),
		h.Div(
			g.Attr("role", "tabpanel"),
			h.ID("services-panel-"+active.ID),
			h.Class("mt-2 rounded-lg border bg-white shadow-sm"),
			h.Ul(
				h.Class("space-y-4 p-6"),
				g.Group(indexedItems(active.Items)),
			),
		),
	)
}

func tab(c domain.ServiceCategory, s selection.Snapshot) g.Node {
	selected := c.ID == s.Category
	target := s
	target.Category = c.ID

	class := "rounded-sm px-3 py-1.5 text-center text-sm font-medium transition-all "
	if selected {
		class += "bg-white text-gray-900 shadow-sm"
	} else {
		class += "text-gray-500 hover:text-gray-900"
	}

	return h.A(
		h.Href(routes.PageURL(target, "services")),
		hx.Get(routes.ServicesTabURL(c.ID, s)),
		hx.Target("#"+ServicesID),
		hx.Swap("outerHTML"),
		g.Attr("role", "tab"),
		g.Attr("aria-selected", fmt.Sprint(selected)),
		h.Class(class),
		g.Text(c.Label),
	)
}

// indexedItems staggers each row's entrance by its position.
func indexedItems(items []domain.ServiceItem) []g.Node {
	nodes := make([]g.Node, len(items))
	for i, item := range items {
		nodes[i] = h.Li(
			h.Class("flex justify-between items-center animate-rise transition-transform hover:translate-x-2 hover:scale-105"),
			g.Attr("style", fmt.Sprintf("animation-delay: %dms", i*100)),
			h.Span(g.Text(item.Name)),
			h.Span(h.Class("font-semibold"), g.Text(item.Price)),
		)
	}
	return nodes
}
