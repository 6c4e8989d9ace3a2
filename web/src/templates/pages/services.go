package pages

import (
	"github.com/nfrund/salon/internal/domain"
	"github.com/nfrund/salon/internal/selection"
	"github.com/nfrund/salon/web/src/templates/partials"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

func services(cat *domain.Catalog, s selection.Snapshot) g.Node {
	return h.Section(
		h.ID("services"),
		h.Class("bg-white py-20"),
		h.Div(
			h.Class("container mx-auto px-4"),
			sectionHeading("Services"),
			partials.ServiceTabs(cat.Services, s),
			h.Div(
				h.Class("text-center mt-8"),
				h.A(
					h.Href("#contact"),
					h.Class("inline-flex items-center rounded-md bg-gray-900 px-8 py-3 text-white transition-transform hover:scale-110 active:scale-90"),
					partials.Icon("calendar", "mr-2 h-4 w-4"),
					g.Text("Book an Appointment"),
				),
			),
		),
	)
}
