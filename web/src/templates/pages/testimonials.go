package pages

import (
	"github.com/nfrund/salon/internal/domain"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

func testimonials(items []domain.Testimonial) g.Node {
	return h.Section(
		h.ID("testimonials"),
		h.Class("py-20 bg-gray-100"),
		h.Div(
			h.Class("container mx-auto px-4"),
			sectionHeading("What Clients Say"),
			h.Div(
				h.Class("grid grid-cols-1 md:grid-cols-2 lg:grid-cols-3 gap-8"),
				g.Map(items, func(t domain.Testimonial) g.Node {
					return h.Figure(
						h.Class("rounded-lg border bg-white p-6 shadow-sm transition hover:scale-105 hover:shadow-xl"),
						h.BlockQuote(h.P(h.Class("mb-4"), g.Text(`"`+t.Quote+`"`))),
						h.FigCaption(h.Class("font-semibold"), g.Text("- "+t.Author)),
					)
				}),
			),
		),
	)
}
