package pages

import (
	"github.com/nfrund/salon/internal/domain"
	"github.com/nfrund/salon/internal/selection"
	"github.com/nfrund/salon/web/src/templates/partials"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

func about(cat *domain.Catalog, s selection.Snapshot) g.Node {
	return h.Section(
		h.ID("about"),
		h.Class("py-20 bg-white"),
		h.Div(
			h.Class("container mx-auto px-4"),
			sectionHeading(cat.About.Heading),
			h.Div(
				h.Class("flex flex-col md:flex-row items-center gap-10"),
				partials.Carousel(cat.About.Images, s),
				h.Div(
					h.Class("md:w-1/2"),
					g.Map(cat.About.Paragraphs, func(p string) g.Node {
						return h.P(h.Class("text-lg mb-4"), g.Text(p))
					}),
				),
			),
		),
	)
}
