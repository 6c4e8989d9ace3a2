package pages

import (
	"github.com/nfrund/salon/internal/domain"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

func gallery(images []domain.Image) g.Node {
	return h.Section(
		h.ID("gallery"),
		h.Class("py-20 bg-gray-100"),
		h.Div(
			h.Class("container mx-auto px-4"),
			sectionHeading("My Work"),
			h.Div(
				h.Class("grid grid-cols-1 sm:grid-cols-2 md:grid-cols-3 gap-6"),
				g.Map(images, func(img domain.Image) g.Node {
					return h.Div(
						h.Class("transition-transform hover:scale-105 hover:rotate-2 active:scale-95"),
						h.Img(
							h.Src(img.Src),
							h.Alt(img.Alt),
							g.Attr("loading", "lazy"),
							h.Class("w-full h-auto rounded-lg shadow-md"),
						),
					)
				}),
			),
		),
	)
}
