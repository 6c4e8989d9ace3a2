package pages

import (
	"github.com/nfrund/salon/internal/domain"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

func hero(cat *domain.Catalog) g.Node {
	return h.Section(
		h.ID("hero"),
		h.Class("bg-gradient-to-r from-purple-400 via-pink-500 to-red-500 text-white py-20"),
		h.Div(
			h.Class("container mx-auto px-4 flex flex-col md:flex-row items-center"),
			h.Div(
				h.Class("md:w-1/2 mb-8 md:mb-0 animate-fade"),
				h.H2(h.Class("text-3xl md:text-4xl font-bold mb-4"), g.Text(cat.Hero.Heading)),
				g.If(cat.Hero.Tagline != "", h.P(h.Class("text-lg md:text-xl mb-6"), g.Text(cat.Hero.Tagline))),
				h.Div(
					h.Class("space-y-4 md:space-y-0 md:space-x-4"),
					h.A(
						h.Href("#contact"),
						h.Class("inline-block w-full md:w-auto rounded-md bg-white px-8 py-3 text-center text-purple-600 hover:bg-gray-100"),
						g.Text("Book an Appointment"),
					),
					h.A(
						h.Href("#services"),
						h.Class("inline-block w-full md:w-auto rounded-md border border-white px-8 py-3 text-center text-white hover:bg-white hover:text-purple-600"),
						g.Text("Our Services"),
					),
				),
			),
			g.Iff(cat.Hero.Image != nil, func() g.Node {
				return h.Div(
					h.Class("md:w-1/2 flex justify-center animate-fade"),
					h.Div(
						h.Class("relative w-64 h-64 md:w-80 md:h-80 rounded-full overflow-hidden border-4 border-white shadow-lg transition-transform duration-300 hover:scale-105 hover:rotate-3"),
						h.Img(
							h.Src(cat.Hero.Image.Src),
							h.Alt(cat.Hero.Image.Alt),
							h.Class("absolute inset-0 h-full w-full object-cover rounded-full"),
						),
					),
				)
			}),
		),
	)
}
