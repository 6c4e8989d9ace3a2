package pages

import (
	"github.com/nfrund/salon/internal/domain"
	"github.com/nfrund/salon/web/src/templates/partials"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

var contactIcons = map[domain.ContactKind]string{
	domain.ContactPhone:     "phone",
	domain.ContactEmail:     "mail",
	domain.ContactAddress:   "map-pin",
	domain.ContactInstagram: "instagram",
	domain.ContactFacebook:  "facebook",
}

func contact(cat *domain.Catalog, form partials.ContactForm) g.Node {
	return h.Section(
		h.ID("contact"),
		h.Class("py-20 bg-white"),
		h.Div(
			h.Class("container mx-auto px-4"),
			sectionHeading("Get in Touch"),
			h.Div(
				h.Class("flex flex-col md:flex-row gap-10"),
				partials.ContactFormView(form),
				h.Div(
					h.Class("md:w-1/2"),
					h.Div(
						h.Class("rounded-lg border bg-white shadow-sm"),
						h.Ul(
							h.Class("space-y-4 p-6"),
							g.Map(cat.Contact, contactEntry),
						),
					),
				),
			),
		),
	)
}

func contactEntry(e domain.ContactEntry) g.Node {
	var text g.Node = h.Span(g.Text(e.Text))
	if e.Link != "" {
		text = h.A(h.Href(e.Link), h.Class("text-blue-500 hover:underline"), g.Text(e.Text))
	}
	return h.Li(
		h.Class("flex items-center transition-transform hover:translate-x-2 hover:scale-105"),
		partials.Icon(contactIcons[e.Kind], "mr-2"),
		text,
	)
}
