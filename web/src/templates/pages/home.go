package pages

import (
	"fmt"

	"github.com/nfrund/salon/internal/domain"
	"github.com/nfrund/salon/internal/selection"
	"github.com/nfrund/salon/web/src/templates/partials"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// HomeData is everything the landing page renders from.
type HomeData struct {
	Catalog *domain.Catalog
	State   selection.Snapshot
	Form    partials.ContactForm
}

// Home renders the page body: header, every section and the footer.
func Home(d HomeData) g.Node {
	cat := d.Catalog
	return h.Div(
		partials.Header(cat, d.State),
		h.Main(
			hero(cat),
			reveal(about(cat, d.State)),
			reveal(gallery(cat.Gallery)),
			reveal(services(cat, d.State)),
			reveal(testimonials(cat.Testimonials)),
			reveal(contact(cat, d.Form)),
		),
		footer(cat),
	)
}

// reveal marks a section for the one-shot entrance animation.
func reveal(section g.Node) g.Node {
	return h.Div(g.Attr("data-reveal", ""), section)
}

func sectionHeading(text string) g.Node {
	return h.H2(h.Class("text-3xl font-bold text-center mb-10"), g.Text(text))
}

func footer(cat *domain.Catalog) g.Node {
	return h.Footer(
		h.Class("bg-gray-800 text-white py-8"),
		h.Div(
			h.Class("container mx-auto px-4 text-center"),
			h.P(g.Raw("&copy; "), g.Text(fmt.Sprintf("%d %s. All rights reserved.", cat.Year, cat.Business))),
		),
	)
}
