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

// CarouselID is the swap target for carousel navigation.
const CarouselID = "about-carousel"

// Carousel renders the image at s.Image with previous and next controls.
// Out-of-range positions are wrapped. An empty image list renders nothing.
func Carousel(images []domain.Image, s selection.Snapshot) g.Node {
	car, err := selection.NewCarouselAt(len(images), s.Image)
	if err != nil {
		return nil
	}
	s.Image = car.Index()
	img := images[s.Image]

	prev, next := s, s
	prev.Image = car.Prev()
	next.Image = car.Next()

	return h.Div(
		h.ID(CarouselID),
		h.Class("md:w-1/2 relative w-full"),
		g.Attr("data-index", fmt.Sprint(s.Image)),
		h.Div(
			h.Class("relative w-full h-[400px] animate-fade"),
			h.Img(
				h.Src(img.Src),
				h.Alt(img.Alt),
				h.Class("absolute inset-0 h-full w-full object-cover rounded-lg shadow-lg"),
			),
		),
		h.Div(
			h.Class("absolute top-1/2 left-0 -translate-y-1/2 flex justify-between w-full px-4"),
			carouselButton("Previous image", "chevron-left", routes.PageURL(prev, "about"), routes.CarouselPrevURL(s)),
			carouselButton("Next image", "chevron-right", routes.PageURL(next, "about"), routes.CarouselNextURL(s)),
		),
		h.P(
			h.Class("sr-only"),
			g.Attr("aria-live", "polite"),
			g.Textf("Image %d of %d", s.Image+1, len(images)),
		),
	)
}

func carouselButton(label, icon, href, fragment string) g.Node {
	return h.A(
		h.Href(href),
		hx.Get(fragment),
		hx.Target("#"+CarouselID),
		hx.Swap("outerHTML"),
		h.Aria("label", label),
		h.Class("inline-flex h-10 w-10 items-center justify-center rounded-md border bg-white/50 hover:bg-white/75"),
		Icon(icon, "h-6 w-6"),
	)
}
