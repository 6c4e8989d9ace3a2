package partials

import (
	"strings"
	"testing"

	"github.com/nfrund/salon/internal/domain"
	"github.com/nfrund/salon/internal/selection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
)

func renderNode(t *testing.T, n g.Node) string {
	t.Helper()
	var buf strings.Builder
	require.NoError(t, n.Render(&buf))
	return buf.String()
}

var testImages = []domain.Image{
	{Src: "/0.jpg", Alt: "zero"},
	{Src: "/1.jpg", Alt: "one"},
	{Src: "/2.jpg", Alt: "two"},
}

func TestNavLabel(t *testing.T) {
	assert.Equal(t, "About", NavLabel("about"))
	assert.Equal(t, "Testimonials", NavLabel("testimonials"))
}

func TestHeader_Menu(t *testing.T) {
	cat := &domain.Catalog{Business: "Swati Makeover", Nav: []string{"about", "contact"}}

	closed := renderNode(t, Header(cat, selection.Snapshot{Category: "haircuts"}))
	assert.Contains(t, closed, `id="site-header"`)
	assert.Contains(t, closed, `aria-expanded="false"`)
	assert.Contains(t, closed, " hidden ")
	assert.Contains(t, closed, `hx-get="/fragments/menu/toggle?tab=haircuts"`)
	assert.Contains(t, closed, `href="/?menu=1&amp;tab=haircuts"`)
	assert.Contains(t, closed, `<a href="#about"`)
	assert.Contains(t, closed, ">Contact</a>")
	assert.NotContains(t, closed, "<img", "no logo configured")

	open := renderNode(t, Header(cat, selection.Snapshot{Category: "haircuts", MenuOpen: true}))
	assert.Contains(t, open, `aria-expanded="true"`)
	assert.Contains(t, open, " block ")
	assert.Contains(t, open, `hx-get="/fragments/menu/toggle?menu=1&amp;tab=haircuts"`)
}

func TestCarousel(t *testing.T) {
	html := renderNode(t, Carousel(testImages, selection.Snapshot{Image: 0}))

	assert.Contains(t, html, `src="/0.jpg"`)
	assert.Contains(t, html, `data-index="0"`)
	assert.Contains(t, html, `hx-get="/fragments/carousel/next"`)
	assert.Contains(t, html, `href="/?image=2#about"`, "previous wraps to the last image")
	assert.Contains(t, html, `href="/?image=1#about"`)
	assert.Contains(t, html, "Image 1 of 3")
}

func TestCarousel_WrapsOutOfRange(t *testing.T) {
	html := renderNode(t, Carousel(testImages, selection.Snapshot{Image: 4}))
	assert.Contains(t, html, `src="/1.jpg"`)

	assert.Nil(t, Carousel(nil, selection.Snapshot{}))
}

func TestServiceTabs(t *testing.T) {
	categories := []domain.ServiceCategory{
		{ID: "haircuts", Label: "Haircuts", Items: []domain.ServiceItem{{Name: "Women's Haircut", Price: "$60+"}}},
		{ID: "coloring", Label: "Coloring", Items: []domain.ServiceItem{{Name: "Balayage", Price: "$150+"}}},
	}

	html := renderNode(t, ServiceTabs(categories, selection.Snapshot{Category: "coloring"}))

	assert.Contains(t, html, "Balayage")
	assert.Contains(t, html, "$150+")
	assert.NotContains(t, html, "Women&#39;s Haircut")
	assert.Contains(t, html, `id="services-panel-coloring"`)
	assert.Contains(t, html, `hx-get="/fragments/services/haircuts?tab=coloring"`)
	assert.Contains(t, html, `href="/?tab=haircuts#services"`)
	assert.Equal(t, 1, strings.Count(html, `aria-selected="true"`))
	assert.Contains(t, html, "grid-cols-2")
}

func TestContactFormView(t *testing.T) {
	blank := renderNode(t, ContactFormView(ContactForm{}))
	assert.Contains(t, blank, `hx-post="/contact"`)
	assert.Contains(t, blank, `action="/contact"`)
	assert.NotContains(t, blank, `role="status"`)
	assert.NotContains(t, blank, "text-red-600")

	invalid := renderNode(t, ContactFormView(ContactForm{
		Name:   "Emily <R>",
		Errors: map[string]string{"email": "Please enter a valid email address."},
	}))
	assert.Contains(t, invalid, `value="Emily &lt;R&gt;"`)
	assert.Contains(t, invalid, "Please enter a valid email address.")
	assert.Contains(t, invalid, "border-red-500")

	sent := renderNode(t, ContactFormView(ContactForm{Sent: true}))
	assert.Contains(t, sent, `role="status"`)
}
