package layouts

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/nfrund/salon/internal/livereload"
	"github.com/nfrund/salon/internal/routes"
	"github.com/nfrund/salon/internal/view"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const (
	tailwindCDN = "https://cdn.tailwindcss.com"
	htmxCDN     = "https://unpkg.com/htmx.org@2.0.3"

	// htmxConfig lets 422 responses swap so re-rendered forms show their
	// field errors.
	htmxConfig = `{"responseHandling":[{"code":"204","swap":false},{"code":"[23]..","swap":true},{"code":"422","swap":true},{"code":"[45]..","swap":false,"error":true}]}`
)

// BaseProps configures the document shell.
type BaseProps struct {
	Title       string
	Business    string
	Description string
	Flash       view.FlashData
	LiveReload  bool
}

// Base wraps body in the full HTML document.
func Base(p BaseProps, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return h.Doctype(
			h.HTML(
				h.Lang("en"),
				h.Head(
					h.Meta(h.Charset("utf-8")),
					h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
					g.If(p.Description != "", h.Meta(h.Name("description"), h.Content(p.Description))),
					g.El("title", g.Text(CalculateTitle(p.Title, p.Business))),
					h.Script(h.Src(tailwindCDN)),
					h.Meta(h.Name("htmx-config"), h.Content(htmxConfig)),
					h.Script(h.Src(htmxCDN), h.Defer()),
					h.Link(h.Rel("stylesheet"), h.Href(routes.Static+"/site.css")),
					h.Script(h.Src(routes.Static+"/site.js"), h.Defer()),
				),
				h.Body(
					h.Class("min-h-screen bg-gray-100"),
					flashBanner(p.Flash),
					view.Node(ctx, body),
					g.If(p.LiveReload, h.Script(g.Raw(livereload.Script(routes.LiveReload)))),
				),
			),
		).Render(w)
	})
}

func flashBanner(f view.FlashData) g.Node {
	if f.Empty() {
		return nil
	}
	return h.Div(
		h.ID("flash"),
		h.Class("fixed bottom-4 right-4 z-50 space-y-2"),
		g.Map(f.Success, func(msg string) g.Node {
			return h.Div(h.Class("rounded-lg bg-green-600 px-4 py-3 text-white shadow-lg"), g.Text(msg))
		}),
		g.Map(f.Error, func(msg string) g.Node {
			return h.Div(h.Class("rounded-lg bg-red-600 px-4 py-3 text-white shadow-lg"), g.Text(msg))
		}),
	)
}
