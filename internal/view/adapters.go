package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
)

// nodeComponent lets a gomponents tree sit inside a templ layout.
type nodeComponent struct {
	node g.Node
}

func (n nodeComponent) Render(_ context.Context, w io.Writer) error {
	return n.node.Render(w)
}

// Templ wraps a gomponents node as a templ.Component.
func Templ(node g.Node) templ.Component {
	return nodeComponent{node: node}
}

// componentNode lets a templ component sit inside a gomponents tree. The
// request context is captured at wrap time since gomponents does not pass one.
type componentNode struct {
	ctx       context.Context
	component templ.Component
}

func (c componentNode) Render(w io.Writer) error {
	return c.component.Render(c.ctx, w)
}

// Node wraps a templ.Component as a gomponents node rendered with ctx.
func Node(ctx context.Context, component templ.Component) g.Node {
	return componentNode{ctx: ctx, component: component}
}
