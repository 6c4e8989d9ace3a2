package rendering

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// gomponentNode is the structural interface of gomponents.Node.
type gomponentNode interface {
	Render(w io.Writer) error
}

// UniversalRenderer implements echo.Renderer for templ components and
// gomponents nodes. The component is passed as the data argument of
// c.Render; the template name is ignored.
type UniversalRenderer struct{}

// NewUniversalRenderer creates a new UniversalRenderer instance.
func NewUniversalRenderer() *UniversalRenderer {
	return &UniversalRenderer{}
}

// Render implements echo.Renderer.
func (r *UniversalRenderer) Render(w io.Writer, _ string, data interface{}, c echo.Context) error {
	if c.Response().Header().Get(echo.HeaderContentType) == "" {
		c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	}
	return Write(c.Request().Context(), w, data)
}

// Write renders component to w.
func Write(ctx context.Context, w io.Writer, component interface{}) error {
	switch c := component.(type) {
	case templ.Component:
		return c.Render(ctx, w)
	case gomponentNode:
		return c.Render(w)
	default:
		return fmt.Errorf("unsupported component type: %T", component)
	}
}
