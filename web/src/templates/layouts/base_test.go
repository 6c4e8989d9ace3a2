package layouts

import (
	"context"
	"strings"
	"testing"

	"github.com/nfrund/salon/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
)

func render(t *testing.T, p BaseProps) string {
	t.Helper()
	var buf strings.Builder
	require.NoError(t, Base(p, view.Templ(g.El("main", g.Text("page body")))).Render(context.Background(), &buf))
	return buf.String()
}

func TestCalculateTitle(t *testing.T) {
	assert.Equal(t, "Salon", CalculateTitle("", "Salon"))
	assert.Equal(t, "Home", CalculateTitle("Home", ""))
	assert.Equal(t, "Home - Salon", CalculateTitle("Home", "Salon"))
}

func TestBase(t *testing.T) {
	html := render(t, BaseProps{Title: "Home", Business: "Swati Makeover"})

	assert.True(t, strings.HasPrefix(html, "<!doctype html>"))
	assert.Contains(t, html, "<title>Home - Swati Makeover</title>")
	assert.Contains(t, html, "<main>page body</main>")
	assert.Contains(t, html, "/static/site.js")
	assert.NotContains(t, html, `id="flash"`)
	assert.NotContains(t, html, "WebSocket")
}

func TestBase_FlashAndLiveReload(t *testing.T) {
	html := render(t, BaseProps{
		Flash:      view.FlashData{Success: []string{"Message sent"}, Error: []string{"Oops"}},
		LiveReload: true,
	})

	assert.Contains(t, html, `id="flash"`)
	assert.Contains(t, html, "Message sent")
	assert.Contains(t, html, "Oops")
	assert.Contains(t, html, "/ws/livereload")
}
