package routes

import (
	"testing"

	"github.com/nfrund/salon/internal/selection"
	"github.com/stretchr/testify/assert"
)

func TestPageURL(t *testing.T) {
	assert.Equal(t, "/", PageURL(selection.Snapshot{}, ""))
	assert.Equal(t, "/?tab=coloring#services", PageURL(selection.Snapshot{Category: "coloring"}, "services"))
	assert.Equal(t, "/?image=3&menu=1&tab=haircuts#about",
		PageURL(selection.Snapshot{Category: "haircuts", Image: 3, MenuOpen: true}, "about"))
}

func TestFragmentURLs(t *testing.T) {
	s := selection.Snapshot{Category: "haircuts", Image: 4}
	assert.Equal(t, "/fragments/carousel/next?image=4&tab=haircuts", CarouselNextURL(s))
	assert.Equal(t, "/fragments/carousel/prev?image=4&tab=haircuts", CarouselPrevURL(s))
	assert.Equal(t, "/fragments/services/styling?image=4&tab=haircuts", ServicesTabURL("styling", s))
	assert.Equal(t, "/fragments/menu/toggle?image=4&menu=1&tab=haircuts",
		MenuToggleURL(selection.Snapshot{Category: "haircuts", Image: 4, MenuOpen: true}))
	assert.Equal(t, "/fragments/menu/toggle", MenuToggleURL(selection.Snapshot{}))
}
