package selection_test

import (
	"testing"

	"github.com/nfrund/salon/internal/selection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCarousel_FiveImages(t *testing.T) {
	c, err := selection.NewCarousel(5)
	require.NoError(t, err)
	assert.Equal(t, 0, c.Index())

	assert.Equal(t, 1, c.Advance())
	for i := 0; i < 4; i++ {
		c.Advance()
	}
	assert.Equal(t, 0, c.Index(), "should wrap back to the first image")

	assert.Equal(t, 4, c.Retreat(), "retreat from the first image wraps to the last")
}

func TestCarousel_CyclicClosure(t *testing.T) {
	for n := 1; n <= 8; n++ {
		for start := 0; start < n; start++ {
			c, err := selection.NewCarouselAt(n, start)
			require.NoError(t, err)
			for i := 0; i < n; i++ {
				c.Advance()
			}
			assert.Equal(t, start, c.Index(), "n=%d start=%d", n, start)
		}
	}
}

func TestCarousel_RetreatInvertsAdvance(t *testing.T) {
	for n := 1; n <= 8; n++ {
		for start := 0; start < n; start++ {
			c, _ := selection.NewCarouselAt(n, start)
			c.Advance()
			c.Retreat()
			assert.Equal(t, start, c.Index(), "retreat(advance(%d)) n=%d", start, n)

			c.Retreat()
			c.Advance()
			assert.Equal(t, start, c.Index(), "advance(retreat(%d)) n=%d", start, n)
		}
	}
}

func TestCarousel_StaysInBounds(t *testing.T) {
	c, err := selection.NewCarousel(3)
	require.NoError(t, err)

	moves := []bool{true, false, false, false, true, false, false, false, false, true, true, true, true}
	for _, forward := range moves {
		if forward {
			c.Advance()
		} else {
			c.Retreat()
		}
		assert.GreaterOrEqual(t, c.Index(), 0)
		assert.Less(t, c.Index(), c.Len())
	}
}

func TestCarousel_PeekDoesNotMove(t *testing.T) {
	c, _ := selection.NewCarouselAt(5, 0)
	assert.Equal(t, 1, c.Next())
	assert.Equal(t, 4, c.Prev())
	assert.Equal(t, 0, c.Index())
}

func TestNewCarouselAt_Normalises(t *testing.T) {
	tests := []struct {
		size, index, want int
	}{
		{5, 0, 0},
		{5, 4, 4},
		{5, 5, 0},
		{5, 12, 2},
		{5, -1, 4},
		{5, -11, 4},
		{1, 7, 0},
	}
	for _, tt := range tests {
		c, err := selection.NewCarouselAt(tt.size, tt.index)
		require.NoError(t, err)
		assert.Equal(t, tt.want, c.Index(), "size=%d index=%d", tt.size, tt.index)
	}
}

func TestNewCarousel_Empty(t *testing.T) {
	_, err := selection.NewCarousel(0)
	assert.ErrorIs(t, err, selection.ErrEmptyCarousel)

	_, err = selection.NewCarouselAt(-3, 1)
	assert.ErrorIs(t, err, selection.ErrEmptyCarousel)
}
