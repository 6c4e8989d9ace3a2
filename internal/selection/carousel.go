package selection

import "errors"

// ErrEmptyCarousel is returned when a carousel is built over zero images.
var ErrEmptyCarousel = errors.New("carousel needs at least one image")

// Carousel tracks the visible position in a fixed-length image rotation.
type Carousel struct {
	index int
	size  int
}

// NewCarousel creates a carousel over size images positioned at the first one.
func NewCarousel(size int) (*Carousel, error) {
	return NewCarouselAt(size, 0)
}

// NewCarouselAt creates a carousel positioned at index. Out-of-range indices,
// including negative ones, are wrapped into [0, size).
func NewCarouselAt(size, index int) (*Carousel, error) {
	if size < 1 {
		return nil, ErrEmptyCarousel
	}
	return &Carousel{index: wrap(index, size), size: size}, nil
}

// Index returns the current position.
func (c *Carousel) Index() int { return c.index }

// Len returns the number of images in the rotation.
func (c *Carousel) Len() int { return c.size }

// Advance moves to the next image, wrapping past the last one.
func (c *Carousel) Advance() int {
	c.index = (c.index + 1) % c.size
	return c.index
}

// Retreat moves to the previous image, wrapping before the first one.
func (c *Carousel) Retreat() int {
	c.index = (c.index - 1 + c.size) % c.size
	return c.index
}

// Next returns the index Advance would move to without moving.
func (c *Carousel) Next() int { return (c.index + 1) % c.size }

// Prev returns the index Retreat would move to without moving.
func (c *Carousel) Prev() int { return (c.index - 1 + c.size) % c.size }

func wrap(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
