package selection

// Snapshot is the serialisable form of a page's selection, as carried in
// page URLs.
type Snapshot struct {
	Category string
	Image    int
	MenuOpen bool
}

// State is the full interactive state of one page instance.
type State struct {
	Category *CategorySelector
	Carousel *Carousel
	Menu     Menu
}

// NewState creates the initial state: first category, first image, menu
// closed.
func NewState(categories []string, images int) (*State, error) {
	return Restore(categories, images, Snapshot{})
}

// Restore rebuilds a page's state from a snapshot. Snapshot values outside
// the known shape are normalised rather than rejected.
func Restore(categories []string, images int, snap Snapshot) (*State, error) {
	cat, err := NewCategorySelectorAt(categories, snap.Category)
	if err != nil {
		return nil, err
	}
	car, err := NewCarouselAt(images, snap.Image)
	if err != nil {
		return nil, err
	}
	return &State{
		Category: cat,
		Carousel: car,
		Menu:     Menu{open: snap.MenuOpen},
	}, nil
}

// Snapshot captures the current values.
func (s *State) Snapshot() Snapshot {
	return Snapshot{
		Category: s.Category.Active(),
		Image:    s.Carousel.Index(),
		MenuOpen: s.Menu.Open(),
	}
}
