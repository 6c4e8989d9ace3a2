package selection

// Menu is the mobile navigation open/closed flag. The zero value is closed.
type Menu struct {
	open bool
}

// Open reports whether the menu is expanded.
func (m *Menu) Open() bool { return m.open }

// Toggle flips the menu and returns the new value.
func (m *Menu) Toggle() bool {
	m.open = !m.open
	return m.open
}
