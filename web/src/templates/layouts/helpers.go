package layouts

// CalculateTitle builds the document title from the page title and the
// business name.
func CalculateTitle(title, business string) string {
	switch {
	case title == "":
		return business
	case business == "":
		return title
	default:
		return title + " - " + business
	}
}
