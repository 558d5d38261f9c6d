package dsdoc

// PropParser extracts component prop metadata from documentation page HTML.
type PropParser interface {
	// ParseProps locates the properties table in the page and returns one
	// Prop per data row. A page without a recognizable table yields an
	// empty list, not an error; errors are reserved for unreadable input.
	ParseProps(html string) ([]Prop, error)
}
