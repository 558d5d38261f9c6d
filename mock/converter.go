package mock

import "github.com/dsdoc/dsdoc"

var _ dsdoc.Converter = (*Converter)(nil)

// Converter is a mock implementation of dsdoc.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
