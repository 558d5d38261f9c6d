package mock

import "github.com/dsdoc/dsdoc"

var _ dsdoc.PropParser = (*PropParser)(nil)

// PropParser is a mock implementation of dsdoc.PropParser.
type PropParser struct {
	ParsePropsFn func(html string) ([]dsdoc.Prop, error)
}

func (p *PropParser) ParseProps(html string) ([]dsdoc.Prop, error) {
	return p.ParsePropsFn(html)
}
