// Package goquery extracts component prop metadata from documentation page
// HTML using CSS selector fallback lists.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/dsdoc/dsdoc"
)

// Ensure Parser implements dsdoc.PropParser at compile time.
var _ dsdoc.PropParser = (*Parser)(nil)

// Parser extracts props from the properties table of a rendered
// documentation page.
type Parser struct {
	tableSelectors       []string
	nameSelectors        []string
	descriptionSelectors []string
	typeSelectors        []string
	controlProbes        []ControlProbe
	converter            dsdoc.Converter
}

// Option configures a Parser.
type Option func(*Parser)

// WithConverter renders prop descriptions through an HTML to Markdown
// converter instead of using plain text, preserving code spans and links.
func WithConverter(c dsdoc.Converter) Option {
	return func(p *Parser) {
		p.converter = c
	}
}

// WithTableSelectors overrides the table selector fallback list.
func WithTableSelectors(selectors []string) Option {
	return func(p *Parser) {
		p.tableSelectors = selectors
	}
}

// NewParser creates a Parser with the default selector lists.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		tableSelectors:       DefaultTableSelectors,
		nameSelectors:        DefaultNameSelectors,
		descriptionSelectors: DefaultDescriptionSelectors,
		typeSelectors:        DefaultTypeSelectors,
		controlProbes:        DefaultControlProbes,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseProps locates the properties table and returns one Prop per data
// row. A page without a recognizable table yields an empty list, not an
// error.
func (p *Parser) ParseProps(html string) ([]dsdoc.Prop, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, dsdoc.Errorf(dsdoc.EINVALID, "failed to parse HTML: %v", err)
	}

	table := p.findTable(doc)
	if table == nil {
		return []dsdoc.Prop{}, nil
	}

	props := []dsdoc.Prop{}
	table.Find("tr").Each(func(_ int, row *goquery.Selection) {
		// Header rows live in thead; data rows may still use th for the
		// name cell, so cells are collected across both tags.
		if row.ParentsFiltered("thead").Length() > 0 {
			return
		}
		cells := row.Find("th, td")
		if cells.Length() < 3 {
			return
		}
		if prop, ok := p.parseRow(cells); ok {
			props = append(props, prop)
		}
	})

	return props, nil
}

// findTable returns the first element matching the table selector list, or
// nil when the page has no recognizable properties table.
func (p *Parser) findTable(doc *goquery.Document) *goquery.Selection {
	for _, selector := range p.tableSelectors {
		if table := doc.Find(selector).First(); table.Length() > 0 {
			return table
		}
	}
	return nil
}

func (p *Parser) parseRow(cells *goquery.Selection) (dsdoc.Prop, bool) {
	name := p.parseName(cells.Eq(0))
	if name == "" {
		return dsdoc.Prop{}, false
	}

	prop := dsdoc.Prop{
		Name:        name,
		Description: p.parseDescription(cells.Eq(1)),
		Type:        p.parseTypes(cells.Eq(1)),
		Required:    false,
	}

	// Four or more cells is the full layout: name, description, default,
	// control. With exactly three the last cell is ambiguous: it is the
	// control cell when a widget is present, otherwise a default column.
	if cells.Length() >= 4 {
		prop.DefaultValue = parseDefault(cells.Eq(2))
		prop.Control, prop.Options = p.parseControl(cells.Eq(3))
	} else {
		last := cells.Eq(cells.Length() - 1)
		prop.Control, prop.Options = p.parseControl(last)
		if prop.Control == dsdoc.ControlNone {
			prop.DefaultValue = parseDefault(last)
		}
	}

	return prop, true
}

func (p *Parser) parseName(cell *goquery.Selection) string {
	for _, selector := range p.nameSelectors {
		if el := cell.Find(selector).First(); el.Length() > 0 {
			if name := strings.TrimSpace(el.Text()); name != "" {
				return name
			}
		}
	}
	return strings.TrimSpace(cell.Text())
}

func (p *Parser) parseDescription(cell *goquery.Selection) *string {
	for _, selector := range p.descriptionSelectors {
		el := cell.Find(selector).First()
		if el.Length() == 0 {
			continue
		}
		text := strings.TrimSpace(el.Text())
		if p.converter != nil {
			if inner, err := el.Html(); err == nil {
				if md, err := p.converter.Convert(inner); err == nil && strings.TrimSpace(md) != "" {
					text = strings.TrimSpace(md)
				}
			}
		}
		if text == "" {
			continue
		}
		return &text
	}
	return nil
}

// parseTypes scans the description cell for type token spans. Tokens are
// split on "|" to unpack unions, stripped of quote characters and
// de-duplicated in document order. An empty result becomes ["unknown"].
func (p *Parser) parseTypes(cell *goquery.Selection) []string {
	for _, selector := range p.typeSelectors {
		matches := cell.Find(selector)
		if matches.Length() == 0 {
			continue
		}
		seen := make(map[string]bool)
		var types []string
		matches.Each(func(_ int, el *goquery.Selection) {
			for _, token := range strings.Split(el.Text(), "|") {
				token = strings.Trim(strings.TrimSpace(token), "\"'`")
				if token == "" || seen[token] {
					continue
				}
				seen[token] = true
				types = append(types, token)
			}
		})
		if len(types) > 0 {
			return types
		}
	}
	return []string{dsdoc.UnknownType}
}

// parseDefault reads the default value cell. A literal "-" or empty cell
// means no default.
func parseDefault(cell *goquery.Selection) *string {
	text := strings.TrimSpace(cell.Text())
	if text == "" || text == "-" {
		return nil
	}
	return &text
}

func (p *Parser) parseControl(cell *goquery.Selection) (dsdoc.Control, []string) {
	for _, probe := range p.controlProbes {
		el := cell.Find(probe.Selector).First()
		if el.Length() == 0 {
			continue
		}
		if probe.Control == dsdoc.ControlSelect {
			return dsdoc.ControlSelect, parseOptions(el)
		}
		return probe.Control, nil
	}
	return dsdoc.ControlNone, nil
}

func parseOptions(sel *goquery.Selection) []string {
	var options []string
	sel.Find("option").Each(func(_ int, opt *goquery.Selection) {
		text := strings.TrimSpace(opt.Text())
		if text == "" || isPlaceholderOption(text) {
			return
		}
		options = append(options, text)
	})
	return options
}

func isPlaceholderOption(text string) bool {
	for _, placeholder := range PlaceholderOptions {
		if strings.EqualFold(text, placeholder) {
			return true
		}
	}
	return false
}
