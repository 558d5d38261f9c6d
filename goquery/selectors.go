package goquery

import "github.com/dsdoc/dsdoc"

// Selector fallback lists for locating prop metadata in rendered
// documentation pages. Documentation generators vary across versions and
// themes, so every lookup is an ordered list tried front to back, never a
// single hard-coded path. The lists are configuration data: callers can
// swap them per site via parser options.

// DefaultTableSelectors locate the properties table, most specific first.
var DefaultTableSelectors = []string{
	"table.docblock-argstable",
	".docblock-argstable",
	".sbdocs-content table",
	"#storybook-docs table",
	"main table",
	"table",
}

// DefaultNameSelectors locate the prop name inside the first cell. When
// none match, the raw cell text is used.
var DefaultNameSelectors = []string{
	"code",
	"span",
	"strong",
	"b",
}

// DefaultDescriptionSelectors locate the prose description inside the
// second cell. The cell also carries type markup, so raw cell text is never
// used as a description.
var DefaultDescriptionSelectors = []string{
	`[class*="description"]`,
	"p",
}

// DefaultTypeSelectors locate type and allowed-value token spans inside the
// second cell. Matched text is split on "|" into individual type entries.
var DefaultTypeSelectors = []string{
	`[class*="type"] span`,
	`[class*="enum"] span`,
	"code",
}

// ControlProbe pairs a CSS selector with the control kind its presence
// indicates.
type ControlProbe struct {
	Selector string
	Control  dsdoc.Control
}

// DefaultControlProbes identify the editing widget in the control cell.
// Probes run in order; the bare input probe comes last so the typed input
// variants win.
var DefaultControlProbes = []ControlProbe{
	{Selector: "select", Control: dsdoc.ControlSelect},
	{Selector: `input[type="number"]`, Control: dsdoc.ControlNumber},
	{Selector: `input[type="checkbox"]`, Control: dsdoc.ControlBoolean},
	{Selector: "textarea", Control: dsdoc.ControlText},
	{Selector: `[class*="rejt"]`, Control: dsdoc.ControlObject},
	{Selector: `[class*="json"]`, Control: dsdoc.ControlObject},
	{Selector: "input", Control: dsdoc.ControlText},
}

// PlaceholderOptions are select option labels that represent "nothing
// chosen" rather than a real allowed value.
var PlaceholderOptions = []string{
	"Choose option...",
	"Select...",
	"-",
}
