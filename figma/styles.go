package figma

import (
	"fmt"
	"math"
	"sort"
)

// Font size bands for derived typography names.
const (
	headingMinSize  = 20
	subtitleMinSize = 16
)

// collector accumulates design tokens and component usage during one walk.
type collector struct {
	components map[string]ComponentMeta

	colors     map[string]bool
	spacing    map[float64]bool
	typography map[string]TextStyle

	usage      map[string]*ComponentUsage
	usageOrder []string
}

func newCollector(components map[string]ComponentMeta) *collector {
	return &collector{
		components: components,
		colors:     make(map[string]bool),
		spacing:    make(map[float64]bool),
		typography: make(map[string]TextStyle),
		usage:      make(map[string]*ComponentUsage),
	}
}

// recordFills collects the node's visible solid fill colors.
func (c *collector) recordFills(fills []Paint) {
	for i := range fills {
		if hex, ok := solidHex(&fills[i]); ok {
			c.colors[hex] = true
		}
	}
}

// recordSpacing collects a non-zero spacing or padding value.
func (c *collector) recordSpacing(v float64) {
	if v != 0 {
		c.spacing[v] = true
	}
}

// recordPadding collects the container's non-zero padding values and
// returns the padding block for the layout node, or nil when every side is
// zero.
func (c *collector) recordPadding(node *Node) *Padding {
	if node.PaddingTop == 0 && node.PaddingRight == 0 && node.PaddingBottom == 0 && node.PaddingLeft == 0 {
		return nil
	}
	for _, v := range []float64{node.PaddingTop, node.PaddingRight, node.PaddingBottom, node.PaddingLeft} {
		c.recordSpacing(v)
	}
	return &Padding{
		Top:    node.PaddingTop,
		Right:  node.PaddingRight,
		Bottom: node.PaddingBottom,
		Left:   node.PaddingLeft,
	}
}

// recordText resolves a text node's typography, registers it under a
// derived name, and returns it for the layout node.
func (c *collector) recordText(node *Node) *TextStyle {
	if node.Style == nil {
		return nil
	}

	style := TextStyle{
		FontFamily: node.Style.FontFamily,
		FontSize:   node.Style.FontSize,
		FontWeight: int(node.Style.FontWeight),
		TextAlign:  node.Style.TextAlignHorizontal,
		LineHeight: node.Style.LineHeightPx,
	}
	if hex, ok := firstSolidHex(node.Fills); ok {
		style.Color = hex
	}

	c.recordTypography(style)
	return &style
}

// recordTypography registers a style under its size-band name. The first
// style of a band keeps the plain name; a different style colliding on the
// same name is re-keyed with its font weight.
func (c *collector) recordTypography(style TextStyle) {
	name := typographyName(style.FontSize)
	existing, ok := c.typography[name]
	if !ok {
		c.typography[name] = style
		return
	}
	if existing == style {
		return
	}
	weighted := fmt.Sprintf("%s-%d", name, style.FontWeight)
	if _, ok := c.typography[weighted]; !ok {
		c.typography[weighted] = style
	}
}

// typographyName derives a token name from a font size: heading-* for large
// sizes, subtitle-* for medium, body-* otherwise.
func typographyName(size float64) string {
	px := int(math.Round(size))
	switch {
	case size >= headingMinSize:
		return fmt.Sprintf("heading-%d", px)
	case size >= subtitleMinSize:
		return fmt.Sprintf("subtitle-%d", px)
	default:
		return fmt.Sprintf("body-%d", px)
	}
}

// recordInstance resolves the instance's friendly component name through
// the side-table, counts the usage, and unions any VARIANT property values.
func (c *collector) recordInstance(node *Node) string {
	name := node.Name
	if meta, ok := c.components[node.ComponentID]; ok && meta.Name != "" {
		name = meta.Name
	}

	u, ok := c.usage[name]
	if !ok {
		u = &ComponentUsage{Name: name}
		c.usage[name] = u
		c.usageOrder = append(c.usageOrder, name)
	}
	u.Count++

	for _, prop := range node.ComponentProperties {
		if prop.Type != "VARIANT" {
			continue
		}
		value, ok := prop.Value.(string)
		if !ok || value == "" {
			continue
		}
		if !contains(u.Variants, value) {
			u.Variants = append(u.Variants, value)
		}
	}

	return name
}

// componentUsage returns the accumulated usages in first-seen order, with
// each variant set sorted.
func (c *collector) componentUsage() []ComponentUsage {
	out := make([]ComponentUsage, 0, len(c.usageOrder))
	for _, name := range c.usageOrder {
		u := *c.usage[name]
		sort.Strings(u.Variants)
		out = append(out, u)
	}
	return out
}

// styles returns the collected tokens with deterministic ordering.
func (c *collector) styles() Styles {
	colors := make([]string, 0, len(c.colors))
	for hex := range c.colors {
		colors = append(colors, hex)
	}
	sort.Strings(colors)

	spacing := make([]float64, 0, len(c.spacing))
	for v := range c.spacing {
		spacing = append(spacing, v)
	}
	sort.Float64s(spacing)

	return Styles{
		Colors:     colors,
		Spacing:    spacing,
		Typography: c.typography,
	}
}

// solidHex converts a visible solid paint to an uppercase hex color.
func solidHex(p *Paint) (string, bool) {
	if p.Type != "SOLID" || p.Color == nil {
		return "", false
	}
	if p.Visible != nil && !*p.Visible {
		return "", false
	}
	return fmt.Sprintf("#%02X%02X%02X",
		channel(p.Color.R), channel(p.Color.G), channel(p.Color.B)), true
}

// firstSolidHex returns the first visible solid fill color.
func firstSolidHex(fills []Paint) (string, bool) {
	for i := range fills {
		if hex, ok := solidHex(&fills[i]); ok {
			return hex, true
		}
	}
	return "", false
}

func channel(v float64) int {
	return int(math.Round(v * 255))
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
