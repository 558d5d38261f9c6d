// Package figma extracts compact layout schemas from design files through
// the public REST API. It is a self-contained sibling of the documentation
// pipeline: a rate-limited API client, a file URL parser and a recursive
// node-tree transform that collects design tokens as it walks.
package figma

import (
	"encoding/json"
	"math"
	"strconv"
	"time"
)

// Layout is the extracted layout schema for one target node.
type Layout struct {
	FileKey     string           `json:"fileKey"`
	NodeID      string           `json:"nodeId"`
	Name        string           `json:"name"`
	Root        *LayoutNode      `json:"root"`
	Components  []ComponentUsage `json:"components"`
	Styles      Styles           `json:"styles"`
	ExtractedAt time.Time        `json:"extractedAt"`
}

// LayoutNode is one node of the extracted layout tree. The tree mirrors the
// source document tree, which is guaranteed finite and acyclic, so the walk
// that builds it has no depth bound.
type LayoutNode struct {
	Name        string        `json:"name"`
	Type        string        `json:"type"`
	LayoutMode  string        `json:"layoutMode,omitempty"`
	Width       Dimension     `json:"width"`
	Height      Dimension     `json:"height"`
	Padding     *Padding      `json:"padding,omitempty"`
	ItemSpacing float64       `json:"itemSpacing,omitempty"`
	Text        string        `json:"text,omitempty"`
	Typography  *TextStyle    `json:"typography,omitempty"`
	Component   string        `json:"component,omitempty"`
	Children    []*LayoutNode `json:"children,omitempty"`
}

// Dimension is one axis of a node's resolved size: the keyword FILL or HUG,
// or a fixed pixel value. It serializes as a bare string or number.
type Dimension struct {
	Keyword string
	Pixels  int
}

var (
	// Fill sizes the axis to the available space in the parent.
	Fill = Dimension{Keyword: "FILL"}

	// Hug sizes the axis to the node's content.
	Hug = Dimension{Keyword: "HUG"}
)

// Px returns a fixed pixel dimension, rounded to the nearest integer.
func Px(v float64) Dimension {
	return Dimension{Pixels: int(math.Round(v))}
}

func (d Dimension) MarshalJSON() ([]byte, error) {
	if d.Keyword != "" {
		return json.Marshal(d.Keyword)
	}
	return json.Marshal(d.Pixels)
}

func (d Dimension) String() string {
	if d.Keyword != "" {
		return d.Keyword
	}
	return strconv.Itoa(d.Pixels)
}

// Padding is a container's edge padding. Only containers with at least one
// non-zero side carry one.
type Padding struct {
	Top    float64 `json:"top,omitempty"`
	Right  float64 `json:"right,omitempty"`
	Bottom float64 `json:"bottom,omitempty"`
	Left   float64 `json:"left,omitempty"`
}

// TextStyle is the resolved typography of a text node. Only solid fill
// colors are extracted; gradient and image fills are ignored.
type TextStyle struct {
	FontFamily string  `json:"fontFamily"`
	FontSize   float64 `json:"fontSize"`
	FontWeight int     `json:"fontWeight"`
	TextAlign  string  `json:"textAlign,omitempty"`
	LineHeight float64 `json:"lineHeight,omitempty"`
	Color      string  `json:"color,omitempty"`
}

// Styles holds the design tokens collected across one walk: distinct solid
// colors as uppercase hex, distinct non-zero padding/spacing values, and
// typography styles keyed by a derived name.
type Styles struct {
	Colors     []string             `json:"colors"`
	Spacing    []float64            `json:"spacing"`
	Typography map[string]TextStyle `json:"typography"`
}

// ComponentUsage counts the instances of one component encountered during a
// walk, together with the variant values seen on them.
type ComponentUsage struct {
	Name     string   `json:"name"`
	Count    int      `json:"count"`
	Variants []string `json:"variants,omitempty"`
}
