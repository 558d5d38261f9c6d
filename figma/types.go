package figma

// Wire types for the nodes endpoint. Only the fields the layout extractor
// reads are declared; everything else in the response is ignored.

// NodesResponse is the payload of GET /v1/files/{key}/nodes.
type NodesResponse struct {
	Name  string                `json:"name"`
	Nodes map[string]*NodeEntry `json:"nodes"`
}

// NodeEntry is one requested node subtree plus its component side-table.
type NodeEntry struct {
	Document   *Node                    `json:"document"`
	Components map[string]ComponentMeta `json:"components"`
}

// ComponentMeta maps a component id to its friendly name.
type ComponentMeta struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

// Node is one node of the document tree.
type Node struct {
	ID                     string                       `json:"id"`
	Name                   string                       `json:"name"`
	Type                   string                       `json:"type"`
	Children               []*Node                      `json:"children,omitempty"`
	AbsoluteBoundingBox    *BoundingBox                 `json:"absoluteBoundingBox,omitempty"`
	LayoutMode             string                       `json:"layoutMode,omitempty"`
	LayoutGrow             float64                      `json:"layoutGrow,omitempty"`
	LayoutAlign            string                       `json:"layoutAlign,omitempty"`
	LayoutSizingHorizontal string                       `json:"layoutSizingHorizontal,omitempty"`
	LayoutSizingVertical   string                       `json:"layoutSizingVertical,omitempty"`
	PaddingLeft            float64                      `json:"paddingLeft,omitempty"`
	PaddingRight           float64                      `json:"paddingRight,omitempty"`
	PaddingTop             float64                      `json:"paddingTop,omitempty"`
	PaddingBottom          float64                      `json:"paddingBottom,omitempty"`
	ItemSpacing            float64                      `json:"itemSpacing,omitempty"`
	Fills                  []Paint                      `json:"fills,omitempty"`
	Style                  *TypeStyle                   `json:"style,omitempty"`
	Characters             string                       `json:"characters,omitempty"`
	ComponentID            string                       `json:"componentId,omitempty"`
	ComponentProperties    map[string]ComponentProperty `json:"componentProperties,omitempty"`
}

// BoundingBox is a node's absolute bounding box in canvas coordinates.
type BoundingBox struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Paint is one fill of a node. A nil Visible means visible.
type Paint struct {
	Type    string   `json:"type"`
	Color   *Color   `json:"color,omitempty"`
	Opacity *float64 `json:"opacity,omitempty"`
	Visible *bool    `json:"visible,omitempty"`
}

// Color is an RGBA color with channels in [0, 1].
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// TypeStyle is the raw typography of a text node.
type TypeStyle struct {
	FontFamily          string  `json:"fontFamily"`
	FontWeight          float64 `json:"fontWeight"`
	FontSize            float64 `json:"fontSize"`
	TextAlignHorizontal string  `json:"textAlignHorizontal"`
	LineHeightPx        float64 `json:"lineHeightPx"`
}

// ComponentProperty is one exposed property of a component instance. Values
// are strings for VARIANT-typed properties and booleans otherwise.
type ComponentProperty struct {
	Type  string `json:"type"`
	Value any    `json:"value"`
}
