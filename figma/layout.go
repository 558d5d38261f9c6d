package figma

import (
	"time"

	"github.com/dsdoc/dsdoc"
)

// containerTypes are the node types that carry auto-layout attributes and
// recurse into children.
var containerTypes = map[string]bool{
	"FRAME":         true,
	"GROUP":         true,
	"SECTION":       true,
	"COMPONENT":     true,
	"COMPONENT_SET": true,
	"INSTANCE":      true,
}

// ExtractLayout transforms the requested node's document tree into a layout
// schema, collecting colors, spacing and typography tokens along the way.
// The walk is plainly recursive: the source format guarantees a finite,
// acyclic tree and Go stacks grow on demand.
func ExtractLayout(resp *NodesResponse, nodeID string) (*Layout, error) {
	if resp == nil {
		return nil, dsdoc.Errorf(dsdoc.EINVALID, "nil nodes response")
	}
	entry, ok := resp.Nodes[nodeID]
	if !ok || entry == nil || entry.Document == nil {
		return nil, dsdoc.Errorf(dsdoc.ENOTFOUND, "node %q not found in file", nodeID)
	}

	c := newCollector(entry.Components)
	// The root has no parent, so its own layout mode orients the axis rules.
	root := c.walk(entry.Document, entry.Document.LayoutMode)

	return &Layout{
		NodeID:      nodeID,
		Name:        resp.Name,
		Root:        root,
		Components:  c.componentUsage(),
		Styles:      c.styles(),
		ExtractedAt: time.Now().UTC(),
	}, nil
}

// walk transforms one node and its subtree. parentMode is the layout mode of
// the enclosing container, which orients the grow/stretch axis rules.
func (c *collector) walk(node *Node, parentMode string) *LayoutNode {
	out := &LayoutNode{
		Name:   node.Name,
		Type:   node.Type,
		Width:  resolveSize(node, parentMode, axisWidth),
		Height: resolveSize(node, parentMode, axisHeight),
	}

	c.recordFills(node.Fills)

	if node.Type == "TEXT" {
		out.Text = node.Characters
		out.Typography = c.recordText(node)
		return out
	}

	if node.Type == "INSTANCE" {
		out.Component = c.recordInstance(node)
	}

	if containerTypes[node.Type] {
		out.LayoutMode = node.LayoutMode
		out.Padding = c.recordPadding(node)
		if node.ItemSpacing != 0 {
			out.ItemSpacing = node.ItemSpacing
			c.recordSpacing(node.ItemSpacing)
		}
		for _, child := range node.Children {
			out.Children = append(out.Children, c.walk(child, node.LayoutMode))
		}
	}

	return out
}

type axis int

const (
	axisWidth axis = iota
	axisHeight
)

// primaryAxis maps a layout mode to the axis it lays children out along.
// The second return is false when the mode carries no auto-layout.
func primaryAxis(mode string) (axis, bool) {
	switch mode {
	case "HORIZONTAL":
		return axisWidth, true
	case "VERTICAL":
		return axisHeight, true
	}
	return 0, false
}

// resolveSize resolves one axis of a node's size using a fixed precedence:
// a grow flag forces FILL along the parent's primary axis; STRETCH alignment
// forces FILL on the cross axis; an explicit HUG/FILL sizing mode is
// honored; otherwise the absolute bounding box rounds to the nearest pixel.
// A node with none of these hugs its content.
func resolveSize(node *Node, parentMode string, a axis) Dimension {
	if primary, ok := primaryAxis(parentMode); ok {
		if node.LayoutGrow == 1 && a == primary {
			return Fill
		}
		if node.LayoutAlign == "STRETCH" && a != primary {
			return Fill
		}
	}

	sizing := node.LayoutSizingHorizontal
	if a == axisHeight {
		sizing = node.LayoutSizingVertical
	}
	switch sizing {
	case "HUG":
		return Hug
	case "FILL":
		return Fill
	}

	if box := node.AbsoluteBoundingBox; box != nil {
		if a == axisWidth {
			return Px(box.Width)
		}
		return Px(box.Height)
	}
	return Hug
}
