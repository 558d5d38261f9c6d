package dsdoc

import (
	"encoding/json"
	"time"
)

// Control identifies the widget a documentation page offers for editing a prop.
type Control string

// Control kinds observed across documentation generator versions.
const (
	ControlNone    Control = ""
	ControlSelect  Control = "select"
	ControlNumber  Control = "number"
	ControlText    Control = "text"
	ControlBoolean Control = "boolean"
	ControlObject  Control = "object"
)

// Story represents one named usage example of a component, indexed by a
// stable id.
type Story struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Prop represents a single component property extracted from a documentation
// page.
//
// Type holds the declared type as an ordered set of strings; a union type is
// represented as multiple entries. Type is never empty: an unresolved type
// becomes ["unknown"]. Required is always false when sourced from rendered
// HTML because the source format cannot express it.
type Prop struct {
	Name         string   `json:"name"`
	Description  *string  `json:"description"`
	Type         []string `json:"type"`
	DefaultValue *string  `json:"defaultValue"`
	Required     bool     `json:"required"`
	Control      Control  `json:"control,omitempty"`
	Options      []string `json:"options,omitempty"`
}

// Validate returns an error if the prop contains invalid fields.
func (p *Prop) Validate() error {
	if p.Name == "" {
		return Errorf(EINVALID, "prop name required")
	}
	if len(p.Type) == 0 {
		return Errorf(EINVALID, "prop type required; use [\"unknown\"] when unresolved")
	}
	return nil
}

// Component represents one extracted design-system component.
type Component struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Stories  []Story `json:"stories"`
	Props    []Prop  `json:"props"`
}

// Schema versions. The list form keeps component order; the map form trades
// ordering for O(1) lookup by name. Both are legal serializations of the
// same logical document.
const (
	SchemaVersionList = "1.0"
	SchemaVersionMap  = "2.0"
)

// Schema is the final extraction document for one documentation site.
// It is immutable once produced.
type Schema struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Source      string      `json:"source"`
	Version     string      `json:"version"`
	ExtractedAt time.Time   `json:"extractedAt"`
	Components  []Component `json:"components"`
}

// Validate returns an error if the schema contains invalid fields.
func (s *Schema) Validate() error {
	if s.Source == "" {
		return Errorf(EINVALID, "schema source URL required")
	}
	if s.Version == "" {
		return Errorf(EINVALID, "schema version required")
	}
	return nil
}

// ComponentByName returns the component with the given name.
// Returns false if no component matches.
func (s *Schema) ComponentByName(name string) (Component, bool) {
	for _, c := range s.Components {
		if c.Name == name {
			return c, true
		}
	}
	return Component{}, false
}

// MarshalMap serializes the schema in its map form (SchemaVersionMap):
// components keyed by name instead of an ordered array. Later components
// shadow earlier ones on a (pathological) name collision.
func (s *Schema) MarshalMap() ([]byte, error) {
	byName := make(map[string]Component, len(s.Components))
	for _, c := range s.Components {
		byName[c.Name] = c
	}
	return json.Marshal(struct {
		ID          string               `json:"id"`
		Name        string               `json:"name"`
		Source      string               `json:"source"`
		Version     string               `json:"version"`
		ExtractedAt time.Time            `json:"extractedAt"`
		Components  map[string]Component `json:"components"`
	}{
		ID:          s.ID,
		Name:        s.Name,
		Source:      s.Source,
		Version:     SchemaVersionMap,
		ExtractedAt: s.ExtractedAt,
		Components:  byName,
	})
}
