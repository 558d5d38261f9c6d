package dsdoc

// UnknownType is the sentinel entry used when a prop's declared type could
// not be resolved from the page.
const UnknownType = "unknown"

// Placeholder detection policy. Client-rendered pages serve template rows
// until their scripts run; statically fetched HTML then yields generic prop
// names and template descriptions instead of real metadata. Both lists are
// tunable policy, matched exactly.
var (
	PlaceholderNames = []string{
		"propName",
		"prop",
		"props",
		"property",
	}
	PlaceholderDescriptions = []string{
		"description",
		"propDescription",
	}
)

// IsPlaceholderProp reports whether a prop looks like an unrendered
// template row rather than real metadata.
func IsPlaceholderProp(p Prop) bool {
	for _, name := range PlaceholderNames {
		if p.Name == name {
			return true
		}
	}
	if len(p.Type) == 1 && p.Type[0] == UnknownType {
		return true
	}
	if p.Description != nil {
		for _, desc := range PlaceholderDescriptions {
			if *p.Description == desc {
				return true
			}
		}
	}
	return false
}

// LowConfidence reports whether an extraction looks like it ran against an
// unrendered page: it yielded nothing, or any row is a placeholder. A single
// bad row taints the whole set because client-rendered pages fail wholesale,
// not partially.
func LowConfidence(props []Prop) bool {
	if len(props) == 0 {
		return true
	}
	for _, p := range props {
		if IsPlaceholderProp(p) {
			return true
		}
	}
	return false
}
