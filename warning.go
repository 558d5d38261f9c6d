package dsdoc

// WarningType classifies non-fatal extraction quality signals.
type WarningType string

// WarningPlaceholderProps flags components whose final props still look like
// unrendered template rows. A quality signal for downstream consumers, not
// an error.
const WarningPlaceholderProps WarningType = "PLACEHOLDER_PROPS"

// Warning is a derived view over a finished extraction. Warnings never
// abort a run and are never mutated after creation.
type Warning struct {
	Type       WarningType `json:"type"`
	Message    string      `json:"message"`
	Components []string    `json:"components,omitempty"`
}

// PlaceholderWarnings inspects final (post-retry) components and returns at
// most one PLACEHOLDER_PROPS warning naming every component whose props
// still test as low confidence.
func PlaceholderWarnings(components []Component) []Warning {
	var affected []string
	for _, c := range components {
		if LowConfidence(c.Props) {
			affected = append(affected, c.Name)
		}
	}
	if len(affected) == 0 {
		return nil
	}
	return []Warning{{
		Type:       WarningPlaceholderProps,
		Message:    "some components have placeholder or missing props; their documentation pages may not have rendered",
		Components: affected,
	}}
}
