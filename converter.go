package dsdoc

// Converter converts HTML fragments to Markdown. The extraction pipeline
// uses it to turn rich prop descriptions (links, code spans, emphasis) into
// plain text that survives JSON serialization.
type Converter interface {
	// Convert transforms an HTML fragment into Markdown.
	Convert(html string) (string, error)
}
