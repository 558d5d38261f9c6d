package dsdoc

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Entry types found in a story index. Older index versions omit the type
// field; the decoder infers it from the docsOnly parameter.
const (
	EntryTypeDocs  = "docs"
	EntryTypeStory = "story"
)

// IndexEntry is one entry from a site's story index document.
type IndexEntry struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Name       string   `json:"name"`
	Type       string   `json:"type"`
	ImportPath string   `json:"importPath,omitempty"`
	Tags       []string `json:"tags,omitempty"`
}

// StoryIndex is the decoded story index document. Entries preserve document
// order, which downstream consumers rely on: component discovery order is
// defined as first appearance in the index.
type StoryIndex struct {
	Version int          `json:"v"`
	Entries []IndexEntry `json:"entries"`
}

// Validate returns an error if the index lacks the version marker or the
// entry map. An empty entry map is valid; a missing one is not.
func (idx *StoryIndex) Validate() error {
	if idx.Version == 0 {
		return Errorf(EINVALID, "story index missing version marker")
	}
	if idx.Entries == nil {
		return Errorf(EINVALID, "story index missing entries")
	}
	return nil
}

// indexEntryJSON covers the field variants used across index versions:
// v3 uses "kind"/"story" aliases and flags docs pages via parameters.docsOnly
// instead of a type field.
type indexEntryJSON struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Kind       string   `json:"kind"`
	Name       string   `json:"name"`
	Story      string   `json:"story"`
	Type       string   `json:"type"`
	ImportPath string   `json:"importPath"`
	Tags       []string `json:"tags"`
	Parameters struct {
		DocsOnly bool `json:"docsOnly"`
	} `json:"parameters"`
}

// UnmarshalJSON decodes both index layouts ("entries" for v4/v5, "stories"
// for v3) while preserving entry order. encoding/json maps would scramble
// the order, so the entry object is walked token by token.
func (idx *StoryIndex) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := expectDelim(dec, '{'); err != nil {
		return Errorf(EINVALID, "story index is not a JSON object")
	}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return Errorf(EINVALID, "malformed story index: %s", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return Errorf(EINVALID, "malformed story index key")
		}
		switch key {
		case "v":
			if err := dec.Decode(&idx.Version); err != nil {
				return Errorf(EINVALID, "malformed story index version: %s", err)
			}
		case "entries", "stories":
			entries, err := decodeEntries(dec)
			if err != nil {
				return err
			}
			idx.Entries = entries
		default:
			var skip json.RawMessage
			if err := dec.Decode(&skip); err != nil {
				return Errorf(EINVALID, "malformed story index: %s", err)
			}
		}
	}
	if _, err := dec.Token(); err != nil {
		return Errorf(EINVALID, "malformed story index: %s", err)
	}
	return nil
}

func decodeEntries(dec *json.Decoder) ([]IndexEntry, error) {
	if err := expectDelim(dec, '{'); err != nil {
		return nil, Errorf(EINVALID, "story index entries is not a JSON object")
	}
	entries := []IndexEntry{}
	for dec.More() {
		idTok, err := dec.Token()
		if err != nil {
			return nil, Errorf(EINVALID, "malformed story index entry key: %s", err)
		}
		id, ok := idTok.(string)
		if !ok {
			return nil, Errorf(EINVALID, "malformed story index entry key")
		}
		var raw indexEntryJSON
		if err := dec.Decode(&raw); err != nil {
			return nil, Errorf(EINVALID, "malformed story index entry %q: %s", id, err)
		}
		entry := IndexEntry{
			ID:         raw.ID,
			Title:      raw.Title,
			Name:       raw.Name,
			Type:       raw.Type,
			ImportPath: raw.ImportPath,
			Tags:       raw.Tags,
		}
		if entry.ID == "" {
			entry.ID = id
		}
		if entry.Title == "" {
			entry.Title = raw.Kind
		}
		if entry.Name == "" {
			entry.Name = raw.Story
		}
		if entry.Type == "" {
			if raw.Parameters.DocsOnly {
				entry.Type = EntryTypeDocs
			} else {
				entry.Type = EntryTypeStory
			}
		}
		entries = append(entries, entry)
	}
	if _, err := dec.Token(); err != nil {
		return nil, Errorf(EINVALID, "malformed story index entries: %s", err)
	}
	return entries, nil
}

func expectDelim(dec *json.Decoder, want rune) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || rune(d) != want {
		return Errorf(EINVALID, "expected %q, got %v", want, tok)
	}
	return nil
}

// DefaultCategory is assigned to components whose index title has no
// category segments.
const DefaultCategory = "Components"

// DocOnlyKeywords marks index groups that document the design system itself
// rather than a component. A group with zero stories is dropped when its
// name or any category segment matches one of these (case-insensitive).
// This is a tunable policy, not a correctness guarantee.
var DocOnlyKeywords = []string{
	"docs",
	"documentation",
	"guide",
	"guides",
	"overview",
	"introduction",
	"getting started",
	"changelog",
	"welcome",
	"about",
	"readme",
}

// ComponentEntry is the intermediate grouping of index entries for one
// component, produced by ParseComponents and consumed by the extraction
// passes. DocsID is empty when the group has no docs-typed entry.
type ComponentEntry struct {
	Category string
	Name     string
	Stories  []Story
	DocsID   string
}

// ParseComponents groups index entries by title into components, preserving
// index order. The last slash-delimited title segment becomes the component
// name and the remaining segments the category. The first docs-typed entry
// in a group supplies the documentation page id; extras are ignored.
// Story-typed entries append to the group's story list in index order.
// Groups with zero stories are dropped when they match DocOnlyKeywords.
func ParseComponents(idx *StoryIndex) []ComponentEntry {
	titles := []string{}
	groups := map[string]*ComponentEntry{}
	for _, e := range idx.Entries {
		if e.Title == "" {
			continue
		}
		g, ok := groups[e.Title]
		if !ok {
			name, category := splitTitle(e.Title)
			g = &ComponentEntry{Category: category, Name: name}
			groups[e.Title] = g
			titles = append(titles, e.Title)
		}
		if e.Type == EntryTypeDocs {
			if g.DocsID == "" {
				g.DocsID = e.ID
			}
			continue
		}
		g.Stories = append(g.Stories, Story{ID: e.ID, Name: e.Name})
	}
	components := make([]ComponentEntry, 0, len(titles))
	for _, title := range titles {
		g := groups[title]
		if len(g.Stories) == 0 && isDocOnly(g.Category, g.Name) {
			continue
		}
		components = append(components, *g)
	}
	return components
}

func splitTitle(title string) (name, category string) {
	segments := strings.Split(title, "/")
	for i, s := range segments {
		segments[i] = strings.TrimSpace(s)
	}
	name = segments[len(segments)-1]
	if len(segments) == 1 {
		return name, DefaultCategory
	}
	return name, strings.Join(segments[:len(segments)-1], "/")
}

func isDocOnly(category, name string) bool {
	for _, kw := range DocOnlyKeywords {
		if strings.EqualFold(name, kw) {
			return true
		}
		for _, seg := range strings.Split(category, "/") {
			if strings.EqualFold(strings.TrimSpace(seg), kw) {
				return true
			}
		}
	}
	return false
}
