// Package extract orchestrates design-system metadata extraction.
// It coordinates story index discovery, the static parsing pass, the
// headless retry pass and final schema assembly.
package extract

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/dsdoc/dsdoc"
	"github.com/google/uuid"
)

// Extractor orchestrates the extraction of one documentation site.
type Extractor struct {
	Index    dsdoc.StoryIndexService
	Fetcher  dsdoc.Fetcher
	Parser   dsdoc.PropParser
	Launcher dsdoc.RendererLauncher // optional; nil disables the retry pass
	Cache    dsdoc.SchemaCache      // optional; nil disables caching

	// Name is the human name recorded in the schema. Defaults to the
	// site host when empty.
	Name string

	// RetryDisabled skips the headless retry pass even when a renderer
	// is available.
	RetryDisabled bool

	// BatchSize bounds concurrent page fetches within one first-pass
	// batch. Defaults to DefaultBatchSize.
	BatchSize int

	// MaxRetryFailures is the consecutive-failure threshold that trips
	// the retry circuit breaker. Defaults to DefaultMaxRetryFailures.
	MaxRetryFailures int

	// CacheTTL overrides the cache entry lifetime. Zero means the cache
	// default.
	CacheTTL time.Duration
}

// Result holds the outcome of an extraction run.
type Result struct {
	Schema    *dsdoc.Schema
	Warnings  []dsdoc.Warning
	FromCache bool
	Retried   int // components the headless pass navigated to
	Recovered int // retries whose re-parse replaced the original props
	Cancelled int // retries skipped by the breaker or cancellation
}

// ProgressEvent reports progress during an extraction run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Component string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressRetried
	ProgressFinished
)

// ProgressFunc is a callback for reporting extraction progress.
// It is called from the goroutine collecting results, never concurrently.
type ProgressFunc func(event ProgressEvent)

// Extract runs the full pipeline for a documentation site and returns the
// assembled schema. The context cancels both passes cooperatively: work
// already in flight finishes, nothing new starts.
func (e *Extractor) Extract(ctx context.Context, sourceURL string, progress ProgressFunc) (*Result, error) {
	base := dsdoc.NormalizeBaseURL(sourceURL)

	if e.Cache != nil {
		if entry, ok := e.Cache.Get(base); ok {
			return &Result{Schema: entry.Schema, Warnings: entry.Warnings, FromCache: true}, nil
		}
	}

	idx, err := e.Index.FetchIndex(ctx, base)
	if err != nil {
		return nil, fmt.Errorf("fetch story index: %w", err)
	}

	entries := dsdoc.ParseComponents(idx)

	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: len(entries)})
	}

	outcomes := e.parseAll(ctx, base, entries, progress)
	retry := e.retryLowConfidence(ctx, base, entries, outcomes, progress)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	components := assemble(entries, outcomes)
	warnings := dsdoc.PlaceholderWarnings(components)

	schema := &dsdoc.Schema{
		ID:          uuid.NewString(),
		Name:        e.schemaName(base),
		Source:      base,
		Version:     dsdoc.SchemaVersionList,
		ExtractedAt: time.Now().UTC(),
		Components:  components,
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: len(entries), Total: len(entries)})
	}

	if e.Cache != nil {
		e.Cache.Set(base, schema, warnings, e.CacheTTL)
	}

	return &Result{
		Schema:    schema,
		Warnings:  warnings,
		Retried:   retry.attempted,
		Recovered: retry.recovered,
		Cancelled: retry.cancelled,
	}, nil
}

func (e *Extractor) schemaName(base string) string {
	if e.Name != "" {
		return e.Name
	}
	if u, err := url.Parse(base); err == nil && u.Host != "" {
		return u.Host
	}
	return base
}

// assemble builds the final component list, preserving index discovery
// order. Story and prop lists are never nil so the schema serializes with
// empty arrays rather than nulls.
func assemble(entries []dsdoc.ComponentEntry, outcomes []extraction) []dsdoc.Component {
	components := make([]dsdoc.Component, len(entries))
	for i, entry := range entries {
		props := outcomes[i].props
		if props == nil {
			props = []dsdoc.Prop{}
		}
		stories := entry.Stories
		if stories == nil {
			stories = []dsdoc.Story{}
		}
		components[i] = dsdoc.Component{
			Name:     entry.Name,
			Category: entry.Category,
			Stories:  stories,
			Props:    props,
		}
	}
	return components
}
