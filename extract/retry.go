package extract

import (
	"context"

	"github.com/cespare/xxhash/v2"
	"github.com/dsdoc/dsdoc"
)

// DefaultMaxRetryFailures is the consecutive-failure threshold that stops
// the retry pass.
const DefaultMaxRetryFailures = 3

// retryState tracks one retry candidate through the pass.
type retryState int

const (
	retryPending retryState = iota
	retrySuccess
	retryExhausted
	retryCancelled
)

// retrySummary aggregates the outcome of the retry pass.
type retrySummary struct {
	attempted int
	recovered int
	cancelled int
}

// retryLowConfidence runs the headless retry pass over every component whose
// first-pass props are low confidence. Candidates are processed strictly one
// at a time. The renderer is launched lazily on the first attempt and closed
// exactly once when the pass ends. Consecutive failures trip a circuit
// breaker that cancels every remaining candidate without navigating to it.
func (e *Extractor) retryLowConfidence(ctx context.Context, base string, entries []dsdoc.ComponentEntry, outcomes []extraction, progress ProgressFunc) retrySummary {
	var summary retrySummary

	if e.RetryDisabled || e.Launcher == nil || !e.Launcher.Available() {
		return summary
	}

	var candidates []int
	for i := range entries {
		if entries[i].DocsID == "" {
			continue
		}
		if dsdoc.LowConfidence(outcomes[i].props) {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 {
		return summary
	}

	maxFailures := e.MaxRetryFailures
	if maxFailures <= 0 {
		maxFailures = DefaultMaxRetryFailures
	}

	var renderer dsdoc.Renderer
	defer func() {
		if renderer != nil {
			renderer.Close()
		}
	}()

	states := make([]retryState, len(candidates))
	consecutiveFailures := 0
	launchFailed := false

	for k, i := range candidates {
		if launchFailed || consecutiveFailures >= maxFailures || ctx.Err() != nil {
			states[k] = retryCancelled
			continue
		}

		if renderer == nil {
			r, err := e.Launcher.Launch(ctx)
			if err != nil {
				launchFailed = true
				states[k] = retryCancelled
				continue
			}
			renderer = r
		}

		summary.attempted++
		props, err := e.retryOne(ctx, renderer, base, entries[i], outcomes[i])
		if err != nil || dsdoc.LowConfidence(props) {
			states[k] = retryExhausted
			consecutiveFailures++
			if progress != nil {
				progress(ProgressEvent{Type: ProgressFailed, Component: entries[i].Name, Error: err})
			}
			continue
		}

		outcomes[i].props = props
		outcomes[i].err = nil
		states[k] = retrySuccess
		consecutiveFailures = 0
		if progress != nil {
			progress(ProgressEvent{Type: ProgressRetried, Component: entries[i].Name})
		}
	}

	for _, state := range states {
		switch state {
		case retrySuccess:
			summary.recovered++
		case retryCancelled:
			summary.cancelled++
		}
	}

	return summary
}

// retryOne renders a single docs page in the headless browser and re-parses
// it. When the rendered document hashes identically to the static fetch,
// re-parsing cannot change the outcome and the attempt fails early.
func (e *Extractor) retryOne(ctx context.Context, renderer dsdoc.Renderer, base string, entry dsdoc.ComponentEntry, prior extraction) ([]dsdoc.Prop, error) {
	pageURL := dsdoc.DocsPageURL(base, entry.DocsID)

	html, err := renderer.Render(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	if prior.fetched && xxhash.Sum64String(html) == prior.pageHash {
		return nil, dsdoc.Errorf(dsdoc.ENOTFOUND, "rendered page identical to static fetch for %q", entry.Name)
	}

	props, err := e.Parser.ParseProps(html)
	if err != nil {
		return nil, err
	}
	// Required markers are unreliable in rendered markup and only trusted
	// from the static pass.
	for i := range props {
		props[i].Required = false
	}
	return props, nil
}
