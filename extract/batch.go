package extract

import (
	"context"

	"github.com/cespare/xxhash/v2"
	"github.com/dsdoc/dsdoc"
	"golang.org/x/sync/errgroup"
)

// DefaultBatchSize bounds concurrent docs-page fetches within one batch.
const DefaultBatchSize = 5

// extraction is the per-component state carried between the passes.
type extraction struct {
	props    []dsdoc.Prop
	pageHash uint64 // xxhash of the statically fetched page
	fetched  bool
	err      error
}

// parseResult carries a finished extraction back to the collector with its
// original position so results stay in index discovery order.
type parseResult struct {
	position int
	extraction
}

// parseAll runs the static first pass. Components are processed in
// fixed-size batches: pages within a batch are fetched concurrently, batches
// run strictly one after another. Component order is preserved regardless of
// completion order within a batch.
func (e *Extractor) parseAll(ctx context.Context, base string, entries []dsdoc.ComponentEntry, progress ProgressFunc) []extraction {
	outcomes := make([]extraction, len(entries))
	batchSize := e.BatchSize
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	completed := 0
	total := len(entries)

	for start := 0; start < total; start += batchSize {
		end := min(start+batchSize, total)

		resultCh := make(chan parseResult, end-start)
		g, gctx := errgroup.WithContext(ctx)

		for i := start; i < end; i++ {
			i := i
			g.Go(func() error {
				resultCh <- parseResult{
					position:   i,
					extraction: e.parseOne(gctx, base, entries[i]),
				}
				return nil
			})
		}

		go func() {
			_ = g.Wait()
			close(resultCh)
		}()

		for result := range resultCh {
			outcomes[result.position] = result.extraction
			completed++

			if progress == nil {
				continue
			}
			event := ProgressEvent{
				Type:      ProgressCompleted,
				Completed: completed,
				Total:     total,
				Component: entries[result.position].Name,
			}
			if result.err != nil {
				event.Type = ProgressFailed
				event.Error = result.err
			}
			progress(event)
		}

		if ctx.Err() != nil {
			break
		}
	}

	return outcomes
}

// parseOne fetches and parses a single component's docs page. Failures are
// recorded, not returned: a failed page yields an empty prop list and the
// component stays eligible for the retry pass.
func (e *Extractor) parseOne(ctx context.Context, base string, entry dsdoc.ComponentEntry) extraction {
	if entry.DocsID == "" {
		return extraction{props: []dsdoc.Prop{}}
	}
	if err := ctx.Err(); err != nil {
		return extraction{props: []dsdoc.Prop{}, err: err}
	}

	pageURL := dsdoc.DocsPageURL(base, entry.DocsID)

	html, err := e.Fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return extraction{props: []dsdoc.Prop{}, err: err}
	}

	props, err := e.Parser.ParseProps(html)
	if err != nil {
		return extraction{props: []dsdoc.Prop{}, err: err}
	}

	return extraction{
		props:    props,
		pageHash: xxhash.Sum64String(html),
		fetched:  true,
	}
}
