package mock

import (
	"context"

	"github.com/dsdoc/dsdoc"
)

var _ dsdoc.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of dsdoc.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}
