package dsdoc

import "context"

// Fetcher retrieves raw HTML from URLs over plain HTTP, without executing
// scripts. Pages that render client-side come back as served; the Renderer
// covers those.
type Fetcher interface {
	// Fetch retrieves the body of the URL.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)
}
