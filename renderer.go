package dsdoc

import "context"

// Renderer retrieves fully rendered HTML from URLs.
// Implementations use browser automation to execute client-side scripts
// before reading the document.
type Renderer interface {
	// Render navigates to the URL, waits for client-side rendering,
	// and returns the rendered HTML.
	// The context controls timeout and cancellation.
	Render(ctx context.Context, url string) (html string, err error)

	// Close releases browser resources.
	// Must be called exactly once when the Renderer is no longer needed.
	Close() error
}

// RendererLauncher creates Renderers on demand. It lets the extraction
// pipeline probe for a browser engine once, then defer the expensive launch
// until a page actually needs rendering.
type RendererLauncher interface {
	// Available reports whether a browser engine can be launched on this
	// host. It must be cheap enough to call at pipeline start.
	Available() bool

	// Launch starts the browser engine and returns a ready Renderer.
	// The caller owns the Renderer and must Close it.
	Launch(ctx context.Context) (Renderer, error)
}
