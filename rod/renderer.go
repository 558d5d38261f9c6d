// Package rod provides a browser-automation implementation of dsdoc.Renderer
// and dsdoc.RendererLauncher using headless Chrome.
package rod

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/dsdoc/dsdoc"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
)

const (
	// DefaultRenderTimeout bounds one whole Render call.
	DefaultRenderTimeout = 10 * time.Second

	// DefaultSelectorTimeout bounds the wait for each content selector.
	DefaultSelectorTimeout = 2 * time.Second

	// DefaultSettleDelay is the pause after a content selector matches, for
	// late client rendering to finish.
	DefaultSettleDelay = 500 * time.Millisecond
)

// DefaultWaitSelectors mark "the data is present" on a documentation page,
// tried in order. The render proceeds once any of them appears.
var DefaultWaitSelectors = []string{
	".docblock-argstable",
	"#storybook-docs table",
	".sbdocs-content",
	"#storybook-root",
}

// Ensure Renderer implements dsdoc.Renderer at compile time.
var _ dsdoc.Renderer = (*Renderer)(nil)

// Renderer retrieves rendered HTML from URLs using Chrome browser
// automation. The underlying browser is recycled periodically via a
// BrowserManager. Renderer is safe for concurrent use by multiple
// goroutines, though the extraction pipeline drives it one page at a time.
type Renderer struct {
	manager         *BrowserManager
	renderTimeout   time.Duration
	selectorTimeout time.Duration
	settleDelay     time.Duration
	waitSelectors   []string
	maxPages        int64
	closed          atomic.Bool
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithRenderTimeout bounds one whole Render call.
// Defaults to DefaultRenderTimeout (10s) if not specified.
func WithRenderTimeout(d time.Duration) Option {
	return func(r *Renderer) {
		r.renderTimeout = d
	}
}

// WithSelectorTimeout bounds the wait for each content selector.
func WithSelectorTimeout(d time.Duration) Option {
	return func(r *Renderer) {
		r.selectorTimeout = d
	}
}

// WithSettleDelay sets the pause after a content selector matches.
func WithSettleDelay(d time.Duration) Option {
	return func(r *Renderer) {
		r.settleDelay = d
	}
}

// WithWaitSelectors overrides the content selector list.
func WithWaitSelectors(selectors []string) Option {
	return func(r *Renderer) {
		r.waitSelectors = selectors
	}
}

// WithMaxPages sets how many pages the browser renders before it is
// recycled. Defaults to DefaultMaxPages.
func WithMaxPages(n int64) Option {
	return func(r *Renderer) {
		r.maxPages = n
	}
}

// NewRenderer launches a headless Chrome browser.
// Close must be called when the Renderer is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewRenderer(opts ...Option) (*Renderer, error) {
	r := &Renderer{
		renderTimeout:   DefaultRenderTimeout,
		selectorTimeout: DefaultSelectorTimeout,
		settleDelay:     DefaultSettleDelay,
		waitSelectors:   DefaultWaitSelectors,
		maxPages:        DefaultMaxPages,
	}
	for _, opt := range opts {
		opt(r)
	}

	manager, err := NewBrowserManager(WithManagerMaxPages(r.maxPages))
	if err != nil {
		return nil, err
	}
	r.manager = manager
	return r, nil
}

// Render navigates to the URL, waits for one of the content selectors to
// appear, pauses for the settle delay and returns the rendered HTML.
func (r *Renderer) Render(ctx context.Context, url string) (string, error) {
	if r.closed.Load() {
		return "", dsdoc.Errorf(dsdoc.EINVALID, "renderer is closed")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if r.renderTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.renderTimeout)
		defer cancel()
	}

	page, err := r.manager.Browser().Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", err
	}
	defer page.Close()

	// Set context for all subsequent operations
	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return "", err
	}
	if err := page.WaitLoad(); err != nil {
		return "", err
	}
	if err := r.waitForContent(page); err != nil {
		return "", err
	}

	select {
	case <-time.After(r.settleDelay):
	case <-ctx.Done():
		return "", ctx.Err()
	}

	html, err := page.HTML()
	if err != nil {
		return "", err
	}

	r.manager.IncrementPageCount()
	return html, nil
}

// waitForContent waits for the first content selector to appear, giving
// each candidate its own bounded timeout. All candidates timing out is an
// error: the page never produced recognizable content.
func (r *Renderer) waitForContent(page *rod.Page) error {
	if len(r.waitSelectors) == 0 {
		return nil
	}
	var lastErr error
	for _, selector := range r.waitSelectors {
		if _, err := page.Timeout(r.selectorTimeout).Element(selector); err == nil {
			return nil
		} else {
			lastErr = err
		}
	}
	return fmt.Errorf("no content selector matched: %w", lastErr)
}

// Close releases browser resources. Close is safe to call multiple times.
func (r *Renderer) Close() error {
	if !r.closed.CompareAndSwap(false, true) {
		return nil
	}
	return r.manager.Close()
}
