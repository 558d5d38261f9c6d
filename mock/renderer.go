package mock

import (
	"context"

	"github.com/dsdoc/dsdoc"
)

var _ dsdoc.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of dsdoc.Renderer.
type Renderer struct {
	RenderFn func(ctx context.Context, url string) (string, error)
	CloseFn  func() error
}

func (r *Renderer) Render(ctx context.Context, url string) (string, error) {
	return r.RenderFn(ctx, url)
}

func (r *Renderer) Close() error {
	return r.CloseFn()
}

var _ dsdoc.RendererLauncher = (*RendererLauncher)(nil)

// RendererLauncher is a mock implementation of dsdoc.RendererLauncher.
type RendererLauncher struct {
	AvailableFn func() bool
	LaunchFn    func(ctx context.Context) (dsdoc.Renderer, error)
}

func (l *RendererLauncher) Available() bool {
	return l.AvailableFn()
}

func (l *RendererLauncher) Launch(ctx context.Context) (dsdoc.Renderer, error) {
	return l.LaunchFn(ctx)
}
