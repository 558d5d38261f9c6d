package rod

import (
	"context"
	"sync"

	"github.com/dsdoc/dsdoc"
	"github.com/go-rod/rod/lib/launcher"
)

// Ensure Launcher implements dsdoc.RendererLauncher at compile time.
var _ dsdoc.RendererLauncher = (*Launcher)(nil)

// Launcher probes for a local Chrome/Chromium binary and launches
// Renderers on demand. The probe runs once and is cached for the lifetime
// of the Launcher.
type Launcher struct {
	opts      []Option
	once      sync.Once
	available bool
}

// NewLauncher creates a Launcher. The options are applied to every
// Renderer it launches.
func NewLauncher(opts ...Option) *Launcher {
	return &Launcher{opts: opts}
}

// Available reports whether a Chrome or Chromium binary is present on this
// host.
func (l *Launcher) Available() bool {
	l.once.Do(func() {
		_, l.available = launcher.LookPath()
	})
	return l.available
}

// Launch starts a headless browser and returns a ready Renderer.
// The caller owns the Renderer and must Close it.
func (l *Launcher) Launch(ctx context.Context) (dsdoc.Renderer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !l.Available() {
		return nil, dsdoc.Errorf(dsdoc.ENOTIMPLEMENTED, "no browser engine available on this host")
	}
	return NewRenderer(l.opts...)
}
