package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dsdoc/dsdoc"
	main "github.com/dsdoc/dsdoc/cmd/dsdoc"
	"github.com/dsdoc/dsdoc/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buttonIndex is a single-component site: one docs page and one story.
func buttonIndex() *dsdoc.StoryIndex {
	return storyIndex(
		docsEntry("components-button--docs", "Components/Button"),
		storyEntry("components-button--primary", "Components/Button", "Primary"),
	)
}

func realProps() []dsdoc.Prop {
	return []dsdoc.Prop{{Name: "variant", Type: []string{"string"}}}
}

func placeholderProps() []dsdoc.Prop {
	return []dsdoc.Prop{{Name: "propName", Type: []string{dsdoc.UnknownType}}}
}

func TestCmdExtract(t *testing.T) {
	t.Parallel()

	t.Run("extracts a schema to stdout", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		m.Index = &mock.StoryIndexService{
			FetchIndexFn: func(ctx context.Context, baseURL string) (*dsdoc.StoryIndex, error) {
				assert.Equal(t, "https://example.com/sb", baseURL)
				return buttonIndex(), nil
			},
		}
		m.Fetcher = &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "<html>static</html>", nil
			},
		}
		m.Parser = &mock.PropParser{
			ParsePropsFn: func(html string) ([]dsdoc.Prop, error) {
				return realProps(), nil
			},
		}
		m.Launcher = &mock.RendererLauncher{AvailableFn: func() bool { return false }}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(testContext(), []string{"extract", "https://example.com/sb/"}, stdout, stderr)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), `"name": "Button"`)
		assert.Contains(t, stdout.String(), `"variant"`)
		assert.Contains(t, stdout.String(), `"version": "1.0"`)
		assert.Contains(t, stdout.String(), `"source": "https://example.com/sb"`)
		assert.Contains(t, stderr.String(), "Found 1 components")
		assert.Contains(t, stderr.String(), "Extracted 1 components")
		assert.NotContains(t, stderr.String(), "warning:")
	})

	t.Run("writes the schema to a file with --out", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		m.Index = &mock.StoryIndexService{
			FetchIndexFn: func(ctx context.Context, baseURL string) (*dsdoc.StoryIndex, error) {
				return buttonIndex(), nil
			},
		}
		m.Fetcher = &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) { return "<html>", nil },
		}
		m.Parser = &mock.PropParser{
			ParsePropsFn: func(html string) ([]dsdoc.Prop, error) { return realProps(), nil },
		}
		m.Launcher = &mock.RendererLauncher{AvailableFn: func() bool { return false }}

		out := filepath.Join(t.TempDir(), "schema.json")
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(testContext(), []string{"extract", "https://example.com", "--out", out}, stdout, stderr)

		require.NoError(t, err)
		data, err := os.ReadFile(out)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"name": "Button"`)
		assert.Contains(t, stdout.String(), "Wrote schema")
		assert.Contains(t, stdout.String(), out)
		assert.NotContains(t, stdout.String(), `"components"`)
	})

	t.Run("serializes components by name with --format map", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		m.Index = &mock.StoryIndexService{
			FetchIndexFn: func(ctx context.Context, baseURL string) (*dsdoc.StoryIndex, error) {
				return buttonIndex(), nil
			},
		}
		m.Fetcher = &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) { return "<html>", nil },
		}
		m.Parser = &mock.PropParser{
			ParsePropsFn: func(html string) ([]dsdoc.Prop, error) { return realProps(), nil },
		}
		m.Launcher = &mock.RendererLauncher{AvailableFn: func() bool { return false }}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(testContext(), []string{"extract", "https://example.com", "--format", "map"}, stdout, stderr)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), `"Button": {`)
		assert.Contains(t, stdout.String(), `"version": "2.0"`)
	})

	t.Run("rejects an unknown format", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := main.NewMain().Run(testContext(), []string{"extract", "https://example.com", "--format", "yaml"}, stdout, stderr)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "--format")
	})

	t.Run("keeps extracting when a page fetch fails", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		m.Index = &mock.StoryIndexService{
			FetchIndexFn: func(ctx context.Context, baseURL string) (*dsdoc.StoryIndex, error) {
				return storyIndex(
					docsEntry("components-button--docs", "Components/Button"),
					storyEntry("components-button--primary", "Components/Button", "Primary"),
					docsEntry("components-badge--docs", "Components/Badge"),
					storyEntry("components-badge--default", "Components/Badge", "Default"),
				), nil
			},
		}
		m.Fetcher = &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				if strings.Contains(url, "badge") {
					return "", dsdoc.Errorf(dsdoc.ENOTFOUND, "page not found")
				}
				return "<html>", nil
			},
		}
		m.Parser = &mock.PropParser{
			ParsePropsFn: func(html string) ([]dsdoc.Prop, error) { return realProps(), nil },
		}
		m.Launcher = &mock.RendererLauncher{AvailableFn: func() bool { return false }}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(testContext(), []string{"extract", "https://example.com"}, stdout, stderr)

		require.NoError(t, err)
		assert.Contains(t, stderr.String(), "skip Badge")
		assert.Contains(t, stderr.String(), "warning:")
		assert.Contains(t, stdout.String(), `"name": "Button"`)
		assert.Contains(t, stdout.String(), `"name": "Badge"`)
		assert.Contains(t, stdout.String(), `"props": []`)
	})

	t.Run("returns the index fetch error", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		m.Index = &mock.StoryIndexService{
			FetchIndexFn: func(ctx context.Context, baseURL string) (*dsdoc.StoryIndex, error) {
				return nil, dsdoc.Errorf(dsdoc.ENOTFOUND, "story index not found")
			},
		}
		m.Launcher = &mock.RendererLauncher{AvailableFn: func() bool { return false }}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(testContext(), []string{"extract", "https://example.com"}, stdout, stderr)

		require.Error(t, err)
		assert.Equal(t, dsdoc.ENOTFOUND, dsdoc.ErrorCode(err))
		assert.Contains(t, stderr.String(), "error: story index not found")
		assert.Empty(t, stdout.String())
	})

	t.Run("renders low-confidence pages through the launcher", func(t *testing.T) {
		t.Parallel()

		var closes int
		renderer := &mock.Renderer{
			RenderFn: func(ctx context.Context, url string) (string, error) {
				return "<html>rendered</html>", nil
			},
			CloseFn: func() error {
				closes++
				return nil
			},
		}

		m := main.NewMain()
		m.Index = &mock.StoryIndexService{
			FetchIndexFn: func(ctx context.Context, baseURL string) (*dsdoc.StoryIndex, error) {
				return buttonIndex(), nil
			},
		}
		m.Fetcher = &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "<html>static</html>", nil
			},
		}
		m.Parser = &mock.PropParser{
			ParsePropsFn: func(html string) ([]dsdoc.Prop, error) {
				if strings.Contains(html, "rendered") {
					return realProps(), nil
				}
				return placeholderProps(), nil
			},
		}
		m.Launcher = &mock.RendererLauncher{
			AvailableFn: func() bool { return true },
			LaunchFn: func(ctx context.Context) (dsdoc.Renderer, error) {
				return renderer, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(testContext(), []string{"extract", "https://example.com"}, stdout, stderr)

		require.NoError(t, err)
		assert.Contains(t, stderr.String(), "rendered Button")
		assert.Contains(t, stderr.String(), "(1 rendered, 1 recovered)")
		assert.NotContains(t, stderr.String(), "warning:")
		assert.Contains(t, stdout.String(), `"variant"`)
		assert.Equal(t, 1, closes)
	})

	t.Run("skips the retry pass with --no-retry", func(t *testing.T) {
		t.Parallel()

		probed := false
		m := main.NewMain()
		m.Index = &mock.StoryIndexService{
			FetchIndexFn: func(ctx context.Context, baseURL string) (*dsdoc.StoryIndex, error) {
				return buttonIndex(), nil
			},
		}
		m.Fetcher = &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) { return "<html>", nil },
		}
		m.Parser = &mock.PropParser{
			ParsePropsFn: func(html string) ([]dsdoc.Prop, error) { return placeholderProps(), nil },
		}
		m.Launcher = &mock.RendererLauncher{
			AvailableFn: func() bool {
				probed = true
				return true
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(testContext(), []string{"extract", "https://example.com", "--no-retry"}, stdout, stderr)

		require.NoError(t, err)
		assert.False(t, probed, "launcher should not be probed when retry is disabled")
		assert.Contains(t, stderr.String(), "warning:")
		assert.Contains(t, stdout.String(), `"propName"`)
	})

	t.Run("uses the configured schema name", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		m.Index = &mock.StoryIndexService{
			FetchIndexFn: func(ctx context.Context, baseURL string) (*dsdoc.StoryIndex, error) {
				return buttonIndex(), nil
			},
		}
		m.Fetcher = &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) { return "<html>", nil },
		}
		m.Parser = &mock.PropParser{
			ParsePropsFn: func(html string) ([]dsdoc.Prop, error) { return realProps(), nil },
		}
		m.Launcher = &mock.RendererLauncher{AvailableFn: func() bool { return false }}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(testContext(), []string{"extract", "https://example.com", "--name", "Acme design system"}, stdout, stderr)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), `"name": "Acme design system"`)
	})

	t.Run("logs service calls with --verbose", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		m.Index = &mock.StoryIndexService{
			FetchIndexFn: func(ctx context.Context, baseURL string) (*dsdoc.StoryIndex, error) {
				return buttonIndex(), nil
			},
		}
		m.Fetcher = &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) { return "<html>", nil },
		}
		m.Parser = &mock.PropParser{
			ParsePropsFn: func(html string) ([]dsdoc.Prop, error) { return realProps(), nil },
		}
		m.Launcher = &mock.RendererLauncher{AvailableFn: func() bool { return false }}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(testContext(), []string{"--verbose", "extract", "https://example.com"}, stdout, stderr)

		require.NoError(t, err)
		assert.Contains(t, stderr.String(), "index fetch")
		assert.Contains(t, stderr.String(), "cache set")
	})
}
