package dsdoc_test

import (
	"testing"

	"github.com/dsdoc/dsdoc"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeBaseURL(t *testing.T) {
	t.Parallel()

	t.Run("adds https scheme when missing", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "https://storybook.example.com", dsdoc.NormalizeBaseURL("storybook.example.com"))
	})

	t.Run("strips trailing slashes", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "https://example.com/docs", dsdoc.NormalizeBaseURL("https://example.com/docs///"))
	})

	t.Run("drops query and fragment", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "https://example.com/docs", dsdoc.NormalizeBaseURL("https://example.com/docs?path=/docs/button#usage"))
	})

	t.Run("strips direct page suffixes", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "https://example.com", dsdoc.NormalizeBaseURL("https://example.com/index.html"))
		assert.Equal(t, "https://example.com", dsdoc.NormalizeBaseURL("https://example.com/iframe.html?id=x--docs"))
		assert.Equal(t, "https://example.com", dsdoc.NormalizeBaseURL("https://example.com/index.json"))
	})

	t.Run("preserves http scheme", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "http://localhost:6006", dsdoc.NormalizeBaseURL("http://localhost:6006/"))
	})

	t.Run("lowercases the host but not the path", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "https://example.com/Docs", dsdoc.NormalizeBaseURL("https://Example.COM/Docs/"))
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()

		inputs := []string{
			"storybook.example.com",
			"https://Example.COM/Docs///",
			"https://example.com/docs?path=/docs/button#usage",
			"http://localhost:6006/",
			"exa mple.com/",
		}
		for _, input := range inputs {
			once := dsdoc.NormalizeBaseURL(input)
			assert.Equal(t, once, dsdoc.NormalizeBaseURL(once), "input %q", input)
		}
	})

	t.Run("falls back to trimming on unparsable input", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "https://exa mple.com", dsdoc.NormalizeBaseURL("exa mple.com/"))
	})

	t.Run("decorated and plain URLs normalize identically", func(t *testing.T) {
		t.Parallel()

		plain := dsdoc.NormalizeBaseURL("https://example.com/sb")
		decorated := dsdoc.NormalizeBaseURL("example.com/sb/?path=/story/button--primary")

		assert.Equal(t, plain, decorated)
	})

	t.Run("empty input stays empty", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, dsdoc.NormalizeBaseURL("  "))
	})
}

func TestIndexURL(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "https://example.com/sb/index.json", dsdoc.IndexURL("https://example.com/sb"))
}

func TestDocsPageURL(t *testing.T) {
	t.Parallel()

	got := dsdoc.DocsPageURL("https://example.com/sb", "components-button--docs")

	assert.Equal(t, "https://example.com/sb/iframe.html?id=components-button--docs&viewMode=docs", got)
}
