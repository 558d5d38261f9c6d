package dsdoc_test

import (
	"testing"

	"github.com/dsdoc/dsdoc"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string {
	return &s
}

func TestIsPlaceholderProp(t *testing.T) {
	t.Parallel()

	t.Run("generic template names", func(t *testing.T) {
		t.Parallel()

		assert.True(t, dsdoc.IsPlaceholderProp(dsdoc.Prop{Name: "propName", Type: []string{"string"}}))
		assert.True(t, dsdoc.IsPlaceholderProp(dsdoc.Prop{Name: "prop", Type: []string{"string"}}))
	})

	t.Run("unknown type", func(t *testing.T) {
		t.Parallel()

		assert.True(t, dsdoc.IsPlaceholderProp(dsdoc.Prop{Name: "variant", Type: []string{"unknown"}}))
	})

	t.Run("template description", func(t *testing.T) {
		t.Parallel()

		p := dsdoc.Prop{Name: "variant", Type: []string{"string"}, Description: strPtr("description")}

		assert.True(t, dsdoc.IsPlaceholderProp(p))
	})

	t.Run("real prop passes", func(t *testing.T) {
		t.Parallel()

		p := dsdoc.Prop{
			Name:        "variant",
			Type:        []string{"primary", "secondary"},
			Description: strPtr("Visual style of the button."),
		}

		assert.False(t, dsdoc.IsPlaceholderProp(p))
	})

	t.Run("unknown among other types is not a placeholder", func(t *testing.T) {
		t.Parallel()

		p := dsdoc.Prop{Name: "size", Type: []string{"unknown", "number"}}

		assert.False(t, dsdoc.IsPlaceholderProp(p))
	})
}

func TestLowConfidence(t *testing.T) {
	t.Parallel()

	t.Run("empty extraction", func(t *testing.T) {
		t.Parallel()

		assert.True(t, dsdoc.LowConfidence(nil))
	})

	t.Run("single placeholder taints the whole set", func(t *testing.T) {
		t.Parallel()

		props := []dsdoc.Prop{
			{Name: "variant", Type: []string{"string"}},
			{Name: "propName", Type: []string{"string"}},
		}

		assert.True(t, dsdoc.LowConfidence(props))
	})

	t.Run("clean extraction", func(t *testing.T) {
		t.Parallel()

		props := []dsdoc.Prop{
			{Name: "variant", Type: []string{"string"}},
			{Name: "disabled", Type: []string{"boolean"}},
		}

		assert.False(t, dsdoc.LowConfidence(props))
	})
}
