package mock

import (
	"time"

	"github.com/dsdoc/dsdoc"
)

var _ dsdoc.SchemaCache = (*SchemaCache)(nil)

// SchemaCache is a mock implementation of dsdoc.SchemaCache.
type SchemaCache struct {
	GetFn        func(url string) (*dsdoc.CachedSchema, bool)
	SetFn        func(url string, schema *dsdoc.Schema, warnings []dsdoc.Warning, ttl time.Duration)
	InvalidateFn func(url string) bool
	ClearFn      func()
	StatsFn      func() dsdoc.CacheStats
	URLsFn       func() []string
}

func (c *SchemaCache) Get(url string) (*dsdoc.CachedSchema, bool) {
	return c.GetFn(url)
}

func (c *SchemaCache) Set(url string, schema *dsdoc.Schema, warnings []dsdoc.Warning, ttl time.Duration) {
	c.SetFn(url, schema, warnings, ttl)
}

func (c *SchemaCache) Invalidate(url string) bool {
	return c.InvalidateFn(url)
}

func (c *SchemaCache) Clear() {
	c.ClearFn()
}

func (c *SchemaCache) Stats() dsdoc.CacheStats {
	return c.StatsFn()
}

func (c *SchemaCache) URLs() []string {
	return c.URLsFn()
}
