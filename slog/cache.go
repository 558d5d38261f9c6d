package slog

import (
	"log/slog"
	"time"

	"github.com/dsdoc/dsdoc"
)

// Ensure LoggingCache implements dsdoc.SchemaCache.
var _ dsdoc.SchemaCache = (*LoggingCache)(nil)

// LoggingCache wraps a SchemaCache with debug logging for reads and
// mutations. Stats and URLs delegate silently.
type LoggingCache struct {
	next   dsdoc.SchemaCache
	logger *slog.Logger
}

// NewLoggingCache creates a new LoggingCache.
func NewLoggingCache(next dsdoc.SchemaCache, logger *slog.Logger) *LoggingCache {
	return &LoggingCache{next: next, logger: logger}
}

// Get delegates to the wrapped cache and logs whether it hit.
func (c *LoggingCache) Get(url string) (*dsdoc.CachedSchema, bool) {
	entry, ok := c.next.Get(url)
	c.logger.Info("cache get", "url", url, "hit", ok)
	return entry, ok
}

// Set delegates to the wrapped cache and logs the stored entry.
func (c *LoggingCache) Set(url string, schema *dsdoc.Schema, warnings []dsdoc.Warning, ttl time.Duration) {
	c.next.Set(url, schema, warnings, ttl)
	c.logger.Info("cache set", "url", url, "warnings", len(warnings), "ttl", ttl)
}

// Invalidate delegates to the wrapped cache and logs the removal.
func (c *LoggingCache) Invalidate(url string) bool {
	removed := c.next.Invalidate(url)
	c.logger.Info("cache invalidate", "url", url, "removed", removed)
	return removed
}

// Clear delegates to the wrapped cache and logs it.
func (c *LoggingCache) Clear() {
	c.next.Clear()
	c.logger.Info("cache clear")
}

// Stats delegates to the wrapped cache.
func (c *LoggingCache) Stats() dsdoc.CacheStats {
	return c.next.Stats()
}

// URLs delegates to the wrapped cache.
func (c *LoggingCache) URLs() []string {
	return c.next.URLs()
}
