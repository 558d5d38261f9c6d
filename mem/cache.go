// Package mem provides an in-memory schema cache.
package mem

import (
	"sort"
	"sync"
	"time"

	"github.com/dsdoc/dsdoc"
)

// Ensure Cache implements dsdoc.SchemaCache at compile time.
var _ dsdoc.SchemaCache = (*Cache)(nil)

// Cache stores finished extractions in memory, keyed by normalized source
// URL. Entries expire lazily: an expired entry is removed by the Get that
// finds it. There is no size bound; the workload is small and user
// triggered, so TTL expiry and explicit invalidation are enough.
type Cache struct {
	mu      sync.Mutex
	entries map[string]*dsdoc.CachedSchema
	hits    uint64
	misses  uint64
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{
		entries: make(map[string]*dsdoc.CachedSchema),
	}
}

// Get returns the entry for the URL. An entry past its ttl is evicted and
// counted as a miss.
func (c *Cache) Get(url string) (*dsdoc.CachedSchema, bool) {
	key := dsdoc.NormalizeBaseURL(url)

	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		c.misses++
		return nil, false
	}
	if entry.Expired(time.Now()) {
		delete(c.entries, key)
		c.misses++
		return nil, false
	}
	c.hits++
	return entry, true
}

// Set stores an extraction under the URL. A zero ttl means
// dsdoc.DefaultCacheTTL.
func (c *Cache) Set(url string, schema *dsdoc.Schema, warnings []dsdoc.Warning, ttl time.Duration) {
	if ttl == 0 {
		ttl = dsdoc.DefaultCacheTTL
	}
	key := dsdoc.NormalizeBaseURL(url)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = &dsdoc.CachedSchema{
		Schema:   schema,
		Warnings: warnings,
		CachedAt: time.Now(),
		TTL:      ttl,
	}
}

// Invalidate removes the entry for the URL and reports whether one was
// present.
func (c *Cache) Invalidate(url string) bool {
	key := dsdoc.NormalizeBaseURL(url)

	c.mu.Lock()
	defer c.mu.Unlock()

	_, ok := c.entries[key]
	delete(c.entries, key)
	return ok
}

// Clear removes all entries and resets the hit/miss counters.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*dsdoc.CachedSchema)
	c.hits = 0
	c.misses = 0
}

// URLs returns the normalized source URLs of all current entries in sorted
// order.
func (c *Cache) URLs() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	urls := make([]string, 0, len(c.entries))
	for key := range c.entries {
		urls = append(urls, key)
	}
	sort.Strings(urls)
	return urls
}

// Stats returns a snapshot of size and hit/miss counters.
func (c *Cache) Stats() dsdoc.CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()

	stats := dsdoc.CacheStats{
		Size:   len(c.entries),
		Hits:   c.hits,
		Misses: c.misses,
	}
	if total := c.hits + c.misses; total > 0 {
		stats.HitRate = float64(c.hits) / float64(total)
	}
	return stats
}
