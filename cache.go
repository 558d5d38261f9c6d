package dsdoc

import "time"

// DefaultCacheTTL is how long a cached extraction stays fresh unless the
// caller overrides it.
const DefaultCacheTTL = time.Hour

// CachedSchema is one cache entry: a finished extraction plus its warnings
// and freshness metadata. Entries are owned by the cache; callers must not
// retain them across invalidation.
type CachedSchema struct {
	Schema   *Schema
	Warnings []Warning
	CachedAt time.Time
	TTL      time.Duration
}

// Expired reports whether the entry's age exceeds its ttl at the given time.
func (e *CachedSchema) Expired(now time.Time) bool {
	return now.Sub(e.CachedAt) > e.TTL
}

// CacheStats is a point-in-time snapshot of cache effectiveness.
type CacheStats struct {
	Size    int     `json:"size"`
	Hits    uint64  `json:"hits"`
	Misses  uint64  `json:"misses"`
	HitRate float64 `json:"hitRate"`
}

// SchemaCache stores finished extractions keyed by normalized source URL,
// so differently-decorated URLs for the same site share one entry.
type SchemaCache interface {
	// Get returns the entry for the URL. An expired entry is evicted and
	// reported as a miss.
	Get(url string) (*CachedSchema, bool)

	// Set stores an extraction under the URL. A zero ttl means
	// DefaultCacheTTL.
	Set(url string, schema *Schema, warnings []Warning, ttl time.Duration)

	// Invalidate removes the entry for the URL and reports whether one
	// was present.
	Invalidate(url string) bool

	// Clear removes all entries and resets the hit/miss counters.
	Clear()

	// Stats returns a snapshot of size and hit/miss counters.
	Stats() CacheStats

	// URLs returns the normalized source URLs of all current entries in
	// sorted order.
	URLs() []string
}
