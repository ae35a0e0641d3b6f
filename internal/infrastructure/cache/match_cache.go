package cache

import (
	"sync"

	"github.com/nutritrack/backend/internal/domain"
)

// MatchCache is a thread-safe in-memory memo of catalog match outcomes keyed
// by (catalog kind, normalized query). There is no eviction and no size
// bound: catalogs hold hundreds of entries and the only invalidation point is
// a catalog replacement.
type MatchCache struct {
	data  map[domain.CatalogKind]map[string]string
	mutex sync.RWMutex
}

// NewMatchCache creates an empty match cache
func NewMatchCache() *MatchCache {
	return &MatchCache{
		data: make(map[domain.CatalogKind]map[string]string),
	}
}

// Get returns the cached entry ID for the query, or false on miss
func (c *MatchCache) Get(kind domain.CatalogKind, normalizedQuery string) (string, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	entries, ok := c.data[kind]
	if !ok {
		return "", false
	}

	entryID, ok := entries[normalizedQuery]
	return entryID, ok
}

// Put stores a successful match outcome, replacing any existing entry
func (c *MatchCache) Put(kind domain.CatalogKind, normalizedQuery string, entryID string) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	entries, ok := c.data[kind]
	if !ok {
		entries = make(map[string]string)
		c.data[kind] = entries
	}
	entries[normalizedQuery] = entryID
}

// Invalidate removes all entries for the given catalog kind. Called when the
// catalog is hot-swapped so cached IDs never go stale relative to the
// snapshot they were computed against.
func (c *MatchCache) Invalidate(kind domain.CatalogKind) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	delete(c.data, kind)
}

// Size returns the current number of cached lookups across all catalogs
// (for debugging/monitoring)
func (c *MatchCache) Size() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	total := 0
	for _, entries := range c.data {
		total += len(entries)
	}
	return total
}

// Clear removes all items from the cache
func (c *MatchCache) Clear() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.data = make(map[domain.CatalogKind]map[string]string)
}
