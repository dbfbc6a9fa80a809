// cache.go provides an in-memory cache for rendered project documents.
// Entries are keyed by project ID and update time, so saving a project
// automatically produces a cache miss on the next render.
package preview

import (
	"log/slog"
	"sync"
	"time"
)

// maxCachedDocuments bounds the cache; when full it is reset.
const maxCachedDocuments = 512

// cacheKey uniquely identifies a rendered project version.
type cacheKey struct {
	id        string
	updatedAt int64 // UnixNano of the project's updated_at
}

// documentCache is a concurrency-safe in-memory cache of rendered documents.
type documentCache struct {
	mu      sync.RWMutex
	entries map[cacheKey][]byte
}

func newDocumentCache() *documentCache {
	return &documentCache{
		entries: make(map[cacheKey][]byte),
	}
}

// get retrieves a rendered document. Returns nil on miss.
func (c *documentCache) get(id string, updatedAt time.Time) []byte {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.entries[cacheKey{id: id, updatedAt: updatedAt.UnixNano()}]
}

// put stores a rendered document, dropping older versions of the same project.
func (c *documentCache) put(id string, updatedAt time.Time, doc []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k := range c.entries {
		if k.id == id {
			delete(c.entries, k)
		}
	}
	if len(c.entries) >= maxCachedDocuments {
		c.entries = make(map[cacheKey][]byte)
		slog.Debug("preview cache reset", "limit", maxCachedDocuments)
	}
	c.entries[cacheKey{id: id, updatedAt: updatedAt.UnixNano()}] = doc
	slog.Debug("preview cached", "id", id, "size", len(c.entries))
}

// invalidate removes all cached versions for a project ID.
func (c *documentCache) invalidate(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k := range c.entries {
		if k.id == id {
			delete(c.entries, k)
		}
	}
	slog.Debug("preview cache invalidated", "id", id)
}

// len returns the number of cached documents.
func (c *documentCache) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
