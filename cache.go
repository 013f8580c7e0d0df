package fixturego

import (
	"sync"
	"time"
)

// Cache provides a simple in-memory cache for fixture source scans
type Cache struct {
	mu      sync.RWMutex
	scans   map[ScanCacheKey]cacheEntry
	hits    int64
	ttl     time.Duration
	maxSize int
}

// ScanCacheKey is the key used for caching source scans. The modification
// time keeps stale scans from surviving fixture edits.
type ScanCacheKey struct {
	Path    string
	ModTime time.Time
}

type cacheEntry struct {
	scan    *SourceScan
	addedAt time.Time
}

// NewCache creates a new cache with the given TTL and maximum size.
// A maxSize of zero leaves the cache unbounded.
func NewCache(ttl time.Duration, maxSize int) *Cache {
	return &Cache{
		scans:   make(map[ScanCacheKey]cacheEntry),
		ttl:     ttl,
		maxSize: maxSize,
	}
}

// GetScan retrieves a source scan from the cache
func (c *Cache) GetScan(key ScanCacheKey) (*SourceScan, bool) {
	if c == nil || c.ttl <= 0 {
		return nil, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.scans[key]
	if !ok {
		return nil, false
	}
	if time.Since(entry.addedAt) > c.ttl {
		delete(c.scans, key)
		return nil, false
	}
	c.hits++
	return entry.scan, true
}

// SetScan stores a source scan in the cache
func (c *Cache) SetScan(key ScanCacheKey, scan *SourceScan) {
	if c == nil || c.ttl <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.maxSize > 0 && len(c.scans) >= c.maxSize {
		if _, exists := c.scans[key]; !exists {
			// Evict the oldest entry to stay within bounds
			var oldestKey ScanCacheKey
			var oldestAt time.Time
			first := true
			for k, e := range c.scans {
				if first || e.addedAt.Before(oldestAt) {
					oldestKey, oldestAt = k, e.addedAt
					first = false
				}
			}
			delete(c.scans, oldestKey)
		}
	}

	c.scans[key] = cacheEntry{scan: scan, addedAt: time.Now()}
}

// Stats returns cache statistics
func (c *Cache) Stats() map[string]interface{} {
	if c == nil {
		return map[string]interface{}{
			"hits":    int64(0),
			"entries": int64(0),
		}
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	return map[string]interface{}{
		"hits":    c.hits,
		"entries": int64(len(c.scans)),
	}
}
