package seencache

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// Cache remembers inbound message ids for a TTL so a redelivered webhook is answered only once.
type Cache struct {
	cache *cache.Cache
}

// New creates a cache whose entries expire after ttl.
func New(ttl time.Duration) *Cache {
	return &Cache{
		cache: cache.New(ttl, 2*ttl),
	}
}

// FirstSeen reports whether mid has not been seen within the TTL and records it.
// An empty mid cannot be tracked and is always reported as first seen.
func (c *Cache) FirstSeen(mid string) bool {
	if mid == "" {
		return true
	}
	// Add fails when the key is already present and unexpired.
	return c.cache.Add(mid, struct{}{}, cache.DefaultExpiration) == nil
}
