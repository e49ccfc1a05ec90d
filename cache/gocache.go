package cache

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// GoCache wraps go-cache for []byte values
type GoCache struct {
	cache *cache.Cache
}

// NewGoCache creates a new GoCache.
// defaultExpiration is used when an item is stored with ttl 0.
func NewGoCache(defaultExpiration, cleanupInterval time.Duration) *GoCache {
	return &GoCache{
		cache: cache.New(defaultExpiration, cleanupInterval),
	}
}

// Lookup splits keys into found values and missing keys
func (gc *GoCache) Lookup(keys []string) (map[string][]byte, []string) {
	found := make(map[string][]byte, len(keys))
	missing := make([]string, 0)

	for _, key := range keys {
		if data, ok := gc.Get(key); ok {
			found[key] = data
			continue
		}
		missing = append(missing, key)
	}

	return found, missing
}

// Get returns the value stored under key.
// Values of a different type are reported as missing.
func (gc *GoCache) Get(key string) ([]byte, bool) {
	value, found := gc.cache.Get(key)
	if !found {
		return nil, false
	}
	data, ok := value.([]byte)
	return data, ok
}

// SetMany stores every entry of data with the same ttl.
// ttl 0 uses the default expiration, cache.NoExpiration (-1) keeps the items forever.
func (gc *GoCache) SetMany(data map[string][]byte, ttl time.Duration) {
	for key, value := range data {
		gc.cache.Set(key, value, ttl)
	}
}

func (gc *GoCache) Clear() {
	gc.cache.Flush()
}

func (gc *GoCache) ItemCount() int {
	return gc.cache.ItemCount()
}
