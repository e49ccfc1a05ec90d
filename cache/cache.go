package cache

import "time"

// LoaderFunc loads the values for keys that were not found in the cache.
// It returns a key->data map; keys absent from the map are treated as not found.
type LoaderFunc func(missingKeys []string) (map[string][]byte, error)

// Cache is a byte-oriented TTL cache
type Cache interface {
	// GetOrLoad returns cached values for keys and loads the rest with loader.
	// If loadOnlyMissingKeys is false, any miss reloads the whole key set.
	// Loaded values are stored for ttl; 0 means the cache default expiration.
	// A loader error is returned as is and nothing is stored.
	GetOrLoad(keys []string, loader LoaderFunc, loadOnlyMissingKeys bool, ttl time.Duration) (map[string][]byte, error)

	// Get returns the value stored under key
	Get(key string) ([]byte, bool)
}
