package cache

import "time"

// Config represents the in-memory cache configuration
type Config struct {
	GoCache GoCacheConfig `yaml:"go_cache"`
}

// GoCacheConfig configures go-cache
type GoCacheConfig struct {
	// DefaultExpiration applies to items stored with ttl 0
	DefaultExpiration time.Duration `yaml:"default_expiration"`

	// CleanupInterval is how often expired items are evicted
	CleanupInterval time.Duration `yaml:"cleanup_interval"`

	// Enabled turns caching on. When disabled every lookup goes to the loader.
	Enabled bool `yaml:"enabled"`
}

// DefaultCacheConfig returns the default cache configuration
func DefaultCacheConfig() Config {
	return Config{
		GoCache: GoCacheConfig{
			DefaultExpiration: 5 * time.Minute,
			CleanupInterval:   10 * time.Minute,
			Enabled:           true,
		},
	}
}
