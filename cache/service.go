package cache

import (
	"context"
	"fmt"
	"time"
)

// Service implements Cache on top of go-cache
type Service struct {
	goCache *GoCache
	config  Config
}

// NewService creates a new cache service with the given configuration
func NewService(config Config) *Service {
	return &Service{
		goCache: NewGoCache(config.GoCache.DefaultExpiration, config.GoCache.CleanupInterval),
		config:  config,
	}
}

// Start implements core.Interface
func (s *Service) Start(ctx context.Context) error {
	if s.goCache == nil {
		return fmt.Errorf("cache service not properly initialized")
	}
	return nil
}

// Stop implements core.Interface
func (s *Service) Stop() {
	s.Clear()
}

func (s *Service) enabled() bool {
	return s.config.GoCache.Enabled
}

// GetOrLoad implements Cache
func (s *Service) GetOrLoad(keys []string, loader LoaderFunc, loadOnlyMissingKeys bool, ttl time.Duration) (map[string][]byte, error) {
	if len(keys) == 0 {
		return make(map[string][]byte), nil
	}

	found, missing := s.lookup(keys)
	if len(missing) == 0 {
		return found, nil
	}

	keysToLoad := missing
	if !loadOnlyMissingKeys {
		keysToLoad = keys
	}

	loaded, err := loader(keysToLoad)
	if err != nil {
		return nil, fmt.Errorf("failed to load data: %w", err)
	}

	if s.enabled() && len(loaded) > 0 {
		s.goCache.SetMany(loaded, ttl)
	}

	result := make(map[string][]byte, len(keys))
	for _, key := range keys {
		if value, ok := loaded[key]; ok {
			result[key] = value
		} else if value, ok := found[key]; ok {
			result[key] = value
		}
	}
	return result, nil
}

func (s *Service) lookup(keys []string) (map[string][]byte, []string) {
	if !s.enabled() {
		return make(map[string][]byte), keys
	}
	return s.goCache.Lookup(keys)
}

// Get implements Cache
func (s *Service) Get(key string) ([]byte, bool) {
	if !s.enabled() {
		return nil, false
	}
	return s.goCache.Get(key)
}

// Clear removes every item
func (s *Service) Clear() {
	if s.goCache != nil {
		s.goCache.Clear()
	}
}

// Stats returns statistics about the cache service
func (s *Service) Stats() ServiceStats {
	return ServiceStats{
		GoCacheItems: s.goCache.ItemCount(),
		Enabled:      s.enabled(),
	}
}

// ServiceStats represents cache service statistics
type ServiceStats struct {
	GoCacheItems int
	Enabled      bool
}
