package cache

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func prefixLoader(calls *[][]string) LoaderFunc {
	return func(missingKeys []string) (map[string][]byte, error) {
		*calls = append(*calls, missingKeys)
		result := make(map[string][]byte)
		for _, key := range missingKeys {
			result[key] = []byte("loaded_" + key)
		}
		return result, nil
	}
}

func TestService_GetOrLoad(t *testing.T) {
	service := NewService(DefaultCacheConfig())
	var calls [][]string

	data, err := service.GetOrLoad([]string{"key1", "key2"}, prefixLoader(&calls), true, 0)
	require.NoError(t, err)
	assert.Equal(t, []byte("loaded_key1"), data["key1"])
	assert.Equal(t, []byte("loaded_key2"), data["key2"])
	assert.Len(t, calls, 1)

	// Second call is served from the cache
	data, err = service.GetOrLoad([]string{"key1", "key2"}, prefixLoader(&calls), true, 0)
	require.NoError(t, err)
	assert.Len(t, data, 2)
	assert.Len(t, calls, 1)

	stats := service.Stats()
	assert.Equal(t, 2, stats.GoCacheItems)
	assert.True(t, stats.Enabled)
}

func TestService_LoadOnlyMissingKeys(t *testing.T) {
	t.Run("only missing", func(t *testing.T) {
		service := NewService(DefaultCacheConfig())
		service.goCache.SetMany(map[string][]byte{"key1": []byte("cached_value1")}, 0)
		var calls [][]string

		data, err := service.GetOrLoad([]string{"key1", "key2", "key3"}, prefixLoader(&calls), true, 0)
		require.NoError(t, err)
		assert.Len(t, data, 3)
		assert.Equal(t, []byte("cached_value1"), data["key1"])
		assert.Equal(t, [][]string{{"key2", "key3"}}, calls)
	})

	t.Run("all keys", func(t *testing.T) {
		service := NewService(DefaultCacheConfig())
		service.goCache.SetMany(map[string][]byte{"key1": []byte("cached_value1")}, 0)
		var calls [][]string

		data, err := service.GetOrLoad([]string{"key1", "key2", "key3"}, prefixLoader(&calls), false, 0)
		require.NoError(t, err)
		assert.Len(t, data, 3)
		assert.Equal(t, []byte("loaded_key1"), data["key1"])
		assert.Equal(t, [][]string{{"key1", "key2", "key3"}}, calls)
	})
}

func TestService_LoaderErrorIsNotCached(t *testing.T) {
	service := NewService(DefaultCacheConfig())

	failing := func(missingKeys []string) (map[string][]byte, error) {
		return nil, errors.New("loader failed")
	}

	data, err := service.GetOrLoad([]string{"key1"}, failing, true, 0)
	assert.Error(t, err)
	assert.Nil(t, data)
	assert.Contains(t, err.Error(), "failed to load data")
	assert.Equal(t, 0, service.Stats().GoCacheItems)

	var calls [][]string
	data, err = service.GetOrLoad([]string{"key1"}, prefixLoader(&calls), true, 0)
	require.NoError(t, err)
	assert.Equal(t, []byte("loaded_key1"), data["key1"])
}

func TestService_EmptyKeys(t *testing.T) {
	service := NewService(DefaultCacheConfig())

	loader := func(missingKeys []string) (map[string][]byte, error) {
		t.Fatal("Loader should not be called for empty keys")
		return nil, nil
	}

	data, err := service.GetOrLoad([]string{}, loader, true, 0)
	assert.NoError(t, err)
	assert.Len(t, data, 0)
}

func TestService_TTL(t *testing.T) {
	service := NewService(DefaultCacheConfig())
	var calls [][]string

	_, err := service.GetOrLoad([]string{"key"}, prefixLoader(&calls), true, 50*time.Millisecond)
	require.NoError(t, err)

	time.Sleep(100 * time.Millisecond)

	_, err = service.GetOrLoad([]string{"key"}, prefixLoader(&calls), true, 50*time.Millisecond)
	require.NoError(t, err)
	assert.Len(t, calls, 2)
}

func TestService_DisabledCache(t *testing.T) {
	config := Config{
		GoCache: GoCacheConfig{
			Enabled:           false,
			DefaultExpiration: 5 * time.Minute,
			CleanupInterval:   10 * time.Minute,
		},
	}
	service := NewService(config)
	var calls [][]string

	for i := 0; i < 2; i++ {
		data, err := service.GetOrLoad([]string{"key1"}, prefixLoader(&calls), true, 0)
		require.NoError(t, err)
		assert.Equal(t, []byte("loaded_key1"), data["key1"])
	}
	assert.Len(t, calls, 2)

	_, ok := service.Get("key1")
	assert.False(t, ok)
	assert.Equal(t, 0, service.Stats().GoCacheItems)
	assert.False(t, service.Stats().Enabled)
}

func TestService_StopClears(t *testing.T) {
	service := NewService(DefaultCacheConfig())
	var calls [][]string

	_, err := service.GetOrLoad([]string{"key1", "key2"}, prefixLoader(&calls), true, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, service.Stats().GoCacheItems)

	service.Stop()
	assert.Equal(t, 0, service.Stats().GoCacheItems)
}

func TestService_ImplementsCache(t *testing.T) {
	var _ Cache = NewService(DefaultCacheConfig())
}
