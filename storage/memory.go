package storage

import (
	"context"
	"strings"

	"github.com/patrickmn/go-cache"
)

// MemoryStore keeps values in process memory. Nothing expires.
type MemoryStore struct {
	namespace string
	items     *cache.Cache
}

func NewMemoryStore(namespace string) *MemoryStore {
	return &MemoryStore{
		namespace: namespace,
		items:     cache.New(cache.NoExpiration, 0),
	}
}

func (m *MemoryStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, found := m.items.Get(namespacedKey(m.namespace, key))
	if !found {
		return nil, false, nil
	}
	data, ok := value.([]byte)
	if !ok {
		return nil, false, nil
	}
	// Callers must not be able to mutate the stored blob
	out := make([]byte, len(data))
	copy(out, data)
	return out, true, nil
}

func (m *MemoryStore) Set(ctx context.Context, key string, value []byte) error {
	data := make([]byte, len(value))
	copy(data, value)
	m.items.Set(namespacedKey(m.namespace, key), data, cache.NoExpiration)
	return nil
}

func (m *MemoryStore) Remove(ctx context.Context, key string) error {
	m.items.Delete(namespacedKey(m.namespace, key))
	return nil
}

func (m *MemoryStore) Clear(ctx context.Context) error {
	if m.namespace == "" {
		m.items.Flush()
		return nil
	}
	prefix := namespacedKey(m.namespace, "")
	for key := range m.items.Items() {
		if strings.HasPrefix(key, prefix) {
			m.items.Delete(key)
		}
	}
	return nil
}

func (m *MemoryStore) Close() error { return nil }
