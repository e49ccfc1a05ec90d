package storage

import (
	"context"
	"errors"
)

// ErrUnsupportedDriver is returned by Open for an unknown driver name
var ErrUnsupportedDriver = errors.New("unsupported storage driver")

// Store is a namespaced key-value store for opaque blobs that survives restarts
// when backed by a database.
type Store interface {
	// Get returns the value for key. found is false when the key was never written.
	Get(ctx context.Context, key string) (value []byte, found bool, err error)

	// Set writes value under key, replacing any previous value
	Set(ctx context.Context, key string, value []byte) error

	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error

	// Clear deletes every key of the store namespace
	Clear(ctx context.Context) error

	// Close releases any resources (no-op for in-memory).
	Close() error
}

func namespacedKey(namespace, key string) string {
	if namespace == "" {
		return key
	}
	return namespace + ":" + key
}
