package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a key has no stored value.
var ErrNotFound = errors.New("key not found")

// KV is the on-device key-value store the data layer persists to.
// Each value is the JSON serialization of one full collection; writes
// replace the whole value, there are no incremental updates.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	// Keys returns all stored keys with the given prefix, used to clear a
	// departing user's namespaced keys on logout.
	Keys(ctx context.Context, prefix string) ([]string, error)
	Close() error
}
