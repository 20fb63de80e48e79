package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when no value exists under the key.
var ErrNotFound = errors.New("store: key not found")

// KV is the persistent key-value backend holding the record namespace.
// Keys under RecordKeyPrefix hold encoded entries; the ID counter lives in
// its own namespace and never appears in a prefix scan.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error

	// Delete removes the value under key, reporting whether one existed.
	Delete(ctx context.Context, key string) (bool, error)

	// ScanPrefix returns the values of every key carrying the prefix, in
	// the backend's key scan order (lexicographic, not numeric by ID).
	ScanPrefix(ctx context.Context, prefix string) ([][]byte, error)

	// NextID returns an ID never issued before by this store. Must be
	// atomic across concurrent callers.
	NextID(ctx context.Context) (uint64, error)
}
