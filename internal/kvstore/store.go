// Package kvstore provides the durable string-keyed persistence substrate.
// It offers whole-value get/set only: no transactions, no locking, no partial
// updates. Consistency across multiple keys is the caller's responsibility.
package kvstore

import "context"

// Store is a durable key-value store.
//
// Get returns (nil, nil) when the key is absent. Callers must treat an absent
// key and a present-but-malformed value as distinct cases: the first is a
// normal empty state, the second is data corruption.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
