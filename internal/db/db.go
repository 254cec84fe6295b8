package db

import (
	"context"
	"time"
)

// Store is the database facade. Consumers depend on the narrow
// sub-interfaces they actually use (ISP).
type Store interface {
	Pinger
	KVStore
	Close()
	WaitForReady(ctx context.Context, timeout time.Duration) error
}

// Pinger checks database connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// KVStore provides key-value operations.
type KVStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	// SetNX stores value only if key is absent. Returns true if stored.
	SetNX(ctx context.Context, key string, value []byte) (bool, error)
	Del(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	// Keys returns all keys matching a glob-style pattern.
	Keys(ctx context.Context, pattern string) ([]string, error)
	// GetMulti returns values for keys in order; a nil entry marks a
	// key that vanished between listing and retrieval.
	GetMulti(ctx context.Context, keys []string) ([][]byte, error)
}
