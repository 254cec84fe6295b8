// Package memory implements db.Store as a process-local map. It is the
// default driver: stored strings do not need to outlive the process.
package memory

import (
	"context"
	"path"
	"sync"
	"time"

	"github.com/lexidex/lexidex/internal/db"
)

// Compile-time check: Store implements db.Store.
var _ db.Store = (*Store)(nil)

// Store is an in-memory key-value store guarded by an RWMutex.
type Store struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{data: make(map[string][]byte)}
}

// Ping always succeeds.
func (s *Store) Ping(_ context.Context) error { return nil }

// Close drops all data.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = make(map[string][]byte)
}

// WaitForReady returns immediately; memory is always ready.
func (s *Store) WaitForReady(_ context.Context, _ time.Duration) error { return nil }

// Get retrieves a value by key.
func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	if !ok {
		return nil, db.ErrKeyNotFound
	}
	return clone(v), nil
}

// Set stores a value at the given key.
func (s *Store) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = clone(value)
	return nil
}

// SetNX stores value only if key is absent. Returns true if stored.
func (s *Store) SetNX(_ context.Context, key string, value []byte) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.data[key]; ok {
		return false, nil
	}
	s.data[key] = clone(value)
	return true, nil
}

// Del removes a key. Deleting an absent key is not an error.
func (s *Store) Del(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

// Exists reports whether the key is present.
func (s *Store) Exists(_ context.Context, key string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.data[key]
	return ok, nil
}

// Keys returns all keys matching a glob-style pattern.
func (s *Store) Keys(_ context.Context, pattern string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var keys []string
	for k := range s.data {
		ok, err := path.Match(pattern, k)
		if err != nil {
			return nil, &db.Error{Op: db.OpScan, Err: err}
		}
		if ok {
			keys = append(keys, k)
		}
	}
	return keys, nil
}

// GetMulti returns values for keys in order, nil for absent keys.
// The whole read happens under one lock, so callers see a coherent
// snapshot.
func (s *Store) GetMulti(_ context.Context, keys []string) ([][]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([][]byte, len(keys))
	for i, k := range keys {
		if v, ok := s.data[k]; ok {
			out[i] = clone(v)
		}
	}
	return out, nil
}

func clone(b []byte) []byte {
	c := make([]byte, len(b))
	copy(c, b)
	return c
}
