// Package redis implements db.Store via rueidis. The driver is
// optional: lexidex does not require durable storage, but deployments
// that already run Redis can share state across restarts with it.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/rueidis"

	"github.com/lexidex/lexidex/internal/db"
)

// Compile-time check: Store implements db.Store.
var _ db.Store = (*Store)(nil)

// Config holds connection parameters for a Redis store.
type Config struct {
	Addrs    []string
	Username string
	Password string
	DB       int
}

// Store implements db.Store via rueidis.
type Store struct {
	client rueidis.Client
}

// NewStore creates a Redis store via rueidis.
func NewStore(cfg Config) (*Store, error) {
	if len(cfg.Addrs) == 0 {
		return nil, fmt.Errorf("addrs is required")
	}

	client, err := rueidis.NewClient(rueidis.ClientOption{
		InitAddress:  cfg.Addrs,
		Username:     cfg.Username,
		Password:     cfg.Password,
		SelectDB:     cfg.DB,
		DisableCache: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return &Store{client: client}, nil
}

// Ping checks connectivity.
func (s *Store) Ping(ctx context.Context) error {
	cmd := s.client.B().Ping().Build()
	if err := s.client.Do(ctx, cmd).Error(); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// Close shuts down the client.
func (s *Store) Close() {
	s.client.Close()
}

// WaitForReady polls Ping until the store responds or timeout expires.
func (s *Store) WaitForReady(ctx context.Context, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("timeout waiting for database: %w", ctx.Err())
		case <-ticker.C:
			if err := s.Ping(ctx); err == nil {
				return nil
			}
		}
	}
}

// Get retrieves a value by key.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	cmd := s.client.B().Get().Key(key).Build()
	data, err := s.client.Do(ctx, cmd).AsBytes()
	if err != nil {
		if rueidis.IsRedisNil(err) {
			return nil, db.ErrKeyNotFound
		}
		return nil, &db.Error{Op: db.OpGet, Err: err}
	}
	return data, nil
}

// Set stores a value at the given key.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	cmd := s.client.B().Set().Key(key).Value(string(value)).Build()
	if err := s.client.Do(ctx, cmd).Error(); err != nil {
		return &db.Error{Op: db.OpSet, Err: err}
	}
	return nil
}

// SetNX stores value only if key is absent. Returns true if stored.
func (s *Store) SetNX(ctx context.Context, key string, value []byte) (bool, error) {
	cmd := s.client.B().Set().Key(key).Value(string(value)).Nx().Build()
	err := s.client.Do(ctx, cmd).Error()
	if err != nil {
		// SET NX replies nil when the key already exists.
		if rueidis.IsRedisNil(err) {
			return false, nil
		}
		return false, &db.Error{Op: db.OpSetNX, Err: err}
	}
	return true, nil
}

// Del removes a key. Deleting an absent key is not an error.
func (s *Store) Del(ctx context.Context, key string) error {
	cmd := s.client.B().Del().Key(key).Build()
	if err := s.client.Do(ctx, cmd).Error(); err != nil {
		return &db.Error{Op: db.OpDel, Err: err}
	}
	return nil
}

// Exists reports whether the key is present.
func (s *Store) Exists(ctx context.Context, key string) (bool, error) {
	cmd := s.client.B().Exists().Key(key).Build()
	n, err := s.client.Do(ctx, cmd).AsInt64()
	if err != nil {
		return false, &db.Error{Op: db.OpExists, Err: err}
	}
	return n > 0, nil
}

// Keys returns all keys matching a glob-style pattern via SCAN.
func (s *Store) Keys(ctx context.Context, pattern string) ([]string, error) {
	var keys []string
	var cursor uint64

	for {
		cmd := s.client.B().Scan().Cursor(cursor).Match(pattern).Count(512).Build()
		entry, err := s.client.Do(ctx, cmd).AsScanEntry()
		if err != nil {
			return nil, &db.Error{Op: db.OpScan, Err: err}
		}
		keys = append(keys, entry.Elements...)
		cursor = entry.Cursor
		if cursor == 0 {
			return keys, nil
		}
	}
}

// GetMulti returns values for keys in order, nil for absent keys.
func (s *Store) GetMulti(ctx context.Context, keys []string) ([][]byte, error) {
	if len(keys) == 0 {
		return nil, nil
	}

	cmd := s.client.B().Mget().Key(keys...).Build()
	msgs, err := s.client.Do(ctx, cmd).ToArray()
	if err != nil {
		return nil, &db.Error{Op: db.OpMGet, Err: err}
	}

	out := make([][]byte, len(keys))
	for i, msg := range msgs {
		if i >= len(out) {
			break
		}
		if msg.IsNil() {
			continue
		}
		data, err := msg.AsBytes()
		if err != nil {
			return nil, &db.Error{Op: db.OpMGet, Err: err}
		}
		out[i] = data
	}
	return out, nil
}
