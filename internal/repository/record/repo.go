package record

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lexidex/lexidex/internal/db"
	"github.com/lexidex/lexidex/internal/domain"
	domrec "github.com/lexidex/lexidex/internal/domain/record"
)

// DefaultKeyPrefix namespaces record keys in the store.
const DefaultKeyPrefix = "lexidex:str:"

// store is the consumer interface for records (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetNX(ctx context.Context, key string, value []byte) (bool, error)
	Del(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	Keys(ctx context.Context, pattern string) ([]string, error)
	GetMulti(ctx context.Context, keys []string) ([][]byte, error)
}

// Repo implements the record storage contract over a key-value store.
type Repo struct {
	store  store
	prefix string
}

// New creates a record repository.
func New(s store) *Repo {
	return &Repo{store: s, prefix: DefaultKeyPrefix}
}

// WithKeyPrefix overrides the key namespace.
func (r *Repo) WithKeyPrefix(prefix string) *Repo {
	r.prefix = prefix
	return r
}

// Insert stores a record if its ID is absent. Returns true if stored,
// false if a record with the same content already existed.
func (r *Repo) Insert(ctx context.Context, rec *domrec.Record) (bool, error) {
	data, err := json.Marshal(toDTO(rec))
	if err != nil {
		return false, fmt.Errorf("marshal record: %w", err)
	}

	created, err := r.store.SetNX(ctx, r.key(rec.ID()), data)
	if err != nil {
		return false, fmt.Errorf("setnx %s: %w", rec.ID(), err)
	}
	return created, nil
}

// Get returns a record by ID.
func (r *Repo) Get(ctx context.Context, id string) (domrec.Record, error) {
	raw, err := r.store.Get(ctx, r.key(id))
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return domrec.Record{}, domain.ErrStringNotFound
		}
		return domrec.Record{}, fmt.Errorf("get %s: %w", id, err)
	}

	var dto recordDTO
	if err := json.Unmarshal(raw, &dto); err != nil {
		return domrec.Record{}, fmt.Errorf("unmarshal record %s: %w", id, err)
	}
	return fromDTO(dto), nil
}

// Delete removes a record. Returns domain.ErrStringNotFound if absent.
func (r *Repo) Delete(ctx context.Context, id string) error {
	key := r.key(id)

	exists, err := r.store.Exists(ctx, key)
	if err != nil {
		return fmt.Errorf("exists %s: %w", id, err)
	}
	if !exists {
		return domain.ErrStringNotFound
	}

	if err := r.store.Del(ctx, key); err != nil {
		return fmt.Errorf("del %s: %w", id, err)
	}
	return nil
}

// All returns a snapshot of every stored record. Keys that vanish
// between listing and retrieval are skipped.
func (r *Repo) All(ctx context.Context) ([]domrec.Record, error) {
	keys, err := r.store.Keys(ctx, r.prefix+"*")
	if err != nil {
		return nil, fmt.Errorf("list keys: %w", err)
	}
	if len(keys) == 0 {
		return nil, nil
	}

	values, err := r.store.GetMulti(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("get records: %w", err)
	}

	recs := make([]domrec.Record, 0, len(values))
	for i, raw := range values {
		if raw == nil {
			continue
		}
		var dto recordDTO
		if err := json.Unmarshal(raw, &dto); err != nil {
			return nil, fmt.Errorf("unmarshal record %s: %w", keys[i], err)
		}
		recs = append(recs, fromDTO(dto))
	}
	return recs, nil
}

// Count returns the number of stored records.
func (r *Repo) Count(ctx context.Context) (int, error) {
	keys, err := r.store.Keys(ctx, r.prefix+"*")
	if err != nil {
		return 0, fmt.Errorf("list keys: %w", err)
	}
	return len(keys), nil
}

func (r *Repo) key(id string) string {
	return r.prefix + id
}
