// Package lexidex is the embedded SDK: it wires the store, repository
// and services in-process, without going through the HTTP API.
package lexidex

import (
	"context"
	"fmt"
	"time"

	"github.com/lexidex/lexidex/internal/db"
	dbMemory "github.com/lexidex/lexidex/internal/db/memory"
	dbRedis "github.com/lexidex/lexidex/internal/db/redis"
	recordrepo "github.com/lexidex/lexidex/internal/repository/record"
	queryuc "github.com/lexidex/lexidex/internal/usecase/query"
	stringsuc "github.com/lexidex/lexidex/internal/usecase/strings"
)

const defaultReadinessTimeout = 10 * time.Second

// Client is the lexidex SDK entry point.
type Client struct {
	store      db.Store
	stringsSvc *stringsuc.Service
	querySvc   *queryuc.Service
}

// New creates a lexidex Client. The in-memory store is used unless a
// driver option says otherwise.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		driver:    "memory",
		keyPrefix: recordrepo.DefaultKeyPrefix,
	}
	for _, o := range opts {
		o(cfg)
	}

	store, err := createStore(cfg)
	if err != nil {
		return nil, err
	}

	ctx := context.Background()
	if err := store.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("lexidex: database not ready: %w", err)
	}

	repo := recordrepo.New(store).WithKeyPrefix(cfg.keyPrefix)

	return &Client{
		store:      store,
		stringsSvc: stringsuc.New(repo),
		querySvc:   queryuc.New(repo),
	}, nil
}

func createStore(cfg *clientConfig) (db.Store, error) {
	switch cfg.driver {
	case "memory":
		return dbMemory.NewStore(), nil
	case "redis":
		s, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.addrs,
			Password: cfg.password,
		})
		if err != nil {
			return nil, fmt.Errorf("lexidex: create redis store: %w", err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("lexidex: unknown driver %q", cfg.driver)
	}
}

// Close releases all resources.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

// Ping checks database connectivity.
func (c *Client) Ping(ctx context.Context) error {
	if err := c.store.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// Add analyzes and stores value. Returns the record and whether it was
// newly created; adding an already stored value returns the existing
// record with created=false.
func (c *Client) Add(ctx context.Context, value string) (Record, bool, error) {
	rec, created, err := c.stringsSvc.Create(ctx, value)
	if err != nil {
		return Record{}, false, err
	}
	return recordFromDomain(&rec), created, nil
}

// Get returns a stored record by ID (its content hash).
// Returns an error wrapping ErrNotFound if absent.
func (c *Client) Get(ctx context.Context, id string) (Record, error) {
	rec, err := c.stringsSvc.Get(ctx, id)
	if err != nil {
		return Record{}, err
	}
	return recordFromDomain(&rec), nil
}

// Delete removes a stored record by ID.
func (c *Client) Delete(ctx context.Context, id string) error {
	return c.stringsSvc.Delete(ctx, id)
}

// List returns a snapshot of all stored records.
func (c *Client) List(ctx context.Context) ([]Record, error) {
	recs, err := c.stringsSvc.List(ctx)
	if err != nil {
		return nil, err
	}
	return recordsFromDomain(recs), nil
}

// Filter starts a fluent filter over the stored collection:
//
//	recs, err := client.Filter().Palindrome(true).MinLength(3).Do(ctx)
func (c *Client) Filter() *FilterBuilder {
	return &FilterBuilder{client: c}
}

// Query interprets a free-text query and returns the matching records
// with the interpretation. Returns an error wrapping
// ErrNoPatternMatched when the query is not understood and one
// wrapping ErrConflictingFilters when it is contradictory.
func (c *Client) Query(ctx context.Context, freeText string) ([]Record, Interpretation, error) {
	recs, tr, err := c.querySvc.Interpret(ctx, freeText)
	if err != nil {
		return nil, Interpretation{}, err
	}
	return recordsFromDomain(recs), interpretationFromDomain(freeText, tr), nil
}
