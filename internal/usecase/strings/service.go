// Package strings manages the lifecycle of analyzed string records.
package strings

import (
	"context"
	"fmt"
	"time"

	"github.com/lexidex/lexidex/internal/domain/analyze"
	"github.com/lexidex/lexidex/internal/domain/record"
	"github.com/lexidex/lexidex/internal/metrics"
)

// Service handles string analysis and storage.
type Service struct {
	repo Repository
}

// New creates a strings service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create analyzes value and stores the resulting record keyed by its
// content hash. Re-submitting an already stored value returns the
// existing record with created=false.
func (s *Service) Create(ctx context.Context, value string) (record.Record, bool, error) {
	props := analyze.Analyze(value)

	rec, err := record.New(value, props, time.Now().UTC())
	if err != nil {
		return record.Record{}, false, fmt.Errorf("build record: %w", err)
	}

	created, err := s.repo.Insert(ctx, &rec)
	if err != nil {
		return record.Record{}, false, fmt.Errorf("insert record: %w", err)
	}
	if !created {
		existing, err := s.repo.Get(ctx, rec.ID())
		if err != nil {
			return record.Record{}, false, fmt.Errorf("get existing record: %w", err)
		}
		return existing, false, nil
	}

	s.updateStoredGauge(ctx)
	return rec, true, nil
}

// Get returns a stored record by ID.
func (s *Service) Get(ctx context.Context, id string) (record.Record, error) {
	rec, err := s.repo.Get(ctx, id)
	if err != nil {
		return record.Record{}, fmt.Errorf("get record: %w", err)
	}
	return rec, nil
}

// Delete removes a stored record by ID.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete record: %w", err)
	}
	s.updateStoredGauge(ctx)
	return nil
}

// List returns a snapshot of all stored records.
func (s *Service) List(ctx context.Context) ([]record.Record, error) {
	recs, err := s.repo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	return recs, nil
}

// Count returns the number of stored records.
func (s *Service) Count(ctx context.Context) (int, error) {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count records: %w", err)
	}
	return n, nil
}

// updateStoredGauge refreshes the stored-strings gauge from the
// repository count. Best effort; gauge accuracy never fails a request.
func (s *Service) updateStoredGauge(ctx context.Context) {
	if n, err := s.repo.Count(ctx); err == nil {
		metrics.StringsStored.Set(float64(n))
	}
}
