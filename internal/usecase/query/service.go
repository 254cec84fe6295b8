// Package query applies structured and natural-language filters to the
// stored string collection.
package query

import (
	"context"
	"fmt"

	"github.com/lexidex/lexidex/internal/domain"
	"github.com/lexidex/lexidex/internal/domain/query/filter"
	"github.com/lexidex/lexidex/internal/domain/query/translate"
	"github.com/lexidex/lexidex/internal/domain/record"
	"github.com/lexidex/lexidex/internal/metrics"
)

// Service evaluates filter sets over a snapshot of stored records.
type Service struct {
	records RecordLister
}

// New creates a query service.
func New(records RecordLister) *Service {
	return &Service{records: records}
}

// Filter returns the records matching set. A contradictory set yields
// domain.ErrConflictingFilters before any record is read.
func (s *Service) Filter(ctx context.Context, set filter.Set) ([]record.Record, error) {
	if set.HasConflict() {
		metrics.FilterRequestsTotal.WithLabelValues("conflict").Inc()
		return nil, domain.ErrConflictingFilters
	}

	matched, err := s.match(ctx, set)
	if err != nil {
		return nil, err
	}
	metrics.FilterRequestsTotal.WithLabelValues("ok").Inc()
	return matched, nil
}

// Interpret translates freeText into a filter set and returns the
// matching records together with the translation. The two failure
// modes stay distinct: domain.ErrNoPatternMatched means the query was
// not understood, domain.ErrConflictingFilters means it was understood
// but cannot be satisfied.
func (s *Service) Interpret(ctx context.Context, freeText string) (
	[]record.Record, translate.Translation, error,
) {
	tr, ok := translate.Translate(freeText)
	if !ok {
		metrics.QueryTranslationsTotal.WithLabelValues("no_match").Inc()
		return nil, translate.Translation{}, fmt.Errorf("%w: %q", domain.ErrNoPatternMatched, freeText)
	}

	if tr.Filters().HasConflict() {
		metrics.QueryTranslationsTotal.WithLabelValues("conflict").Inc()
		return nil, translate.Translation{}, domain.ErrConflictingFilters
	}

	matched, err := s.match(ctx, tr.Filters())
	if err != nil {
		return nil, translate.Translation{}, err
	}
	metrics.QueryTranslationsTotal.WithLabelValues("matched").Inc()
	return matched, tr, nil
}

// match runs one single-pass evaluation over a coherent snapshot.
func (s *Service) match(ctx context.Context, set filter.Set) ([]record.Record, error) {
	recs, err := s.records.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}

	matched := make([]record.Record, 0, len(recs))
	for i := range recs {
		if set.Matches(&recs[i]) {
			matched = append(matched, recs[i])
		}
	}
	return matched, nil
}
