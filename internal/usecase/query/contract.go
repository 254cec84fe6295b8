package query

import (
	"context"

	"github.com/lexidex/lexidex/internal/domain/record"
)

// RecordLister supplies the snapshot of records a filtering pass runs over.
type RecordLister interface {
	All(ctx context.Context) ([]record.Record, error)
}
