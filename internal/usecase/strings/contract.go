package strings

import (
	"context"

	"github.com/lexidex/lexidex/internal/domain/record"
)

// Repository defines the storage contract for analyzed strings.
type Repository interface {
	// Insert stores a record if absent. Returns true if stored.
	Insert(ctx context.Context, rec *record.Record) (bool, error)
	Get(ctx context.Context, id string) (record.Record, error)
	Delete(ctx context.Context, id string) error
	All(ctx context.Context) ([]record.Record, error)
	Count(ctx context.Context) (int, error)
}
