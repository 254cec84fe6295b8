package lexidex

import "github.com/lexidex/lexidex/internal/domain"

// Sentinel errors surfaced by the SDK; test with errors.Is.
var (
	// ErrNotFound signals a missing stored string.
	ErrNotFound = domain.ErrStringNotFound
	// ErrNoPatternMatched signals a free-text query no translator rule understood.
	ErrNoPatternMatched = domain.ErrNoPatternMatched
	// ErrConflictingFilters signals a filter set no record can satisfy.
	ErrConflictingFilters = domain.ErrConflictingFilters
)
