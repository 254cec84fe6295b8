package domain

import "errors"

var (
	// ErrStringNotFound signals a missing stored string.
	ErrStringNotFound = errors.New("string not found")
	// ErrAlreadyExists signals a duplicate stored string.
	ErrAlreadyExists = errors.New("already exists")
	// ErrNoPatternMatched signals that no translator rule matched the free-text query.
	ErrNoPatternMatched = errors.New("could not interpret query")
	// ErrConflictingFilters signals a filter set no record can satisfy.
	ErrConflictingFilters = errors.New("conflicting filters")
	// ErrInvalidFilter signals a malformed filter value.
	ErrInvalidFilter = errors.New("invalid filter")
)
