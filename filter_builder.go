package lexidex

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/lexidex/lexidex/internal/domain/query/filter"
)

// FilterBuilder is a fluent builder for structured filters.
type FilterBuilder struct {
	client *Client
	set    filter.Set
	err    error
}

// Palindrome constrains matching on the palindrome flag.
func (b *FilterBuilder) Palindrome(v bool) *FilterBuilder {
	b.set = b.set.WithPalindrome(v)
	return b
}

// MinLength constrains matching to values of at least n characters.
func (b *FilterBuilder) MinLength(n int) *FilterBuilder {
	if n < 0 {
		b.err = fmt.Errorf("lexidex: min length must be non-negative, got %d", n)
		return b
	}
	b.set = b.set.WithMinLength(n)
	return b
}

// MaxLength constrains matching to values of at most n characters.
func (b *FilterBuilder) MaxLength(n int) *FilterBuilder {
	if n < 0 {
		b.err = fmt.Errorf("lexidex: max length must be non-negative, got %d", n)
		return b
	}
	b.set = b.set.WithMaxLength(n)
	return b
}

// WordCount constrains matching to values of exactly n words.
func (b *FilterBuilder) WordCount(n int) *FilterBuilder {
	if n < 0 {
		b.err = fmt.Errorf("lexidex: word count must be non-negative, got %d", n)
		return b
	}
	b.set = b.set.WithWordCount(n)
	return b
}

// ContainsChar constrains matching to values containing c
// (case-sensitive, exactly one character).
func (b *FilterBuilder) ContainsChar(c string) *FilterBuilder {
	if utf8.RuneCountInString(c) != 1 {
		b.err = fmt.Errorf("lexidex: contains char must be exactly one character, got %q", c)
		return b
	}
	b.set = b.set.WithContainsChar(c)
	return b
}

// Do evaluates the filter and returns the matching records.
// Returns an error wrapping ErrConflictingFilters for a contradictory
// filter set.
func (b *FilterBuilder) Do(ctx context.Context) ([]Record, error) {
	if b.err != nil {
		return nil, b.err
	}

	recs, err := b.client.querySvc.Filter(ctx, b.set)
	if err != nil {
		return nil, err
	}
	return recordsFromDomain(recs), nil
}
