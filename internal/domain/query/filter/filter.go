// Package filter models the structured constraints a query can place
// on stored strings and evaluates them against records.
package filter

import (
	"strings"

	"github.com/lexidex/lexidex/internal/domain/record"
)

// Set is a set of optional constraints on stored strings. The zero
// value carries no constraints and matches every record. A present
// dimension constrains matching; an absent one is vacuously satisfied.
//
// Set is a value type: the With methods return a modified copy, so a
// Set can be assembled as a pipeline of pure transformations.
type Set struct {
	isPalindrome *bool
	minLength    *int
	maxLength    *int
	wordCount    *int
	containsChar *string
}

// New creates an empty Set.
func New() Set { return Set{} }

// WithPalindrome returns a copy constrained on the palindrome flag.
func (s Set) WithPalindrome(v bool) Set {
	s.isPalindrome = &v
	return s
}

// WithMinLength returns a copy constrained on minimum length.
func (s Set) WithMinLength(n int) Set {
	s.minLength = &n
	return s
}

// WithMaxLength returns a copy constrained on maximum length.
func (s Set) WithMaxLength(n int) Set {
	s.maxLength = &n
	return s
}

// WithWordCount returns a copy constrained on exact word count.
func (s Set) WithWordCount(n int) Set {
	s.wordCount = &n
	return s
}

// WithContainsChar returns a copy constrained to values containing the
// given character. Matching is case-sensitive and exact; callers must
// pass exactly one code point.
func (s Set) WithContainsChar(c string) Set {
	s.containsChar = &c
	return s
}

// Palindrome returns the palindrome constraint, if present.
func (s Set) Palindrome() (bool, bool) {
	if s.isPalindrome == nil {
		return false, false
	}
	return *s.isPalindrome, true
}

// MinLength returns the minimum-length constraint, if present.
func (s Set) MinLength() (int, bool) {
	if s.minLength == nil {
		return 0, false
	}
	return *s.minLength, true
}

// MaxLength returns the maximum-length constraint, if present.
func (s Set) MaxLength() (int, bool) {
	if s.maxLength == nil {
		return 0, false
	}
	return *s.maxLength, true
}

// WordCount returns the word-count constraint, if present.
func (s Set) WordCount() (int, bool) {
	if s.wordCount == nil {
		return 0, false
	}
	return *s.wordCount, true
}

// ContainsChar returns the contains-character constraint, if present.
func (s Set) ContainsChar() (string, bool) {
	if s.containsChar == nil {
		return "", false
	}
	return *s.containsChar, true
}

// IsEmpty reports whether the set carries no constraints.
func (s Set) IsEmpty() bool {
	return s.isPalindrome == nil &&
		s.minLength == nil &&
		s.maxLength == nil &&
		s.wordCount == nil &&
		s.containsChar == nil
}

// Matches reports whether rec satisfies every present constraint
// (logical AND). An empty set matches every record.
func (s Set) Matches(rec *record.Record) bool {
	props := rec.Properties()

	if s.isPalindrome != nil && props.IsPalindrome != *s.isPalindrome {
		return false
	}
	if s.minLength != nil && props.Length < *s.minLength {
		return false
	}
	if s.maxLength != nil && props.Length > *s.maxLength {
		return false
	}
	if s.wordCount != nil && props.WordCount != *s.wordCount {
		return false
	}
	if s.containsChar != nil && !strings.Contains(rec.Value(), *s.containsChar) {
		return false
	}
	return true
}

// HasConflict reports whether the set is internally contradictory.
// The single recognized conflict is min length > max length with both
// present. Additional dimension-pair rules are a deliberate non-goal.
func (s Set) HasConflict() bool {
	return s.minLength != nil && s.maxLength != nil && *s.minLength > *s.maxLength
}
