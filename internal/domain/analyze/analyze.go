// Package analyze derives the stored properties of a raw string.
// Analyze is pure: identical input always yields identical output.
package analyze

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"unicode"

	"github.com/lexidex/lexidex/internal/domain/record"
)

// Analyze computes the derived properties of value in a single pass
// over its runes.
//
// WordCount counts maximal non-whitespace runs (strings.Fields
// semantics), so an empty or whitespace-only value has WordCount 0.
func Analyze(value string) record.Properties {
	runes := []rune(value)

	freq := make(map[string]int, len(runes))
	for _, r := range runes {
		freq[string(r)]++
	}

	return record.Properties{
		Length:             len(runes),
		IsPalindrome:       isPalindrome(runes),
		UniqueCharacters:   len(freq),
		WordCount:          len(strings.Fields(value)),
		ContentHash:        ContentHash(value),
		CharacterFrequency: freq,
	}
}

// ContentHash returns the SHA-256 hex digest of value. It doubles as
// the record identifier.
func ContentHash(value string) string {
	sum := sha256.Sum256([]byte(value))
	return hex.EncodeToString(sum[:])
}

// isPalindrome reports whether the runes read the same forwards and
// backwards, ignoring whitespace and case.
func isPalindrome(runes []rune) bool {
	norm := make([]rune, 0, len(runes))
	for _, r := range runes {
		if unicode.IsSpace(r) {
			continue
		}
		norm = append(norm, unicode.ToLower(r))
	}

	for i, j := 0, len(norm)-1; i < j; i, j = i+1, j-1 {
		if norm[i] != norm[j] {
			return false
		}
	}
	return true
}
