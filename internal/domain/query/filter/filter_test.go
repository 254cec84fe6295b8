package filter

import (
	"testing"
	"time"

	"github.com/lexidex/lexidex/internal/domain/analyze"
	"github.com/lexidex/lexidex/internal/domain/record"
)

func rec(t *testing.T, value string) *record.Record {
	t.Helper()
	r, err := record.New(value, analyze.Analyze(value), time.Now().UTC())
	if err != nil {
		t.Fatalf("build record %q: %v", value, err)
	}
	return &r
}

func TestSet_EmptyMatchesEverything(t *testing.T) {
	s := New()
	if !s.IsEmpty() {
		t.Fatal("New() should be empty")
	}

	for _, v := range []string{"a", "racecar", "hello world", "  "} {
		if !s.Matches(rec(t, v)) {
			t.Errorf("empty set rejected %q", v)
		}
	}
}

func TestSet_SingleDimensions(t *testing.T) {
	tests := []struct {
		name  string
		set   Set
		value string
		want  bool
	}{
		{"palindrome hit", New().WithPalindrome(true), "racecar", true},
		{"palindrome miss", New().WithPalindrome(true), "hello", false},
		{"non-palindrome hit", New().WithPalindrome(false), "hello", true},
		{"min length hit", New().WithMinLength(5), "hello", true},
		{"min length miss", New().WithMinLength(6), "hello", false},
		{"max length hit", New().WithMaxLength(5), "hello", true},
		{"max length miss", New().WithMaxLength(4), "hello", false},
		{"word count hit", New().WithWordCount(2), "hello world", true},
		{"word count miss", New().WithWordCount(1), "hello world", false},
		{"contains hit", New().WithContainsChar("z"), "puzzle", true},
		{"contains miss", New().WithContainsChar("z"), "hello", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.set.Matches(rec(t, tt.value)); got != tt.want {
				t.Errorf("Matches(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestSet_ContainsCharCaseSensitive(t *testing.T) {
	upper := New().WithContainsChar("A")
	lower := New().WithContainsChar("a")

	r := rec(t, "apple")
	if upper.Matches(r) {
		t.Error("'A' should not match lowercase 'apple'")
	}
	if !lower.Matches(r) {
		t.Error("'a' should match 'apple'")
	}
}

func TestSet_CombinedAND(t *testing.T) {
	s := New().WithPalindrome(true).WithMinLength(5).WithContainsChar("e")

	if !s.Matches(rec(t, "racecar")) {
		t.Error("racecar satisfies all three constraints")
	}
	// palindrome and contains e, but too short
	if s.Matches(rec(t, "eve")) {
		t.Error("eve fails the length constraint")
	}
	// long enough and contains e, not a palindrome
	if s.Matches(rec(t, "elephant")) {
		t.Error("elephant fails the palindrome constraint")
	}
}

func TestSet_WithCopiesDoNotAlias(t *testing.T) {
	base := New().WithMinLength(3)
	narrowed := base.WithMinLength(100)

	if got, _ := base.MinLength(); got != 3 {
		t.Errorf("base mutated: MinLength = %d, want 3", got)
	}
	if got, _ := narrowed.MinLength(); got != 100 {
		t.Errorf("narrowed MinLength = %d, want 100", got)
	}
}

func TestSet_Accessors(t *testing.T) {
	s := New()
	if _, ok := s.Palindrome(); ok {
		t.Error("Palindrome present on empty set")
	}
	if _, ok := s.ContainsChar(); ok {
		t.Error("ContainsChar present on empty set")
	}

	s = s.WithWordCount(0)
	if n, ok := s.WordCount(); !ok || n != 0 {
		t.Errorf("WordCount = (%d, %v), want (0, true)", n, ok)
	}
}

func TestSet_HasConflict(t *testing.T) {
	tests := []struct {
		name string
		set  Set
		want bool
	}{
		{"min above max", New().WithMinLength(10).WithMaxLength(5), true},
		{"min below max", New().WithMinLength(5).WithMaxLength(10), false},
		{"min equals max", New().WithMinLength(7).WithMaxLength(7), false},
		{"min only", New().WithMinLength(5), false},
		{"max only", New().WithMaxLength(5), false},
		{"empty", New(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.set.HasConflict(); got != tt.want {
				t.Errorf("HasConflict() = %v, want %v", got, tt.want)
			}
		})
	}
}
