package translate

import (
	"reflect"
	"testing"

	"github.com/lexidex/lexidex/internal/domain/query/filter"
)

// want is the expected shape of a translated filter set; nil pointer
// means the dimension must be absent.
type want struct {
	palindrome   *bool
	minLength    *int
	maxLength    *int
	wordCount    *int
	containsChar *string
}

func bptr(v bool) *bool     { return &v }
func iptr(v int) *int       { return &v }
func sptr(v string) *string { return &v }

func checkSet(t *testing.T, got filter.Set, w want) {
	t.Helper()

	if v, ok := got.Palindrome(); ok != (w.palindrome != nil) || (ok && v != *w.palindrome) {
		t.Errorf("palindrome = (%v, %v), want %v", v, ok, w.palindrome)
	}
	if v, ok := got.MinLength(); ok != (w.minLength != nil) || (ok && v != *w.minLength) {
		t.Errorf("min length = (%d, %v), want %v", v, ok, w.minLength)
	}
	if v, ok := got.MaxLength(); ok != (w.maxLength != nil) || (ok && v != *w.maxLength) {
		t.Errorf("max length = (%d, %v), want %v", v, ok, w.maxLength)
	}
	if v, ok := got.WordCount(); ok != (w.wordCount != nil) || (ok && v != *w.wordCount) {
		t.Errorf("word count = (%d, %v), want %v", v, ok, w.wordCount)
	}
	if v, ok := got.ContainsChar(); ok != (w.containsChar != nil) || (ok && v != *w.containsChar) {
		t.Errorf("contains char = (%q, %v), want %v", v, ok, w.containsChar)
	}
}

func TestTranslate_Scenarios(t *testing.T) {
	tests := []struct {
		query string
		want  want
	}{
		{
			"all single word palindromic strings",
			want{palindrome: bptr(true), wordCount: iptr(1)},
		},
		{
			"strings longer than 10 characters",
			want{minLength: iptr(11)},
		},
		{
			"strings containing the letter z",
			want{containsChar: sptr("z")},
		},
		{
			"palindromic strings that contain the first vowel",
			want{palindrome: bptr(true), containsChar: sptr("a")},
		},
		{
			"strings with exactly 7 characters",
			want{minLength: iptr(7), maxLength: iptr(7)},
		},
		{
			"strings shorter than 20 characters",
			want{maxLength: iptr(19)},
		},
		{
			"strings with less than 5 characters",
			want{maxLength: iptr(4)},
		},
		{
			"strings with more than 3 characters",
			want{minLength: iptr(4)},
		},
		{
			"strings with at least 12 characters",
			want{minLength: iptr(12)},
		},
		{
			"two word strings",
			want{wordCount: iptr(2)},
		},
		{
			"strings with 5 words",
			want{wordCount: iptr(5)},
		},
		{
			"strings containing letter q",
			want{containsChar: sptr("q")},
		},
		{
			"strings with the letter x",
			want{containsChar: sptr("x")},
		},
		{
			"strings with the second vowel",
			want{containsChar: sptr("e")},
		},
		{
			"palindromes longer than 4 characters with the fifth vowel",
			want{palindrome: bptr(true), minLength: iptr(5), containsChar: sptr("u")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			tr, ok := Translate(tt.query)
			if !ok {
				t.Fatalf("Translate(%q) did not match", tt.query)
			}
			checkSet(t, tr.Filters(), tt.want)
		})
	}
}

func TestTranslate_NoMatch(t *testing.T) {
	for _, q := range []string{
		"banana bread",
		"hello",
		"",
		"show me everything interesting",
	} {
		t.Run(q, func(t *testing.T) {
			if _, ok := Translate(q); ok {
				t.Errorf("Translate(%q) matched, want no match", q)
			}
		})
	}
}

func TestTranslate_CaseInsensitive(t *testing.T) {
	tr, ok := Translate("PALINDROMIC strings LONGER THAN 10 Characters")
	if !ok {
		t.Fatal("uppercase query did not match")
	}
	checkSet(t, tr.Filters(), want{palindrome: bptr(true), minLength: iptr(11)})
}

func TestTranslate_LaterRuleWinsDimension(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  want
	}{
		{
			// digit rule runs after the spelled-out rules
			"digit overrides spelled word count",
			"one word strings with 3 words",
			want{wordCount: iptr(3)},
		},
		{
			"with-letter overrides containing-letter",
			"strings containing the letter x with the letter y",
			want{containsChar: sptr("y")},
		},
		{
			// ordinal rules run first-to-fifth, so the later ordinal
			// wins regardless of position in the text
			"later ordinal wins",
			"strings with the third vowel or the first vowel",
			want{containsChar: sptr("i")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, ok := Translate(tt.query)
			if !ok {
				t.Fatalf("Translate(%q) did not match", tt.query)
			}
			checkSet(t, tr.Filters(), tt.want)
		})
	}
}

func TestTranslate_Deterministic(t *testing.T) {
	const q = "single word palindromic strings longer than 3 characters"

	a, okA := Translate(q)
	b, okB := Translate(q)
	if !okA || !okB {
		t.Fatal("query did not match")
	}
	if !reflect.DeepEqual(a.Filters(), b.Filters()) {
		t.Error("filters differ across identical calls")
	}
	if !reflect.DeepEqual(a.Matches(), b.Matches()) {
		t.Error("matches differ across identical calls")
	}
}

func TestTranslate_MatchesEchoWinningPhrase(t *testing.T) {
	tr, ok := Translate("strings containing the letter x with the letter y")
	if !ok {
		t.Fatal("query did not match")
	}

	matches := tr.Matches()
	if len(matches) != 1 {
		t.Fatalf("len(matches) = %d, want 1", len(matches))
	}
	if matches[0].Dimension != DimContainsChar {
		t.Errorf("dimension = %q, want %q", matches[0].Dimension, DimContainsChar)
	}
	if matches[0].Phrase != "with the letter y" {
		t.Errorf("phrase = %q, want the winning rule's fragment", matches[0].Phrase)
	}
}

func TestTranslate_ExactlySetsBothBounds(t *testing.T) {
	tr, ok := Translate("exactly 7 characters")
	if !ok {
		t.Fatal("query did not match")
	}

	dims := map[string]bool{}
	for _, m := range tr.Matches() {
		dims[m.Dimension] = true
	}
	if !dims[DimMinLength] || !dims[DimMaxLength] {
		t.Errorf("matches = %v, want both length dimensions reported", tr.Matches())
	}
}

func TestTranslate_ConflictingBoundsStillTranslate(t *testing.T) {
	// Translation reports what was understood; conflict detection is
	// the caller's concern.
	tr, ok := Translate("strings longer than 10 characters and shorter than 5 characters")
	if !ok {
		t.Fatal("query did not match")
	}
	checkSet(t, tr.Filters(), want{minLength: iptr(11), maxLength: iptr(4)})
	if !tr.Filters().HasConflict() {
		t.Error("expected the translated set to be contradictory")
	}
}
