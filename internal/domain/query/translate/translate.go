// Package translate converts free-text queries into structured filter
// sets via a fixed, ordered library of pattern rules. It is a pattern
// matcher, not a language model: rules either fire or they don't, and
// identical input always produces identical output.
package translate

import (
	"regexp"
	"strconv"

	"github.com/lexidex/lexidex/internal/domain/query/filter"
)

// Dimension names as echoed back to clients.
const (
	DimPalindrome   = "is_palindrome"
	DimMinLength    = "min_length"
	DimMaxLength    = "max_length"
	DimWordCount    = "word_count"
	DimContainsChar = "contains_character"
)

// Match records which source fragment set a filter dimension.
type Match struct {
	Dimension string `json:"dimension"`
	Phrase    string `json:"phrase"`
}

// Translation is the successful result of interpreting a free-text
// query: the assembled filter set plus the matched fragments per
// dimension. When several rules touch the same dimension, the fragment
// of the rule that won is the one reported.
type Translation struct {
	filters filter.Set
	matches []Match
}

// Filters returns the assembled filter set.
func (t Translation) Filters() filter.Set { return t.filters }

// Matches returns the effective matched fragments in dimension-set order.
func (t Translation) Matches() []Match { return t.matches }

// rule is a single (matcher, effect) pair. Rules are evaluated in
// library order against the lower-cased input; their effects accumulate
// into one filter set, later rules overwriting earlier assignments of
// the same dimension.
type rule struct {
	dims  []string
	re    *regexp.Regexp
	apply func(filter.Set, []string) (filter.Set, bool)
}

// The ordered rule library. Order is load-bearing: "<N> words" must
// override the spelled-out word-count rules, "with the letter X" must
// override "containing the letter X", and ordinal-vowel rules run
// first-to-fifth so a later ordinal wins.
var rules = []rule{
	{
		dims: []string{DimPalindrome},
		re:   regexp.MustCompile(`palindrom(?:e|ic)`),
		apply: func(s filter.Set, _ []string) (filter.Set, bool) {
			return s.WithPalindrome(true), true
		},
	},
	{
		dims: []string{DimWordCount},
		re:   regexp.MustCompile(`\b(?:single|one) word\b`),
		apply: func(s filter.Set, _ []string) (filter.Set, bool) {
			return s.WithWordCount(1), true
		},
	},
	{
		dims: []string{DimWordCount},
		re:   regexp.MustCompile(`\b(?:two|2) words?\b`),
		apply: func(s filter.Set, _ []string) (filter.Set, bool) {
			return s.WithWordCount(2), true
		},
	},
	{
		dims: []string{DimWordCount},
		re:   regexp.MustCompile(`\b(\d+) words?\b`),
		apply: func(s filter.Set, m []string) (filter.Set, bool) {
			n, ok := parseInt(m[1])
			if !ok {
				return s, false
			}
			return s.WithWordCount(n), true
		},
	},
	{
		dims: []string{DimMinLength},
		re:   regexp.MustCompile(`\b(?:longer than|more than) (\d+)(?: characters?)?`),
		apply: func(s filter.Set, m []string) (filter.Set, bool) {
			n, ok := parseInt(m[1])
			if !ok {
				return s, false
			}
			return s.WithMinLength(n + 1), true
		},
	},
	{
		dims: []string{DimMaxLength},
		re:   regexp.MustCompile(`\b(?:shorter than|less than) (\d+)(?: characters?)?`),
		apply: func(s filter.Set, m []string) (filter.Set, bool) {
			n, ok := parseInt(m[1])
			if !ok {
				return s, false
			}
			return s.WithMaxLength(n - 1), true
		},
	},
	{
		dims: []string{DimMinLength},
		re:   regexp.MustCompile(`\bat least (\d+)(?: characters?)?`),
		apply: func(s filter.Set, m []string) (filter.Set, bool) {
			n, ok := parseInt(m[1])
			if !ok {
				return s, false
			}
			return s.WithMinLength(n), true
		},
	},
	{
		dims: []string{DimMinLength, DimMaxLength},
		re:   regexp.MustCompile(`\bexactly (\d+)(?: characters?)?`),
		apply: func(s filter.Set, m []string) (filter.Set, bool) {
			n, ok := parseInt(m[1])
			if !ok {
				return s, false
			}
			return s.WithMinLength(n).WithMaxLength(n), true
		},
	},
	{
		dims: []string{DimContainsChar},
		re:   regexp.MustCompile(`\bcontain(?:s|ing)? (?:the )?letter (\S)`),
		apply: func(s filter.Set, m []string) (filter.Set, bool) {
			return s.WithContainsChar(m[1]), true
		},
	},
	{
		dims: []string{DimContainsChar},
		re:   regexp.MustCompile(`\bwith (?:the )?letter (\S)`),
		apply: func(s filter.Set, m []string) (filter.Set, bool) {
			return s.WithContainsChar(m[1]), true
		},
	},
}

// Ordinal-vowel rules appended in ordinal order: "third vowel" beats
// "first vowel" regardless of their positions in the query text.
func init() {
	ordinals := []struct {
		word  string
		vowel string
	}{
		{"first", "a"},
		{"second", "e"},
		{"third", "i"},
		{"fourth", "o"},
		{"fifth", "u"},
	}
	for _, o := range ordinals {
		vowel := o.vowel
		rules = append(rules, rule{
			dims: []string{DimContainsChar},
			re:   regexp.MustCompile(`\b` + o.word + ` vowel\b`),
			apply: func(s filter.Set, _ []string) (filter.Set, bool) {
				return s.WithContainsChar(vowel), true
			},
		})
	}
}

// Translate interprets freeText against the rule library.
// Returns ok=false if no rule matched.
//
// Matching is not mutually exclusive: several rules may fire on one
// input and each reassigns its target dimensions, so the last firing
// rule for a dimension wins.
func Translate(freeText string) (Translation, bool) {
	lowered := lower(freeText)

	set := filter.New()
	var matches []Match
	fired := false

	for _, r := range rules {
		m := r.re.FindStringSubmatch(lowered)
		if m == nil {
			continue
		}
		next, ok := r.apply(set, m)
		if !ok {
			continue
		}
		set = next
		fired = true
		for _, dim := range r.dims {
			matches = setMatch(matches, dim, m[0])
		}
	}

	if !fired {
		return Translation{}, false
	}
	return Translation{filters: set, matches: matches}, true
}

// setMatch records phrase for dim, replacing an earlier entry so the
// echoed interpretation reflects the rule that actually won.
func setMatch(matches []Match, dim, phrase string) []Match {
	for i := range matches {
		if matches[i].Dimension == dim {
			matches[i].Phrase = phrase
			return matches
		}
	}
	return append(matches, Match{Dimension: dim, Phrase: phrase})
}

func parseInt(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// lower is an ASCII-only lowercase fold; rule phrases are ASCII and
// user text may legitimately contain non-ASCII characters that must
// survive untouched for the contains-character capture.
func lower(s string) string {
	b := []byte(s)
	changed := false
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
			changed = true
		}
	}
	if !changed {
		return s
	}
	return string(b)
}
