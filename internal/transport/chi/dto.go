package chi

import (
	"fmt"
	"net/url"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/lexidex/lexidex/internal/domain/query/filter"
	"github.com/lexidex/lexidex/internal/domain/query/translate"
	"github.com/lexidex/lexidex/internal/domain/record"
	healthuc "github.com/lexidex/lexidex/internal/usecase/health"
)

// Error codes returned to clients.
const (
	codeBadRequest         = "bad_request"
	codeValidationFailed   = "validation_failed"
	codeNotFound           = "not_found"
	codeTranslationFailed  = "translation_failed"
	codeConflictingFilters = "conflicting_filters"
	codeInternalError      = "internal_error"
)

type createStringRequest struct {
	Value string `json:"value"`
}

type recordResponse struct {
	ID         string            `json:"id"`
	Value      string            `json:"value"`
	Properties record.Properties `json:"properties"`
	CreatedAt  time.Time         `json:"created_at"`
}

type listResponse struct {
	Data  []recordResponse `json:"data"`
	Count int              `json:"count"`
}

type filterListResponse struct {
	Data           []recordResponse `json:"data"`
	Count          int              `json:"count"`
	FiltersApplied map[string]any   `json:"filters_applied"`
}

type interpretedQuery struct {
	Original       string            `json:"original"`
	MatchedPhrases []translate.Match `json:"matched_phrases"`
	Filters        map[string]any    `json:"filters"`
}

type queryListResponse struct {
	Data             []recordResponse `json:"data"`
	Count            int              `json:"count"`
	InterpretedQuery interpretedQuery `json:"interpreted_query"`
}

type healthResponse struct {
	Status string                          `json:"status"`
	Checks map[string]healthuc.CheckResult `json:"checks"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func recordToResponse(rec *record.Record) recordResponse {
	return recordResponse{
		ID:         rec.ID(),
		Value:      rec.Value(),
		Properties: rec.Properties(),
		CreatedAt:  rec.CreatedAt(),
	}
}

func recordsToResponse(recs []record.Record) []recordResponse {
	items := make([]recordResponse, len(recs))
	for i := range recs {
		items[i] = recordToResponse(&recs[i])
	}
	return items
}

// parseFilterSet builds a filter set from explicit query parameters.
// Malformed values are rejected here, before the core is reached.
func parseFilterSet(q url.Values) (filter.Set, error) {
	set := filter.New()

	if v := q.Get("is_palindrome"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return filter.Set{}, fmt.Errorf("is_palindrome must be a boolean, got %q", v)
		}
		set = set.WithPalindrome(b)
	}

	if v := q.Get("min_length"); v != "" {
		n, err := parseNonNegativeInt("min_length", v)
		if err != nil {
			return filter.Set{}, err
		}
		set = set.WithMinLength(n)
	}

	if v := q.Get("max_length"); v != "" {
		n, err := parseNonNegativeInt("max_length", v)
		if err != nil {
			return filter.Set{}, err
		}
		set = set.WithMaxLength(n)
	}

	if v := q.Get("word_count"); v != "" {
		n, err := parseNonNegativeInt("word_count", v)
		if err != nil {
			return filter.Set{}, err
		}
		set = set.WithWordCount(n)
	}

	if v := q.Get("contains_char"); v != "" {
		if utf8.RuneCountInString(v) != 1 {
			return filter.Set{}, fmt.Errorf("contains_char must be exactly one character, got %q", v)
		}
		set = set.WithContainsChar(v)
	}

	return set, nil
}

func parseNonNegativeInt(name, v string) (int, error) {
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", name, v)
	}
	if n < 0 {
		return 0, fmt.Errorf("%s must be non-negative, got %d", name, n)
	}
	return n, nil
}

// filterSetToMap renders the present dimensions for response echoing.
func filterSetToMap(set filter.Set) map[string]any {
	m := make(map[string]any)
	if v, ok := set.Palindrome(); ok {
		m[translate.DimPalindrome] = v
	}
	if v, ok := set.MinLength(); ok {
		m[translate.DimMinLength] = v
	}
	if v, ok := set.MaxLength(); ok {
		m[translate.DimMaxLength] = v
	}
	if v, ok := set.WordCount(); ok {
		m[translate.DimWordCount] = v
	}
	if v, ok := set.ContainsChar(); ok {
		m[translate.DimContainsChar] = v
	}
	return m
}
