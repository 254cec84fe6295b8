package lexidex

import (
	"time"

	"github.com/lexidex/lexidex/internal/domain/query/translate"
	domrec "github.com/lexidex/lexidex/internal/domain/record"
)

// Properties holds the derived characteristics of a stored string.
type Properties struct {
	Length             int
	IsPalindrome       bool
	UniqueCharacters   int
	WordCount          int
	ContentHash        string
	CharacterFrequency map[string]int
}

// Record is a stored string with its derived properties. The ID equals
// the SHA-256 content hash of the value.
type Record struct {
	ID         string
	Value      string
	Properties Properties
	CreatedAt  time.Time
}

// MatchedPhrase records which query fragment set a filter dimension.
type MatchedPhrase struct {
	Dimension string
	Phrase    string
}

// Interpretation describes how a free-text query was translated.
type Interpretation struct {
	Query          string
	MatchedPhrases []MatchedPhrase
}

func recordFromDomain(rec *domrec.Record) Record {
	p := rec.Properties()
	return Record{
		ID:    rec.ID(),
		Value: rec.Value(),
		Properties: Properties{
			Length:             p.Length,
			IsPalindrome:       p.IsPalindrome,
			UniqueCharacters:   p.UniqueCharacters,
			WordCount:          p.WordCount,
			ContentHash:        p.ContentHash,
			CharacterFrequency: p.CharacterFrequency,
		},
		CreatedAt: rec.CreatedAt(),
	}
}

func recordsFromDomain(recs []domrec.Record) []Record {
	out := make([]Record, len(recs))
	for i := range recs {
		out[i] = recordFromDomain(&recs[i])
	}
	return out
}

func interpretationFromDomain(query string, tr translate.Translation) Interpretation {
	matches := tr.Matches()
	phrases := make([]MatchedPhrase, len(matches))
	for i, m := range matches {
		phrases[i] = MatchedPhrase{Dimension: m.Dimension, Phrase: m.Phrase}
	}
	return Interpretation{Query: query, MatchedPhrases: phrases}
}
