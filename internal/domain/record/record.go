package record

import (
	"fmt"
	"time"
)

// MaxValueSize is the maximum stored string size in bytes.
const MaxValueSize = 65536 // 64KB

// Properties holds the derived characteristics of a stored string.
// All fields are a pure function of the raw value.
type Properties struct {
	Length             int            `json:"length"`
	IsPalindrome       bool           `json:"is_palindrome"`
	UniqueCharacters   int            `json:"unique_characters"`
	WordCount          int            `json:"word_count"`
	ContentHash        string         `json:"content_hash"`
	CharacterFrequency map[string]int `json:"character_frequency"`
}

// Record is an analyzed string aggregate (immutable value object).
// Its identifier is the content hash, so two distinct stored records
// never share an ID and re-submitting the same value is a no-op.
type Record struct {
	id        string
	value     string
	props     Properties
	createdAt time.Time
}

// New validates and creates a Record. The ID is taken from the
// properties' content hash.
func New(value string, props Properties, createdAt time.Time) (Record, error) {
	if value == "" {
		return Record{}, fmt.Errorf("value is required")
	}
	if len(value) > MaxValueSize {
		return Record{}, fmt.Errorf("value too large (max %d bytes)", MaxValueSize)
	}
	if props.ContentHash == "" {
		return Record{}, fmt.Errorf("content hash is required")
	}

	return Record{
		id:        props.ContentHash,
		value:     value,
		props:     props,
		createdAt: createdAt,
	}, nil
}

// Reconstruct creates a Record without validation (storage hydration).
func Reconstruct(id, value string, props Properties, createdAt time.Time) Record {
	return Record{id: id, value: value, props: props, createdAt: createdAt}
}

// ID returns the content-derived identifier.
func (r *Record) ID() string { return r.id }

// Value returns the original text.
func (r *Record) Value() string { return r.value }

// Properties returns the derived properties.
func (r *Record) Properties() Properties { return r.props }

// CreatedAt returns the insert timestamp.
func (r *Record) CreatedAt() time.Time { return r.createdAt }
