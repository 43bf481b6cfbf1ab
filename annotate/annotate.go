// Package annotate defines the annotated-document model produced by an
// external linguistic pipeline (spacy, stanza). A Doc is read-only input to
// the normalization code and is never mutated.
package annotate

import "errors"

// ErrMalformedSpans is returned when entity spans are not sorted by start
// offset or overlap each other.
var ErrMalformedSpans = errors.New("entity spans are overlapping or not sorted by offset")

// Token represents a single annotated token.
type Token struct {
	// the index of the start character of the token in the original text
	// (set by spacy, stanza)
	Idx int `json:"idx"`

	// The unmodified word
	Text string `json:"text"`

	// The lemma of the word
	Lemma string `json:"lemma"`

	// Alpha is true if the token consists of alphabetic characters
	Alpha bool `json:"alpha"`

	// Punct is true if the token is punctuation
	Punct bool `json:"punct"`
}

// Entity is a named-entity span with start/end character offsets into the
// original text and a lemma for the whole span.
type Entity struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Lemma string `json:"lemma"`
}

// Doc is an annotated document: tokens in document order plus the detected
// entity spans, both sorted by character offset.
type Doc struct {
	Tokens   []Token  `json:"tokens"`
	Entities []Entity `json:"ents"`
}

// Func is the caller-supplied annotation pipeline: it annotates raw text and
// returns the resulting Doc.
type Func func(text string) (Doc, error)

// ValidateEntities checks that the entity spans are sorted by start offset
// and do not overlap. The merge walk in the norm package assumes both; a Doc
// violating them is rejected instead of silently mis-merged.
func (d Doc) ValidateEntities() error {
	for i, e := range d.Entities {
		if e.End < e.Start {
			return ErrMalformedSpans
		}

		if i == 0 {
			continue
		}

		prev := d.Entities[i-1]
		if e.Start < prev.Start || e.Start < prev.End {
			return ErrMalformedSpans
		}
	}

	return nil
}
