// Package token splits raw text into lowercase word tokens and removes
// stopwords. Input is a Unit, which holds either raw text or an already
// tokenized sequence.
package token

import (
	"errors"
	"regexp"
	"strings"
)

// ErrInvalidKind is returned when a Unit holds neither raw text nor a token
// sequence (the zero Unit).
var ErrInvalidKind = errors.New("text unit is neither raw text nor a token sequence")

const (
	kindInvalid = iota
	kindRaw
	kindTokens
)

// Unit is a single unit of text: either a raw string or an ordered sequence
// of tokens. The zero Unit is invalid.
type Unit struct {
	kind int
	raw  string
	toks []string
}

// Raw creates a Unit from a raw string.
func Raw(s string) Unit {
	return Unit{kind: kindRaw, raw: s}
}

// Tokens creates a Unit from an already tokenized sequence. The sequence is
// treated as immutable and is never modified.
func Tokens(toks []string) Unit {
	return Unit{kind: kindTokens, toks: toks}
}

// Valid reports whether the Unit holds text. The zero Unit is not valid.
func (u Unit) Valid() bool {
	return u.kind != kindInvalid
}

// IsRaw reports whether the Unit holds a raw string.
func (u Unit) IsRaw() bool {
	return u.kind == kindRaw
}

// Raw returns the raw string of the Unit. Empty for token units.
func (u Unit) Raw() string {
	return u.raw
}

// Tokens returns the token sequence of the Unit. Nil for raw units.
func (u Unit) Tokens() []string {
	return u.toks
}

// Tokenizer splits raw text into an ordered token sequence. It is the
// external word-boundary tokenization contract: implementations decide the
// exact boundary rules.
type Tokenizer func(string) []string

// Stemmer reduces a single token to its stem.
type Stemmer func(string) string

// wordPunct matches either a run of word characters or a run of
// non-word, non-space characters (punctuation). Unicode letter and number
// classes, not \w: RE2's \w is ASCII-only and would split inside accented
// words.
var wordPunct = regexp.MustCompile(`[\p{L}\p{N}_]+|[^\p{L}\p{N}_\s]+`)

// Words is the default Tokenizer. It splits text into word and punctuation
// tokens: "The Cat Sat." becomes [The Cat Sat .].
func Words(text string) []string {
	return wordPunct.FindAllString(text, -1)
}

// Tokenize tokenizes a text unit with the default Words tokenizer and removes
// stopwords. Every returned token is lowercase.
func Tokenize(u Unit, stops Set) ([]string, error) {
	return TokenizeWith(Words, u, stops)
}

// TokenizeWith tokenizes a text unit with the given tokenizer and removes
// stopwords. If the unit is already tokenized, the tokenizer is not applied.
func TokenizeWith(tok Tokenizer, u Unit, stops Set) ([]string, error) {
	words, err := unitTokens(tok, u)
	if err != nil {
		return nil, err
	}

	out := []string{}
	for _, w := range words {
		lw := strings.ToLower(w)
		if stops.Has(lw) {
			continue
		}

		out = append(out, lw)
	}

	return out, nil
}

// TokenizeStem tokenizes a text unit with the default Words tokenizer,
// removes stopwords and stems each retained token. Stopword membership is
// tested on the lowercased token, not on the stem.
func TokenizeStem(u Unit, stops Set, stemmer Stemmer) ([]string, error) {
	return TokenizeStemWith(Words, u, stops, stemmer)
}

// TokenizeStemWith is TokenizeStem with a caller-supplied tokenizer.
func TokenizeStemWith(tok Tokenizer, u Unit, stops Set, stemmer Stemmer) ([]string, error) {
	words, err := unitTokens(tok, u)
	if err != nil {
		return nil, err
	}

	out := []string{}
	for _, w := range words {
		lw := strings.ToLower(w)
		if stops.Has(lw) {
			continue
		}

		out = append(out, stemmer(lw))
	}

	return out, nil
}

func unitTokens(tok Tokenizer, u Unit) ([]string, error) {
	switch u.kind {
	case kindRaw:
		return tok(u.raw), nil
	case kindTokens:
		return u.toks, nil
	}

	return nil, ErrInvalidKind
}
