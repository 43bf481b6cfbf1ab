// Package norm normalizes text units: plain tokenization, stemming or
// lemmatization with optional named-entity preservation. Exactly one of the
// three paths runs per call.
package norm

import (
	"strings"

	"github.com/revelaction/textnorm/annotate"
	"github.com/revelaction/textnorm/token"
)

// Options selects the normalization path. If Annotate is set the text is
// lemmatized; otherwise if Stemmer is set it is tokenized and stemmed;
// otherwise it is only tokenized. Stemming and lemmatization are never
// combined.
type Options struct {
	// Tokenizer overrides the default word tokenizer for the plain and
	// stemming paths. Ignored by the lemmatization path, which tokenizes
	// through the annotation pipeline.
	Tokenizer token.Tokenizer

	// Stemmer enables the stemming path.
	Stemmer token.Stemmer

	// Annotate enables the lemmatization path.
	Annotate annotate.Func

	// KeepEntities merges the tokens of a detected named entity into one
	// lemma. Only meaningful on the lemmatization path.
	KeepEntities bool
}

// Join rejoins a token sequence into raw text for the annotation pipeline,
// which requires a string with character offsets. Tokens are separated by a
// single space.
func Join(toks []string) string {
	return strings.Join(toks, " ")
}

// Normalize tokenizes a text unit and removes stopwords, stemming or
// lemmatizing according to opts.
func Normalize(u token.Unit, stops token.Set, opts Options) ([]string, error) {
	if opts.Annotate != nil {
		return Lemmatize(u, stops, opts.Annotate, opts.KeepEntities)
	}

	tok := opts.Tokenizer
	if tok == nil {
		tok = token.Words
	}

	if opts.Stemmer != nil {
		return token.TokenizeStemWith(tok, u, stops, opts.Stemmer)
	}

	return token.TokenizeWith(tok, u, stops)
}

// Lemmatize annotates a text unit with fn and returns the lemmas of the
// tokens that pass the stopword filter. A pre-tokenized unit is rejoined
// with Join first, since the pipeline needs raw text. With keepEntities the
// tokens of each entity span are merged into the span lemma.
func Lemmatize(u token.Unit, stops token.Set, fn annotate.Func, keepEntities bool) ([]string, error) {
	var text string
	switch {
	case !u.Valid():
		return nil, token.ErrInvalidKind
	case u.IsRaw():
		text = u.Raw()
	default:
		text = Join(u.Tokens())
	}

	doc, err := fn(text)
	if err != nil {
		return nil, err
	}

	return LemmatizeDoc(doc, stops, keepEntities)
}

// LemmatizeDoc lemmatizes an already annotated document.
//
// Without keepEntities every alphabetic, non-punctuation token whose surface
// form and lemma are both outside the stopword set contributes its lowercased
// lemma.
//
// With keepEntities the token and entity sequences are walked in parallel. A
// token starting strictly before the current entity span is handled
// individually as above; otherwise the span lemma is emitted exactly once and
// the walk skips every token starting before the span end. Entity lemmas
// bypass the token-level filter.
func LemmatizeDoc(doc annotate.Doc, stops token.Set, keepEntities bool) ([]string, error) {
	if !keepEntities {
		lemmas := []string{}
		for _, t := range doc.Tokens {
			if keepToken(t, stops) {
				lemmas = append(lemmas, strings.ToLower(t.Lemma))
			}
		}

		return lemmas, nil
	}

	if err := doc.ValidateEntities(); err != nil {
		return nil, err
	}

	lemmas := []string{}
	entIdx := 0
	tokIdx := 0

	for tokIdx < len(doc.Tokens) {
		if entIdx >= len(doc.Entities) || doc.Tokens[tokIdx].Idx < doc.Entities[entIdx].Start {
			if keepToken(doc.Tokens[tokIdx], stops) {
				lemmas = append(lemmas, strings.ToLower(doc.Tokens[tokIdx].Lemma))
			}

			tokIdx++
			continue
		}

		// token falls inside the current entity span: emit the span lemma
		// once and consume the whole span
		lemmas = append(lemmas, strings.ToLower(doc.Entities[entIdx].Lemma))

		tokIdx++
		for tokIdx < len(doc.Tokens) && doc.Tokens[tokIdx].Idx < doc.Entities[entIdx].End {
			tokIdx++
		}

		entIdx++
	}

	return lemmas, nil
}

func keepToken(t annotate.Token, stops token.Set) bool {
	if !t.Alpha || t.Punct {
		return false
	}

	return !stops.Has(t.Text) && !stops.Has(t.Lemma)
}
