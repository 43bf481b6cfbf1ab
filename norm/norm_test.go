package norm

import (
	"reflect"
	"testing"

	"github.com/revelaction/textnorm/annotate"
	"github.com/revelaction/textnorm/token"
)

// annotateWords fakes a pipeline: every whitespace word becomes an alphabetic
// token with itself as lemma, offsets as in the input text.
func annotateWords(text string) (annotate.Doc, error) {
	doc := annotate.Doc{}
	word := ""
	flush := func(end int) {
		if word == "" {
			return
		}
		doc.Tokens = append(doc.Tokens, annotate.Token{
			Idx:   end - len(word),
			Text:  word,
			Lemma: word,
			Alpha: true,
		})
		word = ""
	}

	for i, r := range text {
		if r == ' ' {
			flush(i)
			continue
		}
		word += string(r)
	}
	flush(len(text))

	return doc, nil
}

func TestNormalizePlain(t *testing.T) {
	got, err := Normalize(token.Raw("The Cat Sat."), token.NewSet("the"), Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"cat", "sat", "."}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	first, err := Normalize(token.Raw("Some Words Here"), token.Set{}, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second, err := Normalize(token.Tokens(first), token.Set{}, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("normalization not idempotent: %v != %v", first, second)
	}
}

func TestNormalizeStemPath(t *testing.T) {
	bang := func(w string) string { return w + "!" }

	got, err := Normalize(token.Raw("cat dog"), token.Set{}, Options{Stemmer: bang})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"cat!", "dog!"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestNormalizeLemmaPathWinsOverStemmer(t *testing.T) {
	bang := func(w string) string { return w + "!" }

	got, err := Normalize(token.Raw("Cat dog"), token.Set{}, Options{
		Stemmer:  bang,
		Annotate: annotateWords,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// lemmas, not stems
	want := []string{"cat", "dog"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestLemmatizeJoinsTokenUnits(t *testing.T) {
	var seen string
	fn := func(text string) (annotate.Doc, error) {
		seen = text
		return annotate.Doc{}, nil
	}

	_, err := Lemmatize(token.Tokens([]string{"a", "b", "c"}), token.Set{}, fn, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if seen != "a b c" {
		t.Errorf("expected joined text %q, got %q", "a b c", seen)
	}
}

func TestLemmatizeInvalidUnit(t *testing.T) {
	_, err := Lemmatize(token.Unit{}, token.Set{}, annotateWords, false)
	if err != token.ErrInvalidKind {
		t.Errorf("expected ErrInvalidKind, got %v", err)
	}
}

func TestLemmatizeDocFilters(t *testing.T) {
	doc := annotate.Doc{
		Tokens: []annotate.Token{
			{Idx: 0, Text: "The", Lemma: "the", Alpha: true},
			{Idx: 4, Text: "cats", Lemma: "Cat", Alpha: true},
			{Idx: 8, Text: ".", Lemma: ".", Punct: true},
			{Idx: 10, Text: "ran", Lemma: "run", Alpha: true},
			{Idx: 14, Text: "2", Lemma: "2", Alpha: false},
		},
	}

	got, err := LemmatizeDoc(doc, token.NewSet("the"), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"cat", "run"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestLemmatizeDocLemmaStopword(t *testing.T) {
	// surface form passes but the lemma is a stopword
	doc := annotate.Doc{
		Tokens: []annotate.Token{
			{Idx: 0, Text: "was", Lemma: "be", Alpha: true},
		},
	}

	got, err := LemmatizeDoc(doc, token.NewSet("be"), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got) != 0 {
		t.Errorf("expected no lemmas, got %v", got)
	}
}

// entity span covering tokens [1, 3): exactly one lemma for the span, no
// individual lemmas for the covered tokens, even though they would pass the
// stopword filter on their own.
func TestLemmatizeDocEntityMerge(t *testing.T) {
	doc := annotate.Doc{
		Tokens: []annotate.Token{
			{Idx: 0, Text: "meet", Lemma: "meet", Alpha: true},
			{Idx: 5, Text: "New", Lemma: "new", Alpha: true},
			{Idx: 9, Text: "York", Lemma: "york", Alpha: true},
			{Idx: 14, Text: "today", Lemma: "today", Alpha: true},
		},
		Entities: []annotate.Entity{
			{Start: 5, End: 13, Lemma: "New York"},
		},
	}

	got, err := LemmatizeDoc(doc, token.Set{}, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"meet", "new york", "today"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestLemmatizeDocEntityBypassesFilter(t *testing.T) {
	// the entity lemma is itself a stopword and its token is punctuation;
	// the span lemma is still emitted
	doc := annotate.Doc{
		Tokens: []annotate.Token{
			{Idx: 0, Text: "the", Lemma: "the", Alpha: true},
		},
		Entities: []annotate.Entity{
			{Start: 0, End: 3, Lemma: "The"},
		},
	}

	got, err := LemmatizeDoc(doc, token.NewSet("the"), true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"the"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestLemmatizeDocEntityAtTokenStart(t *testing.T) {
	// token offset equal to entity start belongs to the span (strictly-less
	// tie-break)
	doc := annotate.Doc{
		Tokens: []annotate.Token{
			{Idx: 0, Text: "Paris", Lemma: "paris", Alpha: true},
			{Idx: 6, Text: "calls", Lemma: "call", Alpha: true},
		},
		Entities: []annotate.Entity{
			{Start: 0, End: 5, Lemma: "Paris"},
		},
	}

	got, err := LemmatizeDoc(doc, token.Set{}, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"paris", "call"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestLemmatizeDocTrailingEntities(t *testing.T) {
	// entities past the last token are never reached; the walk terminates
	// when all tokens are consumed
	doc := annotate.Doc{
		Tokens: []annotate.Token{
			{Idx: 0, Text: "end", Lemma: "end", Alpha: true},
		},
		Entities: []annotate.Entity{
			{Start: 50, End: 60, Lemma: "ghost"},
		},
	}

	got, err := LemmatizeDoc(doc, token.Set{}, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"end"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestLemmatizeDocMalformedSpans(t *testing.T) {
	doc := annotate.Doc{
		Tokens: []annotate.Token{
			{Idx: 0, Text: "a", Lemma: "a", Alpha: true},
		},
		Entities: []annotate.Entity{
			{Start: 10, End: 20},
			{Start: 0, End: 15},
		},
	}

	_, err := LemmatizeDoc(doc, token.Set{}, true)
	if err != annotate.ErrMalformedSpans {
		t.Errorf("expected ErrMalformedSpans, got %v", err)
	}
}
