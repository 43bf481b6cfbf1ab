package filesystem

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestNames(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.txt", "text b")
	writeFile(t, dir, "a.json", `{"tokens":[]}`)
	writeFile(t, dir, "ignored.csv", "x")

	h := NewCorpusHandler(dir)

	names, err := h.Names()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"a", "b"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("expected %v, got %v", want, names)
	}
}

func TestUnit(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "doc.txt", "The cat sat.")

	h := NewCorpusHandler(dir)

	u, err := h.Unit("doc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !u.IsRaw() || u.Raw() != "The cat sat." {
		t.Errorf("unexpected unit: %+v", u)
	}
}

func TestDoc(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "doc.json", `{
		"tokens": [
			{"idx": 0, "text": "Hello", "lemma": "hello", "alpha": true, "punct": false}
		],
		"ents": [
			{"start": 0, "end": 5, "lemma": "Hello"}
		]
	}`)

	h := NewCorpusHandler(dir)

	doc, err := h.Doc("doc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(doc.Tokens) != 1 || doc.Tokens[0].Lemma != "hello" {
		t.Errorf("unexpected tokens: %+v", doc.Tokens)
	}
	if len(doc.Entities) != 1 || doc.Entities[0].End != 5 {
		t.Errorf("unexpected entities: %+v", doc.Entities)
	}
}

func TestDocMalformed(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bad.json", `{not json`)

	h := NewCorpusHandler(dir)

	if _, err := h.Doc("bad"); err == nil {
		t.Error("expected error for malformed json")
	}
}

func TestUnitMissing(t *testing.T) {
	h := NewCorpusHandler(t.TempDir())

	if _, err := h.Unit("nope"); err == nil {
		t.Error("expected error for missing file")
	}
}
