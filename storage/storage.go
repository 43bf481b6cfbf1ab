// Package storage defines the persistence interfaces for text corpora and
// normalization results.
package storage

import (
	"github.com/revelaction/textnorm/annotate"
	"github.com/revelaction/textnorm/token"
)

// Result is a normalized document: its corpus name and the normalized token
// sequence.
type Result struct {
	Name   string   `json:"name"`
	Tokens []string `json:"tokens"`
}

// CorpusReader reads the documents of a text corpus.
type CorpusReader interface {
	// Names returns the names of all documents in the corpus, sorted.
	Names() ([]string, error)

	// Unit returns the text of a document as a token unit.
	Unit(name string) (token.Unit, error)
}

// AnnotatedReader reads pre-annotated documents (spacy/stanza exports).
type AnnotatedReader interface {
	// Names returns the names of all annotated documents, sorted.
	Names() ([]string, error)

	// Doc returns the annotated document for a name.
	Doc(name string) (annotate.Doc, error)
}

// ResultWriter persists normalization results.
type ResultWriter interface {
	// Write persists a result. Writing the same name twice replaces the
	// earlier result.
	Write(res Result) error
}

// ResultReader reads back stored normalization results.
type ResultReader interface {
	// Names returns the names of all stored results, sorted.
	Names() ([]string, error)

	// Read returns the result for a name.
	Read(name string) (Result, error)
}

// ResultRepository combines read and write operations.
type ResultRepository interface {
	ResultReader
	ResultWriter
}
