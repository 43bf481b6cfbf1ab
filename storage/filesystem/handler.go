// Package filesystem reads corpora from a directory: plain .txt files as raw
// text units and .json files as pre-annotated documents in the spacy export
// format.
package filesystem

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/revelaction/textnorm/annotate"
	"github.com/revelaction/textnorm/storage"
	"github.com/revelaction/textnorm/token"
)

// CorpusHandler reads a directory of corpus documents.
type CorpusHandler struct {
	dir string
}

var _ storage.CorpusReader = (*CorpusHandler)(nil)
var _ storage.AnnotatedReader = (*CorpusHandler)(nil)

// NewCorpusHandler creates a filesystem corpus handler for the given
// directory.
func NewCorpusHandler(dir string) *CorpusHandler {
	return &CorpusHandler{dir: dir}
}

// Names returns the document names (file names without extension) of all
// .txt and .json files in the directory, sorted.
func (h *CorpusHandler) Names() ([]string, error) {
	files, err := os.ReadDir(h.dir)
	if err != nil {
		return nil, err
	}

	names := []string{}
	for _, file := range files {
		ext := filepath.Ext(file.Name())
		if ext != ".txt" && ext != ".json" {
			continue
		}

		names = append(names, strings.TrimSuffix(file.Name(), ext))
	}

	sort.Strings(names)
	return names, nil
}

// Unit returns the raw text of <name>.txt as a token unit.
func (h *CorpusHandler) Unit(name string) (token.Unit, error) {
	content, err := os.ReadFile(filepath.Join(h.dir, name+".txt"))
	if err != nil {
		return token.Unit{}, err
	}

	return token.Raw(string(content)), nil
}

// Doc reads and unmarshals the annotated document <name>.json.
func (h *CorpusHandler) Doc(name string) (annotate.Doc, error) {
	content, err := os.ReadFile(filepath.Join(h.dir, name+".json"))
	if err != nil {
		return annotate.Doc{}, err
	}

	var doc annotate.Doc
	if err := json.Unmarshal(content, &doc); err != nil {
		return annotate.Doc{}, fmt.Errorf("malformed annotated doc %s: %w", name, err)
	}

	return doc, nil
}
