package token

import (
	"bufio"
	"os"
	"strings"
)

// Set is a stopword set. Membership is case-insensitive: words are lowercased
// on insert and on lookup.
type Set map[string]struct{}

// NewSet creates a stopword Set from the given words.
func NewSet(words ...string) Set {
	s := make(Set, len(words))
	for _, w := range words {
		s.Add(w)
	}

	return s
}

// ReadSet reads a stopword Set from a file with one word per line. Empty
// lines and lines starting with '#' are skipped.
func ReadSet(path string) (Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s := Set{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		s.Add(line)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return s, nil
}

// Add inserts a word into the set.
func (s Set) Add(w string) {
	s[strings.ToLower(w)] = struct{}{}
}

// Has reports whether the lowercased form of w is in the set. A nil Set
// contains nothing.
func (s Set) Has(w string) bool {
	_, ok := s[strings.ToLower(w)]
	return ok
}
