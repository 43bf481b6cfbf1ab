// Package stem provides Snowball stemming adapters for token.Stemmer.
package stem

import (
	"github.com/kljensen/snowball"
	"github.com/kljensen/snowball/english"

	"github.com/revelaction/textnorm/token"
)

// English is a token.Stemmer backed by the Snowball english algorithm.
func English(word string) string {
	return english.Stem(word, false)
}

// Snowball returns a token.Stemmer for the given Snowball language
// ("english", "spanish", "french", "german", ...). A word that cannot be
// stemmed is returned unchanged.
func Snowball(language string) token.Stemmer {
	return func(word string) string {
		stemmed, err := snowball.Stem(word, language, false)
		if err != nil || stemmed == "" {
			return word
		}

		return stemmed
	}
}
