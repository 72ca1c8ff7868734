package lexicon

import (
	"strings"

	"github.com/surgebase/porter2"
)

// stemMinLength guards very short tokens from stemming; Porter2 mangles
// them more often than it normalizes them.
const stemMinLength = 3

// stemExclusions are tokens stemming must leave alone. Mostly short UI and
// domain jargon whose stems collide with unrelated words.
var stemExclusions = map[string]bool{
	"id":   true,
	"ok":   true,
	"zip":  true,
	"tab":  true,
	"nav":  true,
	"faq":  true,
	"info": true,
}

// Stemmer folds inflected word forms (payments → payment, clicking → click)
// so table lookups tolerate morphology. It is stateless and safe for
// concurrent use.
type Stemmer struct{}

// NewStemmer returns a Porter2-backed stemmer.
func NewStemmer() *Stemmer {
	return &Stemmer{}
}

// Stem returns the lower-cased stem of a word, or the word itself when it is
// too short or excluded.
func (s *Stemmer) Stem(word string) string {
	lower := strings.ToLower(word)
	if len(lower) < stemMinLength || stemExclusions[lower] {
		return lower
	}
	return porter2.Stem(lower)
}

// StemAll stems every word in place order.
func (s *Stemmer) StemAll(words []string) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = s.Stem(w)
	}
	return out
}
