// Package textnorm turns raw instruction text into the normalized shape the
// scorer works with: lower-cased meaningful tokens and an extracted target
// phrase.
package textnorm

import (
	"strings"
	"unicode"

	"github.com/stepvis/stepvis/internal/lexicon"
	"github.com/stepvis/stepvis/internal/types"
)

// NormalizedStep is the scorer-facing view of one instruction step.
type NormalizedStep struct {
	Raw string

	// Tokens are the distinct lower-cased, stop-word-filtered tokens of the
	// step text, in first-occurrence order.
	Tokens []string

	// Target is the normalized object of the action ("payment method" in
	// "Update payment method"). Empty only when the input is empty or
	// all-stopword.
	Target string

	// Action is the recognized leading action verb, when any.
	Action    lexicon.Action
	HasAction bool
}

// Normalizer tokenizes and extracts target phrases against a lexicon.
// Stateless; safe for concurrent use.
type Normalizer struct {
	lex *lexicon.Lexicon
}

// New creates a normalizer bound to the given lexicon.
func New(lex *lexicon.Lexicon) *Normalizer {
	return &Normalizer{lex: lex}
}

// Tokenize lower-cases and splits on any non-alphanumeric rune.
func Tokenize(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// NormalizePhrase lower-cases a phrase and collapses runs of separator
// characters to single spaces, so "Billing  Information!" and
// "billing information" compare equal.
func NormalizePhrase(s string) string {
	return strings.Join(Tokenize(s), " ")
}

// MeaningfulTokens returns the distinct non-stop-word tokens of s in
// first-occurrence order.
func (n *Normalizer) MeaningfulTokens(s string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, tok := range Tokenize(s) {
		if n.lex.IsStopWord(tok) || seen[tok] {
			continue
		}
		seen[tok] = true
		out = append(out, tok)
	}
	return out
}

// NormalizeStep produces the full normalized view of a step. When the step
// carries an explicit target it wins over extraction; the leading-verb scan
// still runs so type-action alignment has an action to work with.
func (n *Normalizer) NormalizeStep(step types.Step) NormalizedStep {
	ns := NormalizedStep{
		Raw:    step.Text,
		Tokens: n.MeaningfulTokens(step.Text),
	}

	rawTokens := Tokenize(step.Text)
	rest := rawTokens
	if len(rawTokens) > 0 {
		if action, ok := n.lex.ActionFor(rawTokens[0]); ok {
			ns.Action = action
			ns.HasAction = true
			rest = rawTokens[1:]
		}
	}

	switch {
	case step.Target != "":
		ns.Target = NormalizePhrase(step.Target)
	case ns.HasAction && len(rest) > 0:
		// Remainder after the verb, trimmed, is the target phrase.
		ns.Target = strings.Join(rest, " ")
	default:
		ns.Target = strings.Join(ns.Tokens, " ")
	}

	return ns
}

// NormalizeName returns a hotspot name's normalized phrase and its
// stop-word-filtered tokens.
func (n *Normalizer) NormalizeName(name string) (string, []string) {
	return NormalizePhrase(name), n.MeaningfulTokens(name)
}
