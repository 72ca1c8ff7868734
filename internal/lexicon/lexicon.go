// Package lexicon holds the static lexical tables used by relevance scoring:
// domain synonym sets, action-verb tables with hotspot-type affinities, the
// stop-word list, and the generic-term list. Tables are immutable after
// construction and safe to share across concurrent mapping runs.
package lexicon

import (
	"sort"
	"strings"
	"sync"

	"github.com/stepvis/stepvis/internal/types"
)

// Action is a canonical UI action with its verb synonyms and the hotspot
// types it has affinity to (click presses buttons, enter fills inputs).
type Action struct {
	Name     string
	Verbs    []string
	Affinity []types.HotspotType
}

// HasAffinity reports whether the action aligns with the given hotspot type.
func (a Action) HasAffinity(ht types.HotspotType) bool {
	for _, t := range a.Affinity {
		if t == ht {
			return true
		}
	}
	return false
}

// Lexicon bundles the lookup tables. Synonym expansion is symmetric: a token
// matching any member of a concept's set counts as the concept itself.
type Lexicon struct {
	stemmer *Stemmer

	// concept → synonym tokens (canonical concept included)
	domains map[string][]string
	// stemmed token → concepts it belongs to (reverse index, built once)
	tokenToConcepts map[string][]string

	// canonical action name → Action
	actions map[string]Action
	// stemmed verb → action name
	verbToAction map[string]string

	stopWords    map[string]bool
	genericTerms map[string]bool
}

// Overlay adds project-specific synonym sets and action verbs on top of the
// built-in tables. Zero value means no additions.
type Overlay struct {
	Domains map[string][]string
	Verbs   map[string][]string // action name → extra verbs
}

// New builds a lexicon from explicit tables. Most callers want Default.
func New(domains map[string][]string, actions []Action, stopWords, genericTerms []string) *Lexicon {
	lex := &Lexicon{
		stemmer:         NewStemmer(),
		domains:         make(map[string][]string, len(domains)),
		tokenToConcepts: make(map[string][]string),
		actions:         make(map[string]Action, len(actions)),
		verbToAction:    make(map[string]string),
		stopWords:       make(map[string]bool, len(stopWords)),
		genericTerms:    make(map[string]bool, len(genericTerms)),
	}

	for concept, syns := range domains {
		members := append([]string{concept}, syns...)
		lex.domains[concept] = members
		for _, m := range members {
			key := lex.stemmer.Stem(strings.ToLower(m))
			if !containsString(lex.tokenToConcepts[key], concept) {
				lex.tokenToConcepts[key] = append(lex.tokenToConcepts[key], concept)
			}
		}
	}
	// Deterministic concept ordering for tokens in multiple sets.
	for key := range lex.tokenToConcepts {
		sort.Strings(lex.tokenToConcepts[key])
	}

	for _, action := range actions {
		lex.actions[action.Name] = action
		for _, verb := range append([]string{action.Name}, action.Verbs...) {
			lex.verbToAction[lex.stemmer.Stem(strings.ToLower(verb))] = action.Name
		}
	}

	for _, w := range stopWords {
		lex.stopWords[strings.ToLower(w)] = true
	}
	for _, g := range genericTerms {
		lex.genericTerms[strings.ToLower(g)] = true
	}

	return lex
}

// WithOverlay returns a new lexicon extended with the overlay's tables.
// The receiver is not modified.
func (lex *Lexicon) WithOverlay(ov Overlay) *Lexicon {
	if len(ov.Domains) == 0 && len(ov.Verbs) == 0 {
		return lex
	}

	domains := make(map[string][]string, len(lex.domains)+len(ov.Domains))
	for concept, members := range lex.domains {
		// members[0] is the concept itself, added back by New
		domains[concept] = append([]string(nil), members[1:]...)
	}
	for concept, syns := range ov.Domains {
		domains[concept] = append(domains[concept], syns...)
	}

	actions := make([]Action, 0, len(lex.actions))
	for name, action := range lex.actions {
		extended := action
		if extra, ok := ov.Verbs[name]; ok {
			extended.Verbs = append(append([]string(nil), action.Verbs...), extra...)
		}
		actions = append(actions, extended)
	}
	sort.Slice(actions, func(i, j int) bool { return actions[i].Name < actions[j].Name })

	return New(domains, actions, keys(lex.stopWords), keys(lex.genericTerms))
}

// ConceptsFor returns the domain concepts whose synonym set contains the
// token, in sorted order. Lookup is stem-folded so inflected forms
// (payments, billing) hit their sets.
func (lex *Lexicon) ConceptsFor(token string) []string {
	return lex.tokenToConcepts[lex.stemmer.Stem(strings.ToLower(token))]
}

// ActionFor resolves a verb (or any of its synonyms) to its canonical action.
func (lex *Lexicon) ActionFor(verb string) (Action, bool) {
	name, ok := lex.verbToAction[lex.stemmer.Stem(strings.ToLower(verb))]
	if !ok {
		return Action{}, false
	}
	return lex.actions[name], true
}

// IsStopWord reports whether the token carries no matching signal.
func (lex *Lexicon) IsStopWord(token string) bool {
	return lex.stopWords[strings.ToLower(token)]
}

// IsGenericName reports whether a normalized hotspot name is a generic UI
// term ("button", "field") that should be penalized rather than rewarded.
func (lex *Lexicon) IsGenericName(name string) bool {
	return lex.genericTerms[strings.ToLower(strings.TrimSpace(name))]
}

// Concepts returns the canonical domain concepts, sorted.
func (lex *Lexicon) Concepts() []string {
	out := make([]string, 0, len(lex.domains))
	for concept := range lex.domains {
		out = append(out, concept)
	}
	sort.Strings(out)
	return out
}

// Members returns the full synonym set for a concept, including the concept.
func (lex *Lexicon) Members(concept string) []string {
	return lex.domains[concept]
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func keys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

var (
	defaultLexicon     *Lexicon
	defaultLexiconOnce sync.Once
)

// Default returns the built-in lexicon. The instance is constructed once and
// shared read-only across all mapping runs.
func Default() *Lexicon {
	defaultLexiconOnce.Do(func() {
		defaultLexicon = New(defaultDomains, defaultActions, defaultStopWords, defaultGenericTerms)
	})
	return defaultLexicon
}
