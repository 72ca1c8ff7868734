// Package scoring computes the relevance score between one instruction step
// and one hotspot. The score is an additive sum of independent signals; each
// signal contributes only when its condition holds, and the final sum is
// clamped to a minimum of 0. Identical inputs always produce identical
// scores.
package scoring

import (
	"fmt"
	"sort"
	"strings"

	"github.com/stepvis/stepvis/internal/fuzzy"
	"github.com/stepvis/stepvis/internal/lexicon"
	"github.com/stepvis/stepvis/internal/textnorm"
	"github.com/stepvis/stepvis/internal/types"
)

// Signal weights. The sum is unbounded above; ~2.0 is the typical practical
// ceiling but nothing enforces one.
const (
	DomainConceptWeight  = 0.5  // per distinct domain concept shared with the request context
	ExactTargetWeight    = 1.2  // target phrase equals hotspot name
	FuzzyTargetWeight    = 0.6  // near-equal target phrase, only when exact did not fire
	TypeActionWeight     = 0.35 // action verb affinity matches hotspot type
	WordOverlapWeight    = 0.15 // per distinct step token present in the hotspot name
	CrossWordFuzzyWeight = 0.2  // one near-equal token pair, at most once per candidate
	GenericNamePenalty   = 0.15 // hotspot name is a generic UI term

	// FuzzySignalThreshold is the similarity a pair must exceed before
	// either fuzzy signal fires.
	FuzzySignalThreshold = 0.75
)

// RequestContext is the per-run view of the optional free-text request.
// Domain concepts are resolved once up front rather than per candidate.
type RequestContext struct {
	Raw      string
	Concepts []string // sorted, distinct
}

// Breakdown records which signals fired for one (step, hotspot) pair.
type Breakdown struct {
	DomainConcepts []string // concepts that matched both context and hotspot
	ExactTarget    bool
	FuzzyTarget    bool
	FuzzyTargetSim float64
	TypeAction     bool
	OverlapWords   []string
	CrossWordPair  [2]string
	CrossWord      bool
	GenericName    bool
	Raw            float64
}

// String renders the breakdown for debug traces.
func (b Breakdown) String() string {
	var parts []string
	if len(b.DomainConcepts) > 0 {
		parts = append(parts, fmt.Sprintf("domain=%s", strings.Join(b.DomainConcepts, ",")))
	}
	if b.ExactTarget {
		parts = append(parts, "exact-target")
	}
	if b.FuzzyTarget {
		parts = append(parts, fmt.Sprintf("fuzzy-target(%.2f)", b.FuzzyTargetSim))
	}
	if b.TypeAction {
		parts = append(parts, "type-action")
	}
	if len(b.OverlapWords) > 0 {
		parts = append(parts, fmt.Sprintf("overlap=%s", strings.Join(b.OverlapWords, ",")))
	}
	if b.CrossWord {
		parts = append(parts, fmt.Sprintf("cross-fuzzy(%s~%s)", b.CrossWordPair[0], b.CrossWordPair[1]))
	}
	if b.GenericName {
		parts = append(parts, "generic-penalty")
	}
	if len(parts) == 0 {
		parts = append(parts, "no-signal")
	}
	return fmt.Sprintf("%.2f [%s]", b.Raw, strings.Join(parts, " "))
}

// Scorer combines the lexicon, normalizer, and fuzzy matcher into the
// per-candidate relevance computation. Read-only after construction; safe to
// share across concurrent runs.
type Scorer struct {
	lex    *lexicon.Lexicon
	norm   *textnorm.Normalizer
	fuzzer *fuzzy.Matcher
}

// NewScorer builds a scorer over the given lexicon and fuzzy algorithm.
func NewScorer(lex *lexicon.Lexicon, algorithm fuzzy.Algorithm) *Scorer {
	return &Scorer{
		lex:    lex,
		norm:   textnorm.New(lex),
		fuzzer: fuzzy.NewMatcher(algorithm),
	}
}

// Normalizer exposes the scorer's normalizer so the engine normalizes each
// step exactly once.
func (s *Scorer) Normalizer() *textnorm.Normalizer {
	return s.norm
}

// NewRequestContext resolves the domain concepts present in a free-text
// request. Empty input yields an empty context.
func (s *Scorer) NewRequestContext(request string) RequestContext {
	ctx := RequestContext{Raw: request}
	seen := make(map[string]bool)
	for _, tok := range s.norm.MeaningfulTokens(request) {
		for _, concept := range s.lex.ConceptsFor(tok) {
			if !seen[concept] {
				seen[concept] = true
				ctx.Concepts = append(ctx.Concepts, concept)
			}
		}
	}
	sort.Strings(ctx.Concepts)
	return ctx
}

// Score computes the relevance of one hotspot for one normalized step.
// No signal is computed more than once per pair.
func (s *Scorer) Score(step textnorm.NormalizedStep, hotspot types.Hotspot, ctx RequestContext) (float64, Breakdown) {
	var bd Breakdown
	score := 0.0

	name, nameTokens := s.norm.NormalizeName(hotspot.Name)
	nameTokenSet := make(map[string]bool, len(nameTokens))
	for _, t := range nameTokens {
		nameTokenSet[t] = true
	}

	// Domain context: a concept shared between the request tokens and the
	// hotspot name tokens, either side via synonym expansion.
	for _, concept := range ctx.Concepts {
		if s.hotspotHasConcept(nameTokens, concept) {
			bd.DomainConcepts = append(bd.DomainConcepts, concept)
			score += DomainConceptWeight
		}
	}

	// Exact target match, with fuzzy target as its fallback.
	if step.Target != "" && name != "" {
		if step.Target == name {
			bd.ExactTarget = true
			score += ExactTargetWeight
		} else if sim := s.fuzzer.Similarity(step.Target, name); sim > FuzzySignalThreshold {
			bd.FuzzyTarget = true
			bd.FuzzyTargetSim = sim
			score += FuzzyTargetWeight
		}
	}

	// Type-action alignment.
	if step.HasAction && step.Action.HasAffinity(hotspot.Type) {
		bd.TypeAction = true
		score += TypeActionWeight
	}

	// Word overlap: direct token containment only.
	for _, tok := range step.Tokens {
		if nameTokenSet[tok] {
			bd.OverlapWords = append(bd.OverlapWords, tok)
			score += WordOverlapWeight
		}
	}

	// Cross-word fuzzy: first near-equal non-identical token pair, once.
	for _, st := range step.Tokens {
		if bd.CrossWord {
			break
		}
		for _, nt := range nameTokens {
			if st == nt {
				continue
			}
			if s.fuzzer.Similarity(st, nt) > FuzzySignalThreshold {
				bd.CrossWord = true
				bd.CrossWordPair = [2]string{st, nt}
				score += CrossWordFuzzyWeight
				break
			}
		}
	}

	// Generic-name penalty.
	if s.lex.IsGenericName(name) {
		bd.GenericName = true
		score -= GenericNamePenalty
	}

	if score < 0 {
		score = 0
	}
	bd.Raw = score
	return score, bd
}

// hotspotHasConcept reports whether any hotspot name token expands to the
// concept.
func (s *Scorer) hotspotHasConcept(nameTokens []string, concept string) bool {
	for _, tok := range nameTokens {
		for _, c := range s.lex.ConceptsFor(tok) {
			if c == concept {
				return true
			}
		}
	}
	return false
}
