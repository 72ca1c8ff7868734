// Package diagnose checks whether a candidate pool has any vocabulary
// coverage for a request before a mapping run is attempted. A pool of purely
// generic hotspots ("Click", "Button") cannot produce contextually relevant
// mappings no matter how the scorer is tuned; this surfaces that early.
package diagnose

import (
	"fmt"
	"sort"
	"strings"

	"github.com/stepvis/stepvis/internal/lexicon"
	"github.com/stepvis/stepvis/internal/sim"
	"github.com/stepvis/stepvis/internal/textnorm"
	"github.com/stepvis/stepvis/internal/types"
)

// ConceptCoverage reports where one domain concept of the request shows up
// in the pool.
type ConceptCoverage struct {
	Concept  string
	Hotspots []string // distinct hotspot names matching the concept
}

// Report is the outcome of a coverage diagnosis.
type Report struct {
	Request  string
	Concepts []ConceptCoverage // every concept found in the request
	Stats    sim.Stats
}

// Covered reports whether any request concept has hotspot coverage.
func (r *Report) Covered() bool {
	for _, c := range r.Concepts {
		if len(c.Hotspots) > 0 {
			return true
		}
	}
	return false
}

// Analyze resolves the request's domain concepts and scans the pool for
// hotspot names that expand to them.
func Analyze(lex *lexicon.Lexicon, pool *sim.Pool, request string) *Report {
	norm := textnorm.New(lex)

	concepts := make(map[string]bool)
	for _, tok := range norm.MeaningfulTokens(request) {
		for _, c := range lex.ConceptsFor(tok) {
			concepts[c] = true
		}
	}

	rep := &Report{
		Request: request,
		Stats:   sim.CollectStats(pool, lex.IsGenericName),
	}

	names := distinctHotspotNames(pool.Items)
	for concept := range concepts {
		cov := ConceptCoverage{Concept: concept}
		for _, name := range names {
			if nameHasConcept(lex, norm, name, concept) {
				cov.Hotspots = append(cov.Hotspots, name)
			}
		}
		rep.Concepts = append(rep.Concepts, cov)
	}
	sort.Slice(rep.Concepts, func(i, j int) bool {
		return rep.Concepts[i].Concept < rep.Concepts[j].Concept
	})

	return rep
}

func nameHasConcept(lex *lexicon.Lexicon, norm *textnorm.Normalizer, name, concept string) bool {
	for _, tok := range norm.MeaningfulTokens(name) {
		for _, c := range lex.ConceptsFor(tok) {
			if c == concept {
				return true
			}
		}
	}
	return false
}

func distinctHotspotNames(items []types.VisualItem) []string {
	seen := make(map[string]bool)
	var names []string
	for _, item := range items {
		for _, hs := range item.Hotspots {
			if hs.Name == "" || seen[hs.Name] {
				continue
			}
			seen[hs.Name] = true
			names = append(names, hs.Name)
		}
	}
	sort.Strings(names)
	return names
}

// Render formats the report for CLI output.
func Render(r *Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Request: %s\n", r.Request)
	fmt.Fprintf(&b, "Pool: %d visual items, %d hotspots (%d generic, %d specific)\n\n",
		r.Stats.VisualItems, r.Stats.Hotspots, r.Stats.GenericNames, r.Stats.SpecificNames)

	if len(r.Concepts) == 0 {
		b.WriteString("No domain concepts recognized in the request.\n")
		return b.String()
	}

	for _, cov := range r.Concepts {
		if len(cov.Hotspots) == 0 {
			fmt.Fprintf(&b, "%-12s no hotspot coverage\n", cov.Concept)
			continue
		}
		fmt.Fprintf(&b, "%-12s %d hotspot(s): %s\n",
			cov.Concept, len(cov.Hotspots), strings.Join(preview(cov.Hotspots, 5), ", "))
	}

	if !r.Covered() {
		b.WriteString("\nNo request concept appears in the pool; expect generic matches only.\n")
	}

	return b.String()
}

func preview(names []string, max int) []string {
	if len(names) <= max {
		return names
	}
	out := append([]string(nil), names[:max]...)
	return append(out, fmt.Sprintf("… and %d more", len(names)-max))
}
