package diagnose

import (
	"strings"
	"testing"

	"github.com/stepvis/stepvis/internal/lexicon"
	"github.com/stepvis/stepvis/internal/sim"
	"github.com/stepvis/stepvis/internal/types"
)

func poolWith(names ...string) *sim.Pool {
	item := types.VisualItem{ID: "img-1"}
	for _, n := range names {
		item.Hotspots = append(item.Hotspots, types.Hotspot{Name: n})
	}
	return &sim.Pool{Items: []types.VisualItem{item}}
}

func TestAnalyzeFindsCoverage(t *testing.T) {
	lex := lexicon.Default()
	pool := poolWith("Card Details", "Save", "button")

	rep := Analyze(lex, pool, "customer has a billing question")
	if len(rep.Concepts) != 1 || rep.Concepts[0].Concept != "payment" {
		t.Fatalf("concepts = %+v, want payment only", rep.Concepts)
	}
	if got := rep.Concepts[0].Hotspots; len(got) != 1 || got[0] != "Card Details" {
		t.Errorf("coverage = %v, want [Card Details]", got)
	}
	if !rep.Covered() {
		t.Error("report should be covered")
	}
	if rep.Stats.Hotspots != 3 || rep.Stats.GenericNames != 1 {
		t.Errorf("stats = %+v", rep.Stats)
	}
}

func TestAnalyzeNoCoverage(t *testing.T) {
	lex := lexicon.Default()
	pool := poolWith("button", "next", "ok")

	rep := Analyze(lex, pool, "billing question")
	if rep.Covered() {
		t.Error("generic-only pool must not be covered")
	}

	out := Render(rep)
	if !strings.Contains(out, "no hotspot coverage") {
		t.Errorf("render missing coverage warning:\n%s", out)
	}
	if !strings.Contains(out, "expect generic matches only") {
		t.Errorf("render missing overall warning:\n%s", out)
	}
}

func TestAnalyzeNoConceptsInRequest(t *testing.T) {
	lex := lexicon.Default()
	rep := Analyze(lex, poolWith("Card Details"), "do the thing")
	if len(rep.Concepts) != 0 {
		t.Errorf("concepts = %+v, want none", rep.Concepts)
	}
	if !strings.Contains(Render(rep), "No domain concepts recognized") {
		t.Error("render should state that no concepts were recognized")
	}
}

func TestAnalyzeConceptsSorted(t *testing.T) {
	lex := lexicon.Default()
	rep := Analyze(lex, poolWith("Order Payment"), "billing for my shipment order")
	if len(rep.Concepts) != 2 || rep.Concepts[0].Concept != "order" || rep.Concepts[1].Concept != "payment" {
		t.Fatalf("concepts = %+v, want [order payment]", rep.Concepts)
	}
	for _, c := range rep.Concepts {
		if len(c.Hotspots) != 1 || c.Hotspots[0] != "Order Payment" {
			t.Errorf("coverage for %s = %v", c.Concept, c.Hotspots)
		}
	}
}
