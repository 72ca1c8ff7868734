package lexicon

import (
	"testing"

	"github.com/stepvis/stepvis/internal/types"
)

func TestConceptsForSynonymExpansion(t *testing.T) {
	lex := Default()

	tests := []struct {
		token   string
		concept string
	}{
		{"billing", "payment"},
		{"card", "payment"},
		{"payment", "payment"},
		{"payments", "payment"}, // inflected form folds to the same set
		{"claim", "insurance"},
		{"premium", "insurance"},
		{"tracking", "order"},
		{"profile", "account"},
		{"reservation", "booking"},
		{"reimbursement", "refund"},
		{"ticket", "support"},
		{"zip", "address"},
	}
	for _, tt := range tests {
		concepts := lex.ConceptsFor(tt.token)
		if !containsString(concepts, tt.concept) {
			t.Errorf("ConceptsFor(%q) = %v, want it to include %q", tt.token, concepts, tt.concept)
		}
	}
}

func TestConceptsForUnknownToken(t *testing.T) {
	lex := Default()
	if got := lex.ConceptsFor("zebra"); len(got) != 0 {
		t.Errorf("ConceptsFor(zebra) = %v, want empty", got)
	}
}

func TestConceptsForMultiSetToken(t *testing.T) {
	// "credit" belongs to both payment and refund; order must be sorted.
	lex := Default()
	got := lex.ConceptsFor("credit")
	if len(got) != 2 || got[0] != "payment" || got[1] != "refund" {
		t.Errorf("ConceptsFor(credit) = %v, want [payment refund]", got)
	}
}

func TestActionForVerbSynonyms(t *testing.T) {
	lex := Default()

	tests := []struct {
		verb   string
		action string
	}{
		{"click", "click"},
		{"press", "click"},
		{"tap", "click"},
		{"Clicking", "click"}, // stem-folded, case-insensitive
		{"enter", "enter"},
		{"type", "enter"},
		{"fill", "enter"},
		{"go", "navigate"},
		{"open", "navigate"},
		{"change", "update"},
		{"save", "submit"},
		{"confirm", "submit"},
		{"review", "view"},
		{"find", "search"},
	}
	for _, tt := range tests {
		action, ok := lex.ActionFor(tt.verb)
		if !ok {
			t.Errorf("ActionFor(%q): no action found", tt.verb)
			continue
		}
		if action.Name != tt.action {
			t.Errorf("ActionFor(%q) = %s, want %s", tt.verb, action.Name, tt.action)
		}
	}

	if _, ok := lex.ActionFor("defenestrate"); ok {
		t.Error("ActionFor(defenestrate) should not resolve")
	}
}

func TestActionAffinity(t *testing.T) {
	lex := Default()

	click, _ := lex.ActionFor("click")
	if !click.HasAffinity(types.HotspotButton) {
		t.Error("click should align with button hotspots")
	}
	if click.HasAffinity(types.HotspotInput) {
		t.Error("click should not align with input hotspots")
	}

	update, _ := lex.ActionFor("update")
	if !update.HasAffinity(types.HotspotInput) || !update.HasAffinity(types.HotspotButton) {
		t.Error("update should align with both input and button hotspots")
	}
	if update.HasAffinity(types.HotspotLink) {
		t.Error("update should not align with link hotspots")
	}
}

func TestIsStopWord(t *testing.T) {
	lex := Default()
	for _, w := range []string{"the", "a", "to", "please", "THE"} {
		if !lex.IsStopWord(w) {
			t.Errorf("IsStopWord(%q) = false, want true", w)
		}
	}
	for _, w := range []string{"payment", "click", "save"} {
		if lex.IsStopWord(w) {
			t.Errorf("IsStopWord(%q) = true, want false", w)
		}
	}
}

func TestIsGenericName(t *testing.T) {
	lex := Default()
	for _, name := range []string{"button", "Next", "  ok  ", "continue"} {
		if !lex.IsGenericName(name) {
			t.Errorf("IsGenericName(%q) = false, want true", name)
		}
	}
	// "save" is a verb synonym, not a generic hotspot name; the exact-phrase
	// rule means multi-word names are never generic either.
	for _, name := range []string{"save", "Payment Method", "Submit Order"} {
		if lex.IsGenericName(name) {
			t.Errorf("IsGenericName(%q) = true, want false", name)
		}
	}
}

func TestWithOverlayAddsDomainsAndVerbs(t *testing.T) {
	base := Default()
	lex := base.WithOverlay(Overlay{
		Domains: map[string][]string{
			"payment": {"stripe"},
			"loyalty": {"points", "rewards"},
		},
		Verbs: map[string][]string{
			"click": {"smash"},
		},
	})

	if !containsString(lex.ConceptsFor("stripe"), "payment") {
		t.Error("overlay synonym stripe should expand to payment")
	}
	if !containsString(lex.ConceptsFor("rewards"), "loyalty") {
		t.Error("overlay concept loyalty should be reachable via rewards")
	}
	if action, ok := lex.ActionFor("smash"); !ok || action.Name != "click" {
		t.Error("overlay verb smash should resolve to click")
	}

	// Built-ins survive the overlay.
	if !containsString(lex.ConceptsFor("billing"), "payment") {
		t.Error("built-in synonym billing lost after overlay")
	}
	if _, ok := lex.ActionFor("press"); !ok {
		t.Error("built-in verb press lost after overlay")
	}

	// The base lexicon is untouched.
	if len(base.ConceptsFor("stripe")) != 0 {
		t.Error("WithOverlay must not mutate the receiver")
	}
}

func TestWithOverlayEmptyReturnsReceiver(t *testing.T) {
	base := Default()
	if base.WithOverlay(Overlay{}) != base {
		t.Error("empty overlay should return the receiver unchanged")
	}
}

func TestDefaultIsSingleton(t *testing.T) {
	if Default() != Default() {
		t.Error("Default must return the same instance")
	}
}

func TestConceptsSorted(t *testing.T) {
	lex := Default()
	concepts := lex.Concepts()
	if len(concepts) == 0 {
		t.Fatal("no default concepts")
	}
	for i := 1; i < len(concepts); i++ {
		if concepts[i-1] >= concepts[i] {
			t.Fatalf("Concepts() not sorted: %v", concepts)
		}
	}
	if members := lex.Members("payment"); len(members) == 0 || members[0] != "payment" {
		t.Errorf("Members(payment) = %v, want concept first", members)
	}
}
