package fuzzy

import (
	"math"
	"testing"
)

func TestSimilarityExactAndEmpty(t *testing.T) {
	m := NewMatcher(AlgorithmLevenshtein)

	if got := m.Similarity("save", "save"); got != 1.0 {
		t.Errorf("identical strings = %.2f, want 1.0", got)
	}
	if got := m.Similarity("Save", "  save "); got != 1.0 {
		t.Errorf("case/space-insensitive match = %.2f, want 1.0", got)
	}
	if got := m.Similarity("", ""); got != 0.0 {
		t.Errorf("empty vs empty = %.2f, want 0.0", got)
	}
	if got := m.Similarity("save", ""); got != 0.0 {
		t.Errorf("non-empty vs empty = %.2f, want 0.0", got)
	}
}

func TestSimilarityBounds(t *testing.T) {
	m := NewMatcher(AlgorithmLevenshtein)

	pairs := [][2]string{
		{"payment", "payments"},
		{"billing", "biling"},
		{"submit order", "submit orders"},
		{"cancel", "xylophone"},
		{"a", "b"},
	}
	for _, p := range pairs {
		got := m.Similarity(p[0], p[1])
		if got < 0.0 || got > 1.0 || math.IsNaN(got) {
			t.Errorf("Similarity(%q, %q) = %v, out of [0,1]", p[0], p[1], got)
		}
	}
}

func TestSimilaritySymmetric(t *testing.T) {
	m := NewMatcher(AlgorithmLevenshtein)
	if a, b := m.Similarity("payment", "payments"), m.Similarity("payments", "payment"); a != b {
		t.Errorf("asymmetric: %.4f vs %.4f", a, b)
	}
}

func TestSimilarityNearMatches(t *testing.T) {
	m := NewMatcher(AlgorithmLevenshtein)

	// One character off a long word stays above the scoring threshold.
	if got := m.Similarity("payment", "payments"); got <= 0.75 {
		t.Errorf("Similarity(payment, payments) = %.2f, want > 0.75", got)
	}
	if got := m.Similarity("billing", "biling"); got <= 0.75 {
		t.Errorf("Similarity(billing, biling) = %.2f, want > 0.75", got)
	}
	// Unrelated words stay well below it.
	if got := m.Similarity("cancel", "payment"); got > 0.5 {
		t.Errorf("Similarity(cancel, payment) = %.2f, want <= 0.5", got)
	}
}

func TestSimilarityDeterministic(t *testing.T) {
	m := NewMatcher(AlgorithmJaroWinkler)
	first := m.Similarity("payment method", "payment methods")
	for i := 0; i < 10; i++ {
		if got := m.Similarity("payment method", "payment methods"); got != first {
			t.Fatal("similarity must be deterministic for identical input")
		}
	}
}

func TestUnknownAlgorithmFallsBack(t *testing.T) {
	m := NewMatcher("soundex")
	if m.Algorithm() != AlgorithmLevenshtein {
		t.Errorf("fallback algorithm = %s, want levenshtein", m.Algorithm())
	}
}
