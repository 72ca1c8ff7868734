// Package fuzzy provides the normalized string-similarity ratio used by
// relevance scoring. Ratios are in [0,1], case-insensitive, symmetric, and
// deterministic.
package fuzzy

import (
	"strings"

	"github.com/hbollon/go-edlib"
)

// Algorithm selects the similarity metric.
type Algorithm string

const (
	// AlgorithmLevenshtein is a normalized character-level alignment ratio:
	// 1 - distance/maxlen. Identical strings score 1.0, disjoint strings
	// near 0.0. This is the default.
	AlgorithmLevenshtein Algorithm = "levenshtein"

	// AlgorithmJaroWinkler favors shared prefixes; useful when hotspot names
	// are truncated variants of step targets.
	AlgorithmJaroWinkler Algorithm = "jaro-winkler"
)

// Matcher computes similarity ratios with a fixed algorithm. Stateless and
// safe to share across concurrent runs.
type Matcher struct {
	algorithm Algorithm
}

// NewMatcher creates a matcher; an unknown algorithm falls back to
// Levenshtein.
func NewMatcher(algorithm Algorithm) *Matcher {
	switch algorithm {
	case AlgorithmLevenshtein, AlgorithmJaroWinkler:
	default:
		algorithm = AlgorithmLevenshtein
	}
	return &Matcher{algorithm: algorithm}
}

// Algorithm returns the configured metric.
func (m *Matcher) Algorithm() Algorithm {
	return m.algorithm
}

// Similarity returns the similarity ratio between a and b in [0,1].
// Comparison is case-insensitive and symmetric.
func (m *Matcher) Similarity(a, b string) float64 {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))

	if a == b {
		if a == "" {
			return 0.0
		}
		return 1.0
	}
	if a == "" || b == "" {
		return 0.0
	}

	var alg edlib.Algorithm
	switch m.algorithm {
	case AlgorithmJaroWinkler:
		alg = edlib.JaroWinkler
	default:
		alg = edlib.Levenshtein
	}

	// go-edlib returns similarity already normalized to [0,1].
	score, err := edlib.StringsSimilarity(a, b, alg)
	if err != nil {
		return 0.0
	}
	return float64(score)
}
