// Package diversity tracks how many times each visual item has been selected
// within one mapping run, so the engine can penalize and eventually exhaust
// overused images.
package diversity

import "github.com/stepvis/stepvis/internal/types"

// Tracker holds the usage counter for exactly one run. It must not be shared
// across concurrent runs; each call to the mapping entry point starts from a
// fresh, zeroed tracker.
type Tracker struct {
	penalty  float64
	maxReuse int
	counts   map[types.VisualID]int
}

// NewTracker creates a zeroed tracker for one run.
func NewTracker(penalty float64, maxReuse int) *Tracker {
	return &Tracker{
		penalty:  penalty,
		maxReuse: maxReuse,
		counts:   make(map[types.VisualID]int),
	}
}

// PenaltyFor returns the score deduction for a visual item: reuse count
// times the configured diversity penalty.
func (t *Tracker) PenaltyFor(id types.VisualID) float64 {
	return float64(t.counts[id]) * t.penalty
}

// IsExhausted reports whether the item has hit the reuse cap.
func (t *Tracker) IsExhausted(id types.VisualID) bool {
	return t.counts[id] >= t.maxReuse
}

// UseCount returns the current reuse count for tie-breaking.
func (t *Tracker) UseCount(id types.VisualID) int {
	return t.counts[id]
}

// RecordUse increments the counter. Called exactly once per accepted
// assignment, never for rejected candidates.
func (t *Tracker) RecordUse(id types.VisualID) {
	t.counts[id]++
}
