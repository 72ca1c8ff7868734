// Package engine implements the step-to-visual-item assignment algorithm:
// strictly sequential over steps, greedy, with diversity penalties and reuse
// limits. There is no cross-step lookahead or backtracking; the contract is
// deliberately order-dependent on input step order.
package engine

import (
	"sort"

	"github.com/stepvis/stepvis/internal/debug"
	"github.com/stepvis/stepvis/internal/diversity"
	"github.com/stepvis/stepvis/internal/fuzzy"
	"github.com/stepvis/stepvis/internal/lexicon"
	"github.com/stepvis/stepvis/internal/scoring"
	"github.com/stepvis/stepvis/internal/types"
)

// Candidate is one scored (visual item, hotspot) pair for one step.
type Candidate struct {
	VisualID    types.VisualID
	Hotspot     types.Hotspot
	Raw         float64
	Adjusted    float64 // raw minus diversity penalty, clamped at 0
	ExactTarget bool
	ReuseCount  int
	Breakdown   scoring.Breakdown

	order int // position in the supplied candidate pool, last tiebreak
}

// StepTrace is the debug record for one step: the ranked surviving
// candidates with their signal breakdowns. Produced only in debug mode and
// never consulted by the selection itself.
type StepTrace struct {
	StepIndex  int
	Step       string
	Target     string
	Candidates []Candidate
}

// RunResult is the outcome of one mapping run.
type RunResult struct {
	Results []types.MappingResult

	// Traces is populated only when Config.Debug is set.
	Traces []StepTrace
}

// Engine orchestrates normalization, scoring, and diversity-aware selection.
// Read-only after construction; each MapSteps call gets its own tracker, so
// one engine serves concurrent runs.
type Engine struct {
	lex    *lexicon.Lexicon
	scorer *scoring.Scorer
}

// New creates an engine over the default lexicon.
func New() *Engine {
	return NewWithLexicon(lexicon.Default(), "")
}

// NewWithLexicon creates an engine with an explicit lexicon and fuzzy
// algorithm (empty means Levenshtein).
func NewWithLexicon(lex *lexicon.Lexicon, algorithm fuzzy.Algorithm) *Engine {
	return &Engine{
		lex:    lex,
		scorer: scoring.NewScorer(lex, algorithm),
	}
}

// MapSteps maps each step, in order, to its best available hotspot. The
// returned results align 1:1 with the input steps; a step with no acceptable
// candidate is reported as unmapped, never as an error. Only a structurally
// invalid config fails the run, and it fails before any step is processed.
func (e *Engine) MapSteps(steps []types.Step, items []types.VisualItem, cfg scoring.Config, requestContext string) (*RunResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	run := &RunResult{Results: make([]types.MappingResult, 0, len(steps))}
	tracker := diversity.NewTracker(cfg.DiversityPenalty, cfg.MaxImageReuse)
	reqCtx := e.scorer.NewRequestContext(requestContext)
	norm := e.scorer.Normalizer()

	debug.LogMapping("mapping %d steps against %d visual items (threshold=%.2f)\n",
		len(steps), len(items), cfg.Threshold)

	for i, step := range steps {
		ns := norm.NormalizeStep(step)

		// Score every (visual item, hotspot) pair, keep survivors.
		var survivors []Candidate
		order := 0
		for _, item := range items {
			penalty := tracker.PenaltyFor(item.ID)
			reuse := tracker.UseCount(item.ID)
			for _, hs := range item.Hotspots {
				// A nameless hotspot can never win a comparison.
				if hs.Name == "" {
					order++
					continue
				}
				raw, bd := e.scorer.Score(ns, hs, reqCtx)
				adjusted := raw - penalty
				if adjusted < 0 {
					adjusted = 0
				}
				if adjusted >= cfg.Threshold {
					survivors = append(survivors, Candidate{
						VisualID:    item.ID,
						Hotspot:     hs,
						Raw:         raw,
						Adjusted:    adjusted,
						ExactTarget: bd.ExactTarget,
						ReuseCount:  reuse,
						Breakdown:   bd,
						order:       order,
					})
				}
				order++
			}
		}

		sortCandidates(survivors)

		if cfg.Debug {
			run.Traces = append(run.Traces, StepTrace{
				StepIndex:  i,
				Step:       step.Text,
				Target:     ns.Target,
				Candidates: survivors,
			})
		}

		result := types.MappingResult{StepIndex: i, Step: step.Text}
		for _, cand := range survivors {
			if tracker.IsExhausted(cand.VisualID) {
				continue
			}
			result.Mapped = true
			result.VisualID = cand.VisualID
			result.HotspotName = cand.Hotspot.Name
			result.Score = cand.Raw
			tracker.RecordUse(cand.VisualID)
			debug.LogMapping("step %d %q -> %s/%q (raw=%.2f adj=%.2f)\n",
				i+1, step.Text, cand.VisualID, cand.Hotspot.Name, cand.Raw, cand.Adjusted)
			break
		}
		if !result.Mapped {
			debug.LogMapping("step %d %q -> unmapped (%d survivors)\n", i+1, step.Text, len(survivors))
		}

		run.Results = append(run.Results, result)
	}

	return run, nil
}

// sortCandidates orders by adjusted score descending, then exact-target
// matches first, then lower current reuse count, then original input order.
func sortCandidates(cands []Candidate) {
	sort.SliceStable(cands, func(a, b int) bool {
		ca, cb := cands[a], cands[b]
		if ca.Adjusted != cb.Adjusted {
			return ca.Adjusted > cb.Adjusted
		}
		if ca.ExactTarget != cb.ExactTarget {
			return ca.ExactTarget
		}
		if ca.ReuseCount != cb.ReuseCount {
			return ca.ReuseCount < cb.ReuseCount
		}
		return ca.order < cb.order
	})
}
