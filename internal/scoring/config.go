package scoring

import (
	stderrors "errors"
	"fmt"

	"github.com/stepvis/stepvis/internal/errors"
	"github.com/stepvis/stepvis/internal/fuzzy"
)

// Default configuration values. These are the documented defaults of the
// mapping entry point; callers override per run.
const (
	DefaultThreshold        = 0.15
	DefaultMaxImageReuse    = 3
	DefaultDiversityPenalty = 0.15
)

// Config controls one mapping run. It is supplied per run and never mutated
// mid-run; concurrent runs must each get their own copy.
type Config struct {
	// Threshold is the minimum diversity-adjusted score a candidate needs
	// to stay in contention.
	Threshold float64

	// MaxImageReuse caps how many steps may select the same visual item
	// within one run.
	MaxImageReuse int

	// DiversityPenalty is deducted from a candidate's score once per prior
	// selection of its visual item.
	DiversityPenalty float64

	// Debug makes the engine retain ranked candidate traces per step.
	// Selection outcomes are unaffected.
	Debug bool

	// FuzzyAlgorithm selects the similarity metric; empty means Levenshtein.
	FuzzyAlgorithm fuzzy.Algorithm
}

// DefaultConfig returns the documented default configuration.
func DefaultConfig() Config {
	return Config{
		Threshold:        DefaultThreshold,
		MaxImageReuse:    DefaultMaxImageReuse,
		DiversityPenalty: DefaultDiversityPenalty,
	}
}

// Validate rejects structurally invalid configurations before any step is
// processed.
func (c Config) Validate() error {
	if c.Threshold < 0 {
		return errors.NewConfigError("threshold", fmt.Sprintf("%v", c.Threshold),
			stderrors.New("must be >= 0"))
	}
	if c.MaxImageReuse < 1 {
		return errors.NewConfigError("max_image_reuse", fmt.Sprintf("%d", c.MaxImageReuse),
			stderrors.New("must be >= 1"))
	}
	if c.DiversityPenalty < 0 {
		return errors.NewConfigError("diversity_penalty", fmt.Sprintf("%v", c.DiversityPenalty),
			stderrors.New("must be >= 0"))
	}
	return nil
}
