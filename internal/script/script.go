// Package script loads walkthrough scripts: an ordered list of instruction
// steps plus the free-text request they answer. Scripts are TOML files
// authored upstream (typically by an LLM-backed generator); this package
// only parses, it never generates.
package script

import (
	stderrors "errors"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/stepvis/stepvis/internal/errors"
	"github.com/stepvis/stepvis/internal/types"
)

// Script is one walkthrough to illustrate.
type Script struct {
	Title   string `toml:"title"`
	Context string `toml:"context"`

	// Steps is the plain form: one instruction string per step.
	Steps []string `toml:"steps"`

	// Step blocks are the detailed form, appended after Steps; they allow
	// an explicit target phrase per instruction.
	Step []DetailedStep `toml:"step"`
}

// DetailedStep is a step with an explicit target phrase.
type DetailedStep struct {
	Text   string `toml:"text"`
	Target string `toml:"target"`
}

// ToSteps flattens the script into the engine's step sequence, preserving
// authored order.
func (s *Script) ToSteps() []types.Step {
	out := make([]types.Step, 0, len(s.Steps)+len(s.Step))
	for _, text := range s.Steps {
		out = append(out, types.Step{Text: text})
	}
	for _, ds := range s.Step {
		out = append(out, types.Step{Text: ds.Text, Target: ds.Target})
	}
	return out
}

// LoadFile parses a TOML script file.
func LoadFile(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewScriptError(path, err)
	}
	return parse(path, data)
}

func parse(path string, data []byte) (*Script, error) {
	var s Script
	if err := toml.Unmarshal(data, &s); err != nil {
		return nil, errors.NewScriptError(path, err)
	}

	if len(s.Steps) == 0 && len(s.Step) == 0 {
		return nil, errors.NewScriptError(path, stderrors.New("script has no steps"))
	}
	for _, text := range s.Steps {
		if strings.TrimSpace(text) == "" {
			return nil, errors.NewScriptError(path, stderrors.New("empty step text"))
		}
	}
	for _, ds := range s.Step {
		if strings.TrimSpace(ds.Text) == "" {
			return nil, errors.NewScriptError(path, stderrors.New("empty step text"))
		}
	}
	return &s, nil
}
