package types

import (
	"fmt"
	"strings"
)

// VisualID identifies a screenshot/image within a candidate pool.
// IDs come straight from the simulation assets (fileId) and are stable
// for the lifetime of a mapping run.
type VisualID string

// HotspotType classifies an interactive region inside a visual item.
type HotspotType uint8

const (
	HotspotGeneric HotspotType = iota // highlights, icons, unclassified regions
	HotspotButton
	HotspotInput
	HotspotLink
)

func (ht HotspotType) String() string {
	switch ht {
	case HotspotButton:
		return "button"
	case HotspotInput:
		return "input"
	case HotspotLink:
		return "link"
	default:
		return "generic"
	}
}

// ParseHotspotType maps raw asset type strings onto the fixed hotspot set.
// Simulation assets use their own vocabulary (BUTTON, TEXT_FIELD, HIGHLIGHT);
// anything unrecognized degrades to generic rather than failing the load.
func ParseHotspotType(raw string) HotspotType {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "button":
		return HotspotButton
	case "input", "text_field", "input_field", "field", "textbox":
		return HotspotInput
	case "link", "menu", "tab", "nav":
		return HotspotLink
	default:
		return HotspotGeneric
	}
}

// Hotspot is a named, typed interactive region inside a VisualItem.
// Identity within a pool is (visual item id, hotspot name).
type Hotspot struct {
	Name string
	Type HotspotType
}

// VisualItem is a screenshot identified by a stable id, owning zero or
// more hotspots. Immutable during a mapping run.
type VisualItem struct {
	ID       VisualID
	Hotspots []Hotspot

	// SourceDir is where the backing image lives on disk, when known.
	// The core never reads it; the presentation layer does.
	SourceDir string
}

// Step is one instruction in a procedural script. Target optionally names
// the object of the action ("payment method" in "Update payment method");
// when empty the normalizer extracts one from Text.
type Step struct {
	Text   string
	Target string
}

// MappingResult is the outcome for a single step: either a selected
// (visual item, hotspot) pair with its raw relevance score, or unmapped.
type MappingResult struct {
	StepIndex int
	Step      string

	Mapped      bool
	VisualID    VisualID
	HotspotName string

	// Score is the raw relevance score, without the diversity adjustment
	// that drove candidate ordering.
	Score float64
}

func (r MappingResult) String() string {
	if !r.Mapped {
		return fmt.Sprintf("step %d: unmapped", r.StepIndex+1)
	}
	return fmt.Sprintf("step %d: %s / %q (%.2f)", r.StepIndex+1, r.VisualID, r.HotspotName, r.Score)
}

// MappingRate returns the fraction of steps that received a mapping.
func MappingRate(results []MappingResult) float64 {
	if len(results) == 0 {
		return 0
	}
	mapped := 0
	for _, r := range results {
		if r.Mapped {
			mapped++
		}
	}
	return float64(mapped) / float64(len(results))
}
