// Package report renders mapping results as plain-text reports for CLI
// output. Rendering is presentation only; it never alters results.
package report

import (
	"fmt"
	"strings"

	"github.com/stepvis/stepvis/internal/engine"
	"github.com/stepvis/stepvis/internal/types"
)

const separator = "======================================================================"

// Render produces the standard mapping report: totals, mapping rate, and one
// block per step.
func Render(run *engine.RunResult) string {
	var b strings.Builder

	mapped := 0
	for _, r := range run.Results {
		if r.Mapped {
			mapped++
		}
	}

	b.WriteString(separator + "\n")
	b.WriteString("STEP-TO-IMAGE MAPPING REPORT\n")
	b.WriteString(separator + "\n")
	fmt.Fprintf(&b, "Total Steps: %d\n", len(run.Results))
	fmt.Fprintf(&b, "Successfully Mapped: %d\n", mapped)
	fmt.Fprintf(&b, "Mapping Rate: %.1f%%\n", types.MappingRate(run.Results)*100)
	b.WriteString(separator + "\n\n")

	for _, r := range run.Results {
		fmt.Fprintf(&b, "Step %d: %s\n", r.StepIndex+1, r.Step)
		if r.Mapped {
			fmt.Fprintf(&b, "  Image: %s\n", r.VisualID)
			fmt.Fprintf(&b, "  Hotspot: %s\n", r.HotspotName)
			fmt.Fprintf(&b, "  Relevance: %.2f\n", r.Score)
		} else {
			b.WriteString("  Image: none\n")
		}
		b.WriteString("\n")
	}

	return b.String()
}

// RenderDebug appends the ranked candidate traces to the standard report.
// Only meaningful for runs executed with the debug flag.
func RenderDebug(run *engine.RunResult) string {
	var b strings.Builder
	b.WriteString(Render(run))

	if len(run.Traces) == 0 {
		return b.String()
	}

	b.WriteString(separator + "\n")
	b.WriteString("CANDIDATE TRACES\n")
	b.WriteString(separator + "\n")
	for _, tr := range run.Traces {
		fmt.Fprintf(&b, "\nStep %d: %s (target: %q)\n", tr.StepIndex+1, tr.Step, tr.Target)
		if len(tr.Candidates) == 0 {
			b.WriteString("  no candidates above threshold\n")
			continue
		}
		for rank, cand := range tr.Candidates {
			fmt.Fprintf(&b, "  %2d. %s / %-30q adj=%.2f %s\n",
				rank+1, cand.VisualID, cand.Hotspot.Name, cand.Adjusted, cand.Breakdown)
		}
	}

	return b.String()
}
