package report

import (
	"strings"
	"testing"

	"github.com/stepvis/stepvis/internal/engine"
	"github.com/stepvis/stepvis/internal/scoring"
	"github.com/stepvis/stepvis/internal/types"
)

func sampleRun() *engine.RunResult {
	return &engine.RunResult{
		Results: []types.MappingResult{
			{StepIndex: 0, Step: "Click Save", Mapped: true, VisualID: "img-001", HotspotName: "Save", Score: 1.7},
			{StepIndex: 1, Step: "Do something odd", Mapped: false},
		},
	}
}

func TestRender(t *testing.T) {
	out := Render(sampleRun())

	for _, want := range []string{
		"STEP-TO-IMAGE MAPPING REPORT",
		"Total Steps: 2",
		"Successfully Mapped: 1",
		"Mapping Rate: 50.0%",
		"Step 1: Click Save",
		"Image: img-001",
		"Hotspot: Save",
		"Relevance: 1.70",
		"Step 2: Do something odd",
		"Image: none",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}

func TestRenderEmptyRun(t *testing.T) {
	out := Render(&engine.RunResult{})
	if !strings.Contains(out, "Total Steps: 0") || !strings.Contains(out, "Mapping Rate: 0.0%") {
		t.Errorf("empty report:\n%s", out)
	}
}

func TestRenderDebugIncludesTraces(t *testing.T) {
	run := sampleRun()
	run.Traces = []engine.StepTrace{
		{
			StepIndex: 0,
			Step:      "Click Save",
			Target:    "save",
			Candidates: []engine.Candidate{
				{VisualID: "img-001", Hotspot: types.Hotspot{Name: "Save"}, Adjusted: 1.7,
					Breakdown: scoring.Breakdown{ExactTarget: true, Raw: 1.7}},
			},
		},
		{StepIndex: 1, Step: "Do something odd"},
	}

	out := RenderDebug(run)
	for _, want := range []string{
		"CANDIDATE TRACES",
		`(target: "save")`,
		"img-001",
		"exact-target",
		"no candidates above threshold",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("debug report missing %q:\n%s", want, out)
		}
	}
}

func TestRenderDebugWithoutTracesEqualsRender(t *testing.T) {
	run := sampleRun()
	if RenderDebug(run) != Render(run) {
		t.Error("debug render without traces should match the plain report")
	}
}
