package types

import (
	"strings"
	"testing"
)

func TestParseHotspotType(t *testing.T) {
	tests := []struct {
		raw  string
		want HotspotType
	}{
		{"BUTTON", HotspotButton},
		{"button", HotspotButton},
		{"  Button ", HotspotButton},
		{"TEXT_FIELD", HotspotInput},
		{"input", HotspotInput},
		{"input_field", HotspotInput},
		{"textbox", HotspotInput},
		{"LINK", HotspotLink},
		{"menu", HotspotLink},
		{"tab", HotspotLink},
		{"nav", HotspotLink},
		{"HIGHLIGHT", HotspotGeneric},
		{"icon", HotspotGeneric},
		{"", HotspotGeneric},
	}
	for _, tt := range tests {
		if got := ParseHotspotType(tt.raw); got != tt.want {
			t.Errorf("ParseHotspotType(%q) = %s, want %s", tt.raw, got, tt.want)
		}
	}
}

func TestHotspotTypeString(t *testing.T) {
	tests := map[HotspotType]string{
		HotspotGeneric: "generic",
		HotspotButton:  "button",
		HotspotInput:   "input",
		HotspotLink:    "link",
	}
	for ht, want := range tests {
		if got := ht.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", ht, got, want)
		}
	}
}

func TestMappingResultString(t *testing.T) {
	mapped := MappingResult{StepIndex: 0, Mapped: true, VisualID: "img-1", HotspotName: "Save", Score: 1.7}
	if got := mapped.String(); !strings.Contains(got, "img-1") || !strings.Contains(got, "1.70") {
		t.Errorf("String() = %q", got)
	}

	unmapped := MappingResult{StepIndex: 2}
	if got := unmapped.String(); got != "step 3: unmapped" {
		t.Errorf("String() = %q", got)
	}
}

func TestMappingRate(t *testing.T) {
	if got := MappingRate(nil); got != 0 {
		t.Errorf("empty rate = %v", got)
	}
	results := []MappingResult{
		{Mapped: true},
		{Mapped: false},
		{Mapped: true},
		{Mapped: true},
	}
	if got := MappingRate(results); got != 0.75 {
		t.Errorf("rate = %v, want 0.75", got)
	}
}
