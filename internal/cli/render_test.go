package cli

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/plamix/plamix/internal/colour"
)

func sampleResult() *colour.RecipeResult {
	white := colour.Pigment{Code: "C62", Name: "Flat White", Manufacturer: "Mr.Color", Category: "basic", Colour: colour.Lab{L: 92.5, A: 0.1, B: 0.2}}
	black := colour.Pigment{Code: "C2", Name: "Black", Manufacturer: "Mr.Color", Category: "basic", Colour: colour.Lab{L: 15.3, A: 0.2, B: 0.1}}
	return &colour.RecipeResult{
		Target: colour.Lab{L: 55, A: 0, B: 0},
		Recipe: []colour.RecipeLine{
			{Pigment: white, Percent: 80, Grams: 8},
			{Pigment: black, Percent: 20, Grams: 2},
		},
		Mixed:      colour.Lab{L: 54.2, A: 0.1, B: 0.2},
		DeltaE:     1.4,
		Method:     colour.DE00,
		BatchGrams: 10,
	}
}

func TestRenderText(t *testing.T) {
	got, err := renderResult(sampleResult(), "#808080", "text", false)
	if err != nil {
		t.Fatalf("renderResult() error: %v", err)
	}

	for _, want := range []string{"#808080", "C62", "Flat White", "80%", "8.0g", "20%", "DE00 1.40", "very close match", "Batch  10g"} {
		if !strings.Contains(got, want) {
			t.Errorf("text output missing %q:\n%s", want, got)
		}
	}
}

func TestRenderJSON(t *testing.T) {
	got, err := renderResult(sampleResult(), "#808080", "json", false)
	if err != nil {
		t.Fatalf("renderResult() error: %v", err)
	}

	var report struct {
		Source  string               `json:"source"`
		Recipe  []colour.RecipeLine  `json:"recipe"`
		DeltaE  float64              `json:"deltaE"`
		Verdict string               `json:"verdict"`
	}
	if err := json.Unmarshal([]byte(got), &report); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, got)
	}
	if report.Source != "#808080" {
		t.Errorf("source = %q, want #808080", report.Source)
	}
	if len(report.Recipe) != 2 {
		t.Errorf("got %d recipe lines, want 2", len(report.Recipe))
	}
	if report.Verdict == "" {
		t.Error("verdict missing from JSON output")
	}
}

func TestRenderUnknownFormat(t *testing.T) {
	if _, err := renderResult(sampleResult(), "x", "yaml", false); err == nil {
		t.Error("expected an error for an unsupported format")
	}
}
