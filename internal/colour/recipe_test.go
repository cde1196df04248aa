package colour

import (
	"math"
	"testing"
)

func formatterConstraints(t *testing.T) Constraints {
	t.Helper()
	cons, err := Constraints{Metric: DE76}.normalised()
	if err != nil {
		t.Fatal(err)
	}
	return cons
}

func TestFormatRecipeDropsSubThresholdShares(t *testing.T) {
	cons := formatterConstraints(t)
	pigments := []Pigment{
		{Code: "A", Colour: Lab{L: 60}},
		{Code: "B", Colour: Lab{L: 40}},
		{Code: "C", Colour: Lab{L: 20}},
	}
	ratios := []float64{0.9, 0.07, 0.03}

	result := formatRecipe(Lab{L: 55}, pigments, ratios, NewMixer(), cons)

	if len(result.Recipe) != 2 {
		t.Fatalf("recipe has %d lines, want 2 after dropping the 3%% share", len(result.Recipe))
	}
	if result.Recipe[0].Pigment.Code != "A" || result.Recipe[1].Pigment.Code != "B" {
		t.Errorf("kept lines = %s,%s, want A,B",
			result.Recipe[0].Pigment.Code, result.Recipe[1].Pigment.Code)
	}
	if got := result.Recipe[0].Percent + result.Recipe[1].Percent; got != 100 {
		t.Errorf("percent sum = %d, want 100", got)
	}
	// 0.9/0.97 and 0.07/0.97 round to 93 and 7.
	if result.Recipe[0].Percent != 93 || result.Recipe[1].Percent != 7 {
		t.Errorf("percents = %d,%d, want 93,7",
			result.Recipe[0].Percent, result.Recipe[1].Percent)
	}
}

func TestFormatRecipeFallsBackToDominantPigment(t *testing.T) {
	cons := formatterConstraints(t)
	pigments := []Pigment{
		{Code: "A", Colour: Lab{L: 60}},
		{Code: "B", Colour: Lab{L: 40}},
	}
	ratios := []float64{0.03, 0.04}

	result := formatRecipe(Lab{L: 45}, pigments, ratios, NewMixer(), cons)

	if len(result.Recipe) != 1 {
		t.Fatalf("recipe has %d lines, want single fallback line", len(result.Recipe))
	}
	line := result.Recipe[0]
	if line.Pigment.Code != "B" {
		t.Errorf("fallback pigment = %s, want the dominant B", line.Pigment.Code)
	}
	if line.Percent != 100 {
		t.Errorf("fallback percent = %d, want 100", line.Percent)
	}
	if math.Abs(line.Grams-cons.BatchGrams) > 1e-9 {
		t.Errorf("fallback grams = %g, want full batch %g", line.Grams, cons.BatchGrams)
	}
	if !labNear(result.Mixed, Lab{L: 40}, 1e-6) {
		t.Errorf("fallback mixed colour = %v, want pigment B's own colour", result.Mixed)
	}
}

func TestFormatRecipeRoundingRemainderOnLargestLine(t *testing.T) {
	cons := formatterConstraints(t)
	pigments := []Pigment{
		{Code: "A", Colour: Lab{L: 70}},
		{Code: "B", Colour: Lab{L: 50}},
		{Code: "C", Colour: Lab{L: 30}},
	}
	ratios := []float64{1.0 / 3, 1.0 / 3, 1.0 / 3}

	result := formatRecipe(Lab{L: 50}, pigments, ratios, NewMixer(), cons)

	percentSum := 0
	gramSum := 0.0
	for _, line := range result.Recipe {
		percentSum += line.Percent
		gramSum += line.Grams
	}
	if percentSum != 100 {
		t.Errorf("percent sum = %d, want exactly 100", percentSum)
	}
	if math.Abs(gramSum-cons.BatchGrams) > 0.05 {
		t.Errorf("gram sum = %g, want %g within 0.05", gramSum, cons.BatchGrams)
	}
	if result.Recipe[0].Percent != 34 {
		t.Errorf("largest line percent = %d, want 34 (33+remainder)", result.Recipe[0].Percent)
	}
}

// The reported colour comes from the filtered, renormalised shares, not the
// raw optimizer vector.
func TestFormatRecipeRecomputesFromFilteredShares(t *testing.T) {
	cons := formatterConstraints(t)
	pigments := []Pigment{
		{Code: "A", Colour: Lab{L: 80}},
		{Code: "B", Colour: Lab{L: 20}},
		{Code: "C", Colour: Lab{L: 50, A: 60}},
	}
	raw := []float64{0.57, 0.40, 0.03}

	result := formatRecipe(Lab{L: 50}, pigments, raw, NewMixer(), cons)

	kept := []Lab{{L: 80}, {L: 20}}
	want, err := Mix(kept, []float64{0.57 / 0.97, 0.40 / 0.97}, ModelKubelkaMunk)
	if err != nil {
		t.Fatal(err)
	}
	if !labNear(result.Mixed, want, 1e-9) {
		t.Errorf("mixed = %v, want %v recomputed without the dropped pigment", result.Mixed, want)
	}
	if math.Abs(result.DeltaE-Difference(Lab{L: 50}, want, DE76)) > 1e-9 {
		t.Errorf("deltaE = %g not recomputed from the filtered mix", result.DeltaE)
	}
}

func TestVerdictBands(t *testing.T) {
	tests := []struct {
		deltaE float64
		want   string
	}{
		{deltaE: 0.5, want: "very close match"},
		{deltaE: 4.2, want: "close enough for most work"},
		{deltaE: 8.0, want: "usable, visible under close inspection"},
		{deltaE: 15.0, want: "noticeably off; a wider catalog would help"},
	}

	for _, tt := range tests {
		if got := Verdict(tt.deltaE); got != tt.want {
			t.Errorf("Verdict(%g) = %q, want %q", tt.deltaE, got, tt.want)
		}
	}
}
