package colour

import "sort"

// DefaultBatchGrams is the fixed batch mass a recipe is scaled to.
const DefaultBatchGrams = 10.0

// RecipeLine is one paint in a finished recipe.
type RecipeLine struct {
	Pigment Pigment `json:"pigment"`
	// Percent is the integer share of the batch; all lines sum to exactly
	// 100 and every line holds at least 5.
	Percent int `json:"percent"`
	// Grams is the line's mass in the batch.
	Grams float64 `json:"grams"`
}

// RecipeResult is a complete optimization outcome. Mixed and DeltaE are
// recomputed from the filtered, renormalised recipe shares, never from the
// optimizer's raw ratio vector.
type RecipeResult struct {
	Target     Lab          `json:"target"`
	Recipe     []RecipeLine `json:"recipe"`
	Mixed      Lab          `json:"mixed"`
	DeltaE     float64      `json:"deltaE"`
	Method     DiffMethod   `json:"method"`
	BatchGrams float64      `json:"batchGrams"`
}

// formatRecipe turns a raw optimizer ratio vector into a production recipe:
// sub-threshold shares drop (or the recipe collapses to the dominant pigment
// at 100%), the rest renormalise to integer percentages summing exactly 100,
// and the predicted colour and distance are recomputed from what will
// actually be poured.
func formatRecipe(target Lab, pigments []Pigment, ratios []float64, mixer Mixer, cons Constraints) *RecipeResult {
	keptPigments := make([]Pigment, 0, len(pigments))
	keptRatios := make([]float64, 0, len(ratios))
	for i, r := range ratios {
		if r >= shareThreshold {
			keptPigments = append(keptPigments, pigments[i])
			keptRatios = append(keptRatios, r)
		}
	}

	// Everything under threshold: fall back to the dominant pigment alone.
	if len(keptPigments) == 0 {
		dominant := 0
		for i, r := range ratios {
			if r > ratios[dominant] {
				dominant = i
			}
		}
		keptPigments = append(keptPigments, pigments[dominant])
		keptRatios = append(keptRatios, 1)
	}

	total := 0.0
	for _, r := range keptRatios {
		total += r
	}
	for i := range keptRatios {
		keptRatios[i] /= total
	}

	lines := make([]RecipeLine, len(keptPigments))
	percentSum := 0
	largest := 0
	for i, p := range keptPigments {
		percent := int(keptRatios[i]*100 + 0.5)
		lines[i] = RecipeLine{Pigment: p, Percent: percent}
		percentSum += percent
		if percent > lines[largest].Percent {
			largest = i
		}
	}
	// Rounding remainder lands on the largest share.
	lines[largest].Percent += 100 - percentSum

	for i := range lines {
		lines[i].Grams = float64(lines[i].Percent) / 100 * cons.BatchGrams
	}

	sort.SliceStable(lines, func(i, j int) bool {
		return lines[i].Percent > lines[j].Percent
	})

	// Recompute from the filtered shares; dilution is applied the way it
	// will be poured, though colourless solvent cannot shift the hue.
	colors := make([]Lab, len(keptPigments))
	effective := make([]float64, len(keptRatios))
	for i := range keptPigments {
		colors[i] = keptPigments[i].Colour
		effective[i] = keptRatios[i] * (1 - cons.DilutionFraction)
	}
	mixed, err := mixer.Mix(colors, effective, cons.SearchModel)
	if err != nil {
		// Inputs are already validated; a non-nil error here only covers
		// the all-diluted edge, where the neutral fallback applies.
		mixed = Neutral()
	}

	return &RecipeResult{
		Target:     target,
		Recipe:     lines,
		Mixed:      mixed,
		DeltaE:     Difference(target, mixed, cons.Metric),
		Method:     cons.Metric,
		BatchGrams: cons.BatchGrams,
	}
}

// Verdict maps a colour difference to the practical quality bands used in
// hobby paint matching.
func Verdict(deltaE float64) string {
	switch {
	case deltaE < 3:
		return "very close match"
	case deltaE < 6:
		return "close enough for most work"
	case deltaE < 10:
		return "usable, visible under close inspection"
	default:
		return "noticeably off; a wider catalog would help"
	}
}
