package cli

import (
	"fmt"
	"os"

	"github.com/plamix/plamix/internal/catalog"
	"github.com/plamix/plamix/internal/colour"
	"github.com/spf13/cobra"
)

var (
	// Match command flags
	matchTarget        targetFlags
	matchMaxColours    int
	matchExcludeBasics bool
	matchExcludeCats   []string
	matchExcludeCodes  []string
	matchDilution      float64
	matchModel         string
	matchMetric        string
	matchGamma         float64
	matchPool          int
	matchBatch         float64
	matchWorkers       int
	matchFormat        string
	matchOutput        string
	matchShowPreview   bool
)

// matchCmd represents the match command
var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Find a mixing recipe for a target colour",
	Long: `Search the paint catalog for the combination that best reproduces a
target colour and print it as a recipe with percentages and gram
weights for a fixed batch.

The target comes from exactly one of --hex, --lab, --preset, or
--image (for images, the average colour of the picture is matched).

Examples:
  # Match a hex colour with the default catalog
  plamix match --hex '#4b5320'

  # Match a named preset, excluding plain white/black/silver paints
  plamix match --preset olive-drab --exclude-basics

  # Match a preset from your own presets file
  plamix match --presets-file my-presets.json --preset cockpit-green

  # Match the average colour of a reference photo, up to two paints
  plamix match --image box-art.jpg --max-colours 2

  # Thinned 20% with solvent, reported with the CIE76 metric
  plamix match --hex 8080ff --dilution 0.2 --metric DE76

  # JSON output for scripting
  plamix match --lab '48.2,68.4,45.6' --format json`,
	Args: cobra.NoArgs,
	RunE: runMatch,
}

func init() {
	matchCmd.Flags().StringVar(&matchTarget.hex, "hex", "", "target as a hex colour (e.g. '#4b5320')")
	matchCmd.Flags().StringVar(&matchTarget.lab, "lab", "", "target as an 'L,a,b' triple")
	matchCmd.Flags().StringVar(&matchTarget.preset, "preset", "", "target as a named preset (see: plamix presets)")
	matchCmd.Flags().StringVar(&matchTarget.presetsFile, "presets-file", "", "additional presets file (.json) searched by --preset")
	matchCmd.Flags().StringVar(&matchTarget.image, "image", "", "target as the average colour of an image file or URL")

	matchCmd.Flags().IntVarP(&matchMaxColours, "max-colours", "c", colour.DefaultMaxPigments, fmt.Sprintf("maximum paints in the recipe (1-%d)", colour.MaxPigmentsLimit))
	matchCmd.Flags().BoolVar(&matchExcludeBasics, "exclude-basics", false, "exclude plain white, black, and silver paints")
	matchCmd.Flags().StringSliceVar(&matchExcludeCats, "exclude-category", nil, "exclude catalog categories (e.g. metallic, clear)")
	matchCmd.Flags().StringSliceVar(&matchExcludeCodes, "exclude-code", nil, "exclude individual paint codes")
	matchCmd.Flags().Float64Var(&matchDilution, "dilution", 0, "solvent fraction of the mix, 0 <= d < 1")
	matchCmd.Flags().StringVar(&matchModel, "model", string(colour.ModelKubelkaMunk), "mixing model (km, hybrid)")
	matchCmd.Flags().StringVar(&matchMetric, "metric", string(colour.DE00), "reported colour-difference metric (DE00, DE76)")
	matchCmd.Flags().Float64Var(&matchGamma, "gamma", colour.DefaultGamma, "reflectance gamma of the mixing model")
	matchCmd.Flags().IntVar(&matchPool, "pool", colour.DefaultCandidatePool, "nearest-paint candidate pool size")
	matchCmd.Flags().Float64Var(&matchBatch, "batch", colour.DefaultBatchGrams, "batch mass in grams")
	matchCmd.Flags().IntVar(&matchWorkers, "workers", 0, "search workers (0 = number of CPUs)")
	matchCmd.Flags().StringVarP(&matchFormat, "format", "f", "text", "output format (text, json)")
	matchCmd.Flags().StringVarP(&matchOutput, "output", "o", "", "output file (default: stdout)")
	matchCmd.Flags().BoolVar(&matchShowPreview, "preview", false, "show colour swatches in terminal")
}

// runMatch executes the match command.
func runMatch(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)

	target, source, err := matchTarget.resolve()
	if err != nil {
		return err
	}
	logger.Debug("resolved target", "source", source, "lab", target.String())

	pigments, err := loadCatalog()
	if err != nil {
		return err
	}
	logger.Debug("catalog loaded", "pigments", len(pigments))

	excludedCodes := matchExcludeCodes
	if matchExcludeBasics {
		excludedCodes = append(excludedCodes, catalog.BasicCodes...)
	}

	cons := colour.Constraints{
		MaxPigments:        matchMaxColours,
		ExcludedCategories: matchExcludeCats,
		ExcludedCodes:      excludedCodes,
		DilutionFraction:   matchDilution,
		CandidatePool:      matchPool,
		Gamma:              matchGamma,
		SearchModel:        colour.MixModel(matchModel),
		Metric:             colour.DiffMethod(matchMetric),
		BatchGrams:         matchBatch,
		Workers:            matchWorkers,
		Logger:             logger,
	}

	result, err := colour.OptimizeRecipe(target, pigments, cons)
	if err != nil {
		return fmt.Errorf("recipe search failed: %w", err)
	}

	output, err := renderResult(result, source, matchFormat, matchShowPreview)
	if err != nil {
		return err
	}

	if matchOutput != "" {
		if err := os.WriteFile(matchOutput, []byte(output), 0o644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		return nil
	}
	fmt.Print(output)
	return nil
}
