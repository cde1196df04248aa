package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/plamix/plamix/internal/catalog"
	"github.com/plamix/plamix/internal/colour"
	"github.com/spf13/cobra"
)

var (
	// Mix command flags
	mixModel       string
	mixGamma       float64
	mixFormat      string
	mixShowPreview bool
)

// mixCmd represents the mix command
var mixCmd = &cobra.Command{
	Use:   "mix CODE=PERCENT [CODE=PERCENT...]",
	Short: "Predict the colour of a paint blend",
	Long: `Mix catalog paints at given shares and print the predicted colour.

Each argument names a paint by its catalog code with its share of the
blend. Shares are relative weights and need not sum to 100.

Examples:
  # Equal parts red and yellow
  plamix mix C1=50 C4=50

  # A grey from 9 parts white to 1 part black
  plamix mix C62=90 C2=10

  # The same blend under the hybrid model
  plamix mix --model hybrid C62=90 C2=10`,
	Args: cobra.MinimumNArgs(1),
	RunE: runMix,
}

func init() {
	mixCmd.Flags().StringVar(&mixModel, "model", string(colour.ModelKubelkaMunk), "mixing model (km, hybrid)")
	mixCmd.Flags().Float64Var(&mixGamma, "gamma", colour.DefaultGamma, "reflectance gamma of the mixing model")
	mixCmd.Flags().StringVarP(&mixFormat, "format", "f", "text", "output format (text, json)")
	mixCmd.Flags().BoolVar(&mixShowPreview, "preview", false, "show a colour swatch in terminal")
}

// mixReport is the JSON shape of a mix prediction.
type mixReport struct {
	Paints []mixPart  `json:"paints"`
	Mixed  colour.Lab `json:"mixed"`
	Hex    string     `json:"hex"`
	Model  string     `json:"model"`
}

type mixPart struct {
	Pigment colour.Pigment `json:"pigment"`
	Share   float64        `json:"share"`
}

// runMix executes the mix command.
func runMix(cmd *cobra.Command, args []string) error {
	model := colour.MixModel(mixModel)
	if !model.Valid() {
		return fmt.Errorf("unknown mixing model: %q (valid: km, hybrid)", mixModel)
	}

	pigments, err := loadCatalog()
	if err != nil {
		return err
	}

	parts, colours, ratios, err := parseMixArgs(args, pigments)
	if err != nil {
		return err
	}

	mixer := colour.Mixer{Gamma: mixGamma}
	mixed, err := mixer.Mix(colours, ratios, model)
	if err != nil {
		return fmt.Errorf("failed to mix: %w", err)
	}

	if mixFormat == "json" {
		report := mixReport{Paints: parts, Mixed: mixed, Hex: mixed.Hex(), Model: string(model)}
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	var sb strings.Builder
	for i, part := range parts {
		fmt.Fprintf(&sb, "%6.1f%%  %-8s %s (%s)\n", ratios[i]*100, part.Pigment.Code, part.Pigment.Name, part.Pigment.Manufacturer)
	}
	fmt.Fprintf(&sb, "\nPredicted: %s  %s", mixed.String(), mixed.Hex())
	if mixShowPreview {
		sb.WriteString("  " + swatch(mixed))
	}
	sb.WriteString("\n")
	fmt.Print(sb.String())
	return nil
}

// parseMixArgs resolves CODE=PERCENT arguments against the catalog and
// returns normalised shares.
func parseMixArgs(args []string, pigments []colour.Pigment) ([]mixPart, []colour.Lab, []float64, error) {
	parts := make([]mixPart, 0, len(args))
	colours := make([]colour.Lab, 0, len(args))
	ratios := make([]float64, 0, len(args))

	total := 0.0
	for _, arg := range args {
		code, share, found := strings.Cut(arg, "=")
		if !found {
			return nil, nil, nil, fmt.Errorf("invalid argument %q: want CODE=PERCENT", arg)
		}
		weight, err := strconv.ParseFloat(share, 64)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("invalid share in %q: %w", arg, err)
		}
		if weight <= 0 {
			return nil, nil, nil, fmt.Errorf("share in %q must be positive", arg)
		}
		p, err := catalog.FindByCode(pigments, code)
		if err != nil {
			return nil, nil, nil, err
		}
		parts = append(parts, mixPart{Pigment: p, Share: weight})
		colours = append(colours, p.Colour)
		ratios = append(ratios, weight)
		total += weight
	}

	for i := range ratios {
		ratios[i] /= total
	}
	return parts, colours, ratios, nil
}
