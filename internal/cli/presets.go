package cli

import (
	"encoding/json"
	"fmt"

	"github.com/plamix/plamix/internal/catalog"
	"github.com/spf13/cobra"
)

var (
	// Presets command flags
	presetsCategory    string
	presetsFile        string
	presetsFormat      string
	presetsShowPreview bool
)

// presetsCmd represents the presets command
var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the named target colours",
	Long: `List the preset target colours usable with match --preset.

Examples:
  # All presets
  plamix presets

  # Only military subjects, with swatches
  plamix presets --category military --preview

  # Include presets from a custom file
  plamix presets --file my-presets.json`,
	Args: cobra.NoArgs,
	RunE: runPresets,
}

func init() {
	presetsCmd.Flags().StringVar(&presetsCategory, "category", "", "only list this category")
	presetsCmd.Flags().StringVar(&presetsFile, "file", "", "additional presets file (.json)")
	presetsCmd.Flags().StringVarP(&presetsFormat, "format", "f", "text", "output format (text, json)")
	presetsCmd.Flags().BoolVar(&presetsShowPreview, "preview", false, "show colour swatches in terminal")
}

// runPresets executes the presets command.
func runPresets(cmd *cobra.Command, args []string) error {
	presets := catalog.BuiltinPresets()
	if presetsFile != "" {
		extra, err := catalog.LoadPresets(presetsFile)
		if err != nil {
			return err
		}
		presets = append(presets, extra...)
	}

	presets = catalog.PresetsByCategory(presets, presetsCategory)
	if len(presets) == 0 {
		return fmt.Errorf("no presets in category %q (have: %v)", presetsCategory, catalog.PresetCategories(catalog.BuiltinPresets()))
	}

	if presetsFormat == "json" {
		data, err := json.MarshalIndent(presets, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode presets: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	table := NewTable([]string{"NAME", "CATEGORY", "LAB", "HEX"})
	for _, p := range presets {
		hex := p.Colour.Hex()
		if presetsShowPreview {
			hex = hex + " " + swatch(p.Colour)
		}
		table.AddRow([]string{p.Name, p.Category, p.Colour.String(), hex})
	}
	fmt.Print(table.Render())
	return nil
}
