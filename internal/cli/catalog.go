package cli

import (
	"encoding/json"
	"fmt"

	"github.com/plamix/plamix/internal/colour"
	"github.com/spf13/cobra"
)

var (
	// Catalog command flags
	catalogCategory    string
	catalogFormat      string
	catalogShowPreview bool
)

// catalogCmd represents the catalog command
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the paints in the catalog",
	Long: `List the paint catalog with codes, names, and measured Lab colours.

The global --catalog and --manufacturer flags select which catalog is
shown, the same way they select what the match command searches.

Examples:
  # List the built-in catalog
  plamix catalog

  # Only Tamiya metallics, with swatches
  plamix catalog --manufacturer Tamiya --category metallic --preview`,
	Args: cobra.NoArgs,
	RunE: runCatalog,
}

func init() {
	catalogCmd.Flags().StringVar(&catalogCategory, "category", "", "only list this category")
	catalogCmd.Flags().StringVarP(&catalogFormat, "format", "f", "text", "output format (text, json)")
	catalogCmd.Flags().BoolVar(&catalogShowPreview, "preview", false, "show colour swatches in terminal")
}

// runCatalog executes the catalog command.
func runCatalog(cmd *cobra.Command, args []string) error {
	pigments, err := loadCatalog()
	if err != nil {
		return err
	}

	if catalogCategory != "" {
		filtered := make([]colour.Pigment, 0, len(pigments))
		for _, p := range pigments {
			if p.Category == catalogCategory {
				filtered = append(filtered, p)
			}
		}
		if len(filtered) == 0 {
			return fmt.Errorf("no pigments in category %q", catalogCategory)
		}
		pigments = filtered
	}

	if catalogFormat == "json" {
		data, err := json.MarshalIndent(pigments, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode catalog: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	table := NewTable([]string{"CODE", "NAME", "MANUFACTURER", "CATEGORY", "LAB", "HEX"})
	for _, p := range pigments {
		hex := p.Colour.Hex()
		if catalogShowPreview {
			hex = hex + " " + swatch(p.Colour)
		}
		table.AddRow([]string{p.Code, p.Name, p.Manufacturer, p.Category, p.Colour.String(), hex})
	}
	fmt.Print(table.Render())
	return nil
}
