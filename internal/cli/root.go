// Package cli provides the command-line interface for plamix.
package cli

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/plamix/plamix/internal/catalog"
	"github.com/plamix/plamix/internal/colour"
	"github.com/plamix/plamix/internal/version"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	// Global catalog flags
	globalCatalogPath   string
	globalManufacturers []string

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "plamix",
		Short: "A paint mixing calculator for scale modellers",
		Long: `Plamix finds mixing recipes that reproduce a target colour from the
hobby paints you already own.

Give it a target as a hex code, Lab triple, named preset, or reference
image, and it searches combinations of catalog paints with a
Kubelka-Munk mixing model to suggest ratios and gram weights.`,
		Version:      version.Short(),
		SilenceUsage: true,
	}
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&globalCatalogPath, "catalog", "", "paint catalog file (.csv or .json, optionally .gz/.bz2/.xz; default: built-in)")
	rootCmd.PersistentFlags().StringSliceVar(&globalManufacturers, "manufacturer", nil, "limit the catalog to these manufacturers")

	rootCmd.SetGlobalNormalizationFunc(normaliseFlags)
	rootCmd.SetVersionTemplate(version.String() + "\n")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(matchCmd)
	rootCmd.AddCommand(mixCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(presetsCmd)
}

// normaliseFlags maps American flag spellings onto the canonical ones.
func normaliseFlags(f *pflag.FlagSet, name string) pflag.NormalizedName {
	switch name {
	case "max-colors":
		name = "max-colours"
	case "color":
		name = "colour"
	}
	return pflag.NormalizedName(name)
}

// newLogger builds the hclog logger used by the engine, honouring --verbose.
func newLogger(cmd *cobra.Command) hclog.Logger {
	level := hclog.Warn
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = hclog.Debug
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "plamix",
		Level:  level,
		Output: os.Stderr,
	})
}

// loadCatalog resolves the pigment catalog from the global flags.
func loadCatalog() ([]colour.Pigment, error) {
	pigments := catalog.Builtin()
	if globalCatalogPath != "" {
		loaded, err := catalog.Load(globalCatalogPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load catalog: %w", err)
		}
		pigments = loaded
	}

	pigments = catalog.ByManufacturer(pigments, globalManufacturers)
	if len(pigments) == 0 {
		return nil, fmt.Errorf("no pigments match the manufacturer filter %v", globalManufacturers)
	}
	return pigments, nil
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print detailed version information including build date, commit hash, and Go version.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())
	},
}
