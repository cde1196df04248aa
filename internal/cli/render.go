package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/plamix/plamix/internal/colour"
	"golang.org/x/term"
)

// recipeReport wraps a recipe result with its verdict and target source for
// JSON output.
type recipeReport struct {
	Source string `json:"source"`
	*colour.RecipeResult
	Verdict string `json:"verdict"`
}

// renderResult formats a recipe result for the terminal or as JSON.
func renderResult(result *colour.RecipeResult, source, format string, showPreview bool) (string, error) {
	switch format {
	case "json":
		report := recipeReport{Source: source, RecipeResult: result, Verdict: colour.Verdict(result.DeltaE)}
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to encode result: %w", err)
		}
		return string(data) + "\n", nil
	case "text", "":
		return renderText(result, source, showPreview), nil
	default:
		return "", fmt.Errorf("unsupported format: %s (supported: text, json)", format)
	}
}

// renderText builds the human-readable recipe report.
func renderText(result *colour.RecipeResult, source string, showPreview bool) string {
	var sb strings.Builder

	target := result.Target.Hex()
	if showPreview {
		target += " " + swatch(result.Target)
	}
	fmt.Fprintf(&sb, "Target %s  %s  %s\n\n", source, result.Target.String(), target)

	table := NewTable([]string{"SHARE", "GRAMS", "CODE", "NAME", "MANUFACTURER"})
	for _, line := range result.Recipe {
		table.AddRow([]string{
			fmt.Sprintf("%d%%", line.Percent),
			fmt.Sprintf("%.1fg", line.Grams),
			line.Pigment.Code,
			line.Pigment.Name,
			line.Pigment.Manufacturer,
		})
	}
	sb.WriteString(table.Render())

	mixed := result.Mixed.Hex()
	if showPreview {
		mixed += " " + swatch(result.Mixed)
	}
	fmt.Fprintf(&sb, "\nMixed  %s  %s\n", result.Mixed.String(), mixed)
	fmt.Fprintf(&sb, "Batch  %.0fg\n", result.BatchGrams)
	fmt.Fprintf(&sb, "%s %.2f  %s\n", result.Method, result.DeltaE, colour.Verdict(result.DeltaE))
	return sb.String()
}

// swatch renders a colour block with a 24-bit ANSI background. Outside a
// terminal it renders nothing so piped output stays clean.
func swatch(c colour.Lab) string {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return ""
	}
	r, g, b := c.RGB()
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm      \x1b[0m", r, g, b)
}
