package cli

import (
	"fmt"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/plamix/plamix/internal/catalog"
	"github.com/plamix/plamix/internal/colour"
	"github.com/plamix/plamix/internal/image"
)

// targetFlags holds the mutually exclusive target selectors of the match
// command, plus the optional presets file the preset selector searches.
type targetFlags struct {
	hex         string
	lab         string
	preset      string
	image       string
	presetsFile string
}

// resolve turns the selected flag into a Lab target colour and a short
// description of where it came from.
func (t targetFlags) resolve() (colour.Lab, string, error) {
	var set int
	for _, v := range []string{t.hex, t.lab, t.preset, t.image} {
		if v != "" {
			set++
		}
	}
	if set == 0 {
		return colour.Lab{}, "", fmt.Errorf("no target given: use one of --hex, --lab, --preset, or --image")
	}
	if set > 1 {
		return colour.Lab{}, "", fmt.Errorf("--hex, --lab, --preset, and --image are mutually exclusive")
	}

	switch {
	case t.hex != "":
		target, err := parseHexTarget(t.hex)
		if err != nil {
			return colour.Lab{}, "", err
		}
		return target, t.hex, nil

	case t.lab != "":
		target, err := parseLabTarget(t.lab)
		if err != nil {
			return colour.Lab{}, "", err
		}
		return target, fmt.Sprintf("Lab(%s)", t.lab), nil

	case t.preset != "":
		presets := catalog.BuiltinPresets()
		if t.presetsFile != "" {
			extra, err := catalog.LoadPresets(t.presetsFile)
			if err != nil {
				return colour.Lab{}, "", err
			}
			presets = append(presets, extra...)
		}
		preset, ok := catalog.FindPreset(presets, t.preset)
		if !ok {
			return colour.Lab{}, "", fmt.Errorf("unknown preset %q (see: plamix presets)", t.preset)
		}
		return preset.Colour, preset.Name, nil

	default:
		target, err := image.TargetFromImage(t.image)
		if err != nil {
			return colour.Lab{}, "", fmt.Errorf("failed to read target from image: %w", err)
		}
		return target, t.image, nil
	}
}

// parseHexTarget converts a #rrggbb hex code into Lab.
func parseHexTarget(hex string) (colour.Lab, error) {
	normalised := strings.ToLower(strings.TrimSpace(hex))
	if !strings.HasPrefix(normalised, "#") {
		normalised = "#" + normalised
	}
	c, err := colorful.Hex(normalised)
	if err != nil {
		return colour.Lab{}, fmt.Errorf("invalid hex colour %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return colour.RGBToLab(r, g, b), nil
}

// parseLabTarget parses "L,a,b" into a Lab colour.
func parseLabTarget(triple string) (colour.Lab, error) {
	parts := strings.Split(triple, ",")
	if len(parts) != 3 {
		return colour.Lab{}, fmt.Errorf("invalid Lab target %q: want L,a,b", triple)
	}
	values := make([]float64, 3)
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return colour.Lab{}, fmt.Errorf("invalid Lab component %q: %w", part, err)
		}
		values[i] = v
	}
	if values[0] < 0 || values[0] > 100 {
		return colour.Lab{}, fmt.Errorf("lightness %g outside [0,100]", values[0])
	}
	return colour.Lab{L: values[0], A: values[1], B: values[2]}, nil
}
