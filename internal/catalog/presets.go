package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/plamix/plamix/internal/colour"
)

// Preset is a named target colour, typically a well known subject finish
// that modellers reach for repeatedly.
type Preset struct {
	Name     string     `json:"name"`
	Category string     `json:"category"`
	Colour   colour.Lab `json:"lab"`
}

const (
	PresetCategoryMilitary  = "military"
	PresetCategoryCharacter = "character"
	PresetCategoryAircraft  = "aircraft"
	PresetCategoryShip      = "ship"
)

var builtinPresets = []Preset{
	{Name: "olive-drab", Category: PresetCategoryMilitary, Colour: colour.Lab{L: 38.4, A: -3.2, B: 18.6}},
	{Name: "panzer-grey", Category: PresetCategoryMilitary, Colour: colour.Lab{L: 32.1, A: -1.4, B: -2.8}},
	{Name: "dark-yellow", Category: PresetCategoryMilitary, Colour: colour.Lab{L: 64.7, A: 2.3, B: 27.9}},
	{Name: "russian-green", Category: PresetCategoryMilitary, Colour: colour.Lab{L: 41.2, A: -14.6, B: 16.8}},
	{Name: "khaki-drab", Category: PresetCategoryMilitary, Colour: colour.Lab{L: 45.8, A: 1.9, B: 21.4}},
	{Name: "char-white", Category: PresetCategoryCharacter, Colour: colour.Lab{L: 88.6, A: 0.4, B: 1.2}},
	{Name: "char-red", Category: PresetCategoryCharacter, Colour: colour.Lab{L: 44.5, A: 62.8, B: 38.2}},
	{Name: "char-blue", Category: PresetCategoryCharacter, Colour: colour.Lab{L: 36.9, A: -4.8, B: -42.3}},
	{Name: "mech-grey", Category: PresetCategoryCharacter, Colour: colour.Lab{L: 58.3, A: -0.8, B: -1.6}},
	{Name: "duck-egg-green", Category: PresetCategoryAircraft, Colour: colour.Lab{L: 77.4, A: -9.8, B: 6.2}},
	{Name: "zero-grey-green", Category: PresetCategoryAircraft, Colour: colour.Lab{L: 62.1, A: -4.2, B: 12.7}},
	{Name: "kure-grey", Category: PresetCategoryShip, Colour: colour.Lab{L: 48.6, A: -1.1, B: -0.9}},
	{Name: "hull-red", Category: PresetCategoryShip, Colour: colour.Lab{L: 29.7, A: 18.4, B: 12.1}},
}

// BuiltinPresets returns a copy of the bundled preset targets.
func BuiltinPresets() []Preset {
	out := make([]Preset, len(builtinPresets))
	copy(out, builtinPresets)
	return out
}

// PresetsByCategory filters presets to a single category. An empty category
// returns everything.
func PresetsByCategory(presets []Preset, category string) []Preset {
	if category == "" {
		return presets
	}
	var out []Preset
	for _, p := range presets {
		if strings.EqualFold(p.Category, category) {
			out = append(out, p)
		}
	}
	return out
}

// FindPreset looks up a preset by name, case-insensitively.
func FindPreset(presets []Preset, name string) (Preset, bool) {
	for _, p := range presets {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return Preset{}, false
}

// PresetCategories returns the sorted distinct categories present.
func PresetCategories(presets []Preset) []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range presets {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		out = append(out, p.Category)
	}
	sort.Strings(out)
	return out
}

// LoadPresets reads additional presets from a JSON file. Loaded presets are
// appended after the builtin set so builtin names win lookups.
func LoadPresets(path string) ([]Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read presets file: %w", err)
	}
	var presets []Preset
	if err := json.Unmarshal(data, &presets); err != nil {
		return nil, fmt.Errorf("failed to parse presets file %s: %w", path, err)
	}
	for i, p := range presets {
		if p.Name == "" {
			return nil, fmt.Errorf("preset %d: missing name", i)
		}
		if p.Colour.L < 0 || p.Colour.L > 100 {
			return nil, fmt.Errorf("preset %q: lightness %.2f out of range", p.Name, p.Colour.L)
		}
	}
	return presets, nil
}
