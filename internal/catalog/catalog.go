// Package catalog owns the pigment database and target presets: the
// built-in hobby paint entries, loading of user-supplied catalogs from CSV
// or JSON (optionally compressed), and the code lists used by the
// constraint filters. The mixing engine itself only ever reads the
// resulting slices.
package catalog

import (
	"fmt"
	"sort"

	"github.com/plamix/plamix/internal/colour"
)

// BasicCodes lists the plain white/black/silver paints suppressed by the
// exclude-basics constraint: matching a colour through them is usually the
// lazy local optimum the user asked to avoid.
var BasicCodes = []string{
	"C2", "C8", "C11", "C14", "C33", "C52", "C62",
	"EX-01", "EX-02",
	"LP-1", "LP-2", "LP-18",
}

// ByManufacturer keeps only pigments from the given manufacturers,
// preserving catalog order. An empty filter keeps everything.
func ByManufacturer(pigments []colour.Pigment, manufacturers []string) []colour.Pigment {
	if len(manufacturers) == 0 {
		return pigments
	}
	allowed := make(map[string]bool, len(manufacturers))
	for _, m := range manufacturers {
		allowed[m] = true
	}

	filtered := make([]colour.Pigment, 0, len(pigments))
	for _, p := range pigments {
		if allowed[p.Manufacturer] {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// Manufacturers returns the distinct manufacturers in catalog order.
func Manufacturers(pigments []colour.Pigment) []string {
	return distinct(pigments, func(p colour.Pigment) string { return p.Manufacturer })
}

// Categories returns the distinct category tags, sorted.
func Categories(pigments []colour.Pigment) []string {
	categories := distinct(pigments, func(p colour.Pigment) string { return p.Category })
	sort.Strings(categories)
	return categories
}

// FindByCode looks a pigment up by its catalog code.
func FindByCode(pigments []colour.Pigment, code string) (colour.Pigment, error) {
	for _, p := range pigments {
		if p.Code == code {
			return p, nil
		}
	}
	return colour.Pigment{}, fmt.Errorf("no pigment with code %q in the catalog", code)
}

func distinct(pigments []colour.Pigment, key func(colour.Pigment) string) []string {
	seen := make(map[string]bool)
	var values []string
	for _, p := range pigments {
		k := key(p)
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		values = append(values, k)
	}
	return values
}
