package colour

// Pigment is one row of the paint catalog: an opaque hobby paint with a
// measured Lab colour. The engine only reads pigments; loading and ownership
// live with the catalog package.
type Pigment struct {
	Code         string `json:"code"`
	Name         string `json:"name"`
	Manufacturer string `json:"manufacturer"`
	Category     string `json:"category"`
	Colour       Lab    `json:"lab"`
}

// filterPigments applies the exclusion sets from the constraints, preserving
// catalog order for deterministic downstream enumeration.
func filterPigments(catalog []Pigment, excludedCategories, excludedCodes map[string]bool) []Pigment {
	if len(excludedCategories) == 0 && len(excludedCodes) == 0 {
		return catalog
	}

	filtered := make([]Pigment, 0, len(catalog))
	for _, p := range catalog {
		if excludedCategories[p.Category] {
			continue
		}
		if excludedCodes[p.Code] {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}

// toSet builds a membership set from a slice, ignoring empty entries.
func toSet(values []string) map[string]bool {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]bool, len(values))
	for _, v := range values {
		if v != "" {
			set[v] = true
		}
	}
	return set
}
