package colour

import "sort"

// DefaultCandidatePool is the number of nearest single pigments retained for
// combinatorial search. The pool bound exists purely for tractability:
// 3-pigment grid search over a full catalog of hundreds of entries is not
// interactive, and the optimum rarely draws on pigments that are themselves
// far from the target.
const DefaultCandidatePool = 15

// selectCandidates ranks pigments by single-pigment DE76 distance to the
// target and keeps the closest limit entries. The sort is stable so pigments
// at equal distance keep their catalog order, which the optimizer's
// tie-breaking depends on.
func selectCandidates(target Lab, pigments []Pigment, limit int) []Pigment {
	dist := make([]float64, len(pigments))
	order := make([]int, len(pigments))
	for i, p := range pigments {
		dist[i] = deltaE76(target, p.Colour)
		order[i] = i
	}

	sort.SliceStable(order, func(i, j int) bool {
		return dist[order[i]] < dist[order[j]]
	})

	if limit <= 0 || limit > len(order) {
		limit = len(order)
	}
	pool := make([]Pigment, limit)
	for i := 0; i < limit; i++ {
		pool[i] = pigments[order[i]]
	}
	return pool
}
