package colour

import (
	"errors"
	"fmt"
	"math"
	"runtime"
	"sync"

	"github.com/hashicorp/go-hclog"
)

const (
	// DefaultMaxPigments is the default cap on pigments per recipe.
	DefaultMaxPigments = 3

	// MaxPigmentsLimit is the highest accepted MaxPigments value.
	MaxPigmentsLimit = 5

	// searchCeiling is the hard cap on combination size explored by the
	// grid search. Tiers above 3 are combinatorially infeasible at
	// interactive latency, so MaxPigments beyond this only relaxes the
	// recipe-length invariant, never the search. Documented contract.
	searchCeiling = 3

	// shareThreshold is the minimum blend share a pigment must reach to
	// appear in a recipe.
	shareThreshold = 0.05

	// workerCap bounds the search worker pool.
	workerCap = 8
)

// ErrEmptyCatalog is returned when the exclusion filters leave no eligible
// pigment to mix with.
var ErrEmptyCatalog = errors.New("no eligible pigments after exclusion filters")

// Constraints configures a recipe optimization. The zero value asks for the
// defaults: up to 3 pigments, no exclusions, no dilution, Kubelka-Munk
// search model, DE00 for the final report, a 10g batch.
type Constraints struct {
	// MaxPigments caps the recipe length (1..5). The search itself never
	// explores beyond 3-pigment combinations; see searchCeiling.
	MaxPigments int

	// ExcludedCategories removes whole catalog categories (e.g. metallic).
	ExcludedCategories []string

	// ExcludedCodes removes individual pigments; used for the
	// white/black/silver suppression option.
	ExcludedCodes []string

	// DilutionFraction uniformly scales every effective ratio before
	// mixing, modelling colourless solvent. Must sit in [0,1).
	DilutionFraction float64

	// CandidatePool overrides the nearest-pigment pool size
	// (default DefaultCandidatePool).
	CandidatePool int

	// Gamma overrides the mixing model's gamma constant (default
	// DefaultGamma).
	Gamma float64

	// SearchModel is the mixing model evaluated during search and for the
	// final recompute (default ModelKubelkaMunk).
	SearchModel MixModel

	// Metric is the colour-difference method for the reported distance
	// (default DE00). The search itself always ranks with DE76.
	Metric DiffMethod

	// BatchGrams is the recipe's fixed batch mass (default
	// DefaultBatchGrams).
	BatchGrams float64

	// Workers bounds the search worker pool; 0 means NumCPU (capped).
	Workers int

	// Logger receives search diagnostics; nil disables logging.
	Logger hclog.Logger
}

// normalised fills in defaults and validates; it leaves the receiver intact.
func (c Constraints) normalised() (Constraints, error) {
	if c.MaxPigments == 0 {
		c.MaxPigments = DefaultMaxPigments
	}
	if c.MaxPigments < 1 || c.MaxPigments > MaxPigmentsLimit {
		return c, fmt.Errorf("max pigments must be 1..%d, got %d", MaxPigmentsLimit, c.MaxPigments)
	}
	if c.DilutionFraction < 0 || c.DilutionFraction >= 1 {
		return c, fmt.Errorf("dilution fraction must be in [0,1), got %g", c.DilutionFraction)
	}
	if c.CandidatePool == 0 {
		c.CandidatePool = DefaultCandidatePool
	}
	if c.CandidatePool < 1 {
		return c, fmt.Errorf("candidate pool must be positive, got %d", c.CandidatePool)
	}
	if c.Gamma < 0 {
		return c, fmt.Errorf("gamma must be positive, got %g", c.Gamma)
	}
	if c.SearchModel == "" {
		c.SearchModel = ModelKubelkaMunk
	}
	if !c.SearchModel.Valid() {
		return c, fmt.Errorf("unknown mixing model: %q", c.SearchModel)
	}
	if c.Metric == "" {
		c.Metric = DE00
	}
	if !c.Metric.Valid() {
		return c, fmt.Errorf("unknown difference method: %q", c.Metric)
	}
	if c.BatchGrams == 0 {
		c.BatchGrams = DefaultBatchGrams
	}
	if c.BatchGrams < 0 {
		return c, fmt.Errorf("batch grams must be positive, got %g", c.BatchGrams)
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.Workers > workerCap {
		c.Workers = workerCap
	}
	if c.Logger == nil {
		c.Logger = hclog.NewNullLogger()
	}
	return c, nil
}

// candidate is one evaluated grid point: which pool pigments at which
// ratios, its DE76 distance to target, and its position in the fixed
// enumeration order. Ties on distance resolve to the lowest order, so the
// result never depends on worker scheduling.
type candidate struct {
	indices [searchCeiling]int
	ratios  [searchCeiling]float64
	count   int
	dist    float64
	order   int
}

func (b *candidate) consider(other candidate) {
	if other.dist < b.dist || (other.dist == b.dist && other.order < b.order) {
		*b = other
	}
}

// comboJob is a unit of parallel work: one pigment combination plus the
// enumeration index of its first grid point.
type comboJob struct {
	indices [searchCeiling]int
	count   int
	base    int
}

// OptimizeRecipe searches combinations of 1..min(MaxPigments,3) catalog
// pigments and their blend ratios for the mixture closest to target, then
// formats the winner into a production recipe. The search is deterministic:
// for a given target, catalog order, and constraints it always returns the
// same recipe regardless of worker count.
func OptimizeRecipe(target Lab, catalog []Pigment, cons Constraints) (*RecipeResult, error) {
	cons, err := cons.normalised()
	if err != nil {
		return nil, err
	}
	log := cons.Logger

	filtered := filterPigments(catalog, toSet(cons.ExcludedCategories), toSet(cons.ExcludedCodes))
	if len(filtered) == 0 {
		return nil, ErrEmptyCatalog
	}

	pool := selectCandidates(target, filtered, cons.CandidatePool)
	log.Debug("candidate pool selected", "catalog", len(catalog), "eligible", len(filtered), "pool", len(pool))

	mixer := Mixer{Gamma: cons.Gamma}
	tiers := cons.MaxPigments
	if tiers > searchCeiling {
		tiers = searchCeiling
	}

	best := searchTiers(target, pool, mixer, cons.SearchModel, tiers, cons.Workers)
	log.Debug("search complete",
		"pigments", best.count,
		"distance", best.dist,
		"order", best.order,
	)

	pigments := make([]Pigment, best.count)
	ratios := make([]float64, best.count)
	for i := 0; i < best.count; i++ {
		pigments[i] = pool[best.indices[i]]
		ratios[i] = best.ratios[i]
	}

	result := formatRecipe(target, pigments, ratios, mixer, cons)
	log.Debug("recipe formatted", "lines", len(result.Recipe), "deltaE", result.DeltaE, "method", result.Method)
	return result, nil
}

// searchTiers runs the tiered grid search and returns the global best
// candidate under (distance, enumeration order).
func searchTiers(target Lab, pool []Pigment, mixer Mixer, model MixModel, tiers, workers int) candidate {
	best := candidate{dist: math.Inf(1), order: math.MaxInt}
	n := len(pool)

	// Tier 1: every pool pigment alone; distance is its single-colour DE76.
	order := 0
	for i := 0; i < n; i++ {
		best.consider(candidate{
			indices: [searchCeiling]int{i},
			ratios:  [searchCeiling]float64{1},
			count:   1,
			dist:    deltaE76(target, pool[i].Colour),
			order:   order,
		})
		order++
	}

	// Tiers 2 and 3 fan combinations out across workers. Enumeration
	// indices are assigned up front in combination order, so the reduction
	// is order-independent.
	var jobs []comboJob
	if tiers >= 2 {
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				jobs = append(jobs, comboJob{indices: [searchCeiling]int{i, j}, count: 2, base: order})
				order += pairGridSize
			}
		}
	}
	if tiers >= 3 {
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				for k := j + 1; k < n; k++ {
					jobs = append(jobs, comboJob{indices: [searchCeiling]int{i, j, k}, count: 3, base: order})
					order += tripleGridSize
				}
			}
		}
	}
	if len(jobs) == 0 {
		return best
	}

	if workers > len(jobs) {
		workers = len(jobs)
	}

	jobCh := make(chan comboJob)
	perWorker := make([]candidate, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(slot int) {
			defer wg.Done()
			local := candidate{dist: math.Inf(1), order: math.MaxInt}
			var colors [searchCeiling]Lab
			for job := range jobCh {
				for i := 0; i < job.count; i++ {
					colors[i] = pool[job.indices[i]].Colour
				}
				evalCombo(target, job, colors, mixer, model, &local)
			}
			perWorker[slot] = local
		}(w)
	}
	for _, job := range jobs {
		jobCh <- job
	}
	close(jobCh)
	wg.Wait()

	for _, local := range perWorker {
		best.consider(local)
	}
	return best
}

// Grid geometry: pairs scan one ratio at 5% steps over [0.05,0.95]; triples
// scan two ratios at 10% steps over [0.1,0.9] with the remainder accepted
// only inside the same band. Grid sizes include rejected triple points so
// enumeration indices stay aligned with the loop structure.
const (
	pairGridSize   = 19
	tripleGridSize = 9 * 9
)

// evalCombo scans the ratio grid for one combination. Uniform dilution
// cancels under ratio normalisation, so grid ratios feed the model directly.
func evalCombo(target Lab, job comboJob, colors [searchCeiling]Lab, mixer Mixer, model MixModel, local *candidate) {
	switch job.count {
	case 2:
		for s := 1; s <= pairGridSize; s++ {
			r1 := float64(s) * 0.05
			ratios := [searchCeiling]float64{r1, 1 - r1}
			mixed := mixer.mixNormalised(colors[:2], ratios[:2], model)
			local.consider(candidate{
				indices: job.indices,
				ratios:  ratios,
				count:   2,
				dist:    deltaE76(target, mixed),
				order:   job.base + s - 1,
			})
		}
	case 3:
		for s1 := 1; s1 <= 9; s1++ {
			for s2 := 1; s2 <= 9; s2++ {
				r1 := float64(s1) * 0.1
				r2 := float64(s2) * 0.1
				r3 := 1 - r1 - r2
				if r3 < 0.1-1e-9 || r3 > 0.9+1e-9 {
					continue
				}
				ratios := [searchCeiling]float64{r1, r2, r3}
				mixed := mixer.mixNormalised(colors[:3], ratios[:3], model)
				local.consider(candidate{
					indices: job.indices,
					ratios:  ratios,
					count:   3,
					dist:    deltaE76(target, mixed),
					order:   job.base + (s1-1)*9 + (s2 - 1),
				})
			}
		}
	}
}

// mixNormalised is the allocation-free hot path for ratios that already sum
// to one.
func (m Mixer) mixNormalised(colors []Lab, ratios []float64, model MixModel) Lab {
	if model == ModelHybrid {
		return m.hybridMix(colors, ratios)
	}
	return m.kubelkaMunkMix(colors, ratios)
}
