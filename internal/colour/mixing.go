package colour

import (
	"fmt"
	"math"
)

// MixModel selects the subtractive-mixing prediction model.
type MixModel string

const (
	// ModelKubelkaMunk is the single-constant Kubelka-Munk approximation.
	ModelKubelkaMunk MixModel = "km"

	// ModelHybrid blends the Kubelka-Munk lightness with a linear average,
	// weighted by how dark the darkest component is. Softer on
	// light-dominated mixes.
	ModelHybrid MixModel = "hybrid"
)

// Valid reports whether the model is known.
func (m MixModel) Valid() bool {
	return m == ModelKubelkaMunk || m == ModelHybrid
}

const (
	// DefaultGamma is the lightness-to-reflectance exponent, calibrated
	// against hobby paint mixing tests.
	DefaultGamma = 2.2

	// reflectanceEpsilon keeps reflectance away from the degenerate
	// endpoints of the K/S relation.
	reflectanceEpsilon = 1e-6
)

// Neutral is the defined fallback colour for a zero-sum ratio vector: a
// mid-grey, not an error.
func Neutral() Lab { return Lab{L: 50} }

// Mixer predicts the colour of pigment blends. The gamma constant is carried
// explicitly so callers (and tests) can vary it without shared state.
type Mixer struct {
	Gamma float64
}

// NewMixer returns a Mixer with the default gamma.
func NewMixer() Mixer {
	return Mixer{Gamma: DefaultGamma}
}

// Mix predicts the Lab colour of blending colors at the given ratios using
// the default mixer.
func Mix(colors []Lab, ratios []float64, model MixModel) (Lab, error) {
	return NewMixer().Mix(colors, ratios, model)
}

// Mix predicts the Lab colour of blending colors at the given ratios.
//
// Ratios are normalised internally, so only their proportions matter. An
// empty or zero-sum ratio vector is not an error and yields Neutral().
// Mismatched slice lengths or negative ratios fail fast.
func (m Mixer) Mix(colors []Lab, ratios []float64, model MixModel) (Lab, error) {
	if !model.Valid() {
		return Lab{}, fmt.Errorf("unknown mixing model: %q", model)
	}
	// An empty blend is defined, not invalid: nothing to mix yields the
	// neutral fallback just like an all-zero ratio vector.
	if len(colors) == 0 && len(ratios) == 0 {
		return Neutral(), nil
	}
	if len(colors) != len(ratios) {
		return Lab{}, fmt.Errorf("colour/ratio length mismatch: %d colours, %d ratios", len(colors), len(ratios))
	}

	total := 0.0
	for i, r := range ratios {
		if r < 0 {
			return Lab{}, fmt.Errorf("negative ratio %g at index %d", r, i)
		}
		total += r
	}
	if total <= 0 {
		return Neutral(), nil
	}

	normalised := make([]float64, len(ratios))
	for i, r := range ratios {
		normalised[i] = r / total
	}

	if model == ModelHybrid {
		return m.hybridMix(colors, normalised), nil
	}
	return m.kubelkaMunkMix(colors, normalised), nil
}

// kubelkaMunkMix predicts the mixture colour with the single-constant
// Kubelka-Munk relation: lightness converts to reflectance, reflectance to
// K/S, K/S mixes linearly by ratio, and the result inverts back. Chroma
// mixes linearly with a muddying decay driven by the pseudo-K/S the blend
// accumulates beyond that of its own average (opposing hues cancel in the
// average but keep absorbing, so saturation drops).
func (m Mixer) kubelkaMunkMix(colors []Lab, ratios []float64) Lab {
	gamma := m.gamma()

	mixedKS := 0.0
	for i, c := range colors {
		mixedKS += ratios[i] * m.kOverS(c.L, gamma)
	}
	mixedL := m.lightnessFromKS(mixedKS, gamma)

	return Lab{
		L: mixedL,
		A: mixChromaChannel(colors, ratios, func(c Lab) float64 { return c.A }),
		B: mixChromaChannel(colors, ratios, func(c Lab) float64 { return c.B }),
	}
}

// hybridMix blends the Kubelka-Munk lightness with the plain weighted
// average. Mixtures containing a dark pigment lean on the physically darker
// Kubelka-Munk estimate; all-light mixtures stay close to linear.
func (m Mixer) hybridMix(colors []Lab, ratios []float64) Lab {
	gamma := m.gamma()

	linearL := 0.0
	linearA := 0.0
	linearB := 0.0
	mixedKS := 0.0
	minL := math.Inf(1)
	effective := 0

	for i, c := range colors {
		r := ratios[i]
		linearL += r * c.L
		linearA += r * c.A
		linearB += r * c.B
		mixedKS += r * m.kOverS(c.L, gamma)
		if c.L < minL {
			minL = c.L
		}
		if r > 0.01 {
			effective++
		}
	}

	kmL := m.lightnessFromKS(mixedKS, gamma)
	darkness := clamp01((100 - minL) / 100)
	w := 0.3 + 0.5*darkness

	// Each extra effective pigment desaturates the blend a little, capped
	// at 30% attenuation.
	scale := math.Max(0.7, 1-0.05*float64(effective-1))

	return Lab{
		L: linearL*(1-w) + kmL*w,
		A: linearA * scale,
		B: linearB * scale,
	}
}

// kOverS maps a Lab lightness to the Kubelka-Munk absorption/scattering
// ratio via an effective reflectance R = (L/100)^gamma.
func (m Mixer) kOverS(l, gamma float64) float64 {
	r := math.Pow(clamp01(l/100), gamma)
	if r < reflectanceEpsilon {
		r = reflectanceEpsilon
	} else if r > 1-reflectanceEpsilon {
		r = 1 - reflectanceEpsilon
	}
	return (1 - r) * (1 - r) / (2 * r)
}

// lightnessFromKS inverts a mixed K/S back to Lab lightness.
func (m Mixer) lightnessFromKS(ks, gamma float64) float64 {
	r := 1 + ks - math.Sqrt(ks*ks+2*ks)
	r = clamp01(r)
	return math.Pow(r, 1/gamma) * 100
}

// mixChromaChannel mixes one chroma channel (a or b). Channel magnitudes map
// to a pseudo-K/S in roughly 1..2.2 via 1+|v|/50; the decay compares the
// ratio-weighted pseudo-K/S against that of the weighted average value, so a
// single pigment (or same-hue blend) passes through unchanged while
// opposing hues muddy.
func mixChromaChannel(colors []Lab, ratios []float64, channel func(Lab) float64) float64 {
	avg := 0.0
	mixedKS := 0.0
	for i, c := range colors {
		v := channel(c)
		avg += ratios[i] * v
		mixedKS += ratios[i] * (1 + math.Abs(v)/50)
	}
	baseKS := 1 + math.Abs(avg)/50
	decay := 1 / (1 + (mixedKS-baseKS)/10)
	return avg * decay
}

func (m Mixer) gamma() float64 {
	if m.Gamma > 0 {
		return m.Gamma
	}
	return DefaultGamma
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
