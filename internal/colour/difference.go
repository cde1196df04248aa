package colour

import "math"

// DiffMethod selects the colour-difference metric.
type DiffMethod string

const (
	// DE76 is the CIE76 metric: plain Euclidean distance in Lab space.
	// Cheap to evaluate, used internally by the recipe search.
	DE76 DiffMethod = "DE76"

	// DE00 is the CIEDE2000 metric: chroma/hue-weighted perceptual
	// distance. Used for final, user-facing evaluation of a recipe.
	DE00 DiffMethod = "DE00"
)

// Valid reports whether the method is a known metric.
func (m DiffMethod) Valid() bool {
	return m == DE76 || m == DE00
}

// Difference computes the perceptual distance between two Lab colours under
// the given metric. Unknown methods fall back to DE76.
func Difference(a, b Lab, method DiffMethod) float64 {
	if method == DE00 {
		return deltaE2000(a, b)
	}
	return deltaE76(a, b)
}

// deltaE76 is the Euclidean distance in Lab space.
func deltaE76(c1, c2 Lab) float64 {
	dL := c1.L - c2.L
	dA := c1.A - c2.A
	dB := c1.B - c2.B
	return math.Sqrt(dL*dL + dA*dA + dB*dB)
}

// deltaE2000 implements CIEDE2000 following Sharma, Wu & Dalal, "The
// CIEDE2000 Color-Difference Formula: Implementation Notes, Supplementary
// Test Data, and Mathematical Observations" (2005), with the parametric
// weights kL = kC = kH = 1.
func deltaE2000(lab1, lab2 Lab) float64 {
	const pow25To7 = 6103515625.0 // 25^7

	deg360 := deg2Rad(360)
	deg180 := deg2Rad(180)

	// Step 1: C', h'.
	c1 := math.Hypot(lab1.A, lab1.B)
	c2 := math.Hypot(lab2.A, lab2.B)
	barC := (c1 + c2) / 2

	g := 0.5 * (1 - math.Sqrt(math.Pow(barC, 7)/(math.Pow(barC, 7)+pow25To7)))
	a1p := (1 + g) * lab1.A
	a2p := (1 + g) * lab2.A

	c1p := math.Hypot(a1p, lab1.B)
	c2p := math.Hypot(a2p, lab2.B)

	h1p := hueAngle(lab1.B, a1p, deg360)
	h2p := hueAngle(lab2.B, a2p, deg360)

	// Step 2: dL', dC', dH'.
	dLp := lab2.L - lab1.L
	dCp := c2p - c1p

	var dhp float64
	if c1p*c2p != 0 {
		dhp = h2p - h1p
		if dhp < -deg180 {
			dhp += deg360
		} else if dhp > deg180 {
			dhp -= deg360
		}
	}
	dHp := 2 * math.Sqrt(c1p*c2p) * math.Sin(dhp/2)

	// Step 3: weighting functions and rotation term.
	barLp := (lab1.L + lab2.L) / 2
	barCp := (c1p + c2p) / 2

	var barhp float64
	hSum := h1p + h2p
	switch {
	case c1p*c2p == 0:
		barhp = hSum
	case math.Abs(h1p-h2p) <= deg180:
		barhp = hSum / 2
	case hSum < deg360:
		barhp = (hSum + deg360) / 2
	default:
		barhp = (hSum - deg360) / 2
	}

	t := 1 - 0.17*math.Cos(barhp-deg2Rad(30)) +
		0.24*math.Cos(2*barhp) +
		0.32*math.Cos(3*barhp+deg2Rad(6)) -
		0.20*math.Cos(4*barhp-deg2Rad(63))

	dTheta := deg2Rad(30) * math.Exp(-sq((barhp-deg2Rad(275))/deg2Rad(25)))
	rc := 2 * math.Sqrt(math.Pow(barCp, 7)/(math.Pow(barCp, 7)+pow25To7))

	sl := 1 + 0.015*sq(barLp-50)/math.Sqrt(20+sq(barLp-50))
	sc := 1 + 0.045*barCp
	sh := 1 + 0.015*barCp*t
	rt := -math.Sin(2*dTheta) * rc

	return math.Sqrt(sq(dLp/sl) + sq(dCp/sc) + sq(dHp/sh) + rt*(dCp/sc)*(dHp/sh))
}

// hueAngle returns atan2(b, a') normalised to [0, 2pi), with the formula's
// defined zero for neutral colours.
func hueAngle(b, ap, deg360 float64) float64 {
	if b == 0 && ap == 0 {
		return 0
	}
	h := math.Atan2(b, ap)
	if h < 0 {
		h += deg360
	}
	return h
}

func deg2Rad(deg float64) float64 { return deg * math.Pi / 180 }

func sq(v float64) float64 { return v * v }
