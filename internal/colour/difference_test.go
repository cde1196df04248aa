package colour

import (
	"math"
	"testing"
)

func TestDifferenceZeroAndSymmetry(t *testing.T) {
	colors := []Lab{
		{L: 50, A: 0, B: 0},
		{L: 92.5, A: 0.1, B: 0.2},
		{L: 15.3, A: 0.2, B: 0.1},
		{L: 48.2, A: 68.4, B: 45.6},
		{L: 32.4, A: -12.5, B: -38.6},
	}

	for _, method := range []DiffMethod{DE76, DE00} {
		for _, c := range colors {
			if d := Difference(c, c, method); d != 0 {
				t.Errorf("%s: Difference(c,c) = %g, want 0 for %v", method, d, c)
			}
		}
		for i := range colors {
			for j := i + 1; j < len(colors); j++ {
				ab := Difference(colors[i], colors[j], method)
				ba := Difference(colors[j], colors[i], method)
				if math.Abs(ab-ba) > 1e-9 {
					t.Errorf("%s: asymmetric: %g vs %g for %v / %v",
						method, ab, ba, colors[i], colors[j])
				}
			}
		}
	}
}

func TestDE76TriangleInequality(t *testing.T) {
	a := Lab{L: 30, A: 20, B: -10}
	b := Lab{L: 70, A: -15, B: 40}
	c := Lab{L: 55, A: 5, B: 5}

	ab := Difference(a, b, DE76)
	ac := Difference(a, c, DE76)
	cb := Difference(c, b, DE76)

	if ab > ac+cb+1e-9 {
		t.Errorf("triangle inequality violated: d(a,b)=%g > d(a,c)+d(c,b)=%g", ab, ac+cb)
	}
}

func TestDE76KnownDistance(t *testing.T) {
	a := Lab{L: 50, A: 3, B: -4}
	b := Lab{L: 50, A: 0, B: 0}
	if d := Difference(a, b, DE76); math.Abs(d-5) > 1e-12 {
		t.Errorf("DE76 = %g, want 5", d)
	}
}

// Reference pairs from Sharma, Wu & Dalal's CIEDE2000 supplementary test
// data.
func TestDE00ReferencePairs(t *testing.T) {
	tests := []struct {
		name   string
		c1, c2 Lab
		want   float64
	}{
		{
			name: "blue pair 1",
			c1:   Lab{L: 50, A: 2.6772, B: -79.7751},
			c2:   Lab{L: 50, A: 0, B: -82.7485},
			want: 2.0425,
		},
		{
			name: "blue pair 2",
			c1:   Lab{L: 50, A: 3.1571, B: -77.2803},
			c2:   Lab{L: 50, A: 0, B: -82.7485},
			want: 2.8615,
		},
		{
			name: "blue pair 3",
			c1:   Lab{L: 50, A: 2.8361, B: -74.0200},
			c2:   Lab{L: 50, A: 0, B: -82.7485},
			want: 3.4412,
		},
		{
			name: "hue quadrant pair",
			c1:   Lab{L: 50, A: 2.5, B: 0},
			c2:   Lab{L: 50, A: 0, B: -2.5},
			want: 4.3065,
		},
		{
			name: "large difference pair",
			c1:   Lab{L: 50, A: 2.5, B: 0},
			c2:   Lab{L: 73, A: 25, B: -18},
			want: 27.1492,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Difference(tt.c1, tt.c2, DE00)
			if math.Abs(got-tt.want) > 1e-3 {
				t.Errorf("DE00(%v, %v) = %.4f, want %.4f", tt.c1, tt.c2, got, tt.want)
			}
		})
	}
}

// The two metrics are presented to users as distinct; make sure DE00 is not
// silently aliased to DE76.
func TestDE00IsNotDE76(t *testing.T) {
	a := Lab{L: 50, A: 2.6772, B: -79.7751}
	b := Lab{L: 50, A: 0, B: -82.7485}

	d76 := Difference(a, b, DE76)
	d00 := Difference(a, b, DE00)
	if math.Abs(d76-d00) < 0.5 {
		t.Errorf("DE76 (%g) and DE00 (%g) should differ markedly on the blue reference pair", d76, d00)
	}
}
