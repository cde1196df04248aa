// Package colour implements the paint colour-mixing engine: CIE Lab
// conversions, perceptual colour-difference metrics, a Kubelka-Munk
// subtractive mixing model, and the recipe optimizer built on top of them.
package colour

import (
	"fmt"
	"math"
)

// D65 reference white in CIE XYZ, scaled to Y=100.
const (
	refWhiteX = 95.047
	refWhiteY = 100.000
	refWhiteZ = 108.883
)

// Lab is a colour in CIE L*a*b* space. L is lightness in [0,100]; A and B
// are the red-green and blue-yellow axes (catalog values sit roughly in
// [-80,80]). Lab is an immutable value type.
type Lab struct {
	L float64 `json:"L"`
	A float64 `json:"a"`
	B float64 `json:"b"`
}

// String returns the colour as "L=.. a=.. b=..".
func (c Lab) String() string {
	return fmt.Sprintf("L=%.1f a=%.1f b=%.1f", c.L, c.A, c.B)
}

// RGBToLab converts 8-bit sRGB channels to Lab via CIE XYZ under D65.
func RGBToLab(r, g, b uint8) Lab {
	x, y, z := rgbToXYZ(r, g, b)

	fx := xyzToLabF(x / refWhiteX)
	fy := xyzToLabF(y / refWhiteY)
	fz := xyzToLabF(z / refWhiteZ)

	l := 116*fy - 16
	if l < 0 {
		l = 0
	}

	return Lab{
		L: l,
		A: 500 * (fx - fy),
		B: 200 * (fy - fz),
	}
}

// RGB converts the colour back to 8-bit sRGB channels. Out-of-gamut values
// clip to [0,255] per channel.
func (c Lab) RGB() (r, g, b uint8) {
	fy := (c.L + 16) / 116
	fx := fy + c.A/500
	fz := fy - c.B/200

	x := refWhiteX * labToXYZF(fx)
	y := refWhiteY * labToXYZF(fy)
	z := refWhiteZ * labToXYZF(fz)

	return xyzToRGB(x, y, z)
}

// Hex returns the colour as an sRGB hex string (e.g. "#6b7a5c").
func (c Lab) Hex() string {
	r, g, b := c.RGB()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// rgbToXYZ converts 8-bit sRGB to CIE XYZ scaled to Y=100.
func rgbToXYZ(r8, g8, b8 uint8) (x, y, z float64) {
	r := srgbToLinear(float64(r8) / 255.0)
	g := srgbToLinear(float64(g8) / 255.0)
	b := srgbToLinear(float64(b8) / 255.0)

	r *= 100
	g *= 100
	b *= 100

	x = r*0.4124 + g*0.3576 + b*0.1805
	y = r*0.2126 + g*0.7152 + b*0.0722
	z = r*0.0193 + g*0.1192 + b*0.9505
	return x, y, z
}

// xyzToRGB converts CIE XYZ (Y=100 scale) to clamped 8-bit sRGB.
func xyzToRGB(x, y, z float64) (r8, g8, b8 uint8) {
	x /= 100
	y /= 100
	z /= 100

	r := x*3.2406 + y*-1.5372 + z*-0.4986
	g := x*-0.9689 + y*1.8758 + z*0.0415
	b := x*0.0557 + y*-0.2040 + z*1.0570

	return clampChannel(linearToSRGB(r)),
		clampChannel(linearToSRGB(g)),
		clampChannel(linearToSRGB(b))
}

func srgbToLinear(v float64) float64 {
	if v > 0.04045 {
		return math.Pow((v+0.055)/1.055, 2.4)
	}
	return v / 12.92
}

func linearToSRGB(v float64) float64 {
	if v > 0.0031308 {
		return 1.055*math.Pow(v, 1/2.4) - 0.055
	}
	return 12.92 * v
}

func xyzToLabF(t float64) float64 {
	if t > 0.008856 {
		return math.Cbrt(t)
	}
	return 7.787*t + 16.0/116.0
}

func labToXYZF(t float64) float64 {
	if t3 := t * t * t; t3 > 0.008856 {
		return t3
	}
	return (t - 16.0/116.0) / 7.787
}

func clampChannel(v float64) uint8 {
	scaled := math.Round(v * 255)
	if scaled < 0 {
		return 0
	}
	if scaled > 255 {
		return 255
	}
	return uint8(scaled)
}
