package image

import (
	"fmt"
	"image"

	"github.com/plamix/plamix/internal/colour"
)

// maxSampleDim bounds sampling to roughly a 256x256 grid so huge photos do
// not cost more than small ones.
const maxSampleDim = 256

// AverageColour reduces an image to a single representative Lab colour by
// averaging subsampled pixels. Fully transparent pixels are skipped so
// logos and sprites with alpha do not wash out towards black.
func AverageColour(img image.Image) (colour.Lab, error) {
	bounds := img.Bounds()
	if bounds.Empty() {
		return colour.Lab{}, fmt.Errorf("image has no pixels")
	}

	strideX := bounds.Dx() / maxSampleDim
	if strideX < 1 {
		strideX = 1
	}
	strideY := bounds.Dy() / maxSampleDim
	if strideY < 1 {
		strideY = 1
	}

	var sumR, sumG, sumB float64
	var count int
	for y := bounds.Min.Y; y < bounds.Max.Y; y += strideY {
		for x := bounds.Min.X; x < bounds.Max.X; x += strideX {
			r, g, b, a := img.At(x, y).RGBA()
			if a == 0 {
				continue
			}
			// RGBA returns alpha-premultiplied 16-bit channels.
			sumR += float64(r) / float64(a)
			sumG += float64(g) / float64(a)
			sumB += float64(b) / float64(a)
			count++
		}
	}
	if count == 0 {
		return colour.Lab{}, fmt.Errorf("image is fully transparent")
	}

	r8 := uint8(sumR/float64(count)*255.0 + 0.5)
	g8 := uint8(sumG/float64(count)*255.0 + 0.5)
	b8 := uint8(sumB/float64(count)*255.0 + 0.5)
	return colour.RGBToLab(r8, g8, b8), nil
}

// TargetFromImage loads an image from a file path or URL and returns its
// average colour.
func TargetFromImage(path string) (colour.Lab, error) {
	img, err := NewSmartLoader().Load(path)
	if err != nil {
		return colour.Lab{}, err
	}
	return AverageColour(img)
}
