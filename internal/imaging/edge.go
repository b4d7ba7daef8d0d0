package imaging

import (
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/adjust"
	"github.com/anthonynsimon/bild/blur"
	"github.com/anthonynsimon/bild/effect"
)

const (
	// entropyEdgeRadius is the kernel radius of the edge detector.
	entropyEdgeRadius = 1.0

	// entropyBlackThreshold is the brightest channel value forced to black
	// after desaturation (the "#070707" black point).
	entropyBlackThreshold = 7

	// entropyBlurRadius is the Gaussian radius applied last.
	entropyBlurRadius = 2.0
)

// PrepareForEntropy builds the contour-emphasising copy of img that entropy
// cropping measures. img itself is never modified.
//
// # Algorithm
//
//  1. Edge detection: bild's Laplacian-style edge filter with radius 1.
//  2. Desaturation: convert to grayscale so hue differences do not count as
//     distinct histogram colours.
//  3. Black threshold: channel values at or below 7 become 0, collapsing
//     near-black noise into one histogram bucket.
//  4. Gaussian blur with radius 2 to turn thin contours into bands.
//
// The result has the same dimensions as img, anchored at (0,0).
func PrepareForEntropy(img image.Image) *image.RGBA {
	edges := effect.EdgeDetection(img, entropyEdgeRadius)
	gray := effect.Grayscale(edges)

	thresholded := adjust.Apply(gray, func(c color.RGBA) color.RGBA {
		if c.R <= entropyBlackThreshold && c.G <= entropyBlackThreshold && c.B <= entropyBlackThreshold {
			return color.RGBA{A: c.A}
		}
		return c
	})

	return blur.Gaussian(thresholded, entropyBlurRadius)
}
