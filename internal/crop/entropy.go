package crop

import (
	"image"
	"image/color"
	"math"

	"github.com/ironsheep/favicon-tools-mcp/internal/imaging"
)

// numberOfBuckets is how many slices each axis is divided into.
const numberOfBuckets = 25

type axis int

const (
	horizontal axis = iota
	vertical
)

// EntropyStrategy keeps the most detailed band of the image on each axis.
type EntropyStrategy struct{}

// sliceRank is the entropy of one slice and its starting pixel.
type sliceRank struct {
	offset  int
	entropy float64
}

// Offset scores slices of a preprocessed copy of img and picks, per axis, the
// start of the contiguous window of slices with the largest entropy sum.
//
// # Algorithm
//
// The copy is produced by imaging.PrepareForEntropy (edge detect, desaturate,
// black threshold, blur). Then, independently for x and y:
//
//  1. sliceSize = ceil(size/25); slices span the full other axis.
//  2. Each slice scores -Σ p log2 p over its colour histogram.
//  3. requiredSlices = ceil(target/sliceSize); every window of that many
//     adjacent slices is summed and the first strictly greater sum wins.
//  4. The winning window's first pixel is the offset for that axis.
//
// An axis whose size already equals the target returns 0 without scoring.
func (EntropyStrategy) Offset(img image.Image, width, height int) (image.Point, error) {
	b := img.Bounds()
	if b.Dx() <= width && b.Dy() <= height {
		return image.Point{}, nil
	}

	prepared := imaging.PrepareForEntropy(img)
	return image.Pt(
		sliceEntropyOffset(prepared, width, horizontal),
		sliceEntropyOffset(prepared, height, vertical),
	), nil
}

// sliceEntropyOffset finds the best window start along one axis.
func sliceEntropyOffset(img image.Image, target int, a axis) int {
	b := img.Bounds()
	size, span := b.Dx(), b.Dy()
	if a == vertical {
		size, span = span, size
	}
	if size <= target {
		return 0
	}

	sliceSize := ceilDiv(size, numberOfBuckets)
	requiredSlices := ceilDiv(target, sliceSize)

	ranks := make([]sliceRank, 0, numberOfBuckets)
	for start := 0; start < size; start += sliceSize {
		extent := min(sliceSize, size-start)

		rect := image.Rect(start, 0, start+extent, span)
		if a == vertical {
			rect = image.Rect(0, start, span, start+extent)
		}

		ranks = append(ranks, sliceRank{
			offset:  start,
			entropy: histogramEntropy(imaging.Histogram(img, rect), extent*span),
		})
	}

	var best float64
	bestIndex := 0
	for i := 0; i+requiredSlices <= len(ranks); i++ {
		var sum float64
		for j := 0; j < requiredSlices; j++ {
			sum += ranks[i+j].entropy
		}
		if sum > best {
			best = sum
			bestIndex = i
		}
	}

	return clampOffset(ranks[bestIndex].offset, size, target)
}

// histogramEntropy is the Shannon entropy, in bits, of a colour histogram
// over area pixels.
func histogramEntropy(hist map[color.NRGBA]int, area int) float64 {
	if area == 0 {
		return 0
	}

	var value float64
	for _, n := range hist {
		if n == 0 {
			continue
		}
		p := float64(n) / float64(area)
		value += p * math.Log2(p)
	}
	return -value
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
