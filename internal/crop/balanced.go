package crop

import (
	"image"
	"math"

	"github.com/ironsheep/favicon-tools-mcp/internal/imaging"
)

// pixelsPerSample sets the sampling density: one random sample per 50 pixels
// of the analysed region.
const pixelsPerSample = 50

// BalancedStrategy biases the crop towards the brightest part of the image.
//
// Only the top-left quadrant is analysed. Samples are drawn with replacement
// so results vary between calls unless the random source is seeded.
type BalancedStrategy struct {
	rand Rand
}

// weightedPoint is a luminance-weighted centroid and the mean luminance of
// the samples that produced it.
type weightedPoint struct {
	x, y   float64
	weight float64
}

// Offset centres the crop window on the weighted centroid of the sampled
// region, then pulls it back inside the image.
//
// # Algorithm
//
//  1. Region: (0,0) to (ceil(w/2), ceil(h/2)).
//  2. Draw round(regionW*regionH/50) uniform samples (i, j) in the region.
//  3. val = 0.299r + 0.587g + 0.114b; accumulate sum, (i+1)*val, (j+1)*val.
//  4. Centroid = accumulators / sum, or (0,0) when every sample was black.
//  5. Top-left = max(0, centroid - target/2), shifted back if the window
//     would overrun the right or bottom edge.
func (s *BalancedStrategy) Offset(img image.Image, width, height int) (image.Point, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return image.Point{}, nil
	}

	regionW := (w + 1) / 2
	regionH := (h + 1) / 2

	points := []weightedPoint{s.sampleRegion(img, regionW, regionH)}
	cx, cy := combine(points)

	return image.Pt(
		topLeft(cx, width, w),
		topLeft(cy, height, h),
	), nil
}

// sampleRegion computes the luminance-weighted centroid of random samples in
// the regionW x regionH area anchored at the image origin.
func (s *BalancedStrategy) sampleRegion(img image.Image, regionW, regionH int) weightedPoint {
	area := float64(regionW * regionH)
	samples := int(math.Round(area / pixelsPerSample))

	var sum, xcenter, ycenter float64
	for k := 0; k < samples; k++ {
		i := s.rand.IntN(regionW)
		j := s.rand.IntN(regionH)

		val := imaging.Luminance(imaging.SamplePixel(img, i, j))
		sum += val
		xcenter += float64(i+1) * val
		ycenter += float64(j+1) * val
	}

	if sum > 0 {
		xcenter /= sum
		ycenter /= sum
	}

	return weightedPoint{x: xcenter, y: ycenter, weight: sum / area}
}

// combine averages points by weight. A zero total weight yields (0, 0).
func combine(points []weightedPoint) (float64, float64) {
	var total float64
	for _, p := range points {
		total += p.weight
	}
	if total <= 0 {
		return 0, 0
	}

	var x, y float64
	for _, p := range points {
		x += p.x * (p.weight / total)
		y += p.y * (p.weight / total)
	}
	return x, y
}

// topLeft converts a window centre on one axis into its clamped start.
func topLeft(center float64, target, size int) int {
	start := math.Max(0, center-float64(target)/2)
	if start+float64(target) > float64(size) {
		start -= start + float64(target) - float64(size)
	}
	return clampOffset(int(math.Floor(start)), size, target)
}
