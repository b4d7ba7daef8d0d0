// Package crop decides which part of a cover-scaled image survives the crop
// to the target size.
//
// A Strategy receives the already-resized image and the target dimensions and
// returns the top-left corner of the crop window. Every strategy guarantees
//
//	0 <= x <= scaledWidth-targetWidth
//	0 <= y <= scaledHeight-targetHeight
//
// and returns (0, 0) on an axis where the image is not larger than the target.
//
// # Strategies
//
//   - Center: the arithmetic centre. Deterministic, never inspects pixels.
//   - Balanced: luminance-weighted centroid of random samples drawn from the
//     top-left quadrant. Randomised; inject a seeded source with WithSeed or
//     WithRand for reproducible output.
//   - Entropy: per axis, the run of slices with the highest summed Shannon
//     entropy of a contour-emphasised copy of the image.
//
// # Thread Safety
//
// Center and Entropy are stateless. Balanced is safe for concurrent use with
// the default source; a source passed to WithRand or created by WithSeed must
// not be shared between goroutines.
package crop
