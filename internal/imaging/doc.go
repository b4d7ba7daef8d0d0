// Package imaging is the raster layer used by the favicon generator.
//
// It wraps github.com/disintegration/imaging and github.com/anthonynsimon/bild
// behind a small set of functions: decoding, cubic resizing, cropping, PNG
// encoding with a compression level, per-region colour histograms, pixel
// sampling, entropy preprocessing, and background/margin compositing.
// All operations work with standard Go image.Image types and use a coordinate
// system where (0,0) is at the top-left corner, X increases rightward, and Y
// increases downward.
//
// # Coordinate System
//
// All pixel coordinates in this package are relative to the image bounds:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//   - For regions, the top-left is inclusive and the bottom-right exclusive
//
// Images returned by this package always have their bounds anchored at (0,0).
//
// # Thread Safety
//
// Every function is stateless and returns a new image; inputs are never
// mutated. Functions can be called concurrently on different images.
//
// # Colour Representation
//
// Colours are read as 8-bit components (16-bit sources are shifted down).
// Hex colours are accepted as "RRGGBB" or "#RRGGBB" and parsed with
// github.com/lucasb-eyer/go-colorful.
//
// # Error Handling
//
// Decode and open failures are wrapped with ErrSourceUnreadable. Crop returns
// an error for regions outside the image bounds. Encoding errors are returned
// unchanged with context.
package imaging
