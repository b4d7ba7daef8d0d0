package crop

import "image"

// CenterStrategy keeps the middle of the image.
type CenterStrategy struct{}

// Offset returns ((w-width)/2, (h-height)/2), floored and clamped to zero.
func (CenterStrategy) Offset(img image.Image, width, height int) (image.Point, error) {
	b := img.Bounds()
	return image.Pt(
		clampOffset((b.Dx()-width)/2, b.Dx(), width),
		clampOffset((b.Dy()-height)/2, b.Dy(), height),
	), nil
}
