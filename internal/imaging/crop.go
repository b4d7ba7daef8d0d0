package imaging

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Resize scales img to exactly width x height using the Catmull-Rom cubic filter.
func Resize(img image.Image, width, height int) *image.NRGBA {
	return imaging.Resize(img, width, height, imaging.CatmullRom)
}

// Crop extracts the width x height region whose top-left corner is (x, y).
//
// The coordinates are relative to the image bounds. The region must lie
// entirely inside the image; a partial crop is never returned.
func Crop(img image.Image, x, y, width, height int) (*image.NRGBA, error) {
	bounds := img.Bounds()
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid crop size %dx%d", width, height)
	}

	rect := image.Rect(x, y, x+width, y+height).Add(bounds.Min)
	if !rect.In(bounds) {
		return nil, fmt.Errorf("crop region (%d,%d)-(%d,%d) outside image bounds %dx%d",
			x, y, x+width, y+height, bounds.Dx(), bounds.Dy())
	}

	return imaging.Crop(img, rect), nil
}
