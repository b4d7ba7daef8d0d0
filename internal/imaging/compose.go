package imaging

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// ApplyBackground places img on a solid background of the same size.
//
// With margin 0 the image is composited over bg, filling transparent areas.
// With margin > 0 the image is first shrunk by 2*margin on each axis (cubic
// filter) and then centred, leaving a margin-wide bg border all round.
func ApplyBackground(img image.Image, bg color.Color, margin int) (*image.NRGBA, error) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	if margin < 0 {
		return nil, fmt.Errorf("negative margin %d", margin)
	}
	if 2*margin >= w || 2*margin >= h {
		return nil, fmt.Errorf("margin %d too large for %dx%d image", margin, w, h)
	}

	canvas := imaging.New(w, h, bg)
	if margin == 0 {
		return imaging.Overlay(canvas, img, image.Pt(0, 0), 1.0), nil
	}

	inner := Resize(img, w-2*margin, h-2*margin)
	return imaging.Overlay(canvas, inner, image.Pt(margin, margin), 1.0), nil
}

// PadHorizontal adds pad transparent pixels on the left and right of img.
func PadHorizontal(img image.Image, pad int) *image.NRGBA {
	bounds := img.Bounds()
	canvas := imaging.New(bounds.Dx()+2*pad, bounds.Dy(), color.Transparent)
	return imaging.Paste(canvas, img, image.Pt(pad, 0))
}
