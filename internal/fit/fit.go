// Package fit scales a source image to cover a target box and crops it to
// the exact target size using a crop.Strategy.
package fit

import (
	"errors"
	"fmt"
	"image"

	"github.com/ironsheep/favicon-tools-mcp/internal/crop"
	"github.com/ironsheep/favicon-tools-mcp/internal/imaging"
)

// ErrInvalidTarget is returned for non-positive source or target dimensions.
var ErrInvalidTarget = errors.New("invalid fit dimensions")

// Result describes how a Fit call transformed its source.
type Result struct {
	// Scale is the divisor applied to the source dimensions.
	Scale float64 `json:"scale"`

	// ScaledWidth and ScaledHeight are the dimensions after resizing,
	// before cropping. Both are at least the target size.
	ScaledWidth  int `json:"scaled_width"`
	ScaledHeight int `json:"scaled_height"`

	// Offset is the top-left of the crop window in the scaled image.
	Offset image.Point `json:"offset"`
}

// CoverScale returns the factor the source must be divided by so that it
// covers a tw x th box:
//
//	scale = sw/sh < tw/th ? sw/tw : sh/th
//
// The axis on which the source is relatively narrower is fitted exactly and
// the other axis overshoots.
func CoverScale(sw, sh, tw, th int) float64 {
	if narrower(sw, sh, tw, th) {
		return float64(sw) / float64(tw)
	}
	return float64(sh) / float64(th)
}

// ScaledSize returns floor(sw/scale), floor(sh/scale) for the cover scale.
//
// The division is done in integers so the fitted axis is exactly the target
// and the overshooting axis is never rounded below it.
func ScaledSize(sw, sh, tw, th int) (int, int) {
	if narrower(sw, sh, tw, th) {
		return tw, int(int64(sh) * int64(tw) / int64(sw))
	}
	return int(int64(sw) * int64(th) / int64(sh)), th
}

// narrower reports sw/sh < tw/th without floating point.
func narrower(sw, sh, tw, th int) bool {
	return int64(sw)*int64(th) < int64(tw)*int64(sh)
}

// Pipeline resizes with a cubic filter and crops with Strategy.
type Pipeline struct {
	Strategy crop.Strategy
}

// New returns a pipeline using s.
func New(s crop.Strategy) *Pipeline {
	return &Pipeline{Strategy: s}
}

// Fit returns src cover-scaled and cropped to exactly tw x th.
//
// src is not modified. Strategy errors are returned as-is.
func (p *Pipeline) Fit(src image.Image, tw, th int) (*image.NRGBA, Result, error) {
	b := src.Bounds()
	sw, sh := b.Dx(), b.Dy()
	if sw <= 0 || sh <= 0 || tw <= 0 || th <= 0 {
		return nil, Result{}, fmt.Errorf("%w: source %dx%d, target %dx%d", ErrInvalidTarget, sw, sh, tw, th)
	}

	res := Result{Scale: CoverScale(sw, sh, tw, th)}
	res.ScaledWidth, res.ScaledHeight = ScaledSize(sw, sh, tw, th)

	scaled := imaging.Resize(src, res.ScaledWidth, res.ScaledHeight)

	offset, err := p.Strategy.Offset(scaled, tw, th)
	if err != nil {
		return nil, res, err
	}
	res.Offset = offset

	out, err := imaging.Crop(scaled, offset.X, offset.Y, tw, th)
	if err != nil {
		return nil, res, fmt.Errorf("failed to crop to %dx%d at (%d,%d): %w", tw, th, offset.X, offset.Y, err)
	}
	return out, res, nil
}
