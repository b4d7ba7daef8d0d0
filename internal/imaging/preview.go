package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"github.com/disintegration/imaging"
)

// PreviewResult is an annotated image returned inline as base64 PNG.
type PreviewResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// OutlineRegion returns a copy of img with everything outside rect dimmed
// and a 1px outline of c drawn just inside rect.
//
// Parameters:
//   - img: The image to annotate.
//   - rect: The region to keep bright, in img coordinates.
//   - c: Outline colour.
//
// Returns an error when rect is empty or does not lie within img.
func OutlineRegion(img image.Image, rect image.Rectangle, c color.Color) (*image.NRGBA, error) {
	bounds := img.Bounds()
	if rect.Empty() || !rect.In(bounds) {
		return nil, fmt.Errorf("region %v outside image bounds %v", rect, bounds)
	}

	// dim the whole image, then paste the untouched region back
	out := imaging.Overlay(imaging.Clone(img), imaging.New(bounds.Dx(), bounds.Dy(), color.NRGBA{A: 255}), image.Point{}, 0.55)
	out = imaging.Paste(out, imaging.Crop(img, rect), rect.Min.Sub(bounds.Min))

	r := rect.Sub(bounds.Min)
	for x := r.Min.X; x < r.Max.X; x++ {
		out.Set(x, r.Min.Y, c)
		out.Set(x, r.Max.Y-1, c)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		out.Set(r.Min.X, y, c)
		out.Set(r.Max.X-1, y, c)
	}
	return out, nil
}

// EncodePreview encodes img as a PreviewResult.
func EncodePreview(img image.Image) (*PreviewResult, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	bounds := img.Bounds()
	return &PreviewResult{
		Width:       bounds.Dx(),
		Height:      bounds.Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}
