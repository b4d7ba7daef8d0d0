package imaging

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ParseHexColor parses a 6-digit hex colour such as "2b5797" or "#2B5797".
//
// The returned colour is fully opaque.
func ParseHexColor(hex string) (color.NRGBA, error) {
	hex = strings.TrimSpace(hex)
	if hex == "" {
		return color.NRGBA{}, fmt.Errorf("empty color string")
	}
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	if len(hex) != 7 {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q: want 6 hex digits", hex)
	}

	c, err := colorful.Hex(hex)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}

// SamplePixel returns the 8-bit RGB components at (x, y), relative to the
// image bounds. Coordinates are not range-checked; out-of-range reads yield
// whatever img.At returns (transparent black for the stdlib image types).
func SamplePixel(img image.Image, x, y int) (r, g, b uint8) {
	origin := img.Bounds().Min
	r32, g32, b32, _ := img.At(origin.X+x, origin.Y+y).RGBA()
	return uint8(r32 >> 8), uint8(g32 >> 8), uint8(b32 >> 8)
}

// Luminance returns the ITU-R BT.601 luma of an 8-bit RGB triple (0-255).
func Luminance(r, g, b uint8) float64 {
	return 0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)
}

// Histogram counts the pixels of each distinct colour inside rect.
//
// rect is relative to the image bounds and is clipped to them. Colours are
// compared at 8 bits per channel, alpha included.
func Histogram(img image.Image, rect image.Rectangle) map[color.NRGBA]int {
	bounds := img.Bounds()
	rect = rect.Add(bounds.Min).Intersect(bounds)

	counts := make(map[color.NRGBA]int)
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			counts[c]++
		}
	}
	return counts
}
