package imaging

import (
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/disintegration/imaging"
)

// EncodePNG writes img to w as PNG using the given zlib compression level.
//
// The level only affects the encoder; pixel data is written unchanged.
func EncodePNG(w io.Writer, img image.Image, level png.CompressionLevel) error {
	if err := imaging.Encode(w, img, imaging.PNG, imaging.PNGCompressionLevel(level)); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}
