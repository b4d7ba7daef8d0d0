package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"io"
	"os"

	"github.com/disintegration/imaging"
)

// ErrSourceUnreadable is returned when a source image cannot be opened or decoded.
// Callers must treat it as fatal for the current run.
var ErrSourceUnreadable = errors.New("source image unreadable")

// Open reads and decodes the image at path.
//
// The file is read on every call. Nothing is cached, so a source that is
// replaced on disk between calls is picked up immediately.
//
// EXIF orientation is honoured for JPEG sources so that phone photos are not
// sideways after resizing.
//
// # Errors
//
// Any open or decode failure is wrapped with ErrSourceUnreadable; use
// errors.Is to detect it.
func Open(path string) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open %s: %w", ErrSourceUnreadable, path, err)
	}
	return img, nil
}

// Decode decodes an image from r. Failures are wrapped with ErrSourceUnreadable.
func Decode(r io.Reader) (image.Image, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decode image: %w", ErrSourceUnreadable, err)
	}
	return img, nil
}

// ImageInfo describes a candidate source icon.
type ImageInfo struct {
	Width  int `json:"width"`
	Height int `json:"height"`

	// Format is the decoder that recognised the file contents: "png",
	// "jpeg", or "gif".
	Format string `json:"format"`

	// HasAlpha is set when the decoded pixels carry an alpha channel.
	HasAlpha bool `json:"has_alpha"`

	// Square is set when no cover crop is needed for square icons.
	Square bool `json:"square"`

	FileSizeBytes int64 `json:"file_size_bytes"`
}

// LoadImageInfo reads the file at path once and describes it. The format
// comes from the file contents, not its extension.
func LoadImageInfo(path string) (*ImageInfo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read %s: %w", ErrSourceUnreadable, path, err)
	}

	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: unrecognised format in %s: %w", ErrSourceUnreadable, path, err)
	}
	img, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	hasAlpha := false
	switch img.(type) {
	case *image.RGBA, *image.NRGBA, *image.RGBA64, *image.NRGBA64:
		hasAlpha = true
	}

	bounds := img.Bounds()
	return &ImageInfo{
		Width:         bounds.Dx(),
		Height:        bounds.Dy(),
		Format:        format,
		HasAlpha:      hasAlpha,
		Square:        bounds.Dx() == bounds.Dy(),
		FileSizeBytes: int64(len(data)),
	}, nil
}
