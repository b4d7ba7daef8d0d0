// Package config holds the generation settings, their JSON store, and the
// merge step that decides whether a run must rebuild every asset.
package config

import (
	"errors"
	"fmt"
	"image/png"
	"strconv"
	"strings"

	"github.com/ironsheep/favicon-tools-mcp/internal/crop"
	"github.com/ironsheep/favicon-tools-mcp/internal/imaging"
)

// ErrInvalidConfiguration is returned for unsupported setting values.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// MaxMargin is the largest per-device margin in pixels.
const MaxMargin = 15

// Compression is the output compression degree. Values are persisted.
type Compression int

const (
	CompressionOriginal Compression = 100
	CompressionLow      Compression = 75
	CompressionHigh     Compression = 50
	CompressionVeryHigh Compression = 25
)

// Valid reports whether c is one of the four supported degrees.
func (c Compression) Valid() bool {
	switch c {
	case CompressionOriginal, CompressionLow, CompressionHigh, CompressionVeryHigh:
		return true
	}
	return false
}

func (c Compression) String() string {
	switch c {
	case CompressionOriginal:
		return "original"
	case CompressionLow:
		return "low"
	case CompressionHigh:
		return "high"
	case CompressionVeryHigh:
		return "veryhigh"
	}
	return "Compression(" + strconv.Itoa(int(c)) + ")"
}

// PNGLevel maps the degree onto the PNG encoder's zlib level. Pixels are
// never altered, so higher degrees only trade CPU time for file size.
func (c Compression) PNGLevel() png.CompressionLevel {
	switch c {
	case CompressionLow:
		return png.BestSpeed
	case CompressionHigh:
		return png.DefaultCompression
	case CompressionVeryHigh:
		return png.BestCompression
	}
	return png.NoCompression
}

// ParseCompression accepts a degree name or its numeric value.
func ParseCompression(s string) (Compression, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "original", "none":
		return CompressionOriginal, nil
	case "low":
		return CompressionLow, nil
	case "high":
		return CompressionHigh, nil
	case "veryhigh", "very-high":
		return CompressionVeryHigh, nil
	}

	n, err := strconv.Atoi(s)
	if err == nil && Compression(n).Valid() {
		return Compression(n), nil
	}
	return 0, fmt.Errorf("%w: unacceptable degree of compression %q", ErrInvalidConfiguration, s)
}

// Orientation is the Android web-app screen orientation.
type Orientation string

const (
	Portrait  Orientation = "portrait"
	Landscape Orientation = "landscape"
)

// DeviceKey names a device family that accepts background and margin styling.
type DeviceKey string

const (
	DeviceApple     DeviceKey = "apple"
	DeviceAndroid   DeviceKey = "android"
	DeviceMicrosoft DeviceKey = "ms"
)

// DeviceStyle is the optional styling for one device family. An empty
// Background means none; Margin only applies when Background is set.
type DeviceStyle struct {
	Background string `json:"background,omitempty"`
	Margin     int    `json:"margin,omitempty"`
}

// AndroidMeta feeds the web app manifest.
type AndroidMeta struct {
	Name        string      `json:"name,omitempty"`
	URL         string      `json:"url,omitempty"`
	Orientation Orientation `json:"orientation,omitempty"`
}

// Settings is the configuration snapshot of one generation run.
type Settings struct {
	Compression Compression               `json:"compression"`
	CropMethod  crop.Method               `json:"cropmethod"`
	Styles      map[DeviceKey]DeviceStyle `json:"styles,omitempty"`
	Android     AndroidMeta               `json:"android"`
}

// Defaults returns the settings used when nothing has been persisted yet.
func Defaults() Settings {
	return Settings{
		Compression: CompressionOriginal,
		CropMethod:  crop.Center,
	}
}

// Style returns the style for key, or the zero style.
func (s Settings) Style(key DeviceKey) DeviceStyle {
	return s.Styles[key]
}

// Validate checks every field, returning an error wrapping
// ErrInvalidConfiguration for the first bad value.
func (s Settings) Validate() error {
	if !s.Compression.Valid() {
		return fmt.Errorf("%w: unacceptable degree of compression %d", ErrInvalidConfiguration, int(s.Compression))
	}
	if !s.CropMethod.Valid() {
		return fmt.Errorf("%w: illegal crop method %d", ErrInvalidConfiguration, int(s.CropMethod))
	}
	for key, style := range s.Styles {
		if err := validateStyle(key, style); err != nil {
			return err
		}
	}
	return s.Android.Validate()
}

// Validate checks the manifest orientation.
func (a AndroidMeta) Validate() error {
	switch a.Orientation {
	case "", Portrait, Landscape:
		return nil
	}
	return fmt.Errorf("%w: unknown orientation %q", ErrInvalidConfiguration, a.Orientation)
}

func validateStyle(key DeviceKey, style DeviceStyle) error {
	switch key {
	case DeviceApple, DeviceAndroid, DeviceMicrosoft:
	default:
		return fmt.Errorf("%w: unknown device %q", ErrInvalidConfiguration, key)
	}

	if style.Background != "" {
		if _, err := imaging.ParseHexColor(style.Background); err != nil {
			return fmt.Errorf("%w: %s background: %w", ErrInvalidConfiguration, key, err)
		}
	}
	if style.Margin < 0 || style.Margin > MaxMargin {
		return fmt.Errorf("%w: %s margin %d outside 0..%d", ErrInvalidConfiguration, key, style.Margin, MaxMargin)
	}
	return nil
}
