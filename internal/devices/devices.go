// Package devices lists the icon sizes generated for each platform family.
package devices

import (
	"fmt"
	"strings"

	"github.com/ironsheep/favicon-tools-mcp/internal/config"
)

// Family is a group of related output icons.
type Family string

const (
	Basic     Family = "basic"
	Apple     Family = "apple"
	Android   Family = "android"
	Microsoft Family = "microsoft"
)

// Families is every family in generation order.
var Families = []Family{Basic, Apple, Android, Microsoft}

// ParseFamily accepts a family name; "ms" and "windows" alias Microsoft.
func ParseFamily(s string) (Family, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "basic", "favicon":
		return Basic, nil
	case "apple", "ios":
		return Apple, nil
	case "android":
		return Android, nil
	case "microsoft", "ms", "windows":
		return Microsoft, nil
	}
	return "", fmt.Errorf("unknown device family %q", s)
}

// SizeSpec is one output icon.
type SizeSpec struct {
	Family Family

	// Width and Height are the final file dimensions.
	Width  int
	Height int

	// RenderWidth and RenderHeight are the dimensions the pipeline produces
	// before padding. They differ from Width/Height only for wide tiles.
	RenderWidth  int
	RenderHeight int

	// Prefix is the file name stem, e.g. "apple-touch-icon".
	Prefix string

	// Density is the Android screen density multiplier, or empty.
	Density string
}

// Size returns "WxH".
func (s SizeSpec) Size() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// FileName returns e.g. "favicon-16x16.png".
func (s SizeSpec) FileName() string {
	return fmt.Sprintf("%s-%s.png", s.Prefix, s.Size())
}

// PadX is the transparent padding added on each side after rendering.
func (s SizeSpec) PadX() int {
	return (s.Width - s.RenderWidth) / 2
}

// StyleKey is the settings key whose background/margin apply, if any.
func (s SizeSpec) StyleKey() (config.DeviceKey, bool) {
	switch s.Family {
	case Apple:
		return config.DeviceApple, true
	case Android:
		return config.DeviceAndroid, true
	}
	return "", false
}

func square(f Family, prefix string, px int) SizeSpec {
	return SizeSpec{Family: f, Width: px, Height: px, RenderWidth: px, RenderHeight: px, Prefix: prefix}
}

var basic = []SizeSpec{
	square(Basic, "favicon", 16),
	square(Basic, "favicon", 32),
	square(Basic, "favicon", 96),
}

var apple = []SizeSpec{
	square(Apple, "apple-touch-icon", 57),
	square(Apple, "apple-touch-icon", 60),
	square(Apple, "apple-touch-icon", 72),
	square(Apple, "apple-touch-icon", 76),
	square(Apple, "apple-touch-icon", 114),
	square(Apple, "apple-touch-icon", 120),
	square(Apple, "apple-touch-icon", 144),
	square(Apple, "apple-touch-icon", 152),
	square(Apple, "apple-touch-icon", 180),
}

var android = []SizeSpec{
	withDensity(square(Android, "android-chrome", 36), "0.75"),
	withDensity(square(Android, "android-chrome", 48), "1.0"),
	withDensity(square(Android, "android-chrome", 72), "1.5"),
	withDensity(square(Android, "android-chrome", 96), "2.0"),
	withDensity(square(Android, "android-chrome", 144), "3.0"),
	withDensity(square(Android, "android-chrome", 192), "4.0"),
}

// The wide tile is the 150px square padded with 80px either side.
var microsoft = []SizeSpec{
	square(Microsoft, "mstile", 70),
	square(Microsoft, "mstile", 144),
	square(Microsoft, "mstile", 150),
	square(Microsoft, "mstile", 310),
	{Family: Microsoft, Width: 310, Height: 150, RenderWidth: 150, RenderHeight: 150, Prefix: "mstile"},
}

func withDensity(s SizeSpec, density string) SizeSpec {
	s.Density = density
	return s
}

// Sizes returns a copy of the size table for f.
func Sizes(f Family) []SizeSpec {
	var table []SizeSpec
	switch f {
	case Basic:
		table = basic
	case Apple:
		table = apple
	case Android:
		table = android
	case Microsoft:
		table = microsoft
	}
	return append([]SizeSpec(nil), table...)
}
