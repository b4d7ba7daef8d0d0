package config

// Windows tile colours offered by the Start screen, as "RRGGBB".
const (
	ColorTeal        = "00aba9"
	ColorDarkBlue    = "2b5797"
	ColorLightPurple = "9f00a7"
	ColorDarkPurple  = "603cba"
	ColorDarkRed     = "b91d47"
	ColorDarkOrange  = "da532c"
	ColorYellow      = "ffc40d"
	ColorGreen       = "00a300"
	ColorBlue        = "2d89ef"
)

// NamedColors maps lower-case names to their hex value.
var NamedColors = map[string]string{
	"teal":        ColorTeal,
	"darkblue":    ColorDarkBlue,
	"lightpurple": ColorLightPurple,
	"darkpurple":  ColorDarkPurple,
	"darkred":     ColorDarkRed,
	"darkorange":  ColorDarkOrange,
	"yellow":      ColorYellow,
	"green":       ColorGreen,
	"blue":        ColorBlue,
}

// ResolveColor returns the hex value for a named colour, or s unchanged.
func ResolveColor(s string) string {
	if hex, ok := NamedColors[s]; ok {
		return hex
	}
	return s
}
