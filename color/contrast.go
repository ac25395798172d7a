package color

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Text colors returned by ContrastText.
const (
	TextDark  = "#000"
	TextLight = "#fff"
)

func linearize(c float64) float64 {
	if c <= 0.03928 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// RelativeLuminance computes WCAG relative luminance of c.
func RelativeLuminance(c RGB) float64 {
	r, g, b := unit(c)
	return 0.2126*linearize(r) + 0.7152*linearize(g) + 0.0722*linearize(b)
}

// ContrastText picks black text for backgrounds brighter than luminance 0.5, white otherwise.
func ContrastText(c RGB) string {
	if RelativeLuminance(c) > 0.5 {
		return TextDark
	}
	return TextLight
}

// HueDegrees spreads consecutive indices around the wheel; 47 is coprime with 360.
func HueDegrees(i int) int {
	return ((i*47)%360 + 360) % 360
}

// HueByIndex returns a distinct hsl() color for index i.
func HueByIndex(i int) string {
	return fmt.Sprintf("hsl(%d, 64%%, 54%%)", HueDegrees(i))
}

// HueHex is HueByIndex rendered as hex, for sinks that do not accept hsl().
func HueHex(i int) string {
	return colorful.Hsl(float64(HueDegrees(i)), 0.64, 0.54).Clamped().Hex()
}

func toColorful(c RGB) colorful.Color {
	r, g, b := unit(c)
	return colorful.Color{R: r, G: g, B: b}
}

// Composite paints over on top of under with the given opacity, the way a browser
// flattens an rgba() background onto its backdrop.
func Composite(over, under RGB, alpha float64) RGB {
	r, g, b := toColorful(under).BlendRgb(toColorful(over), Clamp(alpha, 0, 1)).Clamped().RGB255()
	return RGB{R: int(r), G: int(g), B: int(b)}
}
