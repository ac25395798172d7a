package color

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/samber/mo"
)

// RGBA is an RGB color with an opacity in [0, 1].
type RGBA struct {
	RGB
	A float64
}

var (
	functional = regexp.MustCompile(`(?i)^rgba?\(([^)]*)\)$`)
	integers   = regexp.MustCompile(`\d+`)
	rgbaStrict = regexp.MustCompile(`(?i)^rgba?\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*(?:,\s*(\d*\.?\d+)\s*)?\)$`)
	triple     = regexp.MustCompile(`^\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*$`)
)

// RGBStringToHex accepts a hex color or an rgb()/rgba() form and returns lowercase #rrggbb.
func RGBStringToHex(s string) mo.Option[string] {
	s = strings.TrimSpace(s)
	if hex, ok := NormalizeHex(s).Get(); ok {
		return mo.Some(hex)
	}

	m := functional.FindStringSubmatch(s)
	if m == nil {
		return mo.None[string]()
	}
	nums := integers.FindAllString(m[1], -1)
	if len(nums) < 3 {
		return mo.None[string]()
	}

	var c RGB
	for i, dst := range []*int{&c.R, &c.G, &c.B} {
		v, err := strconv.Atoi(nums[i])
		if err != nil {
			return mo.None[string]()
		}
		*dst = v
	}
	return mo.Some(RGBToHex(c))
}

// CSSColorToHex is RGBStringToHex that also treats "transparent" and rgba(0, 0, 0, 0)
// as having no color. Other zero-alpha values keep their channels.
func CSSColorToHex(s string) mo.Option[string] {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "transparent") {
		return mo.None[string]()
	}
	if c, ok := ParseRGBA(s).Get(); ok && c.A == 0 && c.RGB == (RGB{}) {
		return mo.None[string]()
	}
	return RGBStringToHex(s)
}

// ParseRGBA parses hex, rgb() or rgba() into channels plus alpha. Hex and rgb() have alpha 1.
func ParseRGBA(s string) mo.Option[RGBA] {
	s = strings.TrimSpace(s)
	if c, ok := HexToRGB(s).Get(); ok {
		return mo.Some(RGBA{RGB: c, A: 1})
	}

	m := rgbaStrict.FindStringSubmatch(s)
	if m == nil {
		return mo.None[RGBA]()
	}

	out := RGBA{A: 1}
	for i, dst := range []*int{&out.R, &out.G, &out.B} {
		v, _ := strconv.Atoi(m[i+1])
		*dst = clampChannel(v)
	}
	if m[4] != "" {
		a, err := strconv.ParseFloat(m[4], 64)
		if err != nil {
			return mo.None[RGBA]()
		}
		out.A = Clamp(a, 0, 1)
	}
	return mo.Some(out)
}

// ParseTriple parses the "r, g, b" token form.
func ParseTriple(s string) mo.Option[RGB] {
	m := triple.FindStringSubmatch(s)
	if m == nil {
		return mo.None[RGB]()
	}
	var c RGB
	for i, dst := range []*int{&c.R, &c.G, &c.B} {
		v, _ := strconv.Atoi(m[i+1])
		*dst = clampChannel(v)
	}
	return mo.Some(c)
}

// FormatAlpha renders an opacity with at most three decimals and no trailing zeros.
func FormatAlpha(a float64) string {
	return strconv.FormatFloat(roundAlpha(a), 'f', -1, 64)
}

// RGBAString always renders the rgba() form.
func (c RGBA) RGBAString() string {
	return fmt.Sprintf("rgba(%s, %s)", c.Triple(), FormatAlpha(c.A))
}

// CSS renders rgb() when fully opaque and rgba() otherwise.
func (c RGBA) CSS() string {
	if c.A == 1 {
		return fmt.Sprintf("rgb(%s)", c.Triple())
	}
	return c.RGBAString()
}

func roundAlpha(a float64) float64 {
	return math.Round(Clamp(a, 0, 1)*1000) / 1000
}
