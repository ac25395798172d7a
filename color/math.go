package color

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/panoshell/panoshell/util"
	"github.com/samber/mo"
	"golang.org/x/exp/constraints"
)

// RGB is an 8-bit per channel color.
type RGB struct {
	R, G, B int
}

// HSL holds hue, saturation and lightness, each in [0, 1].
type HSL struct {
	H, S, L float64
}

// HSV holds hue, saturation and value, each in [0, 1].
type HSV struct {
	H, S, V float64
}

// Clamp bounds v to [min, max]. NaN and infinities yield min.
func Clamp[T constraints.Float](v, min, max T) T {
	f := float64(v)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func clampChannel(v int) int {
	return int(Clamp(float64(v), 0, 255))
}

var (
	hexLong  = regexp.MustCompile(`^#([0-9a-fA-F]{6})$`)
	hexShort = regexp.MustCompile(`^#([0-9a-fA-F]{3})$`)
)

// NormalizeHex returns the lowercase #rrggbb form of a #rrggbb or #rgb string.
func NormalizeHex(s string) mo.Option[string] {
	s = strings.TrimSpace(s)
	if m := hexLong.FindStringSubmatch(s); m != nil {
		return mo.Some("#" + strings.ToLower(m[1]))
	}
	if m := hexShort.FindStringSubmatch(s); m != nil {
		var b strings.Builder
		b.WriteByte('#')
		for _, r := range strings.ToLower(m[1]) {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		return mo.Some(b.String())
	}
	return mo.None[string]()
}

// HexToRGB parses a hex color; shorthand is expanded first.
func HexToRGB(s string) mo.Option[RGB] {
	hex, ok := NormalizeHex(s).Get()
	if !ok {
		return mo.None[RGB]()
	}
	v, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return mo.None[RGB]()
	}
	return mo.Some(RGB{R: int(v >> 16 & 0xff), G: int(v >> 8 & 0xff), B: int(v & 0xff)})
}

// RGBToHex formats c as lowercase #rrggbb. Channels are clamped.
func RGBToHex(c RGB) string {
	return fmt.Sprintf("#%02x%02x%02x", clampChannel(c.R), clampChannel(c.G), clampChannel(c.B))
}

// Hex is shorthand for RGBToHex.
func (c RGB) Hex() string {
	return RGBToHex(c)
}

// Triple renders the "r, g, b" form used by theme tokens.
func (c RGB) Triple() string {
	return fmt.Sprintf("%d, %d, %d", clampChannel(c.R), clampChannel(c.G), clampChannel(c.B))
}

func unit(c RGB) (r, g, b float64) {
	return float64(clampChannel(c.R)) / 255, float64(clampChannel(c.G)) / 255, float64(clampChannel(c.B)) / 255
}

func to255(v float64) int {
	return int(math.Round(Clamp(v, 0, 1) * 255))
}

// hue computes the shared hue term of HSL and HSV in [0, 1).
func hue(r, g, b, max, d float64) float64 {
	var h float64
	switch max {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	return h / 6
}

// RGBToHSL converts c to HSL.
func RGBToHSL(c RGB) HSL {
	r, g, b := unit(c)
	max := util.Max(r, g, b)
	min := util.Min(r, g, b)
	l := (max + min) / 2

	if max == min {
		return HSL{H: 0, S: 0, L: l}
	}

	d := max - min
	var s float64
	if l > 0.5 {
		s = d / (2 - max - min)
	} else {
		s = d / (max + min)
	}
	return HSL{H: hue(r, g, b, max, d), S: s, L: l}
}

func hueToChannel(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	default:
		return p
	}
}

// HSLToRGB converts an HSL color back to 8-bit channels.
func HSLToRGB(c HSL) RGB {
	h, s, l := Clamp(c.H, 0, 1), Clamp(c.S, 0, 1), Clamp(c.L, 0, 1)
	if s == 0 {
		v := to255(l)
		return RGB{R: v, G: v, B: v}
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q
	return RGB{
		R: to255(hueToChannel(p, q, h+1.0/3)),
		G: to255(hueToChannel(p, q, h)),
		B: to255(hueToChannel(p, q, h-1.0/3)),
	}
}

// RGBToHSV converts c to HSV.
func RGBToHSV(c RGB) HSV {
	r, g, b := unit(c)
	max := util.Max(r, g, b)
	min := util.Min(r, g, b)
	d := max - min

	var s float64
	if max != 0 {
		s = d / max
	}
	if d == 0 {
		return HSV{H: 0, S: s, V: max}
	}
	return HSV{H: hue(r, g, b, max, d), S: s, V: max}
}

// HSVToRGB converts an HSV color back to 8-bit channels, switching on the hue sector.
func HSVToRGB(c HSV) RGB {
	h, s, v := Clamp(c.H, 0, 1), Clamp(c.S, 0, 1), Clamp(c.V, 0, 1)
	i := math.Floor(h * 6)
	f := h*6 - i
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	var r, g, b float64
	switch int(i) % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}
	return RGB{R: to255(r), G: to255(g), B: to255(b)}
}
