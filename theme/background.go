package theme

import (
	"strconv"
	"strings"

	"github.com/panoshell/panoshell/color"
	"github.com/samber/mo"
)

func parseAlpha(s string) mo.Option[float64] {
	a, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return mo.None[float64]()
	}
	return mo.Some(color.Clamp(a, 0, 1))
}

func parsePair(val, alpha string) mo.Option[color.RGBA] {
	rgb, ok := color.ParseTriple(val).Get()
	if !ok {
		return mo.None[color.RGBA]()
	}
	a, ok := parseAlpha(alpha).Get()
	if !ok {
		return mo.None[color.RGBA]()
	}
	return mo.Some(color.RGBA{RGB: rgb, A: a})
}

func writeBackground(t *TokenMap, c color.RGBA) {
	t.BackgroundVal = c.Triple()
	t.BackgroundAlpha = color.FormatAlpha(c.A)
	t.Background = c.RGBAString()
}

// reconcileBackground makes --card-bg, --card-bg-val and --card-bg-alpha agree.
// When the input explicitly carried val or alpha, that pair wins over the composed
// string; otherwise the composed string wins. If neither parses, the fallback's
// three tokens are used.
func reconcileBackground(t *TokenMap, preferPair bool, fallback TokenMap) {
	pair, pairOK := parsePair(t.BackgroundVal, t.BackgroundAlpha).Get()
	composed, composedOK := color.ParseRGBA(t.Background).Get()

	switch {
	case preferPair && pairOK:
		writeBackground(t, pair)
	case composedOK:
		writeBackground(t, composed)
	case pairOK:
		writeBackground(t, pair)
	default:
		t.BackgroundVal = fallback.BackgroundVal
		t.BackgroundAlpha = fallback.BackgroundAlpha
		t.Background = fallback.Background
	}
}
