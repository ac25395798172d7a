package theme

import (
	"github.com/panoshell/panoshell/color"
)

// Resolve finalizes the active colors of state. Empty tokens take the default
// value and the element background is rendered as rgb() when opaque, rgba() otherwise.
func Resolve(state State) TokenMap {
	out := state.ActiveColors
	defaults := DefaultTokens()

	for _, f := range fields {
		if *f.ref(&out) == "" {
			*f.ref(&out) = *f.ref(&defaults)
		}
	}

	if c, ok := color.ParseRGBA(out.ElementBackground).Get(); ok {
		out.ElementBackground = c.CSS()
	}
	return out
}

// ContrastFor picks black or white text for the composed background laid over backdrop.
func ContrastFor(tokens TokenMap, backdrop color.RGB) string {
	bg, ok := color.ParseRGBA(tokens.Background).Get()
	if !ok {
		return color.ContrastText(backdrop)
	}
	return color.ContrastText(color.Composite(bg.RGB, backdrop, bg.A))
}
