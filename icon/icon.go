// Package icon renders the status symbols printed by the command line.
//
// Every icon has one glyph per variant; the icons.variant setting picks which
// one is shown.
package icon

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/panoshell/panoshell/key"
	"github.com/panoshell/panoshell/style"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Variant is a family of glyphs.
type Variant string

const (
	Emoji   Variant = "emoji"
	Nerd    Variant = "nerd"
	Plain   Variant = "plain"
	Kaomoji Variant = "kaomoji"
	Squares Variant = "squares"
)

var variants = []Variant{Emoji, Nerd, Plain, Kaomoji, Squares}

// AvailableVariants lists the accepted values of the icons.variant setting.
func AvailableVariants() []string {
	return lo.Map(variants, func(v Variant, _ int) string { return string(v) })
}

// Current returns the configured variant. Unknown values render plain glyphs.
func Current() Variant {
	v := Variant(viper.GetString(key.IconsVariant))
	if !lo.Contains(variants, v) {
		return Plain
	}
	return v
}

type glyphs struct {
	tone   lipgloss.Color
	byKind map[Variant]string
}

// Get returns the glyph of i for the configured variant, or "" for an unknown icon.
func Get(i Icon) string {
	def, ok := icons[i]
	if !ok {
		return ""
	}
	return def.byKind[Current()]
}

// Styled is Get rendered in the icon's status color.
func Styled(i Icon) string {
	def, ok := icons[i]
	if !ok {
		return ""
	}
	glyph := def.byKind[Current()]
	if def.tone == "" {
		return glyph
	}
	return style.Fg(def.tone)(glyph)
}
