package icon

import "github.com/panoshell/panoshell/color"

// Icon identifies a status symbol.
type Icon int

const (
	Success Icon = iota + 1
	Fail
	Warn
	Progress
	Info
	Theme
	Bucket
	Watch
)

var icons = map[Icon]glyphs{
	Success: {
		tone:   color.Green,
		byKind: map[Variant]string{
			Emoji:   "🎉",
			Nerd:    "",
			Plain:   "✓",
			Kaomoji: "(ᵔ◡ᵔ)",
			Squares: "🟩",
		},
	},
	Fail: {
		tone:   color.Red,
		byKind: map[Variant]string{
			Emoji:   "😵",
			Nerd:    "",
			Plain:   "✗",
			Kaomoji: "(×_×)",
			Squares: "🟥",
		},
	},
	Warn: {
		tone:   color.Yellow,
		byKind: map[Variant]string{
			Emoji:   "⚠️",
			Nerd:    "",
			Plain:   "!",
			Kaomoji: "(o_O)",
			Squares: "🟨",
		},
	},
	Progress: {
		tone:   color.Blue,
		byKind: map[Variant]string{
			Emoji:   "⏳",
			Nerd:    "",
			Plain:   "…",
			Kaomoji: "(・_・)ノ",
			Squares: "🟦",
		},
	},
	Info: {
		tone:   color.Cyan,
		byKind: map[Variant]string{
			Emoji:   "💡",
			Nerd:    "",
			Plain:   "i",
			Kaomoji: "(・ω・)",
			Squares: "🟪",
		},
	},
	Theme: {
		tone:   color.Purple,
		byKind: map[Variant]string{
			Emoji:   "🎨",
			Nerd:    "",
			Plain:   "*",
			Kaomoji: "(◕‿◕)",
			Squares: "🟧",
		},
	},
	Bucket: {
		byKind: map[Variant]string{
			Emoji:   "🪣",
			Nerd:    "",
			Plain:   "#",
			Kaomoji: "[＿]",
			Squares: "🟫",
		},
	},
	Watch: {
		byKind: map[Variant]string{
			Emoji:   "👀",
			Nerd:    "",
			Plain:   "~",
			Kaomoji: "(⊙_⊙)",
			Squares: "⬛",
		},
	},
}
