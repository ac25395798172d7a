package theme

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// CustomID is the legacy activeId meaning "use the stored custom colors".
const CustomID = "custom"

// Preset is a built-in theme.
type Preset struct {
	ID     string
	Label  string
	Tokens TokenMap
}

var presets = []Preset{
	{
		ID:    "defaultDark",
		Label: "Default dark",
		Tokens: TokenMap{
			Foreground:        "235, 235, 235",
			BackgroundVal:     "18, 18, 18",
			BackgroundAlpha:   "0.85",
			Background:        "rgba(18, 18, 18, 0.85)",
			ElementBackground: "rgba(255, 255, 255, 0.08)",
			Highlight:         "64, 156, 255",
		},
	},
	{
		ID:    "defaultLight",
		Label: "Default light",
		Tokens: TokenMap{
			Foreground:        "20, 20, 20",
			BackgroundVal:     "250, 250, 250",
			BackgroundAlpha:   "0.9",
			Background:        "rgba(250, 250, 250, 0.9)",
			ElementBackground: "rgba(0, 0, 0, 0.06)",
			Highlight:         "0, 102, 204",
		},
	},
	{
		ID:    "midnight",
		Label: "Midnight",
		Tokens: TokenMap{
			Foreground:        "220, 224, 255",
			BackgroundVal:     "12, 16, 40",
			BackgroundAlpha:   "0.9",
			Background:        "rgba(12, 16, 40, 0.9)",
			ElementBackground: "rgba(120, 140, 255, 0.12)",
			Highlight:         "140, 120, 255",
		},
	},
	{
		ID:    "paper",
		Label: "Paper",
		Tokens: TokenMap{
			Foreground:        "60, 50, 40",
			BackgroundVal:     "245, 238, 220",
			BackgroundAlpha:   "1",
			Background:        "rgba(245, 238, 220, 1)",
			ElementBackground: "rgb(235, 225, 200)",
			Highlight:         "200, 120, 40",
		},
	},
}

// Presets returns the built-in themes; the first one is the default.
func Presets() []Preset {
	return append([]Preset(nil), presets...)
}

// DefaultTokens returns the first preset's tokens.
func DefaultTokens() TokenMap {
	return presets[0].Tokens
}

// PresetByID looks up a built-in theme.
func PresetByID(id string) mo.Option[Preset] {
	p, ok := lo.Find(presets, func(p Preset) bool { return p.ID == id })
	if !ok {
		return mo.None[Preset]()
	}
	return mo.Some(p)
}

// PresetIDs lists built-in theme ids in order.
func PresetIDs() []string {
	return lo.Map(presets, func(p Preset, _ int) string { return p.ID })
}

// SuggestPreset returns preset ids containing the characters of id in order, closest first.
func SuggestPreset(id string) []string {
	ranks := fuzzy.RankFindFold(id, PresetIDs())
	if len(ranks) == 0 {
		return nil
	}
	sort.Sort(ranks)
	return lo.Map(ranks, func(r fuzzy.Rank, _ int) string { return r.Target })
}
