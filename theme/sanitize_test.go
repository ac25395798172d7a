package theme

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSanitize(t *testing.T) {
	Convey("Sanitize", t, func() {
		Convey("Non-object payloads yield the default state", func() {
			for _, raw := range []any{nil, "dark", 42, []any{"x"}} {
				result := Sanitize(raw)
				So(result.Defaulted(), ShouldBeTrue)
				So(result.State.ActiveColors, ShouldResemble, DefaultTokens())
				So(result.State.CustomThemes, ShouldBeEmpty)
			}
		})

		Convey("An empty object yields the defaultDark tokens", func() {
			result := Sanitize(map[string]any{})
			So(result.Defaulted(), ShouldBeTrue)
			So(result.State.ActiveColors, ShouldResemble, PresetByID("defaultDark").MustGet().Tokens)
		})

		Convey("An activeId naming a preset adopts its tokens", func() {
			result := Sanitize(map[string]any{"activeId": "defaultLight"})
			So(result.Source, ShouldEqual, SourcePreset)
			So(result.State.ActiveID, ShouldEqual, "defaultLight")
			So(result.State.ActiveColors, ShouldResemble, PresetByID("defaultLight").MustGet().Tokens)
		})

		Convey("Explicit activeColors win over activeId", func() {
			result := Sanitize(map[string]any{
				"activeId":     "paper",
				"activeColors": map[string]any{"--card-hl": "1, 2, 3"},
			})
			So(result.Source, ShouldEqual, SourceActiveColors)
			So(result.State.ActiveColors.Highlight, ShouldEqual, "1, 2, 3")
			So(result.State.ActiveColors.Foreground, ShouldEqual, DefaultTokens().Foreground)
		})

		Convey("Empty activeColors fall through to the fallbacks", func() {
			result := Sanitize(map[string]any{
				"activeId":     "midnight",
				"activeColors": map[string]any{},
			})
			So(result.Source, ShouldEqual, SourcePreset)
			So(result.State.ActiveColors, ShouldResemble, PresetByID("midnight").MustGet().Tokens)
		})

		Convey("Unknown keys are dropped and values coerced to strings", func() {
			result := Sanitize(map[string]any{
				"activeColors": map[string]any{
					"--card-fg":       10,
					"--card-bg-alpha": 0.5,
					"--bogus":         "x",
				},
			})
			tokens := result.State.ActiveColors
			So(tokens.Foreground, ShouldEqual, "10")
			So(tokens.BackgroundAlpha, ShouldEqual, "0.5")
			So(tokens.Background, ShouldEqual, "rgba(18, 18, 18, 0.5)")
			_, ok := tokens.Get("--bogus")
			So(ok, ShouldBeFalse)
		})

		Convey("The background triple is reconciled", func() {
			Convey("from val and alpha", func() {
				tokens := Sanitize(map[string]any{
					"activeColors": map[string]any{
						"--card-bg-val":   "0, 128, 255",
						"--card-bg-alpha": "0.25",
					},
				}).State.ActiveColors
				So(tokens.Background, ShouldEqual, "rgba(0, 128, 255, 0.25)")
			})

			Convey("from the composed string", func() {
				tokens := Sanitize(map[string]any{
					"activeColors": map[string]any{"--card-bg": "rgba(10, 20, 30, 0.4)"},
				}).State.ActiveColors
				So(tokens.BackgroundVal, ShouldEqual, "10, 20, 30")
				So(tokens.BackgroundAlpha, ShouldEqual, "0.4")
				So(tokens.Background, ShouldEqual, "rgba(10, 20, 30, 0.4)")
			})

			Convey("from a hex composed string", func() {
				tokens := Sanitize(map[string]any{
					"activeColors": map[string]any{"--card-bg": "#FF0000"},
				}).State.ActiveColors
				So(tokens.BackgroundVal, ShouldEqual, "255, 0, 0")
				So(tokens.BackgroundAlpha, ShouldEqual, "1")
				So(tokens.Background, ShouldEqual, "rgba(255, 0, 0, 1)")
			})

			Convey("back to the seed when nothing parses", func() {
				tokens := Sanitize(map[string]any{
					"activeColors": map[string]any{
						"--card-bg":     "nope",
						"--card-bg-val": "also nope",
					},
				}).State.ActiveColors
				defaults := DefaultTokens()
				So(tokens.Background, ShouldEqual, defaults.Background)
				So(tokens.BackgroundVal, ShouldEqual, defaults.BackgroundVal)
				So(tokens.BackgroundAlpha, ShouldEqual, defaults.BackgroundAlpha)
			})
		})

		Convey("Custom themes keep only well-formed entries", func() {
			result := Sanitize(map[string]any{
				"customThemes": map[string]any{
					"mine":  map[string]any{"label": "Mine", "tokens": map[string]any{"--card-hl": "9, 9, 9"}},
					"label": map[string]any{"label": 3, "tokens": map[string]any{}},
					"empty": map[string]any{"label": "No tokens"},
					"flat":  "x",
				},
			})
			So(result.State.CustomThemes, ShouldHaveLength, 1)
			mine := result.State.CustomThemes["mine"]
			So(mine.Label, ShouldEqual, "Mine")
			So(mine.Tokens.Highlight, ShouldEqual, "9, 9, 9")
			So(mine.Tokens.Foreground, ShouldEqual, DefaultTokens().Foreground)
		})

		Convey("An activeId naming a custom theme adopts it", func() {
			result := Sanitize(map[string]any{
				"activeId": "mine",
				"customThemes": map[string]any{
					"mine": map[string]any{"label": "Mine", "tokens": map[string]any{"--card-hl": "9, 9, 9"}},
				},
			})
			So(result.Source, ShouldEqual, SourceCustomTheme)
			So(result.State.ActiveColors.Highlight, ShouldEqual, "9, 9, 9")
		})

		Convey("The legacy custom object is used last", func() {
			legacy := map[string]any{"--card-fg": "1, 1, 1"}

			result := Sanitize(map[string]any{"activeId": "custom", "custom": legacy})
			So(result.Source, ShouldEqual, SourceLegacyCustom)
			So(result.State.ActiveID, ShouldEqual, CustomID)
			So(result.State.ActiveColors.Foreground, ShouldEqual, "1, 1, 1")

			result = Sanitize(map[string]any{"activeId": "paper", "custom": legacy})
			So(result.Source, ShouldEqual, SourcePreset)
		})
	})
}
