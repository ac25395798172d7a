package theme

import (
	"testing"

	"github.com/panoshell/panoshell/color"
	. "github.com/smartystreets/goconvey/convey"
)

func TestResolve(t *testing.T) {
	Convey("Resolve", t, func() {
		Convey("Fills empty tokens from the defaults", func() {
			tokens := Resolve(State{ActiveColors: TokenMap{Highlight: "1, 2, 3"}})
			defaults := DefaultTokens()
			So(tokens.Highlight, ShouldEqual, "1, 2, 3")
			So(tokens.Foreground, ShouldEqual, defaults.Foreground)
			So(tokens.Background, ShouldEqual, defaults.Background)
		})

		Convey("Renders an opaque element background as rgb()", func() {
			for _, in := range []string{"rgba(1, 2, 3, 1)", "rgb(1,2,3)", "#010203"} {
				tokens := Resolve(State{ActiveColors: TokenMap{ElementBackground: in}})
				So(tokens.ElementBackground, ShouldEqual, "rgb(1, 2, 3)")
			}
		})

		Convey("Keeps a translucent element background as rgba()", func() {
			tokens := Resolve(State{ActiveColors: TokenMap{ElementBackground: "rgba(0,0,0,.5)"}})
			So(tokens.ElementBackground, ShouldEqual, "rgba(0, 0, 0, 0.5)")
		})

		Convey("Leaves an unparseable element background alone", func() {
			tokens := Resolve(State{ActiveColors: TokenMap{ElementBackground: "var(--x)"}})
			So(tokens.ElementBackground, ShouldEqual, "var(--x)")
		})
	})
}

func TestContrastFor(t *testing.T) {
	Convey("ContrastFor", t, func() {
		white := color.RGB{R: 255, G: 255, B: 255}
		black := color.RGB{}

		So(ContrastFor(PresetByID("defaultDark").MustGet().Tokens, white), ShouldEqual, color.TextLight)
		So(ContrastFor(PresetByID("defaultLight").MustGet().Tokens, black), ShouldEqual, color.TextDark)
		So(ContrastFor(TokenMap{Background: "nope"}, white), ShouldEqual, color.TextDark)
	})
}
