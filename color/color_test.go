package color

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	. "github.com/smartystreets/goconvey/convey"
)

func TestTerminalColors(t *testing.T) {
	Convey("Terminal colors", t, func() {
		Convey("RGB values render as hex", func() {
			So(Terminal(RGB{R: 255, G: 183, B: 3}), ShouldEqual, lipgloss.Color("#ffb703"))
		})

		Convey("Text on a background follows contrast", func() {
			So(TextOn(RGB{R: 255, G: 255, B: 255}), ShouldEqual, lipgloss.Color(TextDark))
			So(TextOn(RGB{}), ShouldEqual, lipgloss.Color(TextLight))
		})

		Convey("Bright lifts basic ANSI colors only", func() {
			So(Bright(Purple), ShouldEqual, lipgloss.Color("13"))
			So(Bright(Cyan), ShouldEqual, lipgloss.Color("14"))
			So(Bright(New("13")), ShouldEqual, lipgloss.Color("13"))
			So(Bright(New("#808080")), ShouldEqual, lipgloss.Color("#808080"))
		})
	})
}
