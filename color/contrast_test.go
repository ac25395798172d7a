package color

import (
	"regexp"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestContrastText(t *testing.T) {
	Convey("ContrastText", t, func() {
		So(ContrastText(RGB{R: 255, G: 255, B: 255}), ShouldEqual, TextDark)
		So(ContrastText(RGB{}), ShouldEqual, TextLight)

		Convey("Mid gray sits below the 0.5 luminance threshold", func() {
			gray := RGB{R: 128, G: 128, B: 128}
			So(RelativeLuminance(gray), ShouldAlmostEqual, 0.2159, 0.001)
			So(ContrastText(gray), ShouldEqual, TextLight)
		})

		Convey("Bright yellow takes dark text", func() {
			So(ContrastText(RGB{R: 255, G: 255}), ShouldEqual, TextDark)
		})
	})
}

func TestHueByIndex(t *testing.T) {
	Convey("HueByIndex", t, func() {
		So(HueByIndex(0), ShouldEqual, "hsl(0, 64%, 54%)")
		So(HueByIndex(1), ShouldEqual, "hsl(47, 64%, 54%)")
		So(HueDegrees(-1), ShouldEqual, 313)

		Convey("Adjacent indices differ", func() {
			for i := -400; i < 400; i++ {
				So(HueByIndex(i), ShouldNotEqual, HueByIndex(i+1))
			}
		})

		Convey("The sequence visits every degree before repeating", func() {
			seen := map[int]bool{}
			for i := 0; i < 360; i++ {
				seen[HueDegrees(i)] = true
			}
			So(len(seen), ShouldEqual, 360)
			So(HueDegrees(360), ShouldEqual, HueDegrees(0))
		})

		Convey("Hex rendering", func() {
			So(regexp.MustCompile(`^#[0-9a-f]{6}$`).MatchString(HueHex(3)), ShouldBeTrue)
		})
	})
}

func TestComposite(t *testing.T) {
	Convey("Composite", t, func() {
		white, black := RGB{R: 255, G: 255, B: 255}, RGB{}
		So(Composite(white, black, 1), ShouldResemble, white)
		So(Composite(white, black, 0), ShouldResemble, black)
		So(Composite(white, black, 0.5), ShouldResemble, RGB{R: 128, G: 128, B: 128})
	})
}
