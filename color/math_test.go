package color

import (
	"math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func TestClamp(t *testing.T) {
	Convey("Clamp", t, func() {
		So(Clamp(5.0, 0, 1), ShouldEqual, 1)
		So(Clamp(-5.0, 0, 1), ShouldEqual, 0)
		So(Clamp(0.25, 0, 1), ShouldEqual, 0.25)

		Convey("Non-finite input yields the minimum", func() {
			So(Clamp(math.NaN(), 2, 3), ShouldEqual, 2)
			So(Clamp(math.Inf(1), 2, 3), ShouldEqual, 2)
			So(Clamp(math.Inf(-1), 2, 3), ShouldEqual, 2)
		})
	})
}

func TestNormalizeHex(t *testing.T) {
	Convey("NormalizeHex", t, func() {
		So(NormalizeHex("#AbCdEf").MustGet(), ShouldEqual, "#abcdef")
		So(NormalizeHex("#fA0").MustGet(), ShouldEqual, "#ffaa00")

		Convey("Rejects other shapes", func() {
			for _, s := range []string{"abcdef", "#abcd", "#ggg", "", "#abcdef0", "red"} {
				So(NormalizeHex(s).IsAbsent(), ShouldBeTrue)
			}
		})
	})
}

func TestHexRoundTrip(t *testing.T) {
	Convey("hex -> rgb -> hex -> rgb is stable", t, func() {
		for _, h := range []string{"#000000", "#ffffff", "#123456", "#A1b2C3", "#0f0", "#808080"} {
			first := HexToRGB(h).MustGet()
			again := HexToRGB(RGBToHex(first)).MustGet()
			So(again, ShouldResemble, first)
		}

		Convey("Hex output is lowercase and zero padded", func() {
			So(RGBToHex(RGB{R: 1, G: 2, B: 255}), ShouldEqual, "#0102ff")
			So(RGBToHex(RGB{R: -4, G: 300, B: 10}), ShouldEqual, "#00ff0a")
		})
	})
}

func TestHSL(t *testing.T) {
	Convey("HSL conversions", t, func() {
		Convey("Achromatic input has zero saturation", func() {
			hsl := RGBToHSL(RGB{R: 120, G: 120, B: 120})
			So(hsl.S, ShouldEqual, 0)
			So(HSLToRGB(hsl), ShouldResemble, RGB{R: 120, G: 120, B: 120})
		})

		Convey("Pure red", func() {
			hsl := RGBToHSL(RGB{R: 255})
			So(hsl.H, ShouldEqual, 0)
			So(hsl.S, ShouldEqual, 1)
			So(hsl.L, ShouldEqual, 0.5)
		})

		Convey("Round trip stays within one step per channel", func() {
			for r := 0; r <= 255; r += 17 {
				for g := 0; g <= 255; g += 17 {
					for b := 0; b <= 255; b += 17 {
						in := RGB{R: r, G: g, B: b}
						out := HSLToRGB(RGBToHSL(in))
						So(abs(out.R-r) <= 1 && abs(out.G-g) <= 1 && abs(out.B-b) <= 1, ShouldBeTrue)
					}
				}
			}
		})
	})
}

func TestHSV(t *testing.T) {
	Convey("HSV conversions", t, func() {
		So(RGBToHSV(RGB{}), ShouldResemble, HSV{})
		So(HSVToRGB(HSV{H: 0, S: 1, V: 1}), ShouldResemble, RGB{R: 255})
		So(HSVToRGB(HSV{H: 1.0 / 3, S: 1, V: 1}), ShouldResemble, RGB{G: 255})
		So(HSVToRGB(HSV{H: 2.0 / 3, S: 1, V: 1}), ShouldResemble, RGB{B: 255})

		Convey("Hue of exactly 1 wraps into the first sector", func() {
			So(HSVToRGB(HSV{H: 1, S: 1, V: 1}), ShouldResemble, RGB{R: 255})
		})

		Convey("Round trip stays within one step per channel", func() {
			for r := 0; r <= 255; r += 51 {
				for g := 0; g <= 255; g += 15 {
					for b := 0; b <= 255; b += 17 {
						in := RGB{R: r, G: g, B: b}
						out := HSVToRGB(RGBToHSV(in))
						So(abs(out.R-r) <= 1 && abs(out.G-g) <= 1 && abs(out.B-b) <= 1, ShouldBeTrue)
					}
				}
			}
		})
	})
}
