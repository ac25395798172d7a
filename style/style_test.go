package style

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSwatch(t *testing.T) {
	Convey("Swatch", t, func() {
		Convey("keeps the label for valid colors", func() {
			So(Swatch("#ffffff", "bg"), ShouldContainSubstring, "bg")
		})

		Convey("returns invalid colors unstyled", func() {
			So(Swatch("nope", "bg"), ShouldEqual, "bg")
		})
	})
}
