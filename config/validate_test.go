package config

import (
	"testing"

	"github.com/panoshell/panoshell/icon"
	"github.com/panoshell/panoshell/key"
	"github.com/panoshell/panoshell/store"
	"github.com/panoshell/panoshell/theme"
	. "github.com/smartystreets/goconvey/convey"
)

func TestValidate(t *testing.T) {
	Convey("Validate", t, func() {
		Convey("accepts every registered default", func() {
			for name, field := range Default {
				So(Validate(name, field.Value), ShouldBeNil)
			}
		})

		Convey("rejects unknown enumerated values", func() {
			So(Validate(key.StoreScope, "site"), ShouldNotBeNil)
			So(Validate(key.StoreBackend, "cloud"), ShouldNotBeNil)
			So(Validate(key.ThemeDefaultPreset, "sepia"), ShouldNotBeNil)
			So(Validate(key.IconsVariant, "ascii"), ShouldNotBeNil)
			So(Validate(key.LogsLevel, "loud"), ShouldNotBeNil)
		})

		Convey("names the closest allowed value", func() {
			err := Validate(key.StoreBackend, "extention")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, `did you mean "extension"?`)
		})

		Convey("accepts logrus level aliases", func() {
			So(Validate(key.LogsLevel, "warn"), ShouldBeNil)
		})

		Convey("accepts anything for keys without a rule", func() {
			So(Validate(key.StoreNamespace, "anything"), ShouldBeNil)
		})
	})
}

func TestAllowed(t *testing.T) {
	Convey("Enumerated settings carry their allowed values", t, func() {
		So(Default[key.StoreScope].Allowed, ShouldResemble, store.ScopeModes())
		So(Default[key.StoreBackend].Allowed, ShouldResemble, store.BackendModes())
		So(Default[key.ThemeDefaultPreset].Allowed, ShouldResemble, theme.PresetIDs())
		So(Default[key.IconsVariant].Allowed, ShouldResemble, icon.AvailableVariants())
		So(Default[key.LogsLevel].Allowed, ShouldContain, "debug")
		So(Default[key.StoreNamespace].Allowed, ShouldBeEmpty)

		Convey("Every default is one of its allowed values", func() {
			for _, field := range Default {
				if len(field.Allowed) > 0 {
					So(field.Allowed, ShouldContain, field.Value)
				}
			}
		})
	})

	Convey("Suggest and Complete", t, func() {
		So(Suggest(key.StoreScope, "Pag").MustGet(), ShouldEqual, "page")
		So(Suggest(key.StoreNamespace, "x").IsAbsent(), ShouldBeTrue)
		So(Suggest("no.such.key", "x").IsAbsent(), ShouldBeTrue)

		So(Complete(key.IconsVariant, "n"), ShouldResemble, []string{"nerd"})
		So(Complete(key.LogsWrite, ""), ShouldBeEmpty)
	})
}
