package config

import (
	"encoding/json"
	"testing"

	"github.com/panoshell/panoshell/filesystem"
	"github.com/panoshell/panoshell/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		So(Setup(), ShouldBeNil)

		Convey("Defaults are registered with viper", func() {
			for name, field := range Default {
				So(viper.Get(name), ShouldResemble, field.Value)
			}
			So(viper.GetString(key.StoreScope), ShouldEqual, "page")
			So(viper.GetString(key.ThemeDefaultPreset), ShouldEqual, "defaultDark")
		})

		Convey("EnvKeyReplacer converts dots to underscores", func() {
			So(EnvKeyReplacer.Replace("store.backend"), ShouldEqual, "store_backend")
		})
	})
}

func TestField(t *testing.T) {
	Convey("Given a registered field", t, func() {
		So(Setup(), ShouldBeNil)
		field := Default[key.StoreBackend]

		Convey("Env is prefixed and upper-cased", func() {
			So(field.Env(), ShouldEqual, "PANOSHELL_STORE_BACKEND")
		})

		Convey("MarshalJSON reports value, default and type", func() {
			data, err := json.Marshal(&field)
			So(err, ShouldBeNil)

			var out map[string]any
			So(json.Unmarshal(data, &out), ShouldBeNil)
			So(out["key"], ShouldEqual, key.StoreBackend)
			So(out["default"], ShouldEqual, "auto")
			So(out["type"], ShouldEqual, "string")
		})

		Convey("Pretty mentions the key", func() {
			So(field.Pretty(), ShouldContainSubstring, key.StoreBackend)
		})
	})
}
