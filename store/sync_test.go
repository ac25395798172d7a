package store

import (
	"testing"

	"github.com/panoshell/panoshell/constant"
	"github.com/panoshell/panoshell/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSyncArea(t *testing.T) {
	Convey("Given a synchronized area", t, func() {
		filesystem.SetMemMapFs()
		area := NewSyncArea("/config/storage")

		var received []ChangeSet
		var areas []string
		unsubscribe := area.Subscribe(func(changes ChangeSet, name string) {
			received = append(received, changes)
			areas = append(areas, name)
		})

		Convey("Set notifies with old and new values", func() {
			So(area.Set("k", map[string]any{"a": 1}), ShouldBeNil)
			So(area.Set("k", map[string]any{"a": 2}), ShouldBeNil)

			So(len(received), ShouldEqual, 2)
			So(areas[0], ShouldEqual, constant.AreaSync)
			So(received[1]["k"].OldValue, ShouldResemble, map[string]any{"a": 1.0})
			So(received[1]["k"].NewValue, ShouldResemble, map[string]any{"a": 2.0})
			So(area.Get("k").MustGet(), ShouldResemble, map[string]any{"a": 2.0})
		})

		Convey("Setting an identical value is silent", func() {
			So(area.Set("k", "v"), ShouldBeNil)
			So(area.Set("k", "v"), ShouldBeNil)
			So(len(received), ShouldEqual, 1)
		})

		Convey("Remove notifies only for present keys", func() {
			So(area.Remove("missing"), ShouldBeNil)
			So(len(received), ShouldEqual, 0)
			So(area.Set("k", "v"), ShouldBeNil)
			So(area.Remove("k"), ShouldBeNil)
			So(len(received), ShouldEqual, 2)
			So(received[1]["k"].NewValue, ShouldBeNil)
			So(area.Get("k").IsAbsent(), ShouldBeTrue)
		})

		Convey("Unsubscribe is idempotent", func() {
			unsubscribe()
			unsubscribe()
			So(area.Set("k", "v"), ShouldBeNil)
			So(received, ShouldBeEmpty)
		})

		Convey("A panicking listener does not starve the others", func() {
			unsubscribe()
			calls := 0
			area.Subscribe(func(ChangeSet, string) { panic("boom") })
			area.Subscribe(func(ChangeSet, string) { calls++ })
			So(func() { _ = area.Set("k", "v") }, ShouldNotPanic)
			So(calls, ShouldEqual, 1)
		})

		Convey("Reload reports edits made by another writer", func() {
			So(area.Set("k", "old"), ShouldBeNil)
			other := NewSyncArea("/config/storage")
			So(other.Set("k", "new"), ShouldBeNil)
			So(other.Set("extra", true), ShouldBeNil)

			area.Reload()
			last := received[len(received)-1]
			So(last["k"], ShouldResemble, Change{OldValue: "old", NewValue: "new"})
			So(last["extra"], ShouldResemble, Change{NewValue: true})
			So(area.Get("k").MustGet(), ShouldEqual, "new")
		})
	})
}
