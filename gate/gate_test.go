package gate

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestGate(t *testing.T) {
	Convey("Given an idle gate with a subscriber", t, func() {
		g := New()
		var events []bool
		unsubscribe := g.Subscribe(func(active bool) {
			events = append(events, active)
		})

		Convey("Nested enters notify only on the first edge", func() {
			g.Enter()
			g.Enter()
			g.Leave()

			So(g.Active(), ShouldBeTrue)
			So(g.Depth(), ShouldEqual, 1)
			So(events, ShouldResemble, []bool{true})

			Convey("And the final leave notifies idle", func() {
				g.Leave()
				So(g.Active(), ShouldBeFalse)
				So(events, ShouldResemble, []bool{true, false})
			})
		})

		Convey("Unmatched leaves are ignored", func() {
			g.Leave()
			g.Leave()
			So(g.Depth(), ShouldEqual, 0)
			So(events, ShouldBeEmpty)

			g.Enter()
			So(events, ShouldResemble, []bool{true})
		})

		Convey("Unsubscribe is idempotent", func() {
			unsubscribe()
			unsubscribe()
			g.Enter()
			g.Leave()
			So(events, ShouldBeEmpty)
		})

		Convey("Listeners run in registration order and survive panics", func() {
			unsubscribe()
			var order []string
			g.Subscribe(func(bool) { order = append(order, "first") })
			g.Subscribe(func(bool) { panic("boom") })
			g.Subscribe(func(bool) { order = append(order, "third") })

			So(func() { g.Enter() }, ShouldNotPanic)
			So(order, ShouldResemble, []string{"first", "third"})
		})

		Convey("A listener may unsubscribe itself during delivery", func() {
			calls := 0
			var self func()
			self = g.Subscribe(func(bool) {
				calls++
				self()
			})
			g.Enter()
			g.Leave()
			So(calls, ShouldEqual, 1)
		})
	})
}

func TestRunWhenIdle(t *testing.T) {
	Convey("RunWhenIdle", t, func() {
		g := New()

		Convey("Runs immediately when idle", func() {
			ran := 0
			g.RunWhenIdle(func() { ran++ })
			So(ran, ShouldEqual, 1)
		})

		Convey("Waits for the next idle edge and runs once", func() {
			ran := 0
			g.Enter()
			g.RunWhenIdle(func() { ran++ })
			So(ran, ShouldEqual, 0)

			g.Leave()
			So(ran, ShouldEqual, 1)

			g.Enter()
			g.Leave()
			So(ran, ShouldEqual, 1)
		})

		Convey("Survives nested activity", func() {
			ran := 0
			g.Enter()
			g.RunWhenIdle(func() { ran++ })
			g.Enter()
			g.Leave()
			So(ran, ShouldEqual, 0)
			g.Leave()
			So(ran, ShouldEqual, 1)
		})
	})
}
