package theme

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

type recordingSink struct {
	writes int
	tokens map[string]string
}

func newRecordingSink() *recordingSink {
	return &recordingSink{tokens: map[string]string{}}
}

func (s *recordingSink) SetToken(name, value string) {
	s.writes++
	s.tokens[name] = value
}

func TestApplier(t *testing.T) {
	Convey("Given an applier", t, func() {
		var applier Applier
		sink := newRecordingSink()
		tokens := Resolve(DefaultState())

		Convey("Applying an unchanged map twice writes once", func() {
			So(applier.Apply(tokens, sink), ShouldBeTrue)
			So(applier.Apply(tokens, sink), ShouldBeFalse)
			So(sink.writes, ShouldEqual, len(TokenNames()))
			So(sink.tokens[TokenBackground], ShouldEqual, tokens.Background)
		})

		Convey("A changed map is written in full", func() {
			applier.Apply(tokens, sink)
			changed := tokens
			changed.Highlight = "1, 2, 3"
			So(applier.Apply(changed, sink), ShouldBeTrue)
			So(sink.writes, ShouldEqual, 2*len(TokenNames()))
			So(sink.tokens[TokenHighlight], ShouldEqual, "1, 2, 3")
		})

		Convey("Empty tokens are not written", func() {
			applier.Apply(TokenMap{Foreground: "1, 1, 1"}, sink)
			So(sink.writes, ShouldEqual, 1)
		})

		Convey("Reset forces the next write", func() {
			applier.Apply(tokens, sink)
			applier.Reset()
			So(applier.Apply(tokens, sink), ShouldBeTrue)
		})

		Convey("SinkFunc adapts a function", func() {
			var names []string
			applier.Apply(tokens, SinkFunc(func(name, _ string) {
				names = append(names, name)
			}))
			So(names, ShouldResemble, TokenNames())
		})
	})
}
