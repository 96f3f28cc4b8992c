package game

import (
	"testing"

	"github.com/iburimskiy/perfect-circle/internal/scorer"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSession(t *testing.T) {
	Convey("Given a new session", t, func() {
		s := NewSession()

		Convey("Then there is no score yet", func() {
			_, ok := s.Current()
			So(ok, ShouldBeFalse)
			_, ok = s.High()
			So(ok, ShouldBeFalse)
			So(s.ID(), ShouldNotBeEmpty)
		})

		Convey("When gestures finish with rising and falling scores", func() {
			first := s.Finish(60, nil)
			second := s.Finish(85, nil)
			third := s.Finish(40, nil)

			Convey("Then the best score only ever rises", func() {
				So(first, ShouldBeTrue)
				So(second, ShouldBeTrue)
				So(third, ShouldBeFalse)
				high, _ := s.High()
				So(high, ShouldEqual, 85.0)
				current, _ := s.Current()
				So(current, ShouldEqual, 40.0)
				So(s.Attempts(), ShouldEqual, 3)
			})
		})

		Convey("When a gesture is not evaluable", func() {
			s.Finish(70, nil)
			newBest := s.Finish(0, scorer.ErrEmptyPath)

			Convey("Then the current score is cleared but the best is kept", func() {
				So(newBest, ShouldBeFalse)
				_, ok := s.Current()
				So(ok, ShouldBeFalse)
				high, _ := s.High()
				So(high, ShouldEqual, 70.0)
			})
		})

		Convey("When a live score arrives", func() {
			s.Live(55, nil)

			Convey("Then it is current but not yet a best", func() {
				current, ok := s.Current()
				So(ok, ShouldBeTrue)
				So(current, ShouldEqual, 55.0)
				_, ok = s.High()
				So(ok, ShouldBeFalse)
			})

			Convey("And then a not-evaluable live score arrives", func() {
				s.Live(0, scorer.ErrDegeneratePath)
				_, ok := s.Current()
				So(ok, ShouldBeFalse)
			})
		})

		Convey("When the session is reset", func() {
			id := s.ID()
			s.Finish(99, nil)
			s.Reset()

			Convey("Then everything starts over under a new ID", func() {
				_, ok := s.High()
				So(ok, ShouldBeFalse)
				So(s.Attempts(), ShouldEqual, 0)
				So(s.ID(), ShouldNotEqual, id)
			})
		})
	})
}
