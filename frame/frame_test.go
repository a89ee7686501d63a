package frame_test

import (
	"math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/larray-project/larray-eurostat/frame"
)

func TestFrameSet(t *testing.T) {
	Convey("Given an empty frame with two column levels", t, func() {
		f := frame.New([]string{"GEO", "SEX"}, "TIME_PERIOD")

		Convey("When cells are set for two columns and two rows", func() {
			So(f.Set([]string{"BE", "F"}, "2015", 22.2), ShouldBeNil)
			So(f.Set([]string{"EU28", "F"}, "2015", 24.4), ShouldBeNil)
			So(f.Set([]string{"BE", "F"}, "2014", 21.5), ShouldBeNil)

			Convey("Then columns and rows appear in first-seen order", func() {
				So(f.Columns, ShouldResemble, [][]string{{"BE", "F"}, {"EU28", "F"}})
				So(f.Rows, ShouldResemble, [][]string{{"2015"}, {"2014"}})
			})

			Convey("Then set cells hold their values and unset cells are NaN", func() {
				So(f.At(0, 0), ShouldEqual, 22.2)
				So(f.At(0, 1), ShouldEqual, 24.4)
				So(f.At(1, 0), ShouldEqual, 21.5)
				So(math.IsNaN(f.At(1, 1)), ShouldBeTrue)
			})
		})

		Convey("When a cell is set with a short column key", func() {
			err := f.Set([]string{"BE"}, "2015", 22.2)

			Convey("Then the expected error is returned", func() {
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, "key length does not match")
			})
		})
	})
}

func TestFrameTranspose(t *testing.T) {
	Convey("Given a filled frame", t, func() {
		f := frame.New([]string{"GEO", "SEX"}, "TIME_PERIOD")
		So(f.Set([]string{"BE", "F"}, "2015", 22.2), ShouldBeNil)
		So(f.Set([]string{"EU28", "F"}, "2015", 24.4), ShouldBeNil)
		So(f.Set([]string{"BE", "F"}, "2014", 21.5), ShouldBeNil)

		Convey("When the frame is transposed", func() {
			tr := f.Transpose()

			Convey("Then row and column levels are swapped", func() {
				So(tr.RowNames, ShouldResemble, []string{"GEO", "SEX"})
				So(tr.ColumnNames, ShouldResemble, []string{"TIME_PERIOD"})
				So(tr.Rows, ShouldResemble, [][]string{{"BE", "F"}, {"EU28", "F"}})
				So(tr.Columns, ShouldResemble, [][]string{{"2015"}, {"2014"}})
			})

			Convey("Then cells move with their keys", func() {
				So(tr.At(0, 0), ShouldEqual, 22.2)
				So(tr.At(0, 1), ShouldEqual, 21.5)
				So(tr.At(1, 0), ShouldEqual, 24.4)
				So(math.IsNaN(tr.At(1, 1)), ShouldBeTrue)
			})

			Convey("Then transposing twice restores the original layout", func() {
				rt := tr.Transpose()
				So(rt.RowNames, ShouldResemble, f.RowNames)
				So(rt.Columns, ShouldResemble, f.Columns)
				So(rt.At(0, 0), ShouldEqual, f.At(0, 0))
			})
		})
	})
}
