package larray_test

import (
	"math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/larray-project/larray-eurostat/frame"
	"github.com/larray-project/larray-eurostat/larray"
)

// testFrame builds a transposed series table: rows keyed by (GEO, SEX)
// tuples, columns by time period, as produced by the fetcher before array
// conversion.
func testFrame() *frame.Frame {
	f := frame.New([]string{"GEO", "SEX"}, "TIME_PERIOD")
	So(f.Set([]string{"EU28", "F"}, "2015", 24.4), ShouldBeNil)
	So(f.Set([]string{"BE", "F"}, "2015", 22.2), ShouldBeNil)
	So(f.Set([]string{"BE", "M"}, "2015", 20.0), ShouldBeNil)
	So(f.Set([]string{"BE", "F"}, "2014", 21.5), ShouldBeNil)
	return f.Transpose()
}

func TestFromFrame(t *testing.T) {
	Convey("Given a transposed series frame", t, func() {
		f := testFrame()

		Convey("When it is converted without label sorting", func() {
			arr, err := larray.FromFrame(f, false)
			So(err, ShouldBeNil)

			Convey("Then row levels become leading axes and the column level the trailing axis", func() {
				So(arr.AxisNames(), ShouldResemble, []string{"GEO", "SEX", "TIME_PERIOD"})
			})

			Convey("Then axis labels keep first-seen order", func() {
				axes := arr.Axes()
				So(axes[0].Labels, ShouldResemble, []string{"EU28", "BE"})
				So(axes[1].Labels, ShouldResemble, []string{"F", "M"})
				So(axes[2].Labels, ShouldResemble, []string{"2015", "2014"})
			})
		})

		Convey("When it is converted with label sorting", func() {
			arr, err := larray.FromFrame(f, true)
			So(err, ShouldBeNil)

			Convey("Then every axis's labels are sorted", func() {
				axes := arr.Axes()
				So(axes[0].Labels, ShouldResemble, []string{"BE", "EU28"})
				So(axes[1].Labels, ShouldResemble, []string{"F", "M"})
				So(axes[2].Labels, ShouldResemble, []string{"2014", "2015"})
			})

			Convey("Then cells are still addressed by their original labels", func() {
				v, err := arr.Value("BE", "F", "2015")
				So(err, ShouldBeNil)
				So(v, ShouldEqual, 22.2)

				v, err = arr.Value("EU28", "F", "2015")
				So(err, ShouldBeNil)
				So(v, ShouldEqual, 24.4)

				v, err = arr.Value("BE", "F", "2014")
				So(err, ShouldBeNil)
				So(v, ShouldEqual, 21.5)
			})

			Convey("Then cells absent from the frame are NaN", func() {
				v, err := arr.Value("EU28", "M", "2014")
				So(err, ShouldBeNil)
				So(math.IsNaN(v), ShouldBeTrue)
			})

			Convey("Then shape and size follow the label sets", func() {
				So(arr.Shape(), ShouldResemble, []int{2, 2, 2})
				So(arr.Size(), ShouldEqual, 8)
			})
		})
	})
}

func TestValue(t *testing.T) {
	Convey("Given a converted array", t, func() {
		arr, err := larray.FromFrame(testFrame(), true)
		So(err, ShouldBeNil)

		Convey("When a value is requested with the wrong number of labels", func() {
			_, err := arr.Value("BE", "F")

			Convey("Then the expected error is returned", func() {
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, "expected 3 labels")
			})
		})

		Convey("When a value is requested with an unknown label", func() {
			_, err := arr.Value("BE", "X", "2015")

			Convey("Then the expected error is returned", func() {
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, `label "X" not found on axis "SEX"`)
			})
		})
	})
}

func TestWithAxes(t *testing.T) {
	Convey("Given a converted array", t, func() {
		arr, err := larray.FromFrame(testFrame(), true)
		So(err, ShouldBeNil)

		Convey("When its axes are replaced with same-length axes", func() {
			replaced, err := arr.WithAxes([]larray.Axis{
				larray.NewAxis("GEO", []string{"BE: Belgium", "EU28: European Union"}),
				larray.NewAxis("SEX", []string{"F: Females", "M: Males"}),
				larray.NewAxis("TIME_PERIOD", []string{"2014", "2015"}),
			})
			So(err, ShouldBeNil)

			Convey("Then the new array carries the replacement labels", func() {
				So(replaced.Axes()[0].Labels, ShouldResemble, []string{"BE: Belgium", "EU28: European Union"})
			})

			Convey("Then data is unchanged and addressable via the new labels", func() {
				v, err := replaced.Value("BE: Belgium", "F: Females", "2015")
				So(err, ShouldBeNil)
				So(v, ShouldEqual, 22.2)
			})

			Convey("Then the original array keeps its axes", func() {
				So(arr.Axes()[0].Labels, ShouldResemble, []string{"BE", "EU28"})
			})
		})

		Convey("When a replacement axis has a different number of labels", func() {
			_, err := arr.WithAxes([]larray.Axis{
				larray.NewAxis("GEO", []string{"BE"}),
				larray.NewAxis("SEX", []string{"F", "M"}),
				larray.NewAxis("TIME_PERIOD", []string{"2014", "2015"}),
			})

			Convey("Then the expected error is returned", func() {
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, `axis "GEO" has 2 labels`)
			})
		})

		Convey("When the number of replacement axes differs", func() {
			_, err := arr.WithAxes([]larray.Axis{larray.NewAxis("GEO", []string{"BE", "EU28"})})

			Convey("Then the expected error is returned", func() {
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, "expected 3 axes")
			})
		})
	})
}
