package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNewManager(t *testing.T) {
	Convey("Given a manager with default options", t, func() {
		m := NewManager(WithRegistry(prometheus.NewRegistry()))

		Convey("Then it should carry the engine defaults", func() {
			So(m.namespace, ShouldEqual, "fitscore")
			So(m.subsystem, ShouldEqual, "engine")
			So(m.enabled, ShouldBeTrue)
		})
	})

	Convey("Given a manager with custom options", t, func() {
		reg := prometheus.NewRegistry()
		m := NewManager(
			WithRegistry(reg),
			WithNamespace("custom"),
			WithSubsystem("scoring"),
			WithHistogramBuckets([]float64{1, 5, 25}),
			WithEnabled(false),
		)

		Convey("Then the options should be applied", func() {
			So(m.namespace, ShouldEqual, "custom")
			So(m.subsystem, ShouldEqual, "scoring")
			So(m.histogramBuckets, ShouldResemble, []float64{1, 5, 25})
			So(m.enabled, ShouldBeFalse)
		})
	})
}

func TestPackageHelpers(t *testing.T) {
	Convey("Given the global manager", t, func() {
		Convey("When recording through the package helpers", func() {
			// None of these should panic, including label variants.
			So(func() {
				RecordAssessmentScored()
				RecordTestScored("pushup")
				RecordEvaluationDuration(1.5)
				RecordStandardsCacheHit()
				RecordStandardsCacheMiss()
				RecordStandardsFallback("farmers_carry")
				RecordStandardsError()
				RecordRiskLevel("low")
			}, ShouldNotPanic)
		})

		Convey("Then the registry should gather without error", func() {
			families, err := Registry().Gather()
			So(err, ShouldBeNil)
			So(len(families), ShouldBeGreaterThan, 0)
		})
	})
}
