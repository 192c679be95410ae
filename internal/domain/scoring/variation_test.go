package scoring_test

import (
	"testing"

	"github.com/apexfit/fitscore/internal/domain/model"
	"github.com/apexfit/fitscore/internal/domain/scoring"
	. "github.com/smartystreets/goconvey/convey"
)

func TestAdjustPushUp(t *testing.T) {
	Convey("Given a base push-up score", t, func() {
		Convey("When the variant is standard", func() {
			Convey("Then the score should pass through clamped", func() {
				So(scoring.AdjustPushUp(4, model.PushUpStandard), ShouldEqual, 4)
				So(scoring.AdjustPushUp(1, model.PushUpStandard), ShouldEqual, 1)
				So(scoring.AdjustPushUp(0, model.PushUpStandard), ShouldEqual, 1)
				So(scoring.AdjustPushUp(9, model.PushUpStandard), ShouldEqual, 4)
			})
		})

		Convey("When the variant is modified", func() {
			Convey("Then the score should scale by 0.7, rounded", func() {
				So(scoring.AdjustPushUp(4, model.PushUpModified), ShouldEqual, 3) // 2.8
				So(scoring.AdjustPushUp(3, model.PushUpModified), ShouldEqual, 2) // 2.1
				So(scoring.AdjustPushUp(2, model.PushUpModified), ShouldEqual, 1) // 1.4
				So(scoring.AdjustPushUp(1, model.PushUpModified), ShouldEqual, 1) // 0.7 -> floored
			})
		})

		Convey("When the variant is wall", func() {
			Convey("Then the score should scale by 0.4, rounded with a floor of 1", func() {
				So(scoring.AdjustPushUp(4, model.PushUpWall), ShouldEqual, 2) // 1.6
				So(scoring.AdjustPushUp(3, model.PushUpWall), ShouldEqual, 1) // 1.2
				So(scoring.AdjustPushUp(2, model.PushUpWall), ShouldEqual, 1) // 0.8
				So(scoring.AdjustPushUp(1, model.PushUpWall), ShouldEqual, 1) // 0.4
			})
		})
	})
}
