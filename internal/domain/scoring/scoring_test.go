package scoring_test

import (
	"context"
	"testing"

	"github.com/apexfit/fitscore/internal/domain/model"
	"github.com/apexfit/fitscore/internal/domain/scoring"
	. "github.com/smartystreets/goconvey/convey"
)

func TestEngine_SingleLegBalance(t *testing.T) {
	Convey("Given a scoring engine", t, func() {
		ctx := context.Background()
		e := scoring.NewEngine()

		Convey("When every hold clears the excellent tier", func() {
			score := e.SingleLegBalance(ctx, model.Male, 30, 50, 50, 35, 35)

			Convey("Then the blended score should be 4", func() {
				So(score, ShouldEqual, 4.0)
			})
		})

		Convey("When open holds are excellent but closed holds are poor", func() {
			score := e.SingleLegBalance(ctx, model.Male, 30, 50, 50, 5, 5)

			Convey("Then the closed-eyes weighting should dominate", func() {
				// open 4 * 0.4 + closed 1 * 0.6 = 2.2
				So(score, ShouldAlmostEqual, 2.2)
			})
		})

		Convey("When right and left differ", func() {
			score := e.SingleLegBalance(ctx, model.Male, 30, 60, 30, 30, 10)

			Convey("Then the per-condition average should be scored", func() {
				// open avg 45 -> 4, closed avg 20 -> 3: 4*0.4 + 3*0.6 = 3.4
				So(score, ShouldAlmostEqual, 3.4)
			})
		})

		Convey("When hold times exceed the 120s clamp", func() {
			a := e.SingleLegBalance(ctx, model.Male, 30, 500, 500, 500, 500)
			b := e.SingleLegBalance(ctx, model.Male, 30, 120, 120, 120, 120)

			Convey("Then the clamped and exact inputs should score the same", func() {
				So(a, ShouldEqual, b)
			})
		})

		Convey("When all holds are zero", func() {
			score := e.SingleLegBalance(ctx, model.Male, 30, 0, 0, 0, 0)

			Convey("Then the score should bottom out at 1", func() {
				So(score, ShouldEqual, 1.0)
			})
		})

		Convey("Then the score should stay within [1,4] for arbitrary inputs", func() {
			for _, times := range [][4]float64{
				{-5, -5, -5, -5},
				{0, 120, 0, 120},
				{1000, 1000, 1000, 1000},
				{17, 3, 29, 44},
			} {
				s := e.SingleLegBalance(ctx, model.Female, 40, times[0], times[1], times[2], times[3])
				So(s, ShouldBeBetweenOrEqual, 1.0, 4.0)
			}
		})
	})
}

func TestEngine_ToeTouch(t *testing.T) {
	Convey("Given a scoring engine", t, func() {
		e := scoring.NewEngine()

		Convey("Then the fixed breakpoints should map to tiers", func() {
			So(e.ToeTouch(5.0), ShouldEqual, 4)
			So(e.ToeTouch(12.0), ShouldEqual, 4)
			So(e.ToeTouch(0.0), ShouldEqual, 3)
			So(e.ToeTouch(4.9), ShouldEqual, 3)
			So(e.ToeTouch(-10.0), ShouldEqual, 2)
			So(e.ToeTouch(-0.1), ShouldEqual, 2)
			So(e.ToeTouch(-12.0), ShouldEqual, 1)
		})

		Convey("Then a longer reach should never score lower", func() {
			prev := 0
			for cm := -30.0; cm <= 20; cm += 0.5 {
				s := e.ToeTouch(cm)
				So(s, ShouldBeGreaterThanOrEqualTo, prev)
				prev = s
			}
		})
	})
}

func TestEngine_ShoulderMobility(t *testing.T) {
	Convey("Given a scoring engine", t, func() {
		e := scoring.NewEngine()

		Convey("Then the ordinal should pass through clamped to [0,3]", func() {
			So(e.ShoulderMobility(0), ShouldEqual, 0)
			So(e.ShoulderMobility(2), ShouldEqual, 2)
			So(e.ShoulderMobility(3), ShouldEqual, 3)
			So(e.ShoulderMobility(7), ShouldEqual, 3)
			So(e.ShoulderMobility(-1), ShouldEqual, 0)
		})
	})
}

func TestEngine_StepTest(t *testing.T) {
	Convey("Given a scoring engine", t, func() {
		e := scoring.NewEngine()

		Convey("When recovery heart rates are 75, 80, 85", func() {
			score, pfi := e.StepTest(75, 80, 85)

			Convey("Then PFI should be 37.5 and the score 1", func() {
				// 18000 / (2 * 240) = 37.5, below the average tier at 65.
				So(pfi, ShouldAlmostEqual, 37.5)
				So(score, ShouldEqual, 1)
			})
		})

		Convey("When recovery is very fast", func() {
			score, pfi := e.StepTest(60, 55, 50)

			Convey("Then the PFI should clear a higher tier", func() {
				// 18000 / (2 * 165) = 54.5..., still below average tier.
				So(pfi, ShouldAlmostEqual, 54.5454, 0.001)
				So(score, ShouldEqual, 1)
			})
		})

		Convey("When heart rates are at the clamp floor", func() {
			score, pfi := e.StepTest(40, 40, 40)

			Convey("Then PFI should be 75 and the score 2", func() {
				// 18000 / (2 * 120) = 75, between the average and good tiers.
				So(pfi, ShouldAlmostEqual, 75.0)
				So(score, ShouldEqual, 2)
			})
		})

		Convey("When heart rates exceed the clamp ceiling", func() {
			_, pfiClamped := e.StepTest(500, 500, 500)
			_, pfiExact := e.StepTest(220, 220, 220)

			Convey("Then the clamped and exact inputs should agree", func() {
				So(pfiClamped, ShouldEqual, pfiExact)
			})
		})

		Convey("Then lower heart-rate sums should never score lower", func() {
			prevScore := 4
			for hr := 40.0; hr <= 220; hr += 5 {
				s, _ := e.StepTest(hr, hr, hr)
				So(s, ShouldBeLessThanOrEqualTo, prevScore)
				prevScore = s
			}
		})
	})
}
