package app

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/apexfit/fitscore/internal/domain/aggregate"
	"github.com/apexfit/fitscore/internal/domain/model"
	"github.com/apexfit/fitscore/internal/domain/risk"
)

func fp(v float64) *float64 { return &v }
func ip(v int) *int         { return &v }

func fullAssessment() model.Assessment {
	return model.Assessment{
		Profile:    model.Profile{Gender: model.Male, Age: 25},
		PushUpReps: ip(35),
		PushUpType: model.PushUpStandard,

		CarryTimeSeconds: fp(60),

		BalanceOpenRight:   fp(50),
		BalanceOpenLeft:    fp(50),
		BalanceClosedRight: fp(40),
		BalanceClosedLeft:  fp(40),

		ToeTouchCM:          fp(6),
		ShoulderMobilityRaw: ip(3),
		OverheadSquatRaw:    ip(4),

		StepHR1: fp(40),
		StepHR2: fp(40),
		StepHR3: fp(40),
	}
}

func TestServiceEvaluate(t *testing.T) {
	Convey("Given a service with a fixed clock", t, func() {
		at := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
		svc := New(WithClock(func() time.Time { return at }))

		Convey("When a complete assessment is evaluated", func() {
			report, err := svc.Evaluate(context.Background(), fullAssessment())

			Convey("Then the report carries a valid id and timestamp", func() {
				So(err, ShouldBeNil)
				_, parseErr := uuid.Parse(report.ID)
				So(parseErr, ShouldBeNil)
				So(report.CreatedAt.Equal(at), ShouldBeTrue)
				So(report.Profile.Age, ShouldEqual, 25)
			})

			Convey("Then every individual score is populated", func() {
				So(err, ShouldBeNil)
				So(*report.Individual.PushUp, ShouldEqual, 3)
				So(*report.Individual.Balance, ShouldEqual, 4.0)
				So(*report.Individual.ToeTouch, ShouldEqual, 4)
				So(*report.Individual.ShoulderMobility, ShouldEqual, 3)
				So(*report.Individual.FarmersCarry, ShouldEqual, 4)
				So(*report.Individual.StepTest, ShouldEqual, 2)
				So(*report.Individual.PFI, ShouldAlmostEqual, 75)
			})

			Convey("Then category scores match the weighted blend", func() {
				So(err, ShouldBeNil)
				So(report.Categories.Strength, ShouldAlmostEqual, 87.5)
				So(report.Categories.Mobility, ShouldAlmostEqual, 77.5)
				So(report.Categories.Balance, ShouldAlmostEqual, 85)
				So(report.Categories.Cardio, ShouldAlmostEqual, 40)
				So(report.Categories.Overall, ShouldAlmostEqual, 74.875)
				So(*report.Categories.PFI, ShouldAlmostEqual, 75)
			})

			Convey("Then the risk report flags the lagging cardio category", func() {
				So(err, ShouldBeNil)
				So(report.Risk.CategoryImbalance, ShouldNotBeNil)
				So(report.Risk.CategoryImbalance.WorstCategory, ShouldEqual, "cardio")
				So(report.RiskScore, ShouldAlmostEqual, 22.41, 0.01)
				So(report.Risk.OverallRiskLevel, ShouldEqual, risk.LevelLowModerate)
			})
		})

		Convey("When an empty assessment is evaluated", func() {
			report, err := svc.Evaluate(context.Background(), model.Assessment{
				Profile: model.Profile{Gender: model.Female, Age: 40},
			})

			Convey("Then categories fall back to the missing-data floor", func() {
				So(err, ShouldBeNil)
				So(report.Individual.PushUp, ShouldBeNil)
				So(report.Individual.StepTest, ShouldBeNil)
				So(report.Categories.Strength, ShouldAlmostEqual, 25)
				So(report.Categories.Mobility, ShouldAlmostEqual, 25)
				So(report.Categories.Balance, ShouldAlmostEqual, 25)
				So(report.Categories.Cardio, ShouldAlmostEqual, 20)
				So(report.Categories.Overall, ShouldAlmostEqual, 24)
			})

			Convey("Then only the weak-category rules fire", func() {
				So(err, ShouldBeNil)
				// balance 11.25 + strength 3.75 + cardio 4
				So(report.RiskScore, ShouldAlmostEqual, 19)
				So(report.Risk.OverallRiskLevel, ShouldEqual, risk.LevelLow)
			})
		})

		Convey("When the context is already cancelled", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			report, err := svc.Evaluate(ctx, fullAssessment())

			Convey("Then the evaluation is refused", func() {
				So(err, ShouldNotBeNil)
				So(report, ShouldBeNil)
			})
		})
	})
}

func TestServiceCustomWeights(t *testing.T) {
	Convey("Given a service weighting cardio alone", t, func() {
		svc := New(WithCategoryWeights(aggregate.Weights{Cardio: 1}))

		Convey("When a complete assessment is evaluated", func() {
			report, err := svc.Evaluate(context.Background(), fullAssessment())

			Convey("Then the overall equals the cardio category", func() {
				So(err, ShouldBeNil)
				So(report.Categories.Overall, ShouldAlmostEqual, report.Categories.Cardio)
			})
		})
	})
}

func TestServiceScoreKnowledge(t *testing.T) {
	Convey("Given an answer key with two questions", t, func() {
		svc := New()
		key := []model.MCQKey{
			{QuestionID: "q1", Answer: "B", Points: 1},
			{QuestionID: "q2", Answer: "D", Points: 1},
		}

		Convey("When one of two responses is correct", func() {
			got := svc.ScoreKnowledge([]model.MCQResponse{
				{QuestionID: "q1", Answer: "b"},
				{QuestionID: "q2", Answer: "A"},
			}, key)

			Convey("Then the percentage reflects the earned points", func() {
				So(got, ShouldAlmostEqual, 50)
			})
		})
	})
}
