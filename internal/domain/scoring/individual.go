package scoring

import (
	"context"

	"github.com/apexfit/fitscore/internal/domain/model"
)

// Individual collects the per-test scores for one assessment.
// Nil means the test was not performed.
type Individual struct {
	PushUp           *int     `json:"push_up,omitempty"`
	Balance          *float64 `json:"balance,omitempty"`
	ToeTouch         *int     `json:"toe_touch,omitempty"`
	ShoulderMobility *int     `json:"shoulder_mobility,omitempty"`
	FarmersCarry     *float64 `json:"farmers_carry,omitempty"`
	StepTest         *int     `json:"step_test,omitempty"`
	PFI              *float64 `json:"pfi,omitempty"`
}

// ScoreAll runs every scorer whose measurements are present in the
// assessment. Absent measurements leave the corresponding score nil; the
// aggregation layer owns the missing-data default.
func (e *Engine) ScoreAll(ctx context.Context, a model.Assessment) Individual {
	var out Individual
	gender := a.Profile.Gender
	age := a.Profile.Age

	if a.PushUpReps != nil {
		s := e.PushUp(ctx, gender, age, *a.PushUpReps, a.PushUpType)
		out.PushUp = &s
	}

	if a.BalanceOpenRight != nil && a.BalanceOpenLeft != nil &&
		a.BalanceClosedRight != nil && a.BalanceClosedLeft != nil {
		s := e.SingleLegBalance(ctx, gender, age,
			*a.BalanceOpenRight, *a.BalanceOpenLeft,
			*a.BalanceClosedRight, *a.BalanceClosedLeft)
		out.Balance = &s
	}

	if a.ToeTouchCM != nil {
		s := e.ToeTouch(*a.ToeTouchCM)
		out.ToeTouch = &s
	}

	if a.ShoulderMobilityRaw != nil {
		s := e.ShoulderMobility(*a.ShoulderMobilityRaw)
		out.ShoulderMobility = &s
	}

	switch {
	case a.CarryTimeSeconds != nil:
		s := e.FarmersCarry(ctx, gender, age, *a.CarryTimeSeconds, a.BodyWeightPercent)
		out.FarmersCarry = &s
	case a.CarryDistanceM != nil:
		s := e.FarmersCarryDistance(ctx, gender, age, *a.CarryDistanceM, nil)
		out.FarmersCarry = &s
	}

	if a.StepHR1 != nil && a.StepHR2 != nil && a.StepHR3 != nil {
		score, pfi := e.StepTest(*a.StepHR1, *a.StepHR2, *a.StepHR3)
		out.StepTest = &score
		out.PFI = &pfi
	}

	return out
}
