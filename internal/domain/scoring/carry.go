package scoring

import (
	"context"

	"github.com/apexfit/fitscore/internal/adapters/repository"
	"github.com/apexfit/fitscore/internal/domain/model"
	"github.com/apexfit/fitscore/pkg/metrics"
)

// FarmersCarry scores the farmer's-carry test from the hold time in seconds.
//
// Thresholds are gender-specific. When bodyWeightPct is non-nil the score is
// scaled by CarryLoadFactor for a non-standard carry load. The result is
// clamped to [1.0,4.0].
func (e *Engine) FarmersCarry(ctx context.Context, gender model.Gender, age int, seconds float64, bodyWeightPct *float64) float64 {
	metrics.RecordTestScored(TestFarmersCarry)

	age = clampInt(age, 0, 120)
	if seconds < 0 {
		seconds = 0
	}

	band := e.band(ctx, repository.Key{
		TestType:  TestFarmersCarry,
		Gender:    gender,
		Age:       age,
		Variation: "standard",
	}, e.thresholds.CarryTime(gender))

	score := float64(band.Tier(seconds))
	if bodyWeightPct != nil {
		score *= CarryLoadFactor(*bodyWeightPct)
	}
	return clampFloat(score, 1.0, 4.0)
}

// FarmersCarryDistance is the fallback variant used when the primary
// time-based path is unavailable. The distance score is averaged with a
// time score when a hold time is also present; otherwise the distance
// score stands alone. Clamped to [1.0,4.0].
func (e *Engine) FarmersCarryDistance(ctx context.Context, gender model.Gender, age int, meters float64, seconds *float64) float64 {
	metrics.RecordTestScored(TestFarmersCarry)

	age = clampInt(age, 0, 120)
	if meters < 0 {
		meters = 0
	}

	distBand := e.band(ctx, repository.Key{
		TestType:  TestFarmersCarry,
		Gender:    gender,
		Age:       age,
		Variation: "distance",
	}, e.thresholds.CarryDistance(gender))

	score := float64(distBand.Tier(meters))
	if seconds != nil {
		secs := *seconds
		if secs < 0 {
			secs = 0
		}
		timeBand := e.thresholds.CarryTime(gender)
		score = (score + float64(timeBand.Tier(secs))) / 2
	}
	return clampFloat(score, 1.0, 4.0)
}
