package scoring

import (
	"context"

	"github.com/apexfit/fitscore/internal/adapters/repository"
	"github.com/apexfit/fitscore/internal/domain/model"
	"github.com/apexfit/fitscore/pkg/metrics"
)

// Closed-eyes trials are the harder condition and carry more weight in the
// combined balance score.
const (
	balanceOpenWeight   = 0.4
	balanceClosedWeight = 0.6
	maxBalanceSeconds   = 120
)

// SingleLegBalance scores the single-leg balance test.
//
// Right and left hold times are averaged per condition, each time clamped to
// [0,120] seconds. Each condition is scored against its own tier table and
// the two scores are blended, closed eyes weighted higher. The result is a
// float in [1,4].
func (e *Engine) SingleLegBalance(ctx context.Context, gender model.Gender, age int, openRight, openLeft, closedRight, closedLeft float64) float64 {
	metrics.RecordTestScored(TestBalance)

	age = clampInt(age, 0, 120)
	openAvg := (clampFloat(openRight, 0, maxBalanceSeconds) + clampFloat(openLeft, 0, maxBalanceSeconds)) / 2
	closedAvg := (clampFloat(closedRight, 0, maxBalanceSeconds) + clampFloat(closedLeft, 0, maxBalanceSeconds)) / 2

	openBand := e.band(ctx, repository.Key{
		TestType:   TestBalance,
		Gender:     gender,
		Age:        age,
		Variation:  "standard",
		Conditions: string(model.EyesOpen),
	}, e.thresholds.Balance(model.EyesOpen))

	closedBand := e.band(ctx, repository.Key{
		TestType:   TestBalance,
		Gender:     gender,
		Age:        age,
		Variation:  "standard",
		Conditions: string(model.EyesClosed),
	}, e.thresholds.Balance(model.EyesClosed))

	openScore := float64(openBand.Tier(openAvg))
	closedScore := float64(closedBand.Tier(closedAvg))

	return openScore*balanceOpenWeight + closedScore*balanceClosedWeight
}
