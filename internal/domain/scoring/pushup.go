package scoring

import (
	"context"

	"github.com/apexfit/fitscore/internal/adapters/repository"
	"github.com/apexfit/fitscore/internal/domain/model"
	"github.com/apexfit/fitscore/pkg/metrics"
)

// PushUp scores a push-up test on the 1-4 scale.
//
// Age is clamped to [0,120] and reps to >= 0; the score saturates at 4 with
// no upper rep cap. Unrecognized genders use the Male table and unrecognized
// push-up types score as standard. Modified and wall variants scale the base
// score down, see AdjustPushUp.
func (e *Engine) PushUp(ctx context.Context, gender model.Gender, age, reps int, typ model.PushUpType) int {
	metrics.RecordTestScored(TestPushUp)

	age = clampInt(age, 0, 120)
	if reps < 0 {
		reps = 0
	}

	band := e.band(ctx, repository.Key{
		TestType:  TestPushUp,
		Gender:    gender,
		Age:       age,
		Variation: string(typ),
	}, e.thresholds.PushUp(gender, age))

	base := band.Tier(float64(reps))
	return AdjustPushUp(base, typ)
}
