package scoring

import (
	"math"

	"github.com/apexfit/fitscore/internal/domain/model"
)

// Variation multipliers for non-standard push-up protocols.
//
// wallPushUpFactor is 0.4 here. The legacy scoring paths disagreed on this
// value: the scorer applied 0.4 while the report path applied 0.5. The
// discrepancy is unresolved by the protocol owners; 0.4 is the value in
// effect and both call sites now share this constant.
const (
	modifiedPushUpFactor = 0.7
	wallPushUpFactor     = 0.4
)

// AdjustPushUp scales a base push-up score for the test variant.
// The result is rounded to the nearest integer and clamped to [1,4].
func AdjustPushUp(base int, typ model.PushUpType) int {
	var factor float64
	switch typ {
	case model.PushUpModified:
		factor = modifiedPushUpFactor
	case model.PushUpWall:
		factor = wallPushUpFactor
	default:
		return clampInt(base, 1, 4)
	}
	adjusted := int(math.Round(float64(base) * factor))
	return clampInt(adjusted, 1, 4)
}

// CarryLoadFactor returns the multiplicative adjustment for a farmer's
// carry performed at a non-standard percentage of the protocol load.
//
// Below 50% of the standard load the score scales down proportionally,
// floored at 0.5. Above 100% it scales up gently, capped at 1.2.
func CarryLoadFactor(pct float64) float64 {
	switch {
	case pct < 50:
		return math.Max(0.5, pct/50)
	case pct > 100:
		return math.Min(1.2, 1+(pct-100)/500)
	default:
		return 1.0
	}
}
