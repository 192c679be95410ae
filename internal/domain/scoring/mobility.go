package scoring

import (
	"github.com/apexfit/fitscore/pkg/metrics"
)

// ToeTouch scores the standing toe-touch test from the reach distance in cm.
// Positive distances mean reaching past the floor. Fixed breakpoints, no
// gender or age dependency.
func (e *Engine) ToeTouch(distanceCM float64) int {
	metrics.RecordTestScored(TestToeTouch)
	return e.thresholds.ToeTouch().Tier(distanceCM)
}

// ShoulderMobility passes through an externally supplied FMS-style ordinal,
// clamped to [0,3]. It is not computed from a continuous measurement.
func (e *Engine) ShoulderMobility(raw int) int {
	metrics.RecordTestScored(TestShoulderMob)
	return clampInt(raw, 0, 3)
}
