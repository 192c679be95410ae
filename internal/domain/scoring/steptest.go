package scoring

import (
	"github.com/apexfit/fitscore/pkg/metrics"
)

// Harvard step test constants. The protocol runs for 180 seconds and the
// PFI denominator doubles the sum of the three recovery heart rates.
const (
	stepTestDurationSeconds = 180
	minHeartRate            = 40
	maxHeartRate            = 220
)

// StepTest scores the Harvard step test from three post-exercise heart-rate
// readings (bpm), each clamped to [40,220]. It returns the 1-4 score and the
// raw Physical Fitness Index for display.
//
// PFI = (100 * duration) / (2 * (hr1 + hr2 + hr3)).
func (e *Engine) StepTest(hr1, hr2, hr3 float64) (int, float64) {
	metrics.RecordTestScored(TestStepTest)

	sum := clampFloat(hr1, minHeartRate, maxHeartRate) +
		clampFloat(hr2, minHeartRate, maxHeartRate) +
		clampFloat(hr3, minHeartRate, maxHeartRate)

	pfi := (100 * stepTestDurationSeconds) / (2 * sum)
	return e.thresholds.StepTest().Tier(pfi), pfi
}
