// Package aggregate combines individual test scores into category scores.
//
// Category sub-scores are scaled to their 0-100 contribution before the
// final weighting; the overall score is a single weighted blend of the four
// already-scaled categories. Both legacy call paths are collapsed into this
// one scheme.
package aggregate

import (
	"math"

	"github.com/apexfit/fitscore/internal/domain/model"
	"github.com/apexfit/fitscore/internal/domain/types"
)

const (
	// Scale factors from the 1-4 test scale onto 0-100 categories.
	// Cardio keeps the legacy *20 factor, so it tops out at 80.
	strengthScale = 25
	mobilityScale = 25
	balanceScale  = 25
	cardioScale   = 20

	// Missing individual scores default to the minimum rather than
	// null-propagating, so categories are always-defined floats.
	missingScore = 1.0

	maxCategoryScore = 100
)

// Weights holds the category weights for the overall score.
type Weights struct {
	Strength float64
	Mobility float64
	Balance  float64
	Cardio   float64
}

// DefaultWeights returns the protocol category weights.
func DefaultWeights() Weights {
	return Weights{Strength: 0.30, Mobility: 0.25, Balance: 0.25, Cardio: 0.20}
}

// Inputs carries the individual scores feeding category aggregation.
// Nil scores default to the minimum. Raw movement-quality ordinals are on
// the 0-5 scale and get normalized here.
type Inputs struct {
	PushUp              *float64
	FarmersCarry        *float64
	ToeTouch            *float64
	ShoulderMobilityRaw *int
	Balance             *float64
	OverheadSquatRaw    *int
	StepTest            *float64
	PFI                 *float64

	Environment  model.Environment
	TemperatureC *float64
}

// Categories computes the four category scores and the weighted overall.
func Categories(in Inputs, w Weights) types.CategoryScores {
	strength := avg(orMin(in.PushUp), orMin(in.FarmersCarry)) * strengthScale
	mobility := avg(orMin(in.ToeTouch), normalizedOrMin(in.ShoulderMobilityRaw)) * mobilityScale
	balance := avg(orMin(in.Balance), normalizedOrMin(in.OverheadSquatRaw)) * balanceScale
	cardio := orMin(in.StepTest) * cardioScale

	scores := types.CategoryScores{
		Strength: strength,
		Mobility: mobility,
		Balance:  balance,
		Cardio:   cardio,
		PFI:      in.PFI,
	}
	scores.Overall = strength*w.Strength + mobility*w.Mobility + balance*w.Balance + cardio*w.Cardio

	return applyTemperature(scores, in.Environment, in.TemperatureC)
}

// Normalize05 remaps a 0-5 movement-quality ordinal onto the 1-4 scale
// used elsewhere: 0 -> 1.0, then 1 + (raw-1)*0.6 for raw >= 1.
//
// Raw scores 0 and 1 both land on 1.0; the low end of the legacy scale is
// flattened and a no-data 0 is indistinguishable from a scored 1. Kept as-is
// pending a protocol decision.
func Normalize05(raw int) float64 {
	if raw < 0 {
		raw = 0
	}
	if raw > 5 {
		raw = 5
	}
	if raw == 0 {
		return 1.0
	}
	return 1 + float64(raw-1)*0.6
}

func orMin(v *float64) float64 {
	if v == nil {
		return missingScore
	}
	return *v
}

func normalizedOrMin(raw *int) float64 {
	if raw == nil {
		return missingScore
	}
	return Normalize05(*raw)
}

func avg(a, b float64) float64 {
	return (a + b) / 2
}

// Temperature adjustment constants. Within the comfort band scores stand;
// outside it, outdoor tests earn a small compensation per degree of
// deviation, capped at 10%.
const (
	comfortMinC      = 15.0
	comfortMaxC      = 25.0
	maxTempAdjust    = 0.10
	adjustPerDegreeC = 0.01
)

// applyTemperature compensates outdoor assessments for adverse temperature.
// Only overall, strength, and cardio are adjusted; mobility and balance are
// indoor-type tests and stand as scored.
func applyTemperature(scores types.CategoryScores, env model.Environment, tempC *float64) types.CategoryScores {
	if env != model.EnvOutdoor || tempC == nil {
		return scores
	}

	var deviation float64
	switch {
	case *tempC < comfortMinC:
		deviation = comfortMinC - *tempC
	case *tempC > comfortMaxC:
		deviation = *tempC - comfortMaxC
	default:
		return scores
	}

	factor := 1 + math.Min(maxTempAdjust, deviation*adjustPerDegreeC)
	scores.Overall = math.Min(maxCategoryScore, scores.Overall*factor)
	scores.Strength = math.Min(maxCategoryScore, scores.Strength*factor)
	scores.Cardio = math.Min(maxCategoryScore, scores.Cardio*factor)
	return scores
}
