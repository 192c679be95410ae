// Package risk computes a 0-100 injury-risk score with an explainable
// breakdown from category scores, individual scores, and movement-quality
// flags.
//
// Seven independent rules each add to a running total; the final score is
// the raw sum capped at 100, not an average. Every input is optional and a
// missing field means the rule simply does not trigger, so an empty Input
// always yields (0, low).
package risk

import (
	"fmt"
	"math"
)

// Level is the four-bucket overall risk classification.
type Level string

// Risk levels, mapped from the numeric score by fixed thresholds.
const (
	LevelLow         Level = "low"
	LevelLowModerate Level = "low-moderate"
	LevelModerate    Level = "moderate"
	LevelHigh        Level = "high"
)

// Fixed score thresholds for the level mapping.
const (
	highThreshold        = 70
	moderateThreshold    = 40
	lowModerateThreshold = 20
)

// LevelFor maps a risk score onto its level.
func LevelFor(score float64) Level {
	switch {
	case score >= highThreshold:
		return LevelHigh
	case score >= moderateThreshold:
		return LevelModerate
	case score >= lowModerateThreshold:
		return LevelLowModerate
	default:
		return LevelLow
	}
}

// Input carries everything the risk rules consume. All numeric fields are
// optional; nil means the measurement or score is unavailable.
type Input struct {
	// Category scores on the 0-100 scale.
	Strength *float64
	Mobility *float64
	Balance  *float64
	Cardio   *float64

	// Individual scores.
	PushUpScore         *float64 // 1-4
	ToeTouchScore       *int     // 1-4
	ShoulderMobilityRaw *int     // 0-3 FMS ordinal
	OverheadSquatRaw    *int     // 0-5 movement-quality ordinal

	// Bilateral measurements (seconds / cm).
	BalanceOpenRight    *float64
	BalanceOpenLeft     *float64
	BalanceClosedRight  *float64
	BalanceClosedLeft   *float64
	ShoulderAsymmetryCM *float64

	// Movement-quality flags.
	ShoulderPain bool
	KneeValgus   bool
	ForwardLean  bool
	HeelLift     bool
}

// ImbalanceFactor reports a category deviating too far from the mean.
type ImbalanceFactor struct {
	FlaggedCategories []string `json:"flagged_categories"`
	WorstCategory     string   `json:"worst_category"`
	MaxDeviationPct   float64  `json:"max_deviation_pct"`
	Contribution      float64  `json:"contribution"`
}

// AsymmetryFactor reports a significant left/right difference.
type AsymmetryFactor struct {
	Signal        string  `json:"signal"`
	DifferencePct float64 `json:"difference_pct,omitempty"`
	DifferenceCM  float64 `json:"difference_cm,omitempty"`
	Contribution  float64 `json:"contribution"`
}

// MobilityFactor reports a mobility test at the floor of its scale.
type MobilityFactor struct {
	Test         string  `json:"test"`
	Score        int     `json:"score"`
	Contribution float64 `json:"contribution"`
}

// CompensationFactor reports movement compensations on the overhead squat.
type CompensationFactor struct {
	Count        int      `json:"count"`
	Flags        []string `json:"flags"`
	Pain         bool     `json:"pain"`
	Contribution float64  `json:"contribution"`
}

// Summary holds the top concerns extracted from the triggered rules.
type Summary struct {
	PrimaryConcerns []string `json:"primary_concerns"`
}

// Factors is the structured risk report.
type Factors struct {
	CategoryImbalance     *ImbalanceFactor    `json:"category_imbalance,omitempty"`
	BilateralAsymmetry    []AsymmetryFactor   `json:"bilateral_asymmetry,omitempty"`
	PoorMobility          []MobilityFactor    `json:"poor_mobility,omitempty"`
	PoorBalance           []string            `json:"poor_balance,omitempty"`
	MovementCompensations *CompensationFactor `json:"movement_compensations,omitempty"`
	LowStrength           []string            `json:"low_strength,omitempty"`
	PoorCardio            []string            `json:"poor_cardio,omitempty"`

	RiskCount        int     `json:"risk_count"`
	OverallRiskLevel Level   `json:"overall_risk_level"`
	Summary          Summary `json:"summary"`
}

// Rule weight constants. The formulas are authoritative; per-rule totals
// can exceed their nominal share when several signals fire at once.
const (
	imbalanceCap         = 30.0
	imbalanceGain        = 50.0
	imbalanceFlagPct     = 0.30
	asymmetryCap         = 20.0
	asymmetryBalancePct  = 0.30
	asymmetryBalanceGain = 40.0
	asymmetryShoulderCM  = 2.0
	asymmetryShoulderPer = 4.0
	mobilityZeroPts      = 15.0
	mobilityOnePts       = 10.0
	balanceCategoryMin   = 40.0
	balanceCategoryPts   = 15.0
	shortHoldSeconds     = 10.0
	shortHoldPts         = 10.0
	compensationPer      = 4.0
	compensationCap      = 10.0
	painPts              = 10.0
	strengthCategoryMin  = 30.0
	strengthCategoryPts  = 5.0
	weakPushUpPts        = 5.0
	cardioCategoryMin    = 30.0
	cardioCategoryPts    = 5.0
	maxRiskScore         = 100.0
)

// Calculate runs the seven risk rules and returns the capped score plus the
// structured report. It never fails; unusable inputs leave rules untriggered.
func Calculate(in Input) (float64, Factors) {
	factors := Factors{Summary: Summary{PrimaryConcerns: []string{}}}
	total := 0.0

	total += imbalanceRule(in, &factors)
	total += asymmetryRule(in, &factors)
	total += mobilityRule(in, &factors)
	total += balanceRule(in, &factors)
	total += compensationRule(in, &factors)
	total += strengthRule(in, &factors)
	total += cardioRule(in, &factors)

	score := math.Min(maxRiskScore, total)
	factors.OverallRiskLevel = LevelFor(score)
	factors.Summary.PrimaryConcerns = primaryConcerns(&factors)

	return score, factors
}

// imbalanceRule flags categories deviating more than 30% from the mean of
// the four category scores. Requires all four scores present.
func imbalanceRule(in Input, factors *Factors) float64 {
	if in.Strength == nil || in.Mobility == nil || in.Balance == nil || in.Cardio == nil {
		return 0
	}

	categories := map[string]float64{
		"strength": *in.Strength,
		"mobility": *in.Mobility,
		"balance":  *in.Balance,
		"cardio":   *in.Cardio,
	}
	mean := (*in.Strength + *in.Mobility + *in.Balance + *in.Cardio) / 4
	if mean <= 0 {
		return 0
	}

	var flagged []string
	worst := ""
	maxDeviation := 0.0
	for _, name := range []string{"strength", "mobility", "balance", "cardio"} {
		deviation := math.Abs(categories[name] - mean)
		if deviation > maxDeviation {
			maxDeviation = deviation
			worst = name
		}
		if deviation/mean > imbalanceFlagPct {
			flagged = append(flagged, name)
		}
	}
	if len(flagged) == 0 {
		return 0
	}

	contribution := math.Min(imbalanceCap, maxDeviation/mean*imbalanceGain)
	factors.CategoryImbalance = &ImbalanceFactor{
		FlaggedCategories: flagged,
		WorstCategory:     worst,
		MaxDeviationPct:   maxDeviation / mean * 100,
		Contribution:      contribution,
	}
	factors.RiskCount++
	return contribution
}

// asymmetryRule checks left/right balance pairs and shoulder asymmetry.
func asymmetryRule(in Input, factors *Factors) float64 {
	total := 0.0

	checkPair := func(signal string, right, left *float64) {
		if right == nil || left == nil {
			return
		}
		larger := math.Max(*right, *left)
		if larger <= 0 {
			return
		}
		pct := math.Abs(*right-*left) / larger
		if pct <= asymmetryBalancePct {
			return
		}
		contribution := math.Min(asymmetryCap, pct*asymmetryBalanceGain)
		factors.BilateralAsymmetry = append(factors.BilateralAsymmetry, AsymmetryFactor{
			Signal:        signal,
			DifferencePct: pct * 100,
			Contribution:  contribution,
		})
		factors.RiskCount++
		total += contribution
	}

	checkPair("balance_eyes_open", in.BalanceOpenRight, in.BalanceOpenLeft)
	checkPair("balance_eyes_closed", in.BalanceClosedRight, in.BalanceClosedLeft)

	if in.ShoulderAsymmetryCM != nil {
		diff := math.Abs(*in.ShoulderAsymmetryCM)
		if diff > asymmetryShoulderCM {
			contribution := math.Min(asymmetryCap, diff*asymmetryShoulderPer)
			factors.BilateralAsymmetry = append(factors.BilateralAsymmetry, AsymmetryFactor{
				Signal:       "shoulder_mobility",
				DifferenceCM: diff,
				Contribution: contribution,
			})
			factors.RiskCount++
			total += contribution
		}
	}

	return total
}

// mobilityRule flags mobility tests at the floor of their scale.
func mobilityRule(in Input, factors *Factors) float64 {
	total := 0.0

	check := func(test string, score *int) {
		if score == nil || *score > 1 {
			return
		}
		contribution := mobilityOnePts
		if *score <= 0 {
			contribution = mobilityZeroPts
		}
		factors.PoorMobility = append(factors.PoorMobility, MobilityFactor{
			Test:         test,
			Score:        *score,
			Contribution: contribution,
		})
		factors.RiskCount++
		total += contribution
	}

	check("overhead_squat", in.OverheadSquatRaw)
	check("toe_touch", in.ToeTouchScore)
	check("shoulder_mobility", in.ShoulderMobilityRaw)

	return total
}

// balanceRule flags a weak balance category and very short eyes-open holds.
func balanceRule(in Input, factors *Factors) float64 {
	total := 0.0

	if in.Balance != nil && *in.Balance < balanceCategoryMin {
		contribution := balanceCategoryPts * (1 - *in.Balance/100)
		factors.PoorBalance = append(factors.PoorBalance,
			fmt.Sprintf("balance category at %.0f/100 indicates elevated fall risk", *in.Balance))
		factors.RiskCount++
		total += contribution
	}

	shortHold := false
	for _, t := range []*float64{in.BalanceOpenRight, in.BalanceOpenLeft} {
		if t != nil && *t < shortHoldSeconds {
			shortHold = true
		}
	}
	if shortHold {
		factors.PoorBalance = append(factors.PoorBalance,
			"single-leg hold under 10s with eyes open")
		factors.RiskCount++
		total += shortHoldPts
	}

	return total
}

// compensationRule counts overhead-squat compensations and shoulder pain.
func compensationRule(in Input, factors *Factors) float64 {
	var flags []string
	if in.KneeValgus {
		flags = append(flags, "knee_valgus")
	}
	if in.ForwardLean {
		flags = append(flags, "forward_lean")
	}
	if in.HeelLift {
		flags = append(flags, "heel_lift")
	}

	if len(flags) == 0 && !in.ShoulderPain {
		return 0
	}

	contribution := math.Min(compensationCap, float64(len(flags))*compensationPer)
	if in.ShoulderPain {
		contribution += painPts
	}
	factors.MovementCompensations = &CompensationFactor{
		Count:        len(flags),
		Flags:        flags,
		Pain:         in.ShoulderPain,
		Contribution: contribution,
	}
	factors.RiskCount++
	return contribution
}

// strengthRule flags a weak strength category and a floor push-up score.
func strengthRule(in Input, factors *Factors) float64 {
	total := 0.0

	if in.Strength != nil && *in.Strength < strengthCategoryMin {
		total += strengthCategoryPts * (1 - *in.Strength/100)
		factors.LowStrength = append(factors.LowStrength,
			fmt.Sprintf("strength category at %.0f/100", *in.Strength))
		factors.RiskCount++
	}

	if in.PushUpScore != nil && *in.PushUpScore <= 1 {
		total += weakPushUpPts
		factors.LowStrength = append(factors.LowStrength,
			"push-up score at the scale floor")
		factors.RiskCount++
	}

	return total
}

// cardioRule flags a weak cardio category.
func cardioRule(in Input, factors *Factors) float64 {
	if in.Cardio == nil || *in.Cardio >= cardioCategoryMin {
		return 0
	}
	factors.PoorCardio = append(factors.PoorCardio,
		fmt.Sprintf("cardio category at %.0f/100", *in.Cardio))
	factors.RiskCount++
	return cardioCategoryPts * (1 - *in.Cardio/100)
}

// primaryConcernLimit bounds the summary to the top findings.
const primaryConcernLimit = 3

// primaryConcerns extracts up to three concerns in fixed priority order:
// worst category imbalance, asymmetries, compensations, floor mobility
// tests, then the first poor-balance interpretation. First found wins;
// entries are not re-sorted by severity across categories.
func primaryConcerns(factors *Factors) []string {
	concerns := []string{}

	if factors.CategoryImbalance != nil {
		concerns = append(concerns,
			fmt.Sprintf("%s deviates %.0f%% from the category mean",
				factors.CategoryImbalance.WorstCategory,
				factors.CategoryImbalance.MaxDeviationPct))
	}

	for _, a := range factors.BilateralAsymmetry {
		if len(concerns) >= primaryConcernLimit {
			break
		}
		if a.DifferenceCM > 0 {
			concerns = append(concerns,
				fmt.Sprintf("%s asymmetry of %.1fcm", a.Signal, a.DifferenceCM))
		} else {
			concerns = append(concerns,
				fmt.Sprintf("%s asymmetry of %.0f%%", a.Signal, a.DifferencePct))
		}
	}

	if factors.MovementCompensations != nil && len(concerns) < primaryConcernLimit {
		concerns = append(concerns,
			fmt.Sprintf("%d movement compensations on the overhead squat",
				factors.MovementCompensations.Count))
	}

	if len(factors.PoorMobility) > 0 && len(concerns) < primaryConcernLimit {
		concerns = append(concerns,
			fmt.Sprintf("%d mobility tests at the scale floor", len(factors.PoorMobility)))
	}

	if len(factors.PoorBalance) > 0 && len(concerns) < primaryConcernLimit {
		concerns = append(concerns, factors.PoorBalance[0])
	}

	if len(concerns) > primaryConcernLimit {
		concerns = concerns[:primaryConcernLimit]
	}
	return concerns
}
