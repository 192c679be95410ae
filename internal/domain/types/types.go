// Package types contains common types used across the application
package types

// CategoryScores holds the four category scores and the weighted overall,
// each on a 0-100 scale.
type CategoryScores struct {
	Overall  float64 `json:"overall_score"`
	Strength float64 `json:"strength_score"`
	Mobility float64 `json:"mobility_score"`
	Balance  float64 `json:"balance_score"`
	Cardio   float64 `json:"cardio_score"`

	// PFI is the raw step-test Physical Fitness Index, carried through for
	// display alongside the derived cardio score. Nil when no step test ran.
	PFI *float64 `json:"pfi,omitempty"`
}
