// Package model contains domain models passed between layers.
package model

import "strings"

// Gender selects the threshold row for gender-dependent tests.
type Gender string

// Recognized genders. Unrecognized input falls back to Male, which is the
// stricter threshold row for every gender-dependent test.
const (
	Male        Gender = "Male"
	Female      Gender = "Female"
	Unspecified Gender = "Unspecified"
)

// ParseGender maps free-form input onto a recognized Gender.
// Unrecognized values fall back to Male.
func ParseGender(s string) Gender {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "female", "f":
		return Female
	case "unspecified", "":
		return Unspecified
	default:
		return Male
	}
}

// PushUpType identifies the push-up protocol variant.
type PushUpType string

// Push-up variants. Unrecognized input falls back to Standard.
const (
	PushUpStandard PushUpType = "standard"
	PushUpModified PushUpType = "modified"
	PushUpWall     PushUpType = "wall"
)

// ParsePushUpType maps free-form input onto a PushUpType.
// Unrecognized or empty values fall back to Standard.
func ParsePushUpType(s string) PushUpType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "modified":
		return PushUpModified
	case "wall":
		return PushUpWall
	default:
		return PushUpStandard
	}
}

// Environment identifies where the assessment took place.
type Environment string

// Test environments. Only Outdoor triggers temperature adjustment.
const (
	EnvIndoor  Environment = "indoor"
	EnvOutdoor Environment = "outdoor"
)

// ParseEnvironment maps free-form input onto an Environment.
// Unrecognized or empty values fall back to Indoor.
func ParseEnvironment(s string) Environment {
	if strings.ToLower(strings.TrimSpace(s)) == "outdoor" {
		return EnvOutdoor
	}
	return EnvIndoor
}

// Conditions identifies the eyes condition of a balance trial.
type Conditions string

// Balance trial conditions. Unrecognized input falls back to EyesOpen.
const (
	EyesOpen   Conditions = "eyes_open"
	EyesClosed Conditions = "eyes_closed"
)

// ParseConditions maps free-form input onto a Conditions value.
func ParseConditions(s string) Conditions {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "eyes_closed", "closed":
		return EyesClosed
	default:
		return EyesOpen
	}
}

// Profile is the subset of a client profile the engine consumes.
type Profile struct {
	Gender Gender `yaml:"gender" json:"gender"`
	Age    int    `yaml:"age" json:"age"`
}

// Assessment holds one client's raw measurements for one session.
// Optional measurements are pointers; nil means the test was not performed.
// Units: times in seconds, distances in cm unless noted, temperature in °C.
type Assessment struct {
	Profile Profile `yaml:"profile" json:"profile"`

	// Strength
	PushUpReps        *int       `yaml:"push_up_reps" json:"push_up_reps,omitempty"`
	PushUpType        PushUpType `yaml:"push_up_type" json:"push_up_type,omitempty"`
	CarryTimeSeconds  *float64   `yaml:"carry_time_seconds" json:"carry_time_seconds,omitempty"`
	CarryDistanceM    *float64   `yaml:"carry_distance_m" json:"carry_distance_m,omitempty"`
	BodyWeightPercent *float64   `yaml:"body_weight_percent" json:"body_weight_percent,omitempty"`

	// Balance (single-leg times, seconds)
	BalanceOpenRight   *float64 `yaml:"balance_open_right" json:"balance_open_right,omitempty"`
	BalanceOpenLeft    *float64 `yaml:"balance_open_left" json:"balance_open_left,omitempty"`
	BalanceClosedRight *float64 `yaml:"balance_closed_right" json:"balance_closed_right,omitempty"`
	BalanceClosedLeft  *float64 `yaml:"balance_closed_left" json:"balance_closed_left,omitempty"`

	// Mobility
	ToeTouchCM          *float64 `yaml:"toe_touch_cm" json:"toe_touch_cm,omitempty"`
	ShoulderMobilityRaw *int     `yaml:"shoulder_mobility_raw" json:"shoulder_mobility_raw,omitempty"`
	ShoulderAsymmetryCM *float64 `yaml:"shoulder_asymmetry_cm" json:"shoulder_asymmetry_cm,omitempty"`
	ShoulderPain        bool     `yaml:"shoulder_pain" json:"shoulder_pain,omitempty"`

	// Movement quality (overhead squat, 0-5 scale)
	OverheadSquatRaw *int `yaml:"overhead_squat_raw" json:"overhead_squat_raw,omitempty"`
	KneeValgus       bool `yaml:"knee_valgus" json:"knee_valgus,omitempty"`
	ForwardLean      bool `yaml:"forward_lean" json:"forward_lean,omitempty"`
	HeelLift         bool `yaml:"heel_lift" json:"heel_lift,omitempty"`

	// Cardio (Harvard step test recovery heart rates, bpm)
	StepHR1 *float64 `yaml:"step_hr1" json:"step_hr1,omitempty"`
	StepHR2 *float64 `yaml:"step_hr2" json:"step_hr2,omitempty"`
	StepHR3 *float64 `yaml:"step_hr3" json:"step_hr3,omitempty"`

	// Conditions
	Environment  Environment `yaml:"environment" json:"environment,omitempty"`
	TemperatureC *float64    `yaml:"temperature_c" json:"temperature_c,omitempty"`
}
