// Package thresholds owns the static fitness-test lookup tables.
//
// Tables are built once by NewProvider and never mutated afterwards;
// accessors return copies, never interior pointers. Every row keeps the
// invariant excellent >= good >= average.
package thresholds

import "github.com/apexfit/fitscore/internal/domain/model"

// Band holds the three descending cut points for a test tier lookup.
// A measurement at or above Excellent scores 4, at or above Good scores 3,
// at or above Average scores 2, anything below scores 1.
type Band struct {
	Excellent float64
	Good      float64
	Average   float64
}

// AgeBand couples an inclusive age range with its thresholds.
type AgeBand struct {
	MinAge int
	MaxAge int
	Band   Band
}

// pushUpTables holds per-gender, age-bucketed push-up rep thresholds.
// Values follow ACSM-style norms for full push-ups to exhaustion.
var pushUpTables = map[model.Gender][]AgeBand{
	model.Male: {
		{MinAge: 0, MaxAge: 29, Band: Band{Excellent: 36, Good: 29, Average: 22}},
		{MinAge: 30, MaxAge: 39, Band: Band{Excellent: 30, Good: 24, Average: 17}},
		{MinAge: 40, MaxAge: 49, Band: Band{Excellent: 25, Good: 20, Average: 13}},
		{MinAge: 50, MaxAge: 59, Band: Band{Excellent: 21, Good: 16, Average: 10}},
		{MinAge: 60, MaxAge: 120, Band: Band{Excellent: 18, Good: 12, Average: 8}},
	},
	model.Female: {
		{MinAge: 0, MaxAge: 29, Band: Band{Excellent: 30, Good: 21, Average: 15}},
		{MinAge: 30, MaxAge: 39, Band: Band{Excellent: 27, Good: 20, Average: 13}},
		{MinAge: 40, MaxAge: 49, Band: Band{Excellent: 24, Good: 15, Average: 11}},
		{MinAge: 50, MaxAge: 59, Band: Band{Excellent: 21, Good: 13, Average: 9}},
		{MinAge: 60, MaxAge: 120, Band: Band{Excellent: 17, Good: 12, Average: 8}},
	},
}

// Balance hold times in seconds, age-independent.
var balanceTables = map[model.Conditions]Band{
	model.EyesOpen:   {Excellent: 45, Good: 30, Average: 15},
	model.EyesClosed: {Excellent: 30, Good: 20, Average: 10},
}

// Farmer's carry hold times in seconds, gender-specific, age-independent.
var carryTimeTables = map[model.Gender]Band{
	model.Male:   {Excellent: 60, Good: 45, Average: 30},
	model.Female: {Excellent: 45, Good: 35, Average: 25},
}

// Farmer's carry distances in meters, used only on the fallback path.
var carryDistanceTables = map[model.Gender]Band{
	model.Male:   {Excellent: 40, Good: 30, Average: 20},
	model.Female: {Excellent: 30, Good: 22, Average: 15},
}

// Toe-touch reach in cm past the floor (positive = past).
var toeTouchBand = Band{Excellent: 5, Good: 0, Average: -10}

// Harvard step test Physical Fitness Index tiers.
var stepTestBand = Band{Excellent: 90, Good: 80, Average: 65}
