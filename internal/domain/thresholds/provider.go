package thresholds

import "github.com/apexfit/fitscore/internal/domain/model"

// Provider serves immutable threshold lookups for every test type.
// The zero value is not usable; construct with NewProvider.
type Provider struct {
	pushUp        map[model.Gender][]AgeBand
	balance       map[model.Conditions]Band
	carryTime     map[model.Gender]Band
	carryDistance map[model.Gender]Band
	toeTouch      Band
	stepTest      Band
}

// Option applies a configuration option to the Provider.
type Option func(*Provider)

// WithPushUpTable replaces the push-up table for one gender. Rows must keep
// excellent >= good >= average; callers own that invariant.
func WithPushUpTable(gender model.Gender, bands []AgeBand) Option {
	return func(p *Provider) {
		if len(bands) > 0 {
			p.pushUp[gender] = append([]AgeBand(nil), bands...)
		}
	}
}

// NewProvider builds a Provider over the static tables.
func NewProvider(opts ...Option) *Provider {
	p := &Provider{
		pushUp:        make(map[model.Gender][]AgeBand, len(pushUpTables)),
		balance:       make(map[model.Conditions]Band, len(balanceTables)),
		carryTime:     make(map[model.Gender]Band, len(carryTimeTables)),
		carryDistance: make(map[model.Gender]Band, len(carryDistanceTables)),
		toeTouch:      toeTouchBand,
		stepTest:      stepTestBand,
	}
	for g, bands := range pushUpTables {
		p.pushUp[g] = append([]AgeBand(nil), bands...)
	}
	for c, b := range balanceTables {
		p.balance[c] = b
	}
	for g, b := range carryTimeTables {
		p.carryTime[g] = b
	}
	for g, b := range carryDistanceTables {
		p.carryDistance[g] = b
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// genderRow resolves gender to a table row, falling back to Male for
// unrecognized or unspecified genders.
func genderFallback(g model.Gender) model.Gender {
	if g == model.Female {
		return model.Female
	}
	return model.Male
}

// PushUp returns the push-up rep thresholds for a gender and age.
// The bucket whose [min,max] range contains age wins; if none matches,
// the last (oldest) bucket is used.
func (p *Provider) PushUp(gender model.Gender, age int) Band {
	bands := p.pushUp[genderFallback(gender)]
	for _, ab := range bands {
		if age >= ab.MinAge && age <= ab.MaxAge {
			return ab.Band
		}
	}
	return bands[len(bands)-1].Band
}

// Balance returns the single-leg hold thresholds for an eyes condition.
func (p *Provider) Balance(cond model.Conditions) Band {
	if b, ok := p.balance[cond]; ok {
		return b
	}
	return p.balance[model.EyesOpen]
}

// CarryTime returns the farmer's-carry hold-time thresholds for a gender.
func (p *Provider) CarryTime(gender model.Gender) Band {
	return p.carryTime[genderFallback(gender)]
}

// CarryDistance returns the farmer's-carry distance thresholds for a gender.
func (p *Provider) CarryDistance(gender model.Gender) Band {
	return p.carryDistance[genderFallback(gender)]
}

// ToeTouch returns the toe-touch reach thresholds (cm past the floor).
func (p *Provider) ToeTouch() Band {
	return p.toeTouch
}

// StepTest returns the Physical Fitness Index tiers for the step test.
func (p *Provider) StepTest() Band {
	return p.stepTest
}

// Tier maps a measurement onto the 1-4 ordinal scale for a band.
// Higher measurements never score lower.
func (b Band) Tier(value float64) int {
	switch {
	case value >= b.Excellent:
		return 4
	case value >= b.Good:
		return 3
	case value >= b.Average:
		return 2
	default:
		return 1
	}
}
