package repository

import (
	"context"
	"fmt"

	"github.com/apexfit/fitscore/internal/domain/model"
	"github.com/apexfit/fitscore/internal/domain/thresholds"
)

// Canonical test type names used in standards keys and metrics labels.
const (
	TestPushUp       = "pushup"
	TestBalance      = "balance"
	TestToeTouch     = "toe_touch"
	TestShoulderMob  = "shoulder_mobility"
	TestFarmersCarry = "farmers_carry"
	TestStepTest     = "step_test"
)

// fullAgeRange marks standards that do not vary by age.
const (
	minSeedAge = 0
	maxSeedAge = 120
)

var seedGenders = []model.Gender{model.Male, model.Female}

// SeedBuiltin loads the static threshold tables into the store, one row per
// test/gender/variation/conditions combination. Existing rows with the same
// key range are replaced, so reseeding is idempotent.
func SeedBuiltin(ctx context.Context, store *SQLStore, p *thresholds.Provider) error {
	if p == nil {
		p = thresholds.NewProvider()
	}

	put := func(key Key, minAge, maxAge int, band thresholds.Band) error {
		if err := store.PutStandard(ctx, key, minAge, maxAge, band); err != nil {
			return fmt.Errorf("seed %s: %w", key.String(), err)
		}
		return nil
	}

	for _, gender := range seedGenders {
		// Push-up buckets follow the static table's age breaks. The stored
		// band is the full-push-up one for every variation; variation
		// factors are applied by the scorer after the tier lookup.
		buckets := [][2]int{{0, 29}, {30, 39}, {40, 49}, {50, 59}, {60, 120}}
		for _, b := range buckets {
			band := p.PushUp(gender, b[0])
			for _, variation := range []string{
				string(model.PushUpStandard),
				string(model.PushUpModified),
				string(model.PushUpWall),
			} {
				key := Key{TestType: TestPushUp, Gender: gender, Age: b[0], Variation: variation}
				if err := put(key, b[0], b[1], band); err != nil {
					return err
				}
			}
		}

		for _, cond := range []model.Conditions{model.EyesOpen, model.EyesClosed} {
			key := Key{
				TestType:   TestBalance,
				Gender:     gender,
				Variation:  "standard",
				Conditions: string(cond),
			}
			if err := put(key, minSeedAge, maxSeedAge, p.Balance(cond)); err != nil {
				return err
			}
		}

		timeKey := Key{TestType: TestFarmersCarry, Gender: gender, Variation: "standard"}
		if err := put(timeKey, minSeedAge, maxSeedAge, p.CarryTime(gender)); err != nil {
			return err
		}
		distKey := Key{TestType: TestFarmersCarry, Gender: gender, Variation: "distance"}
		if err := put(distKey, minSeedAge, maxSeedAge, p.CarryDistance(gender)); err != nil {
			return err
		}
	}

	return nil
}
