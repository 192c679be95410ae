// Package repository defines the test-standards store interface and errors.
//
// A Store is the optional backing source for scoring thresholds. Scorers
// treat any error from it, ErrNotFound included, as a signal to fall back
// to the static tables; no Store error ever reaches an engine caller.
package repository

import (
	"context"
	"fmt"

	"github.com/apexfit/fitscore/internal/domain/model"
	"github.com/apexfit/fitscore/internal/domain/thresholds"
)

// Key identifies one standards row.
type Key struct {
	TestType   string
	Gender     model.Gender
	Age        int
	Variation  string
	Conditions string
}

// String renders the canonical cache key for this lookup.
func (k Key) String() string {
	return fmt.Sprintf("test_standard_%s_%s_%d_%s_%s", k.TestType, k.Gender, k.Age, k.Variation, k.Conditions)
}

// Store provides read access to test standards.
type Store interface {
	// GetStandard returns the threshold band for a lookup key.
	// Returns ErrNotFound if no standard covers the key.
	GetStandard(ctx context.Context, key Key) (thresholds.Band, error)
}
