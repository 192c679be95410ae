// Package scoring converts raw physical-test measurements into bounded
// ordinal scores.
//
// Every scorer is pure given its inputs: out-of-range measurements are
// clamped, unrecognized categoricals fall back to documented defaults, and
// no call ever returns an error. The only external touch is the optional
// standards store; any failure there selects the static threshold tables.
package scoring

import (
	"context"

	"github.com/apexfit/fitscore/internal/adapters/repository"
	"github.com/apexfit/fitscore/internal/domain/thresholds"
	"github.com/apexfit/fitscore/pkg/logger"
	"github.com/apexfit/fitscore/pkg/metrics"
)

// Test type names used for standards lookups and metrics labels.
const (
	TestPushUp       = repository.TestPushUp
	TestBalance      = repository.TestBalance
	TestToeTouch     = repository.TestToeTouch
	TestShoulderMob  = repository.TestShoulderMob
	TestFarmersCarry = repository.TestFarmersCarry
	TestStepTest     = repository.TestStepTest
)

// Engine computes individual test scores against age/gender thresholds.
type Engine struct {
	thresholds *thresholds.Provider
	standards  repository.Store // optional; nil means static tables only
	log        logger.Logger
}

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithThresholds replaces the static threshold provider.
func WithThresholds(p *thresholds.Provider) Option {
	return func(e *Engine) {
		if p != nil {
			e.thresholds = p
		}
	}
}

// WithStandards sets the optional backing standards store.
func WithStandards(s repository.Store) Option {
	return func(e *Engine) {
		e.standards = s
	}
}

// WithLogger sets a custom logger for the engine.
func WithLogger(log logger.Logger) Option {
	return func(e *Engine) {
		if log != nil {
			e.log = log
		}
	}
}

// NewEngine creates a scoring engine with configuration options.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		thresholds: thresholds.NewProvider(),
		standards:  nil,
		log:        logger.Nop(),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// band resolves the threshold band for a lookup, preferring the backing
// standards store and degrading to the static table on any error. This is
// the only branch in the package where an error can occur, and it stops here.
func (e *Engine) band(ctx context.Context, key repository.Key, static thresholds.Band) thresholds.Band {
	if e.standards == nil {
		return static
	}
	band, err := e.standards.GetStandard(ctx, key)
	if err != nil {
		metrics.RecordStandardsFallback(key.TestType)
		e.log.Debug(ctx, "standards lookup degraded to static table",
			logger.String("key", key.String()),
			logger.Error(err),
		)
		return static
	}
	return band
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
