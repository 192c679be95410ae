// Package app wires the scoring engine, category aggregation, and the
// injury-risk calculator into a single evaluation service.
package app

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/apexfit/fitscore/internal/adapters/repository"
	"github.com/apexfit/fitscore/internal/domain/aggregate"
	"github.com/apexfit/fitscore/internal/domain/model"
	"github.com/apexfit/fitscore/internal/domain/risk"
	"github.com/apexfit/fitscore/internal/domain/scoring"
	"github.com/apexfit/fitscore/internal/domain/thresholds"
	"github.com/apexfit/fitscore/internal/domain/types"
	"github.com/apexfit/fitscore/pkg/logger"
	"github.com/apexfit/fitscore/pkg/metrics"
)

// Report is the full result of evaluating one assessment.
type Report struct {
	ID        string        `json:"id"`
	CreatedAt time.Time     `json:"created_at"`
	Profile   model.Profile `json:"profile"`

	Individual scoring.Individual   `json:"individual_scores"`
	Categories types.CategoryScores `json:"category_scores"`

	RiskScore float64      `json:"risk_score"`
	Risk      risk.Factors `json:"risk_factors"`
}

// Service evaluates assessments end to end.
type Service struct {
	scorerOpts []scoring.Option
	scorer     *scoring.Engine
	weights    aggregate.Weights
	log        logger.Logger
	now        func() time.Time
}

// Option configures the service.
type Option func(*Service)

// WithLogger sets the service logger.
func WithLogger(log logger.Logger) Option {
	return func(s *Service) {
		s.log = log
		s.scorerOpts = append(s.scorerOpts, scoring.WithLogger(log))
	}
}

// WithStandards sets the standards store consulted by the scorers.
func WithStandards(store repository.Store) Option {
	return func(s *Service) {
		s.scorerOpts = append(s.scorerOpts, scoring.WithStandards(store))
	}
}

// WithThresholds overrides the static threshold provider.
func WithThresholds(p *thresholds.Provider) Option {
	return func(s *Service) {
		s.scorerOpts = append(s.scorerOpts, scoring.WithThresholds(p))
	}
}

// WithCategoryWeights overrides the default category weights.
func WithCategoryWeights(w aggregate.Weights) Option {
	return func(s *Service) {
		s.weights = w
	}
}

// WithClock overrides the report timestamp source, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// New builds the evaluation service.
func New(opts ...Option) *Service {
	s := &Service{
		weights: aggregate.DefaultWeights(),
		log:     logger.Nop(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.scorer = scoring.NewEngine(s.scorerOpts...)
	return s
}

// Evaluate scores the assessment, aggregates category scores, and computes
// the injury risk. It fails only when the context is already done.
func (s *Service) Evaluate(ctx context.Context, a model.Assessment) (*Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := s.now()

	individual := s.scorer.ScoreAll(ctx, a)
	categories := aggregate.Categories(aggregateInputs(a, individual), s.weights)
	riskScore, riskFactors := risk.Calculate(riskInputs(a, individual, categories))

	report := &Report{
		ID:         uuid.NewString(),
		CreatedAt:  start,
		Profile:    a.Profile,
		Individual: individual,
		Categories: categories,
		RiskScore:  riskScore,
		Risk:       riskFactors,
	}

	metrics.RecordAssessmentScored()
	metrics.RecordRiskLevel(string(riskFactors.OverallRiskLevel))
	metrics.RecordEvaluationDuration(float64(time.Since(start).Milliseconds()))

	s.log.Info(ctx, "assessment evaluated",
		logger.String("report_id", report.ID),
		logger.Float64("overall", categories.Overall),
		logger.Float64("risk_score", riskScore),
		logger.String("risk_level", string(riskFactors.OverallRiskLevel)),
	)
	return report, nil
}

// ScoreKnowledge grades a multiple-choice questionnaire against its answer
// key and returns a 0-100 percentage.
func (s *Service) ScoreKnowledge(responses []model.MCQResponse, key []model.MCQKey) float64 {
	return scoring.ScoreMCQ(responses, key)
}

func aggregateInputs(a model.Assessment, ind scoring.Individual) aggregate.Inputs {
	return aggregate.Inputs{
		PushUp:              intScore(ind.PushUp),
		FarmersCarry:        ind.FarmersCarry,
		ToeTouch:            intScore(ind.ToeTouch),
		ShoulderMobilityRaw: a.ShoulderMobilityRaw,
		Balance:             ind.Balance,
		OverheadSquatRaw:    a.OverheadSquatRaw,
		StepTest:            intScore(ind.StepTest),
		PFI:                 ind.PFI,
		Environment:         a.Environment,
		TemperatureC:        a.TemperatureC,
	}
}

func riskInputs(a model.Assessment, ind scoring.Individual, c types.CategoryScores) risk.Input {
	return risk.Input{
		Strength: &c.Strength,
		Mobility: &c.Mobility,
		Balance:  &c.Balance,
		Cardio:   &c.Cardio,

		PushUpScore:         intScore(ind.PushUp),
		ToeTouchScore:       ind.ToeTouch,
		ShoulderMobilityRaw: a.ShoulderMobilityRaw,
		OverheadSquatRaw:    a.OverheadSquatRaw,

		BalanceOpenRight:    a.BalanceOpenRight,
		BalanceOpenLeft:     a.BalanceOpenLeft,
		BalanceClosedRight:  a.BalanceClosedRight,
		BalanceClosedLeft:   a.BalanceClosedLeft,
		ShoulderAsymmetryCM: a.ShoulderAsymmetryCM,

		ShoulderPain: a.ShoulderPain,
		KneeValgus:   a.KneeValgus,
		ForwardLean:  a.ForwardLean,
		HeelLift:     a.HeelLift,
	}
}

func intScore(v *int) *float64 {
	if v == nil {
		return nil
	}
	f := float64(*v)
	return &f
}
