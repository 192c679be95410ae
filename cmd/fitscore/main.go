// Command fitscore evaluates fitness assessment documents. Each argument is
// a YAML assessment file; the resulting reports are written to stdout as
// JSON, one per input.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/apexfit/fitscore/internal/adapters/repository"
	"github.com/apexfit/fitscore/internal/app"
	"github.com/apexfit/fitscore/internal/config"
	"github.com/apexfit/fitscore/internal/domain/aggregate"
	"github.com/apexfit/fitscore/pkg/logger"
)

func main() {
	pretty := flag.Bool("pretty", false, "Indent the JSON report output")
	seed := flag.Bool("seed-standards", false, "Load the built-in threshold tables into the standards database before scoring")
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	log := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info",
			logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	opts := []app.Option{
		app.WithLogger(log),
		app.WithCategoryWeights(aggregate.Weights{
			Strength: cfg.StrengthWeight,
			Mobility: cfg.MobilityWeight,
			Balance:  cfg.BalanceWeight,
			Cardio:   cfg.CardioWeight,
		}),
	}

	// An unreachable standards store is not fatal; scoring falls back to
	// the built-in threshold tables.
	if cfg.StandardsDBPath != "" {
		store, err := repository.OpenSQLite(ctx, cfg.StandardsDBPath)
		if err != nil {
			log.Warn(ctx, "standards store unavailable; using built-in thresholds",
				logger.String("path", cfg.StandardsDBPath), logger.Error(err))
		} else {
			defer store.Close()
			if *seed {
				if err := repository.SeedBuiltin(ctx, store, nil); err != nil {
					os.Stderr.WriteString("failed to seed standards: " + err.Error() + "\n")
					os.Exit(1)
				}
			}
			cached := repository.NewCachedStore(store,
				repository.WithTTL(time.Duration(cfg.StandardsCacheTTLSeconds)*time.Second),
				repository.WithMaxSize(cfg.StandardsCacheSize),
			)
			opts = append(opts, app.WithStandards(cached))
		}
	}

	svc := app.New(opts...)

	files := flag.Args()
	if len(files) == 0 {
		os.Stderr.WriteString("usage: fitscore [-pretty] assessment.yaml [assessment.yaml ...]\n")
		os.Exit(2)
	}

	failed := 0
	for _, path := range files {
		assessment, err := loadAssessment(path)
		if err != nil {
			log.Error(ctx, "skipping assessment", logger.String("path", path), logger.Error(err))
			failed++
			continue
		}

		report, err := svc.Evaluate(ctx, assessment)
		if err != nil {
			log.Error(ctx, "evaluation aborted", logger.String("path", path), logger.Error(err))
			failed++
			break
		}

		if err := writeReport(os.Stdout, report, *pretty); err != nil {
			log.Error(ctx, "writing report failed", logger.String("path", path), logger.Error(err))
			failed++
		}
	}

	if failed > 0 {
		os.Exit(1)
	}
}
