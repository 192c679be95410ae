package config

import (
	"context"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// weightSumTolerance absorbs float representation noise in weight overrides.
const weightSumTolerance = 1e-6

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if FITSCORE_CONFIG is set
//  3. env (prefix FITSCORE_)
func Load(ctx context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("FITSCORE_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: FITSCORE_LOG_LEVEL, FITSCORE_STANDARDS_DB_PATH, ...
	// Keys map to the koanf tags on the struct, underscores preserved.
	envProvider := env.Provider("FITSCORE_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "fitscore_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.StandardsCacheTTLSeconds <= 0 {
		return fmt.Errorf("%w: standards_cache_ttl_seconds must be positive", ErrInvalidConfig)
	}
	if c.StandardsCacheSize <= 0 {
		return fmt.Errorf("%w: standards_cache_size must be positive", ErrInvalidConfig)
	}
	sum := c.StrengthWeight + c.MobilityWeight + c.BalanceWeight + c.CardioWeight
	if math.Abs(sum-1.0) > weightSumTolerance {
		return fmt.Errorf("%w: must sum to 1.0, got %v", ErrInvalidWeights, sum)
	}
	return nil
}
