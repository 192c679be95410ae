// Package config defines engine configuration structures and loading hooks.
//
// Conventions:
// - Defaults come from New; Load layers file and env on top.
// - External errors must be wrapped via this package's error helpers.
package config

// Default category weights. These mirror the assessment protocol: strength
// and the two movement-quality categories dominate, cardio rounds it out.
const (
	defaultStrengthWeight = 0.30
	defaultMobilityWeight = 0.25
	defaultBalanceWeight  = 0.25
	defaultCardioWeight   = 0.20

	defaultCacheTTLSeconds = 3600
	defaultCacheSize       = 10_000
)

// Config contains process configuration for the scoring engine.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// StandardsDBPath points at an optional SQLite database of test
	// standards. Empty means static tables only.
	StandardsDBPath string `koanf:"standards_db_path"`

	// StandardsCacheTTLSeconds bounds how long a standards lookup is memoized.
	StandardsCacheTTLSeconds int `koanf:"standards_cache_ttl_seconds"`

	// StandardsCacheSize bounds the number of memoized standards entries.
	StandardsCacheSize int `koanf:"standards_cache_size"`

	// Category weights for the overall score. Must sum to 1.0.
	StrengthWeight float64 `koanf:"strength_weight"`
	MobilityWeight float64 `koanf:"mobility_weight"`
	BalanceWeight  float64 `koanf:"balance_weight"`
	CardioWeight   float64 `koanf:"cardio_weight"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:                 "info",
		StandardsDBPath:          "",
		StandardsCacheTTLSeconds: defaultCacheTTLSeconds,
		StandardsCacheSize:       defaultCacheSize,
		StrengthWeight:           defaultStrengthWeight,
		MobilityWeight:           defaultMobilityWeight,
		BalanceWeight:            defaultBalanceWeight,
		CardioWeight:             defaultCardioWeight,
	}
}
