package app

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix prefixes every environment variable read by LoadConfig.
const EnvPrefix = "BRANCHLAB"

// ErrInvalidConfig is returned when a configuration value is out of range.
var ErrInvalidConfig = errors.New("app: invalid config")

// Config holds runtime configuration for the CLI.
type Config struct {
	Epsilon       float64 `envconfig:"EPSILON" default:"1e-12"`
	RootTolerance float64 `envconfig:"ROOT_TOLERANCE" default:"1e-9"`

	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`

	Strict bool `envconfig:"STRICT" default:"false"`
}

// LoadConfig reads configuration from BRANCHLAB_* environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks tolerances, log format and log level.
func (c *Config) Validate() error {
	if !validTolerance(c.Epsilon) {
		return fmt.Errorf("%w: epsilon %v must be finite and >= 0", ErrInvalidConfig, c.Epsilon)
	}
	if !validTolerance(c.RootTolerance) {
		return fmt.Errorf("%w: root tolerance %v must be finite and >= 0", ErrInvalidConfig, c.RootTolerance)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log format %q (want text or json)", ErrInvalidConfig, c.LogFormat)
	}
	if _, err := c.Level(); err != nil {
		return err
	}

	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: log level %q", ErrInvalidConfig, c.LogLevel)
	}

	return lvl, nil
}

func validTolerance(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}
