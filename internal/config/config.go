package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
)

// Config holds the settings of a simulation run. Defaults live here rather
// than in the simulation packages, which only see what the caller passes.
type Config struct {
	Trials               int     `json:"trials"                 env:"MONTYHALL_TRIALS"`
	Workers              int     `json:"workers"                env:"MONTYHALL_WORKERS"`
	Seed                 int64   `json:"seed"                   env:"MONTYHALL_SEED"`
	VerboseWarnThreshold int     `json:"verbose_warn_threshold" env:"MONTYHALL_VERBOSE_WARN_THRESHOLD"`
	Confidence           float64 `json:"confidence"             env:"MONTYHALL_CONFIDENCE"`
}

// Default returns the settings used when no file or environment overrides exist.
func Default() *Config {
	return &Config{
		Trials:               100,
		Workers:              1,
		VerboseWarnThreshold: 200,
		Confidence:           0.95,
	}
}

// Load reads the JSON file at path on top of the defaults, then applies
// environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, err
		default:
			if err := json.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse %s: %w", path, err)
			}
		}
	}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Validate checks the settings a run depends on.
func (c *Config) Validate() error {
	if c.Trials <= 0 {
		return fmt.Errorf("trials must be positive, got %d", c.Trials)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}
	if c.Confidence <= 0 || c.Confidence >= 1 {
		return fmt.Errorf("confidence must be in (0, 1), got %v", c.Confidence)
	}
	return nil
}

// NeedsVerboseConfirmation reports whether a verbose run is large enough that
// the operator should confirm before flooding the terminal.
func (c *Config) NeedsVerboseConfirmation(verbose bool) bool {
	return verbose && c.VerboseWarnThreshold > 0 && c.Trials >= c.VerboseWarnThreshold
}
