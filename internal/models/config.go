package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LintConfig contains the tunable validation thresholds.
type LintConfig struct {
	// TitleLimit is the length above which a Title draws a warning.
	TitleLimit int `yaml:"title-limit"`

	// LineLimit is the width above which a Description line draws a warning.
	LineLimit int `yaml:"line-limit"`

	// ExtraLicenses extends the built-in list of recognized License values.
	ExtraLicenses []string `yaml:"extra-licenses"`
}

// DefaultLintConfig returns the thresholds used when no config file is given.
func DefaultLintConfig() LintConfig {
	return LintConfig{
		TitleLimit: 65,
		LineLimit:  80,
	}
}

// LoadLintConfig reads a YAML config file and merges it over the defaults.
func LoadLintConfig(path string) (LintConfig, error) {
	cfg := DefaultLintConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, &LintError{
			Type: ErrFileOp,
			Err:  fmt.Errorf("failed to read config: %w", err),
		}
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, &LintError{
			Type: ErrInvalidConfig,
			Err:  fmt.Errorf("failed to parse config: %w", err),
		}
	}

	if cfg.TitleLimit <= 0 || cfg.LineLimit <= 0 {
		return cfg, &LintError{
			Type: ErrInvalidConfig,
			Err:  fmt.Errorf("limits must be positive (title-limit=%d, line-limit=%d)", cfg.TitleLimit, cfg.LineLimit),
		}
	}

	return cfg, nil
}
