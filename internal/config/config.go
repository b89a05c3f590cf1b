// Package config holds the lvpuzzle CLI settings: judge parallelism and
// timeout, the default suite directory and the log level. Settings come from
// an optional YAML file, then LVPUZZLE_* environment variables, then flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalid indicates settings that fail validation.
var ErrInvalid = errors.New("config: invalid settings")

// Config is the CLI configuration.
type Config struct {
	Parallelism int           `yaml:"parallelism" validate:"min=1,max=1024"`
	Timeout     time.Duration `yaml:"timeout" validate:"gt=0"`
	CasesDir    string        `yaml:"cases_dir"`
	LogLevel    string        `yaml:"log_level" validate:"oneof=debug info warn error"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Parallelism: 4,
		Timeout:     2 * time.Second,
		CasesDir:    "cases",
		LogLevel:    "info",
	}
}

var validate = validator.New()

// Validate checks field ranges.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return nil
}

// Load reads path over the defaults. A missing file yields the defaults; an
// empty path skips the file. Environment overrides are applied last.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnvOverrides reads LVPUZZLE_PARALLELISM, LVPUZZLE_TIMEOUT,
// LVPUZZLE_CASES_DIR and LVPUZZLE_LOG_LEVEL.
func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("LVPUZZLE_PARALLELISM"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: LVPUZZLE_PARALLELISM=%q", ErrInvalid, v)
		}
		c.Parallelism = n
	}
	if v := os.Getenv("LVPUZZLE_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%w: LVPUZZLE_TIMEOUT=%q", ErrInvalid, v)
		}
		c.Timeout = d
	}
	if v := os.Getenv("LVPUZZLE_CASES_DIR"); v != "" {
		c.CasesDir = v
	}
	if v := os.Getenv("LVPUZZLE_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}

	return nil
}

// Save writes the configuration as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0o644)
}
