// Package config holds the bananaverify configuration: verifier tuning and
// logging behavior. Config is loaded from a YAML file, overlaid with
// environment variables, and validated before use.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"bananaverify/internal/validation"
)

// Config holds all bananaverify configuration.
type Config struct {
	Verifier VerifierConfig `yaml:"verifier"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// VerifierConfig tunes the verification pipeline.
type VerifierConfig struct {
	// MaxShownErrors caps how many errors one round of feedback carries
	// after cascade filtering.
	MaxShownErrors int `yaml:"max_shown_errors"`

	// DictionaryPath points at an external word list (plain or .gz, one
	// word per line). Empty selects the embedded dictionary.
	DictionaryPath string `yaml:"dictionary_path"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Debug bool   `yaml:"debug"` // enable debug-level logging
	Level string `yaml:"level"` // debug, info, warn, error
	JSON  bool   `yaml:"json"`  // structured JSON output instead of console
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Verifier: VerifierConfig{
			MaxShownErrors: validation.DefaultMaxShown,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads configuration from path. A missing file is not an error: the
// defaults apply, so a bare checkout works without any setup. Environment
// overrides are applied either way.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// fall through to env overrides
	case err != nil:
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	cfg.applyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to path as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}

// applyEnvOverrides lets the environment win over the file, the usual
// precedence for containerized runs.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("BANANAVERIFY_DICTIONARY"); v != "" {
		c.Verifier.DictionaryPath = v
	}
	if v := os.Getenv("BANANAVERIFY_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

// Validate checks the configuration for values the pipeline cannot work
// with.
func (c *Config) Validate() error {
	if c.Verifier.MaxShownErrors <= 0 {
		return fmt.Errorf("config: max_shown_errors must be positive, got %d", c.Verifier.MaxShownErrors)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("config: unknown log level %q", c.Logging.Level)
	}
	if p := c.Verifier.DictionaryPath; p != "" {
		if _, err := os.Stat(p); err != nil {
			return fmt.Errorf("config: dictionary_path: %w", err)
		}
	}
	return nil
}
