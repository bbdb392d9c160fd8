// Package config loads catalog settings from a YAML file and the environment.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all catalog configuration.
type Config struct {
	// Data source DSN, see source.Detect. Empty means the bundled dataset.
	Source string `yaml:"source"`

	Logging LoggingConfig `yaml:"logging"`
	UI      UIConfig      `yaml:"ui"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // empty: stderr for commands, discarded for the TUI
}

// UIConfig configures the interactive browser.
type UIConfig struct {
	TableHeight int `yaml:"table_height"`
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{
		Source: "builtin",
		Logging: LoggingConfig{
			Level: "info",
		},
		UI: UIConfig{
			TableHeight: 12,
		},
	}
}

// Load builds the configuration from defaults, the optional YAML file at path,
// and CATALOG_* environment variables, in that order.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv("CATALOG_SOURCE")); v != "" {
		cfg.Source = v
	}
	if v := strings.TrimSpace(os.Getenv("CATALOG_LOG_LEVEL")); v != "" {
		cfg.Logging.Level = v
	}
	if v := strings.TrimSpace(os.Getenv("CATALOG_LOG_FILE")); v != "" {
		cfg.Logging.File = v
	}
}

// Validate checks option values.
func (c Config) Validate() error {
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.Logging.Level)
	}
	if c.UI.TableHeight < 1 {
		return fmt.Errorf("ui.table_height must be positive, got %d", c.UI.TableHeight)
	}
	return nil
}
