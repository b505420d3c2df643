// Package config holds application configuration. Precedence is defaults,
// then yaml file, then CARSIM_* environment variables, then CLI flags (the
// cmd layer applies flags last).
package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

const (
	DefaultScenario = "demo"
	DefaultLogLevel = "info"
)

type Config struct {
	Scenario string `yaml:"scenario" env:"CARSIM_SCENARIO"`
	LogLevel string `yaml:"log_level" env:"CARSIM_LOG_LEVEL"`
	NoColor  bool   `yaml:"no_color" env:"CARSIM_NO_COLOR"`
	Plot     bool   `yaml:"plot" env:"CARSIM_PLOT"`
}

func Default() *Config {
	return &Config{
		Scenario: DefaultScenario,
		LogLevel: DefaultLogLevel,
		Plot:     true,
	}
}

// Load builds a config from defaults, an optional yaml file, and the
// environment. An empty path skips the file layer.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	if _, err := cfg.Level(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the config to a yaml file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Level parses the configured log level.
func (c *Config) Level() (slog.Level, error) {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level: %s", c.LogLevel)
	}
}
