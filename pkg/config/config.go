package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// DefaultExpensesFile is the backing file, relative to the working directory.
const DefaultExpensesFile = "expenses.json"

// Log output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config holds the application configuration loaded from environment variables.
// The expenses file location is fixed; see DefaultExpensesFile.
type Config struct {
	// LogLevel is the minimum log level (DEBUG, INFO, WARN, ERROR).
	// Environment variable: LOG_LEVEL
	LogLevel string `koanf:"LOG_LEVEL"`

	// LogFormat selects the slog handler: "text" or "json".
	// Environment variable: LOG_FORMAT
	LogFormat string `koanf:"LOG_FORMAT"`
}

// Load reads an optional .env file from the working directory, then the
// process environment.
func Load() (Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", nil), nil); err != nil {
		return Config{}, fmt.Errorf("loading config from environment: %w", err)
	}

	cfg := Config{
		LogLevel:  "WARN",
		LogFormat: FormatText,
	}
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf", FlatPaths: true}); err != nil {
		return Config{}, fmt.Errorf("unmarshaling config: %w", err)
	}

	cfg.LogFormat = strings.ToLower(strings.TrimSpace(cfg.LogFormat))
	if cfg.LogFormat == "" {
		cfg.LogFormat = FormatText
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports configuration values that cannot be used.
func (c Config) Validate() error {
	switch c.LogFormat {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("invalid LOG_FORMAT %q: must be %q or %q", c.LogFormat, FormatText, FormatJSON)
	}
	return nil
}
