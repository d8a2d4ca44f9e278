// Package logging provides structured logging configuration using log/slog.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/ArionMiles/expensetracker/pkg/config"
)

// Config holds logging configuration options.
type Config struct {
	// Level is the minimum log level to output.
	Level slog.Level
	// JSON enables JSON output format.
	JSON bool
	// Output is the writer to write logs to. Defaults to os.Stderr.
	Output io.Writer
}

// DefaultConfig returns the configuration used by the interactive tracker.
// Logs go to stderr and only warnings and errors are shown, so the menu on
// stdout stays readable.
func DefaultConfig() Config {
	return Config{
		Level:  slog.LevelWarn,
		JSON:   false,
		Output: os.Stderr,
	}
}

// FromConfig builds a logging configuration from application config.
func FromConfig(cfg config.Config) Config {
	c := DefaultConfig()
	c.Level = parseLogLevel(cfg.LogLevel)
	c.JSON = cfg.LogFormat == config.FormatJSON
	return c
}

// parseLogLevel converts a string log level to slog.Level.
// Unknown or empty values fall back to WARN, the interactive default: routine
// INFO events such as "expense added" already show up as menu output.
func parseLogLevel(level string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// Setup initializes the default slog logger with the given configuration.
// A nil Output means stderr: the tracker owns stdout for its menu, and log
// lines there would interleave with prompts.
func Setup(cfg Config) *slog.Logger {
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}

	opts := &slog.HandlerOptions{
		Level: cfg.Level,
	}

	var handler slog.Handler
	if cfg.JSON {
		handler = slog.NewJSONHandler(cfg.Output, opts)
	} else {
		handler = slog.NewTextHandler(cfg.Output, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	return logger
}
