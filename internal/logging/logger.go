// Package logging provides structured logging for potomac built on log/slog.
// Discovery runs as part of short-lived CLI invocations, so the default
// output is human-readable text on stderr; JSON output is available for
// callers that ship logs elsewhere.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config holds logger construction options.
type Config struct {
	// Level is one of "debug", "info", "warn", "error".
	Level string
	// Format is "text" or "json".
	Format string
	// Output defaults to os.Stderr when nil.
	Output io.Writer
}

// DefaultConfig returns the configuration used when none is supplied.
func DefaultConfig() *Config {
	return &Config{Level: "info", Format: "text", Output: os.Stderr}
}

// ParseLevel maps a level name to its slog level, defaulting to info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New creates a structured logger from config.
func New(config *Config) *slog.Logger {
	if config == nil {
		config = DefaultConfig()
	}
	output := config.Output
	if output == nil {
		output = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: ParseLevel(config.Level)}

	var handler slog.Handler
	if config.Format == "json" {
		handler = slog.NewJSONHandler(output, opts)
	} else {
		handler = slog.NewTextHandler(output, opts)
	}
	return slog.New(handler)
}

// Discard returns a logger that drops everything, for tests and for library
// callers that do not want log output.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
