package logger

import (
	"fmt"
	"io"
	"log/slog"
)

type config struct {
	level  slog.Level
	output io.Writer
}

// Option configures a logger created by New.
type Option func(*config)

// WithLevel sets the minimum level that is emitted.
func WithLevel(level slog.Level) Option {
	return func(c *config) {
		c.level = level
	}
}

// WithOutput redirects log output.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		c.output = w
	}
}

// ParseLevel converts a --log-level flag value into a slog level.
func ParseLevel(s string) (slog.Level, error) {
	switch s {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level: %q", s)
	}
}
