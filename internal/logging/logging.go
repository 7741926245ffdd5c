// Package logging owns the process-wide slog logger. The TUI draws on
// stdout, so logs are discarded unless a file sink is configured.
package logging

import (
	"io"
	"log/slog"
	"os"
	"sync/atomic"

	"github.com/m-mizutani/clog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

var logger atomic.Pointer[slog.Logger]

func init() {
	logger.Store(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// Default returns the current logger.
func Default() *slog.Logger { return logger.Load() }

// SetDefault replaces the current logger.
func SetDefault(l *slog.Logger) { logger.Store(l) }

// New builds a clog-backed logger writing to w.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(clog.New(
		clog.WithWriter(w),
		clog.WithLevel(level),
		clog.WithColor(false),
	))
}

// Config holds logger flags.
type Config struct {
	File  string
	Level string
}

// Flags returns CLI flags for the logger.
func (c *Config) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-file",
			Usage:       "write logs to this file (logs are discarded otherwise)",
			Sources:     cli.EnvVars("TURTLES_LOG_FILE"),
			Destination: &c.File,
		},
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "log level: debug|info|warn|error",
			Value:       "info",
			Sources:     cli.EnvVars("TURTLES_LOG_LEVEL"),
			Destination: &c.Level,
		},
	}
}

// Configure installs the default logger and returns a closer for the sink.
func (c *Config) Configure() (func(), error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return nil, goerr.Wrap(err, "invalid log level", goerr.V("level", c.Level))
	}

	if c.File == "" {
		return func() {}, nil
	}

	// #nosec G304 - path is provided by CLI argument
	f, err := os.OpenFile(c.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open log file", goerr.V("path", c.File))
	}

	SetDefault(New(f, level))
	return func() {
		if err := f.Close(); err != nil {
			Default().Warn("failed to close log file", "error", err)
		}
	}, nil
}
