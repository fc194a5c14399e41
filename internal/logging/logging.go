// Package logging configures the process-wide zerolog logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Options selects where log lines go.
type Options struct {
	Level string
	// File receives JSON lines when set. Otherwise a console writer on Console
	// is used.
	File    string
	Console io.Writer
	NoColor bool
	// Quiet drops everything below error when no file is given; used while the
	// TUI owns the terminal.
	Quiet bool
}

// Setup installs the global logger and returns a closer for the log file.
func Setup(opts Options) (func() error, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}
	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerolog.SetGlobalLevel(level)

	if f := strings.TrimSpace(opts.File); f != "" {
		if err := os.MkdirAll(filepath.Dir(f), 0o755); err != nil {
			return nil, fmt.Errorf("log dir: %w", err)
		}
		fh, err := os.OpenFile(f, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		log.Logger = zerolog.New(fh).With().Timestamp().Logger()
		return fh.Close, nil
	}

	out := opts.Console
	if out == nil {
		out = os.Stderr
	}
	if opts.Quiet {
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: out, NoColor: opts.NoColor, TimeFormat: "15:04:05.000"}).With().Timestamp().Logger()
	return func() error { return nil }, nil
}

// ParseLevel accepts zerolog level names; empty means info.
func ParseLevel(s string) (zerolog.Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return zerolog.InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(s)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("log level %q: %w", s, err)
	}
	return level, nil
}
