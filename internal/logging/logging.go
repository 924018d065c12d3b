// Package logging builds the charmbracelet loggers shared by the commands.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// Options configures a logger.
type Options struct {
	Prefix string
	Level  string // debug, info, warn, error; empty means info
	Output io.Writer
}

// New creates a timestamped logger. An unknown level is an error.
func New(opts Options) (*log.Logger, error) {
	level := log.InfoLevel
	if opts.Level != "" {
		parsed, err := log.ParseLevel(opts.Level)
		if err != nil {
			return nil, fmt.Errorf("logging: %w", err)
		}
		level = parsed
	}

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	return log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          opts.Prefix,
		Level:           level,
	}), nil
}

// DefaultFilePath is where TUI commands write their log, since the
// alt-screen owns the terminal.
func DefaultFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "dash.log"
	}
	return filepath.Join(home, ".arcade", "dash.log")
}

// OpenFile creates a logger appending to path. The caller closes the file.
func OpenFile(path string, opts Options) (*log.Logger, io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("logging: cannot create directory for %s: %w", path, err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("logging: cannot open %s: %w", path, err)
	}
	opts.Output = f
	logger, err := New(opts)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return logger, f, nil
}
