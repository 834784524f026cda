// Package logging builds the charmbracelet/log logger shared by the CLI, the
// SSH server and the engine.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

// Prefix is printed before every log line.
const Prefix = "tetris"

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New returns a logger configured from cfg. When cfg.File is set the logger
// appends to that file and the returned Closer closes it; otherwise output
// goes to fallback. A nil fallback discards output.
func New(cfg config.LogConfig, fallback io.Writer) (*log.Logger, io.Closer, error) {
	level := log.InfoLevel
	if cfg.Level != "" {
		parsed, err := log.ParseLevel(cfg.Level)
		if err != nil {
			return nil, nil, fmt.Errorf("log level %q: %w", cfg.Level, err)
		}
		level = parsed
	}

	out := fallback
	if out == nil {
		out = io.Discard
	}
	var closer io.Closer = nopCloser{}

	if cfg.File != "" {
		path := config.ExpandHome(cfg.File)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out, closer = f, f
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          Prefix,
		Level:           level,
	})
	return logger, closer, nil
}
