package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/timefighter/internal/storage"
)

const defaultLogFile = "~/.timefighter/timefighter.log"

// newFileLogger opens the log file given by --log-file.
// The alternate screen owns the terminal during local play, so logs never go
// to stdout there. The returned close function must be called on exit.
func newFileLogger() (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	if flagLogFile == "" {
		return newLogger(io.Discard, level), func() {}, nil
	}

	path, err := storage.ExpandHome(flagLogFile)
	if err != nil {
		return nil, nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	return newLogger(f, level), func() { f.Close() }, nil
}

// newStderrLogger returns a logger for commands that own no screen.
func newStderrLogger() (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return newLogger(os.Stderr, level), nil
}

func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "timefighter",
		Level:           level,
	})
}
