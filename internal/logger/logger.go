package logger

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// Logger wraps charm/log for structured logging
type Logger struct {
	*log.Logger
}

// New creates a new logger with the given output
func New(w io.Writer) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	})
	return &Logger{Logger: l}
}

// NewWithLevel creates a logger with a specific level
func NewWithLevel(w io.Writer, level log.Level) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Level:           level,
	})
	return &Logger{Logger: l}
}

// NewFileLogger creates a logger that writes to a file
func NewFileLogger(path string) (*Logger, func(), error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		f.Close()
	}

	return New(f), cleanup, nil
}

// NewMultiLogger creates a logger that writes to multiple outputs
func NewMultiLogger(writers ...io.Writer) *Logger {
	w := io.MultiWriter(writers...)
	return New(w)
}

// Discard returns a logger that discards all output
func Discard() *Logger {
	return New(io.Discard)
}

// FileRewritten logs an in-place rewrite of a file
func (l *Logger) FileRewritten(path string) {
	l.Info("file rewritten",
		"path", path)
}

// FileUnchanged logs a file that was already tight
func (l *Logger) FileUnchanged(path string) {
	l.Debug("file unchanged",
		"path", path)
}

// FileSkipped logs when a file is skipped
func (l *Logger) FileSkipped(path, reason string) {
	l.Warn("file skipped",
		"path", path,
		"reason", reason)
}

// FileError logs an error for a specific file
func (l *Logger) FileError(path string, err error) {
	l.Error("file error",
		"path", path,
		"error", err)
}

// RunCompleted logs the completion of a batch run
func (l *Logger) RunCompleted(rewritten, unchanged, skipped, errors int, duration time.Duration) {
	l.Debug("run completed",
		"rewritten", rewritten,
		"unchanged", unchanged,
		"skipped", skipped,
		"errors", errors,
		"duration", duration.Round(time.Millisecond))
}

// WatchStarted logs the start of watch mode
func (l *Logger) WatchStarted(paths []string) {
	l.Info("watch started",
		"paths", paths)
}

// ConfigLoaded logs successful config loading
func (l *Logger) ConfigLoaded(path string, extensions []string) {
	l.Debug("config loaded",
		"path", path,
		"extensions", extensions)
}
