// Package logging configures file-backed loggers. The TUI owns the
// terminal, so nothing may ever log to stdout or stderr while the program
// is interactive.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	loggers   = make(map[string]*logrus.Entry)
	loggersMu sync.Mutex
)

// NewLogger creates and returns a pre-configured logger for a specific
// component. It uses a singleton pattern per component to avoid
// re-initializing.
func NewLogger(component string) *logrus.Entry {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	if logger, exists := loggers[component]; exists {
		return logger
	}

	logger := logrus.New()

	levelStr := os.Getenv("JX_LOG_LEVEL")
	if levelStr == "" {
		levelStr = "warn"
	}
	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		level = logrus.WarnLevel
	}
	logger.SetLevel(level)

	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	logger.SetOutput(logOutput())

	entry := logger.WithField("component", component)
	loggers[component] = entry
	return entry
}

// logOutput opens the log file, falling back to discarding everything when
// the state directory is unusable.
func logOutput() io.Writer {
	dir := os.Getenv("XDG_STATE_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return io.Discard
		}
		dir = filepath.Join(home, ".local", "state")
	}
	dir = filepath.Join(dir, "jx")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return io.Discard
	}

	f, err := os.OpenFile(filepath.Join(dir, "jx.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return io.Discard
	}
	return f
}
