// =============================================================================
// CSV to JSON Transformer - Logging
// =============================================================================
//
// Structured, leveled logging for the whole application, backed by
// charmbracelet/log. Core transformers receive the Logger interface as an
// optional event hook; they never log through package-level state.
//
// =============================================================================

package logger

import (
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
)

// Logger is the structured logging interface passed through the application.
type Logger interface {
	Debug(msg string, keyvals ...any)
	Info(msg string, keyvals ...any)
	Warn(msg string, keyvals ...any)
	Error(msg string, keyvals ...any)
}

// loggerImpl implements Logger using the charm logger.
type loggerImpl struct {
	charmLogger *charmlog.Logger
}

func (l *loggerImpl) Debug(msg string, keyvals ...any) {
	l.charmLogger.Debug(msg, keyvals...)
}

func (l *loggerImpl) Info(msg string, keyvals ...any) {
	l.charmLogger.Info(msg, keyvals...)
}

func (l *loggerImpl) Warn(msg string, keyvals ...any) {
	l.charmLogger.Warn(msg, keyvals...)
}

func (l *loggerImpl) Error(msg string, keyvals ...any) {
	l.charmLogger.Error(msg, keyvals...)
}

// New creates a Logger writing human-readable output to w.
func New(w io.Writer, level charmlog.Level) Logger {
	cl := charmlog.NewWithOptions(w, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Level:           level,
	})
	return &loggerImpl{charmLogger: cl}
}

// Setup creates the application logger on stderr. The verbose flag lowers the
// level to debug; otherwise the named level applies ("debug", "info", "warn",
// "error"; anything else means warn, matching the non-verbose default).
func Setup(logLevel string, verbose bool) Logger {
	level := parseLevel(logLevel)
	if verbose {
		level = charmlog.DebugLevel
	}
	return New(os.Stderr, level)
}

func parseLevel(logLevel string) charmlog.Level {
	switch logLevel {
	case "debug":
		return charmlog.DebugLevel
	case "info":
		return charmlog.InfoLevel
	case "warn":
		return charmlog.WarnLevel
	case "error":
		return charmlog.ErrorLevel
	default:
		return charmlog.WarnLevel
	}
}

// nopLogger discards everything. Used where no observability hook was wired.
type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

// Nop returns a Logger that discards all events.
func Nop() Logger {
	return nopLogger{}
}
