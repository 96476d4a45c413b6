package logging

import (
	"fmt"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is a thin wrapper over logr.Logger with the handful of helpers
// this tool needs. The zero value discards everything.
type Logger struct {
	log logr.Logger
}

// New wraps the provided logr.Logger.
func New(base logr.Logger) Logger {
	return Logger{log: base}
}

// NewFromConfig builds a zap-backed Logger. Format is "development" or
// "production"; level is "debug", "info", or "error".
func NewFromConfig(level, format string) (Logger, error) {
	var cfg zap.Config
	if format == "development" {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	switch level {
	case "", "info":
		cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	case "debug":
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	case "error":
		cfg.Level = zap.NewAtomicLevelAt(zapcore.ErrorLevel)
	default:
		return Logger{}, fmt.Errorf("unknown log level %q", level)
	}

	zapLogger, err := cfg.Build()
	if err != nil {
		return Logger{}, fmt.Errorf("build logger: %w", err)
	}
	return New(zapr.NewLogger(zapLogger)), nil
}

// Discard returns a Logger that drops all messages.
func Discard() Logger {
	return New(logr.Discard())
}

// WithName scopes the logger with the supplied name.
func (l Logger) WithName(name string) Logger {
	return Logger{log: l.log.WithName(name)}
}

// WithValues returns a Logger with additional key-value pairs attached.
func (l Logger) WithValues(keysAndValues ...any) Logger {
	return Logger{log: l.log.WithValues(keysAndValues...)}
}

// Info logs an informational message.
func (l Logger) Info(msg string, keysAndValues ...any) {
	l.log.Info(msg, keysAndValues...)
}

// Debug logs a verbose message at V(1).
func (l Logger) Debug(msg string, keysAndValues ...any) {
	l.log.V(1).Info(msg, keysAndValues...)
}

// Error logs an error message.
func (l Logger) Error(err error, msg string, keysAndValues ...any) {
	l.log.Error(err, msg, keysAndValues...)
}
