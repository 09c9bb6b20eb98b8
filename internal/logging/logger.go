package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/toyz/usermvc/internal/config"
)

// AppLogger is the application logger
type AppLogger struct {
	logger *slog.Logger
}

// NewAppLogger creates a logger writing to stdout with the configured level and format
func NewAppLogger(cfg *config.Config) *AppLogger {
	return NewWriterLogger(os.Stdout, cfg.Log.Level, cfg.Log.Format)
}

// NewWriterLogger creates a logger writing to w. format is "json" or "text".
func NewWriterLogger(w io.Writer, level, format string) *AppLogger {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}

	var handler slog.Handler
	if strings.EqualFold(format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return &AppLogger{logger: slog.New(handler)}
}

// NewNopLogger creates a logger that discards everything
func NewNopLogger() *AppLogger {
	return NewWriterLogger(io.Discard, "error", "text")
}

func parseLevel(level string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return l
}

// Info logs an info message
func (l *AppLogger) Info(msg string, args ...any) {
	l.logger.Info(msg, args...)
}

// Error logs an error message
func (l *AppLogger) Error(msg string, args ...any) {
	l.logger.Error(msg, args...)
}

// Debug logs a debug message
func (l *AppLogger) Debug(msg string, args ...any) {
	l.logger.Debug(msg, args...)
}

// Warn logs a warning message
func (l *AppLogger) Warn(msg string, args ...any) {
	l.logger.Warn(msg, args...)
}

// With returns a logger that adds args to every record
func (l *AppLogger) With(args ...any) *AppLogger {
	return &AppLogger{logger: l.logger.With(args...)}
}

// Logger returns the underlying slog.Logger for advanced usage
func (l *AppLogger) Logger() *slog.Logger {
	return l.logger
}
