package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"statwatch-hq/osprey/pkg/config"
)

// Logger wraps slog with a runtime-adjustable level. The level is held in a
// slog.LevelVar so a configuration reload can change verbosity without
// rebuilding the handler or dropping in-flight log calls.
type Logger struct {
	*slog.Logger

	level  *slog.LevelVar
	closer io.Closer
}

// New creates a Logger from the logging configuration. The output is
// "stdout", "stderr", or a file path (opened in append mode). Source
// annotation is enabled when the level is debug.
func New(cfg config.LoggingConfig) (*Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	levelVar := new(slog.LevelVar)
	levelVar.Set(level)

	var writer io.Writer
	var closer io.Closer
	switch cfg.Output {
	case "", "stdout":
		writer = os.Stdout
	case "stderr":
		writer = os.Stderr
	default:
		f, err := os.OpenFile(cfg.Output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file %q: %w", cfg.Output, err)
		}
		writer = f
		closer = f
	}

	opts := &slog.HandlerOptions{
		Level:     levelVar,
		AddSource: level == slog.LevelDebug,
	}

	var handler slog.Handler
	switch cfg.Format {
	case "text":
		handler = slog.NewTextHandler(writer, opts)
	default:
		handler = slog.NewJSONHandler(writer, opts)
	}

	return &Logger{
		Logger: slog.New(handler),
		level:  levelVar,
		closer: closer,
	}, nil
}

// SetLevel changes the minimum log level at runtime. Unknown level strings
// are rejected so a bad reload cannot silence the logger.
func (l *Logger) SetLevel(levelStr string) error {
	level, err := ParseLevel(levelStr)
	if err != nil {
		return err
	}
	l.level.Set(level)
	return nil
}

// Level returns the current minimum log level.
func (l *Logger) Level() slog.Level {
	return l.level.Level()
}

// Close releases the log file when output is file-based. It is a no-op for
// stdout and stderr.
func (l *Logger) Close() error {
	if l.closer != nil {
		return l.closer.Close()
	}
	return nil
}

// ParseLevel parses a log level string into slog.Level.
func ParseLevel(levelStr string) (slog.Level, error) {
	switch levelStr {
	case "debug", "DEBUG":
		return slog.LevelDebug, nil
	case "info", "INFO", "":
		return slog.LevelInfo, nil
	case "warn", "WARN", "warning", "WARNING":
		return slog.LevelWarn, nil
	case "error", "ERROR":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level: %s", levelStr)
	}
}
