// Package log provides the logging infrastructure for the LearnPath application.
//
// It exposes:
//   - A type alias for *slog.Logger used as a DI dependency
//   - Factory functions producing configured loggers
//   - A Nop logger for tests
//
// Loggers are injected via constructors, never reached through globals.
// Components add their own context with logger.With("component", ...).
package log

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger is a type alias for *slog.Logger.
// Components accept log.Logger as a constructor dependency; the alias keeps
// full compatibility with the slog ecosystem (With, WithGroup, handlers).
type Logger = *slog.Logger

// Config defines logger configuration options.
type Config struct {
	// Level sets the minimum log level. Default: slog.LevelInfo.
	Level slog.Level

	// JSON enables JSON output. Default: false (text format).
	JSON bool

	// AddSource adds source file positions to log records. Default: false.
	AddSource bool

	// FilePath, when non-empty, appends log output to the given file in
	// addition to stderr. The directory must already exist.
	FilePath string
}

// New creates a logger with the given configuration, writing to os.Stderr
// (and to Config.FilePath when set).
func New(cfg Config) (Logger, error) {
	w := io.Writer(os.Stderr)
	if cfg.FilePath != "" {
		f, err := os.OpenFile(cfg.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, err
		}
		w = io.MultiWriter(os.Stderr, f)
	}
	return NewWithWriter(w, cfg), nil
}

// NewWithWriter creates a logger that writes to the specified writer.
// Useful in tests for capturing output into a buffer.
func NewWithWriter(w io.Writer, cfg Config) Logger {
	opts := &slog.HandlerOptions{
		Level:     cfg.Level,
		AddSource: cfg.AddSource,
	}

	var handler slog.Handler
	if cfg.JSON {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// NewNop creates a logger that discards all output. Test use only:
// production code should always run with New or NewWithWriter.
func NewNop() Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ParseLevel maps a level name to its slog.Level. Unknown names (including
// the empty string) resolve to Info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
