package boundseq

import (
	"context"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"
)

// Logger wraps slog.Logger with boundseq-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithItemBits adds an item width field to the logger.
func (l *Logger) WithItemBits(itemBits int) *Logger {
	return &Logger{
		Logger: l.Logger.With("item_bits", itemBits),
	}
}

// WithLength adds a length field to the logger.
func (l *Logger) WithLength(length int) *Logger {
	return &Logger{
		Logger: l.Logger.With("length", length),
	}
}

// LogBuild logs a sequence construction.
func (l *Logger) LogBuild(ctx context.Context, bound, count int, err error) {
	if err != nil {
		l.DebugContext(ctx, "build rejected",
			"bound", bound,
			"count", count,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "build completed",
			"bound", bound,
			"count", count,
		)
	}
}

// LogEncode logs a persistence write.
func (l *Logger) LogEncode(ctx context.Context, written int64, err error) {
	if err != nil {
		l.ErrorContext(ctx, "encode failed",
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "encode completed",
			"size", humanize.Bytes(uint64(written)),
		)
	}
}

// LogDecode logs a persistence read.
func (l *Logger) LogDecode(ctx context.Context, read int64, err error) {
	if err != nil {
		l.ErrorContext(ctx, "decode failed",
			"size", humanize.Bytes(uint64(read)),
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "decode completed",
			"size", humanize.Bytes(uint64(read)),
		)
	}
}

// LogSearchAll logs a batch subsequence search.
func (l *Logger) LogSearchAll(ctx context.Context, patterns, found int, err error) {
	if err != nil {
		l.WarnContext(ctx, "batch search aborted",
			"patterns", patterns,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "batch search completed",
			"patterns", patterns,
			"found", found,
		)
	}
}
