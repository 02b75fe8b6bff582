// Package logging builds the service's slog logger and carries the
// request-scoped child logger through context.
//
// main builds one logger from the log section of the config:
//
//	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
//
// The Logging middleware stores a child with request_id and correlation_id
// attached, and code below it picks that child back up:
//
//	logging.FromContext(r.Context()).ErrorContext(r.Context(), "failed to encode response",
//	    slog.Any("error", err),
//	)
//
// Service and store failures carry the operation, the todo ID when there is
// one, and the whole error chain:
//
//	s.logger.ErrorContext(ctx, "failed to update todo",
//	    slog.String("operation", "Update"),
//	    slog.String("id", id),
//	    slog.Any("error", err),
//	)
//
// Attributes pass through the masq redactor before they are written, so
// credentials in a MONGO_URI or an Authorization header never reach the
// output.
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

// Output formats accepted by New.
const (
	FormatJSON = "json"
	FormatText = "text"
)

var levels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

type contextKey struct{}

// New returns a logger writing to w. Level names are matched without regard
// to case and fall back to info. Any format other than FormatText produces
// JSON. Debug loggers also record the source location.
func New(level, format string, w io.Writer) *slog.Logger {
	lvl := parseLevel(level)

	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl == slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}

	if format == FormatText {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// WithLogger stores logger in ctx.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger stored by WithLogger, or slog.Default()
// outside a request.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

func parseLevel(level string) slog.Level {
	if lvl, ok := levels[strings.ToLower(level)]; ok {
		return lvl
	}
	return slog.LevelInfo
}
