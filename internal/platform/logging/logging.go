// Package logging builds the service's structured loggers and carries
// request-scoped loggers through context.
//
// Construction:
//
//	logger := logging.New("info", "json", os.Stderr)
//
// The HTTP logging middleware stores a child logger enriched with request
// and correlation IDs via WithLogger; services pick it up with FromContext.
//
// Service error logs carry the operation name, the entity identifiers, and
// the full error chain:
//
//	logger.ErrorContext(ctx, "failed to update project",
//	    slog.String("operation", "UpdateProject"),
//	    slog.String("id", id.String()),
//	    slog.Any("error", err),
//	)
//
// Credential-shaped values (passwords, hashes, session tokens) are redacted
// by the handler regardless of where they appear in the attribute tree.
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

// contextKey is the unexported key type for storing loggers in context.
type contextKey struct{}

// New creates a configured *slog.Logger. level is one of "debug", "info",
// "warn", "error"; anything else means info. format "text" selects the text
// handler, everything else JSON. Debug level also turns on source locations.
func New(level, format string, w io.Writer) *slog.Logger {
	lvl := parseLevel(level)

	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl == slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}

	var handler slog.Handler
	switch format {
	case "text":
		handler = slog.NewTextHandler(w, opts)
	default:
		handler = slog.NewJSONHandler(w, opts)
	}

	return slog.New(handler)
}

// WithLogger stores logger on the context.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the context's logger, or slog.Default() when the
// middleware has not run.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
