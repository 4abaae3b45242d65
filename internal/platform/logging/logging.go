// Package logging provides structured logger construction and context propagation
// using the standard library slog package.
//
// Logger construction:
//
//	logger := logging.New("info", "json", os.Stderr)
//
// Clipboard text is arbitrary user data and may hold secrets. Always attach
// it with Content so the redaction layer can find it:
//
//	logger.DebugContext(ctx, "clipboard changed", logging.Content(text))
//
// Content is redacted by default; WithContentRedaction(false) keeps it
// visible for local debugging. Secret-shaped values (bearer tokens, JWTs,
// inline api keys) are redacted in every attribute regardless.
//
// Error logging convention:
//
//	logger.ErrorContext(ctx, "clipboard read failed",
//	    slog.String("operation", "Watcher.Run"),
//	    slog.Any("error", err),
//	)
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

// ContentKey is the attribute key that carries clipboard text.
const ContentKey = "content"

// contextKey is the unexported key type for storing loggers in context.
type contextKey struct{}

// Option configures New.
type Option func(*options)

type options struct {
	redactContent bool
}

// WithContentRedaction controls whether the ContentKey attribute is
// redacted. Enabled by default.
func WithContentRedaction(enabled bool) Option {
	return func(o *options) {
		o.redactContent = enabled
	}
}

// New creates a configured *slog.Logger.
//
// The level parameter sets the minimum log level. Valid values are "debug",
// "info", "warn", and "error". Unrecognized values default to info.
//
// The format parameter selects the output handler. "text" uses
// slog.NewTextHandler; all other values (including "json") use
// slog.NewJSONHandler.
//
// When level is "debug", source code location is included in log output.
func New(level, format string, w io.Writer, opts ...Option) *slog.Logger {
	o := options{redactContent: true}
	for _, opt := range opts {
		opt(&o)
	}

	lvl := parseLevel(level)

	handlerOpts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl == slog.LevelDebug,
		ReplaceAttr: newRedactAttr(o.redactContent),
	}

	var handler slog.Handler
	if format == "text" {
		handler = slog.NewTextHandler(w, handlerOpts)
	} else {
		handler = slog.NewJSONHandler(w, handlerOpts)
	}

	return slog.New(handler)
}

// Content returns the attribute for clipboard text.
func Content(text string) slog.Attr {
	return slog.String(ContentKey, text)
}

// WithLogger returns a new context with the given logger stored in it.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext extracts a *slog.Logger from the context.
// If no logger is stored, it returns slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// parseLevel converts a level string to slog.Level.
// Unrecognized values default to slog.LevelInfo.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
