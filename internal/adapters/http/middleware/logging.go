package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/jsamuelsen11/clipdate/internal/platform/logging"
)

// healthPrefix marks health check routes. Supervisors poll them every few
// seconds, so successful checks are logged at DEBUG.
const healthPrefix = "/health/"

// Logging returns middleware that logs request completion with method, path,
// status code, and duration. It creates a child logger carrying the chi
// request ID and stores it via logging.WithLogger for downstream use.
// Request headers are logged at DEBUG as a group; credential headers are
// masked by the logger's redaction.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := r.Context()

			child := logger.With(slog.String("request_id", chimw.GetReqID(ctx)))
			ctx = logging.WithLogger(ctx, child)

			if child.Enabled(ctx, slog.LevelDebug) {
				child.DebugContext(ctx, "request headers", headerGroup(r.Header))
			}

			rw := wrap(w)
			next.ServeHTTP(rw, r.WithContext(ctx))

			level := slog.LevelInfo
			if strings.HasPrefix(r.URL.Path, healthPrefix) && rw.statusCode < http.StatusBadRequest {
				level = slog.LevelDebug
			}
			child.Log(ctx, level, "request completed",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", rw.statusCode),
				slog.Int64("bytes", rw.written),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

// headerGroup renders headers as a slog group keyed by lowercase name, so
// the redacting handler matches authorization and cookie fields.
func headerGroup(h http.Header) slog.Attr {
	attrs := make([]any, 0, len(h))
	for key, vals := range h {
		attrs = append(attrs, slog.String(strings.ToLower(key), strings.Join(vals, ",")))
	}
	return slog.Group("headers", attrs...)
}
