package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/jsamuelsen11/clipdate/internal/adapters/http/dto"
)

// Recovery returns middleware that recovers from panics in downstream
// handlers. The panic value and stack trace are logged; the client gets a
// generic RFC 9457 500 response. If the response headers have already been
// written, only the log entry is emitted. http.ErrAbortHandler is re-raised
// so net/http can abort the connection.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := wrap(w)
			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if v == http.ErrAbortHandler { //nolint:errorlint // sentinel comparison of a recovered value
					panic(v)
				}

				logger.ErrorContext(r.Context(), "panic recovered",
					slog.String("panic", fmt.Sprint(v)),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("request_id", chimw.GetReqID(r.Context())),
				)
				if !rw.headerWritten {
					dto.WriteProblem(rw, r, dto.NewProblem(r, http.StatusInternalServerError, ""))
				}
			}()
			next.ServeHTTP(rw, r)
		})
	}
}
