package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/lexidrill/lexidrill-backend/pkg/ctxutil"
)

// Recovery converts handler panics into 500 responses instead of
// tearing down the connection.
func Recovery(log *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					log.Error("panic recovered",
						"error", rec,
						"path", r.URL.Path,
						"request_id", ctxutil.RequestIDFromCtx(r.Context()),
						"stack", string(debug.Stack()),
					)
					http.Error(w, "internal server error", http.StatusInternalServerError)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
