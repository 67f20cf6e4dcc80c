package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/lexidrill/lexidrill-backend/pkg/ctxutil"
)

const requestIDHeader = "X-Request-ID"

// RequestID attaches a request ID to the context and echoes it in the
// response headers. An incoming X-Request-ID is honored, otherwise a
// new UUID is generated.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := r.Header.Get(requestIDHeader)
			if reqID == "" {
				reqID = uuid.New().String()
			}

			ctx := ctxutil.WithRequestID(r.Context(), reqID)
			w.Header().Set(requestIDHeader, reqID)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
