package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"reviewhub/pkg/logger"
)

type contextKey string

// RequestIDKey holds the per-request id in the request context.
const RequestIDKey contextKey = "requestID"

// RequestID tags every request with a uuid, echoes it in the X-Request-Id
// header, and writes one access-log line when the handler returns.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-Id", id)

		ctx := context.WithValue(r.Context(), RequestIDKey, id)
		start := time.Now()
		next.ServeHTTP(w, r.WithContext(ctx))

		logger.Sugar.Infow("request",
			"id", id,
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(start).String(),
		)
	})
}
