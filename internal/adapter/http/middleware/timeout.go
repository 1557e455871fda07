package middleware

import (
	"context"
	"net/http"
	"time"
)

// RequestTimeout bounds every request's context. Because handlers block on
// the connection pool, this is what keeps pool exhaustion from stalling
// requests indefinitely.
func RequestTimeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
