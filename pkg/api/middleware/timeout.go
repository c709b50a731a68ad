package middleware

import (
	"context"
	"net/http"
	"time"
)

// Timeout attaches a deadline to each request's context. Handlers pass the
// context to their outbound calls, so an expired deadline cancels the
// upstream request and surfaces as a typed timeout error mapped at the
// handler boundary. A timeout of zero disables the middleware.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if timeout <= 0 {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
