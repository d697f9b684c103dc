// Package requesttime captures one timestamp per HTTP request so that logs
// and responses produced while serving it agree on "now".
package requesttime

import (
	"net/http"
	"time"

	"ssinval/pkg/requestcontext"
)

// Middleware stores the request start time in the context.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := requestcontext.WithTime(r.Context(), time.Now())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
