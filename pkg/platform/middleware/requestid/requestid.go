// Package requestid assigns a request ID to every HTTP request.
package requestid

import (
	"net/http"

	"github.com/google/uuid"

	"ssinval/pkg/requestcontext"
)

// Header carries the request ID in both directions.
const Header = "X-Request-ID"

// maxLen bounds caller-supplied IDs before they reach logs.
const maxLen = 128

// Middleware reuses a caller-supplied X-Request-ID or generates a UUID, stores
// it in the context and echoes it on the response.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get(Header)
		if reqID == "" || len(reqID) > maxLen {
			reqID = uuid.NewString()
		}
		w.Header().Set(Header, reqID)
		ctx := requestcontext.WithRequestID(r.Context(), reqID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
