package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type ctxKey string

const requestIDKey ctxKey = "reqid"

// requestIDHeader is echoed back on every response; an inbound value is
// trusted so upstream proxies can correlate.
const requestIDHeader = "X-Request-Id"

// RequestID tags the request with an id for log correlation.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqid := r.Header.Get(requestIDHeader)
		if reqid == "" {
			reqid = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, reqid)
		next.ServeHTTP(w, r.WithContext(
			context.WithValue(r.Context(), requestIDKey, reqid)))
	})
}

// GetRequestID returns the id set by RequestID, or "".
func GetRequestID(r *http.Request) string {
	if s, ok := r.Context().Value(requestIDKey).(string); ok {
		return s
	}
	return ""
}
