package middleware

import (
	"net/http"
	"runtime/debug"

	"jobhub/internal/logs"
	"jobhub/internal/models"
)

// Recoverer catches handler panics, logs the stack and answers with the
// uniform failure envelope. Panics never reach the client as a fault.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				reqid := GetRequestID(r)
				logs.Logger.Errorf("panic: %v reqid=%s uri=%s method=%s\nstack:\n%s",
					rec, reqid, r.RequestURI, r.Method, string(debug.Stack()))
				models.WriteFailure(w, models.Failf(http.StatusInternalServerError, "Something went wrong"))
			}
		}()
		next.ServeHTTP(w, r)
	})
}
