package middleware

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"jobhub/internal/logs"
	"jobhub/internal/models"
	"jobhub/internal/session"
)

const identityKey ctxKey = "identity"

// RequireSession rejects requests without a live session (403) and puts
// the identity into the request context for downstream handlers.
func RequireSession(m *session.Manager) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, err := m.Current(r)
			if err != nil {
				logs.Logger.Errorf("session lookup: %v", err)
				models.WriteFailure(w, models.Failf(http.StatusForbidden, "Something went wrong"))
				return
			}
			if id == nil {
				models.WriteFailure(w, models.Failf(http.StatusForbidden, "Something went wrong"))
				return
			}
			ctx := context.WithValue(r.Context(), identityKey, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireType rejects sessions of the wrong account type (401).
// Must run after RequireSession.
func RequireType(typ models.AccountType) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := IdentityFrom(r)
			if id == nil {
				models.WriteFailure(w, models.Failf(http.StatusForbidden, "Something went wrong"))
				return
			}
			if id.Type != typ {
				models.WriteFailure(w, models.Failf(http.StatusUnauthorized, "User isn't logged in"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// IdentityFrom returns the session identity stored by RequireSession.
func IdentityFrom(r *http.Request) *session.Identity {
	v := r.Context().Value(identityKey)
	if id, ok := v.(*session.Identity); ok {
		return id
	}
	return nil
}
