package session

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Manager issues and resolves sid cookies against a Store.
type Manager struct {
	store Store
	ttl   time.Duration
}

func NewManager(store Store, ttl time.Duration) *Manager {
	return &Manager{store: store, ttl: ttl}
}

// Issue creates a fresh session for the identity and sets the sid cookie.
func (m *Manager) Issue(ctx context.Context, w http.ResponseWriter, id Identity) error {
	sid := uuid.NewString()
	if err := m.store.Put(ctx, sid, id, m.ttl); err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    sid,
		Path:     "/",
		MaxAge:   int(m.ttl / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Current resolves the request's session, nil when there is none.
func (m *Manager) Current(r *http.Request) (*Identity, error) {
	c, err := r.Cookie(CookieName)
	if err != nil || c.Value == "" {
		return nil, nil
	}
	return m.store.Get(r.Context(), c.Value)
}

// Destroy removes the server-side session and clears the sid cookie.
func (m *Manager) Destroy(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	if c, err := r.Cookie(CookieName); err == nil && c.Value != "" {
		if err := m.store.Delete(ctx, c.Value); err != nil {
			return err
		}
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	return nil
}
