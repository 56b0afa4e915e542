package session

import (
	"context"
	"time"

	"github.com/google/uuid"

	"jobhub/internal/models"
)

// CookieName is the session cookie issued on login and cleared on logout.
const CookieName = "sid"

// Identity is the minimal authenticated actor kept in the session store.
// Never holds the password hash or any other account field.
type Identity struct {
	ID   uuid.UUID          `json:"id"`
	Type models.AccountType `json:"type"`
}

// Store keeps server-side session state keyed by sid.
// Get returns (nil, nil) for an absent or expired session.
type Store interface {
	Put(ctx context.Context, sid string, id Identity, ttl time.Duration) error
	Get(ctx context.Context, sid string) (*Identity, error)
	Delete(ctx context.Context, sid string) error
}
