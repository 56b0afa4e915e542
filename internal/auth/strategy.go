package auth

import (
	"context"
	"net/http"

	"jobhub/internal/models"
	"jobhub/internal/session"
)

// Authenticator is the credential check the local strategy delegates to
// (implemented by the accounts service).
type Authenticator interface {
	Authenticate(ctx context.Context, typ models.AccountType, username, password string) (*session.Identity, *models.Failure)
}

// Strategy turns a login request into a session identity. Strategies
// never touch the session store; the login handler does that on success.
type Strategy interface {
	Authenticate(r *http.Request) (*session.Identity, *models.Failure)
}
