package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	endpoints "golang.org/x/oauth2/google"

	"jobhub/internal/logs"
	"jobhub/internal/models"
	"jobhub/internal/repo"
	"jobhub/internal/session"
)

const googleUserinfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// EmployerLookup is the account lookup the Google strategy needs.
type EmployerLookup interface {
	GetByEmail(ctx context.Context, typ models.AccountType, email string) (*models.Account, error)
}

// Google logs an employer in via Google OAuth: exchange the callback
// code, read the userinfo email, match it to an approved employer.
type Google struct {
	Accounts    EmployerLookup
	OAuth       *oauth2.Config
	UserinfoURL string
}

func NewGoogle(accounts EmployerLookup, clientID, clientSecret, redirectURL string) *Google {
	return &Google{
		Accounts:    accounts,
		UserinfoURL: googleUserinfoURL,
		OAuth: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       []string{"https://www.googleapis.com/auth/userinfo.email"},
			Endpoint:     endpoints.Endpoint,
		},
	}
}

// AuthURL is the consent-screen redirect target.
func (g *Google) AuthURL(state string) string {
	return g.OAuth.AuthCodeURL(state)
}

func (g *Google) Authenticate(r *http.Request) (*session.Identity, *models.Failure) {
	ctx := r.Context()
	code := r.URL.Query().Get("code")
	if code == "" {
		return nil, models.Failf(http.StatusBadRequest, "Credential is missing")
	}

	tok, err := g.OAuth.Exchange(ctx, code)
	if err != nil {
		logs.Logger.Errorf("auth: google exchange: %v", err)
		return nil, models.Failf(http.StatusForbidden, "Something went wrong")
	}

	email, err := g.fetchEmail(ctx, tok)
	if err != nil {
		logs.Logger.Errorf("auth: google userinfo: %v", err)
		return nil, models.Failf(http.StatusForbidden, "Something went wrong")
	}

	acc, err := g.Accounts.GetByEmail(ctx, models.AccountTypeEmployer, email)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, models.Failf(http.StatusUnauthorized, "User doesn't existed")
	}
	if err != nil {
		logs.Logger.Errorf("auth: google lookup %s: %v", email, err)
		return nil, models.Failf(http.StatusForbidden, "Something went wrong")
	}
	if acc.ApprovalStatus != models.ApprovalStatusApproved {
		return nil, models.Failf(http.StatusUnauthorized, "User isn't approved yet")
	}

	return &session.Identity{ID: acc.ID, Type: acc.Type}, nil
}

func (g *Google) fetchEmail(ctx context.Context, tok *oauth2.Token) (string, error) {
	resp, err := g.OAuth.Client(ctx, tok).Get(g.UserinfoURL)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("userinfo status %d", resp.StatusCode)
	}
	var info struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return "", err
	}
	if info.Email == "" {
		return "", errors.New("userinfo without email")
	}
	return info.Email, nil
}
