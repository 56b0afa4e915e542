package accounts

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/oauth2"

	"jobhub/internal/auth"
	"jobhub/internal/models"
	"jobhub/internal/session"
	"jobhub/internal/storage"
)

const frontendURL = "http://localhost:5173"

// fakeGoogle stands in for Google's token and userinfo endpoints.
func fakeGoogle(t *testing.T, email string) *httptest.Server {
	t.Helper()
	m := http.NewServeMux()
	m.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"test-token","token_type":"Bearer","expires_in":3600}`))
	})
	m.HandleFunc("/userinfo", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"email":"` + email + `"}`))
	})
	srv := httptest.NewServer(m)
	t.Cleanup(srv.Close)
	return srv
}

func newGoogleAPI(t *testing.T, accs *fakeAccountStore, srv *httptest.Server) *mux.Router {
	t.Helper()
	svc := NewService(accs, newFakeApprovalStore(), storage.NewMemStore(),
		"approval-images", 3*time.Hour, bcrypt.MinCost)
	sessions := session.NewManager(session.NewMemStore(), time.Hour)

	google := &auth.Google{
		Accounts:    accs,
		UserinfoURL: srv.URL + "/userinfo",
		OAuth: &oauth2.Config{
			ClientID:     "client-id",
			ClientSecret: "client-secret",
			RedirectURL:  srv.URL + "/callback",
			Scopes:       []string{"https://www.googleapis.com/auth/userinfo.email"},
			Endpoint: oauth2.Endpoint{
				AuthURL:  srv.URL + "/oauth",
				TokenURL: srv.URL + "/token",
			},
		},
	}

	r := mux.NewRouter().StrictSlash(true)
	RegisterRoutes(r, NewHandler(svc, sessions, google, frontendURL))
	return r
}

// startGoogleLogin returns the state cookie and state parameter issued
// by the consent redirect.
func startGoogleLogin(t *testing.T, router *mux.Router) (*http.Cookie, string) {
	t.Helper()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/employer/auth/google", nil))
	require.Equal(t, http.StatusTemporaryRedirect, rec.Code)

	var stateCookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == oauthStateCookie {
			stateCookie = c
		}
	}
	require.NotNil(t, stateCookie)

	loc, err := url.Parse(rec.Header().Get("Location"))
	require.NoError(t, err)
	state := loc.Query().Get("state")
	require.Equal(t, stateCookie.Value, state)
	return stateCookie, state
}

func TestGoogleCallbackSuccess(t *testing.T) {
	srv := fakeGoogle(t, "jane@example.com")
	accs := newFakeAccountStore()
	accs.add(models.AccountTypeEmployer, "Jane Recruits", "jane@example.com", "sup3rsecret", models.ApprovalStatusApproved)
	router := newGoogleAPI(t, accs, srv)

	stateCookie, state := startGoogleLogin(t, router)

	req := httptest.NewRequest(http.MethodGet,
		"/api/employer/auth/google/callback?state="+state+"&code=good-code", nil)
	req.AddCookie(stateCookie)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	assert.Equal(t, frontendURL+"?msg=success", rec.Header().Get("Location"))

	var sid *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == session.CookieName {
			sid = c
		}
	}
	require.NotNil(t, sid)
	assert.NotEmpty(t, sid.Value)
	assert.True(t, sid.HttpOnly)
}

func TestGoogleCallbackUnknownEmail(t *testing.T) {
	srv := fakeGoogle(t, "stranger@example.com")
	router := newGoogleAPI(t, newFakeAccountStore(), srv)

	stateCookie, state := startGoogleLogin(t, router)

	req := httptest.NewRequest(http.MethodGet,
		"/api/employer/auth/google/callback?state="+state+"&code=good-code", nil)
	req.AddCookie(stateCookie)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	assert.Equal(t, frontendURL+"/login?msg="+url.QueryEscape(MsgUserNotExist),
		rec.Header().Get("Location"))
}

func TestGoogleCallbackUnapprovedEmployer(t *testing.T) {
	srv := fakeGoogle(t, "jane@example.com")
	accs := newFakeAccountStore()
	accs.add(models.AccountTypeEmployer, "Jane Recruits", "jane@example.com", "sup3rsecret", models.ApprovalStatusUnapproved)
	router := newGoogleAPI(t, accs, srv)

	stateCookie, state := startGoogleLogin(t, router)

	req := httptest.NewRequest(http.MethodGet,
		"/api/employer/auth/google/callback?state="+state+"&code=good-code", nil)
	req.AddCookie(stateCookie)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	assert.Equal(t, frontendURL+"/login?msg="+url.QueryEscape(MsgNotApproved),
		rec.Header().Get("Location"))
}

func TestGoogleCallbackStateMismatch(t *testing.T) {
	srv := fakeGoogle(t, "jane@example.com")
	router := newGoogleAPI(t, newFakeAccountStore(), srv)

	stateCookie, _ := startGoogleLogin(t, router)

	req := httptest.NewRequest(http.MethodGet,
		"/api/employer/auth/google/callback?state=forged&code=good-code", nil)
	req.AddCookie(stateCookie)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	assert.Equal(t, frontendURL+"/login?msg="+url.QueryEscape(MsgSomethingWrong),
		rec.Header().Get("Location"))
}
