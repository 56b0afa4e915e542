package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobhub/internal/models"
	"jobhub/internal/session"
)

func sessionRouter(m *session.Manager, typ models.AccountType) *mux.Router {
	r := mux.NewRouter()
	sub := r.PathPrefix("/guarded").Subrouter()
	sub.Use(RequireSession(m), RequireType(typ))
	sub.HandleFunc("", func(w http.ResponseWriter, r *http.Request) {
		id := IdentityFrom(r)
		if id == nil {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)
	return r
}

func TestRequireSessionRejectsAnonymous(t *testing.T) {
	m := session.NewManager(session.NewMemStore(), time.Hour)
	router := sessionRouter(m, models.AccountTypeCompany)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/guarded", nil))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireSessionPassesIdentity(t *testing.T) {
	m := session.NewManager(session.NewMemStore(), time.Hour)
	router := sessionRouter(m, models.AccountTypeCompany)

	issue := httptest.NewRecorder()
	require.NoError(t, m.Issue(context.Background(), issue,
		session.Identity{ID: uuid.New(), Type: models.AccountTypeCompany}))

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.AddCookie(issue.Result().Cookies()[0])

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireTypeRejectsWrongRole(t *testing.T) {
	m := session.NewManager(session.NewMemStore(), time.Hour)
	router := sessionRouter(m, models.AccountTypeEmployer)

	issue := httptest.NewRecorder()
	require.NoError(t, m.Issue(context.Background(), issue,
		session.Identity{ID: uuid.New(), Type: models.AccountTypeCompany}))

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.AddCookie(issue.Result().Cookies()[0])

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
