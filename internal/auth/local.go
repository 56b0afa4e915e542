package auth

import (
	"encoding/json"
	"io"
	"net/http"

	"jobhub/internal/models"
	"jobhub/internal/session"
	"jobhub/internal/validation"
)

// Local authenticates a username-or-email + password form for one
// account type.
type Local struct {
	Accounts Authenticator
	Type     models.AccountType
}

type loginForm struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (l *Local) Authenticate(r *http.Request) (*session.Identity, *models.Failure) {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, models.Failf(http.StatusBadRequest, "Invalid request body")
	}
	if err := validation.Validate(r.Context(), validation.LoginSchema, raw); err != nil {
		return nil, models.Failf(http.StatusBadRequest, err.Error())
	}
	var form loginForm
	if err := json.Unmarshal(raw, &form); err != nil {
		return nil, models.Failf(http.StatusBadRequest, "Invalid request body")
	}
	return l.Accounts.Authenticate(r.Context(), l.Type, form.Username, form.Password)
}
