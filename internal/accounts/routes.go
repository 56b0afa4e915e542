package accounts

import (
	"net/http"

	"github.com/gorilla/mux"

	"jobhub/internal/auth"
	"jobhub/internal/models"
)

func RegisterRoutes(r *mux.Router, h *Handler) {
	api := r.PathPrefix("/api").Subrouter()

	company := api.PathPrefix("/company").Subrouter()
	localCompany := &auth.Local{Accounts: h.svc, Type: models.AccountTypeCompany}
	company.HandleFunc("", h.Register(models.AccountTypeCompany)).Methods(http.MethodPost)
	company.HandleFunc("/auth", h.Login(localCompany)).Methods(http.MethodPost)
	company.HandleFunc("/auth", h.Logout(models.AccountTypeCompany)).Methods(http.MethodDelete)
	company.HandleFunc("/auth/me", h.GetCurrent(models.AccountTypeCompany)).Methods(http.MethodGet)
	company.HandleFunc("/register-image/{approvalId}", h.UploadRegistrationImage).Methods(http.MethodPost)

	employer := api.PathPrefix("/employer").Subrouter()
	localEmployer := &auth.Local{Accounts: h.svc, Type: models.AccountTypeEmployer}
	employer.HandleFunc("", h.Register(models.AccountTypeEmployer)).Methods(http.MethodPost)
	employer.HandleFunc("/auth", h.Login(localEmployer)).Methods(http.MethodPost)
	employer.HandleFunc("/auth", h.Logout(models.AccountTypeEmployer)).Methods(http.MethodDelete)
	employer.HandleFunc("/auth/me", h.GetCurrent(models.AccountTypeEmployer)).Methods(http.MethodGet)
	employer.HandleFunc("/register-image/{approvalId}", h.UploadRegistrationImage).Methods(http.MethodPost)
	if h.google != nil {
		employer.HandleFunc("/auth/google", h.GoogleLogin).Methods(http.MethodGet)
		employer.HandleFunc("/auth/google/callback", h.GoogleCallback).Methods(http.MethodGet)
	}

	api.HandleFunc("/admin/approvals", h.DecideApproval).Methods(http.MethodPost)
}
