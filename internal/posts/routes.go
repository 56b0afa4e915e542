package posts

import (
	"net/http"

	"github.com/gorilla/mux"

	"jobhub/internal/middleware"
	"jobhub/internal/models"
	"jobhub/internal/session"
)

// RegisterRoutes wires the post CRUD behind the session gate; the
// create variants additionally require the route's account type.
func RegisterRoutes(r *mux.Router, h *Handler, sessions *session.Manager) {
	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.RequireSession(sessions))

	employerOnly := api.NewRoute().Subrouter()
	employerOnly.Use(middleware.RequireType(models.AccountTypeEmployer))
	employerOnly.HandleFunc("/job-posts/employer", h.CreateJobPost).Methods(http.MethodPost)
	employerOnly.HandleFunc("/user/job-posts", h.ListOwnJobPosts).Methods(http.MethodGet)

	companyOnly := api.NewRoute().Subrouter()
	companyOnly.Use(middleware.RequireType(models.AccountTypeCompany))
	companyOnly.HandleFunc("/job-posts/company", h.CreateJobPost).Methods(http.MethodPost)
	companyOnly.HandleFunc("/company/job-posts", h.ListOwnJobPosts).Methods(http.MethodGet)

	api.HandleFunc("/job-posts", h.ListJobPosts).Methods(http.MethodGet)
	api.HandleFunc("/job-posts/{id}", h.GetJobPost).Methods(http.MethodGet)
	api.HandleFunc("/job-posts/{id}", h.UpdateJobPost).Methods(http.MethodPut)
	api.HandleFunc("/job-posts/{id}", h.DeleteJobPost).Methods(http.MethodDelete)

	api.HandleFunc("/finding-posts", h.ListFindingPosts).Methods(http.MethodGet)
	api.HandleFunc("/finding-posts", h.CreateFindingPost).Methods(http.MethodPost)
	api.HandleFunc("/user/finding-posts", h.ListOwnFindingPosts).Methods(http.MethodGet)
	api.HandleFunc("/finding-posts/{id}", h.GetFindingPost).Methods(http.MethodGet)
	api.HandleFunc("/finding-posts/{id}", h.UpdateFindingPost).Methods(http.MethodPut)
	api.HandleFunc("/finding-posts/{id}", h.DeleteFindingPost).Methods(http.MethodDelete)
}
