package posts

import (
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"jobhub/internal/middleware"
	"jobhub/internal/models"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) CreateJobPost(w http.ResponseWriter, r *http.Request) {
	owner := middleware.IdentityFrom(r)
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		models.WriteFailure(w, models.Failf(http.StatusBadRequest, "Invalid request body"))
		return
	}
	post, fail := h.svc.CreateJobPost(r.Context(), *owner, raw)
	if fail != nil {
		models.WriteFailure(w, fail)
		return
	}
	models.WriteSuccess(w, http.StatusCreated, "Successfully created job post", post)
}

func (h *Handler) ListJobPosts(w http.ResponseWriter, r *http.Request) {
	page := ParsePage(r.URL.Query().Get("page"), r.URL.Query().Get("limit"))
	posts, fail := h.svc.ListJobPosts(r.Context(), page)
	if fail != nil {
		models.WriteFailure(w, fail)
		return
	}
	models.WriteSuccess(w, http.StatusOK, "Successfully retrieve job posts", posts)
}

func (h *Handler) GetJobPost(w http.ResponseWriter, r *http.Request) {
	id, fail := pathID(r)
	if fail != nil {
		models.WriteFailure(w, fail)
		return
	}
	post, fail := h.svc.GetJobPost(r.Context(), id)
	if fail != nil {
		models.WriteFailure(w, fail)
		return
	}
	models.WriteSuccess(w, http.StatusOK, "Successfully retrieve job post", post)
}

func (h *Handler) UpdateJobPost(w http.ResponseWriter, r *http.Request) {
	owner := middleware.IdentityFrom(r)
	id, fail := pathID(r)
	if fail != nil {
		models.WriteFailure(w, fail)
		return
	}
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		models.WriteFailure(w, models.Failf(http.StatusBadRequest, "Invalid request body"))
		return
	}
	post, fail := h.svc.UpdateJobPost(r.Context(), *owner, id, raw)
	if fail != nil {
		models.WriteFailure(w, fail)
		return
	}
	models.WriteSuccess(w, http.StatusOK, "Successfully updated job post", post)
}

func (h *Handler) DeleteJobPost(w http.ResponseWriter, r *http.Request) {
	owner := middleware.IdentityFrom(r)
	id, fail := pathID(r)
	if fail != nil {
		models.WriteFailure(w, fail)
		return
	}
	post, fail := h.svc.DeleteJobPost(r.Context(), *owner, id)
	if fail != nil {
		models.WriteFailure(w, fail)
		return
	}
	models.WriteSuccess(w, http.StatusOK, "Successfully deleted job post", post)
}

func (h *Handler) ListOwnJobPosts(w http.ResponseWriter, r *http.Request) {
	owner := middleware.IdentityFrom(r)
	posts, fail := h.svc.ListOwnJobPosts(r.Context(), *owner)
	if fail != nil {
		models.WriteFailure(w, fail)
		return
	}
	models.WriteSuccess(w, http.StatusOK, "Successfully retrieve job posts", posts)
}

func (h *Handler) CreateFindingPost(w http.ResponseWriter, r *http.Request) {
	owner := middleware.IdentityFrom(r)
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		models.WriteFailure(w, models.Failf(http.StatusBadRequest, "Invalid request body"))
		return
	}
	post, fail := h.svc.CreateFindingPost(r.Context(), *owner, raw)
	if fail != nil {
		models.WriteFailure(w, fail)
		return
	}
	models.WriteSuccess(w, http.StatusCreated, "Successfully created job finding post", post)
}

func (h *Handler) ListFindingPosts(w http.ResponseWriter, r *http.Request) {
	page := ParsePage(r.URL.Query().Get("page"), r.URL.Query().Get("limit"))
	posts, fail := h.svc.ListFindingPosts(r.Context(), page)
	if fail != nil {
		models.WriteFailure(w, fail)
		return
	}
	models.WriteSuccess(w, http.StatusOK, "Successfully retrieve job finding posts", posts)
}

func (h *Handler) GetFindingPost(w http.ResponseWriter, r *http.Request) {
	id, fail := pathID(r)
	if fail != nil {
		models.WriteFailure(w, fail)
		return
	}
	post, fail := h.svc.GetFindingPost(r.Context(), id)
	if fail != nil {
		models.WriteFailure(w, fail)
		return
	}
	models.WriteSuccess(w, http.StatusOK, "Successfully retrieve job finding post", post)
}

func (h *Handler) UpdateFindingPost(w http.ResponseWriter, r *http.Request) {
	owner := middleware.IdentityFrom(r)
	id, fail := pathID(r)
	if fail != nil {
		models.WriteFailure(w, fail)
		return
	}
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		models.WriteFailure(w, models.Failf(http.StatusBadRequest, "Invalid request body"))
		return
	}
	post, fail := h.svc.UpdateFindingPost(r.Context(), *owner, id, raw)
	if fail != nil {
		models.WriteFailure(w, fail)
		return
	}
	models.WriteSuccess(w, http.StatusOK, "Successfully updated job finding post", post)
}

func (h *Handler) DeleteFindingPost(w http.ResponseWriter, r *http.Request) {
	owner := middleware.IdentityFrom(r)
	id, fail := pathID(r)
	if fail != nil {
		models.WriteFailure(w, fail)
		return
	}
	post, fail := h.svc.DeleteFindingPost(r.Context(), *owner, id)
	if fail != nil {
		models.WriteFailure(w, fail)
		return
	}
	models.WriteSuccess(w, http.StatusOK, "Successfully deleted job finding post", post)
}

func (h *Handler) ListOwnFindingPosts(w http.ResponseWriter, r *http.Request) {
	owner := middleware.IdentityFrom(r)
	posts, fail := h.svc.ListOwnFindingPosts(r.Context(), *owner)
	if fail != nil {
		models.WriteFailure(w, fail)
		return
	}
	models.WriteSuccess(w, http.StatusOK, "Successfully retrieve job finding posts", posts)
}

func pathID(r *http.Request) (uuid.UUID, *models.Failure) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		return uuid.Nil, models.Failf(http.StatusBadRequest, "Credential is missing")
	}
	return id, nil
}
