package accounts

import (
	"errors"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"jobhub/internal/auth"
	"jobhub/internal/logs"
	"jobhub/internal/models"
	"jobhub/internal/session"
)

// maxImageSize caps the proof image (enforced before the service or
// the object store is touched). The request body gets a little headroom
// on top for the multipart boundary and part headers, so a file of
// exactly maxImageSize still fits.
const (
	maxImageSize      = 3 << 20 // 3MB
	multipartOverhead = 16 << 10
)

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
}

const oauthStateCookie = "oauth_state"

type Handler struct {
	svc         *Service
	sessions    *session.Manager
	google      *auth.Google // nil when OAuth is not configured
	frontendURL string
}

func NewHandler(svc *Service, sessions *session.Manager, google *auth.Google, frontendURL string) *Handler {
	return &Handler{svc: svc, sessions: sessions, google: google, frontendURL: frontendURL}
}

func (h *Handler) Register(typ models.AccountType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw, err := io.ReadAll(r.Body)
		if err != nil {
			models.WriteFailure(w, models.Failf(http.StatusBadRequest, "Invalid request body"))
			return
		}
		result, fail := h.svc.Register(r.Context(), typ, raw)
		if fail != nil {
			models.WriteFailure(w, fail)
			return
		}
		models.WriteSuccess(w, http.StatusCreated, MsgRegistered, result)
	}
}

func (h *Handler) Login(strategy auth.Strategy) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, fail := strategy.Authenticate(r)
		if fail != nil {
			models.WriteFailure(w, fail)
			return
		}
		if err := h.sessions.Issue(r.Context(), w, *id); err != nil {
			logs.Logger.Errorf("accounts: issue session: %v", err)
			models.WriteFailure(w, models.Failf(http.StatusForbidden, "Something went wrong when logging in"))
			return
		}
		models.WriteSuccess(w, http.StatusOK, "Successfully logged in", id)
	}
}

// Logout gates on the route's account type first, so a company session
// cannot log out through the employer endpoint.
func (h *Handler) Logout(typ models.AccountType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		current, err := h.sessions.Current(r)
		if err != nil {
			logs.Logger.Errorf("accounts: session lookup: %v", err)
			models.WriteFailure(w, models.Failf(http.StatusForbidden, MsgSomethingWrong))
			return
		}
		id, fail := h.svc.CheckCurrent(current, typ)
		if fail != nil {
			models.WriteFailure(w, fail)
			return
		}
		if err := h.sessions.Destroy(r.Context(), w, r); err != nil {
			logs.Logger.Errorf("accounts: destroy session: %v", err)
			models.WriteFailure(w, models.Failf(http.StatusForbidden, "Something went wrong when logging out"))
			return
		}
		models.WriteSuccess(w, http.StatusOK, "Successfully logged out", id)
	}
}

func (h *Handler) GetCurrent(typ models.AccountType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		current, err := h.sessions.Current(r)
		if err != nil {
			logs.Logger.Errorf("accounts: session lookup: %v", err)
			models.WriteFailure(w, models.Failf(http.StatusForbidden, MsgSomethingWrong))
			return
		}
		acc, fail := h.svc.GetCurrent(r.Context(), current, typ)
		if fail != nil {
			models.WriteFailure(w, fail)
			return
		}
		models.WriteSuccess(w, http.StatusOK, "Successfully retrieve user", acc)
	}
}

func (h *Handler) UploadRegistrationImage(w http.ResponseWriter, r *http.Request) {
	rawID, ok := mux.Vars(r)["approvalId"]
	if !ok || rawID == "" {
		models.WriteFailure(w, models.Failf(http.StatusBadRequest, MsgCredentialMissing))
		return
	}
	approvalID, err := uuid.Parse(rawID)
	if err != nil {
		models.WriteFailure(w, models.Failf(http.StatusBadRequest, MsgCredentialMissing))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxImageSize+multipartOverhead)
	if err := r.ParseMultipartForm(maxImageSize); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			models.WriteFailure(w, models.Failf(http.StatusBadRequest, "File too large"))
			return
		}
		models.WriteFailure(w, models.Failf(http.StatusForbidden, MsgSomethingWrong))
		return
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		models.WriteFailure(w, models.Failf(http.StatusBadRequest, "Image is missing"))
		return
	}
	defer file.Close()

	if header.Size > maxImageSize {
		models.WriteFailure(w, models.Failf(http.StatusBadRequest, "File too large"))
		return
	}
	contentType := header.Header.Get("Content-Type")
	if !allowedImageTypes[contentType] {
		models.WriteFailure(w, models.Failf(http.StatusBadRequest, "Incorrect image format"))
		return
	}

	result, fail := h.svc.UploadRegistrationImage(r.Context(), approvalID, file, header.Size, contentType)
	if fail != nil {
		models.WriteFailure(w, fail)
		return
	}
	models.WriteSuccess(w, http.StatusCreated, "Successfully upload registration approval image", result)
}

// GoogleLogin redirects to the Google consent screen with a one-shot
// state cookie.
func (h *Handler) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	state := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     oauthStateCookie,
		Value:    state,
		Path:     "/",
		MaxAge:   int((10 * time.Minute) / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, h.google.AuthURL(state), http.StatusTemporaryRedirect)
}

// GoogleCallback finishes the OAuth flow. Outcomes are reported to the
// frontend via a msg query parameter, success and failure alike.
func (h *Handler) GoogleCallback(w http.ResponseWriter, r *http.Request) {
	c, err := r.Cookie(oauthStateCookie)
	if err != nil || c.Value == "" || c.Value != r.URL.Query().Get("state") {
		h.redirectLogin(w, r, "Something went wrong")
		return
	}
	http.SetCookie(w, &http.Cookie{Name: oauthStateCookie, Value: "", Path: "/", MaxAge: -1, HttpOnly: true})

	id, fail := h.google.Authenticate(r)
	if fail != nil {
		h.redirectLogin(w, r, fail.Msg)
		return
	}
	if err := h.sessions.Issue(r.Context(), w, *id); err != nil {
		logs.Logger.Errorf("accounts: issue session: %v", err)
		h.redirectLogin(w, r, MsgSomethingWrong)
		return
	}
	http.Redirect(w, r, h.frontendURL+"?msg=success", http.StatusTemporaryRedirect)
}

func (h *Handler) redirectLogin(w http.ResponseWriter, r *http.Request, msg string) {
	http.Redirect(w, r, h.frontendURL+"/login?msg="+url.QueryEscape(msg), http.StatusTemporaryRedirect)
}

func (h *Handler) DecideApproval(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		models.WriteFailure(w, models.Failf(http.StatusBadRequest, "Invalid request body"))
		return
	}
	result, fail := h.svc.Decide(r.Context(), raw)
	if fail != nil {
		models.WriteFailure(w, fail)
		return
	}
	models.WriteSuccess(w, http.StatusOK, "Successfully applied approval decision", result)
}
