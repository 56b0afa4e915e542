package accounts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"jobhub/internal/logs"
	"jobhub/internal/models"
	"jobhub/internal/repo"
	"jobhub/internal/session"
	"jobhub/internal/storage"
	"jobhub/internal/validation"
)

// User-facing messages. Kept verbatim across endpoints so clients can
// match on them; "wrong password" vs "doesn't existed" is deliberately
// the only thing a failed login reveals.
const (
	MsgSomethingWrong    = "Something went wrong"
	MsgNameUsed          = "Name was already used"
	MsgEmailUsed         = "Email was already used"
	MsgPasswordMismatch  = "Password does not match"
	MsgRegistered        = "Successfully registered"
	MsgUserNotExist      = "User doesn't existed"
	MsgWrongPassword     = "Wrong password"
	MsgNotApproved       = "User isn't approved yet"
	MsgNotLoggedIn       = "User isn't logged in"
	MsgCredentialMissing = "Credential is missing"
)

// AccountStore is what the service needs from the account repository.
type AccountStore interface {
	FindDuplicate(ctx context.Context, officialName, email string) (*models.Account, error)
	Register(ctx context.Context, in repo.RegisterInput) (*repo.RegisterResult, error)
	MatchNameEmail(ctx context.Context, typ models.AccountType, credential string) ([]models.Account, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Account, error)
	GetByEmail(ctx context.Context, typ models.AccountType, email string) (*models.Account, error)
	Decide(ctx context.Context, id uuid.UUID, status models.ApprovalStatus) (uuid.UUID, error)
}

// ApprovalStore is what the upload workflow needs from the approval repository.
type ApprovalStore interface {
	SetImageURL(ctx context.Context, id uuid.UUID, url string) error
}

type Service struct {
	accounts   AccountStore
	approvals  ApprovalStore
	store      storage.ObjectStorage
	bucket     string
	urlExpire  time.Duration
	bcryptCost int
}

func NewService(accounts AccountStore, approvals ApprovalStore, store storage.ObjectStorage,
	bucket string, urlExpire time.Duration, bcryptCost int) *Service {
	return &Service{
		accounts:   accounts,
		approvals:  approvals,
		store:      store,
		bucket:     bucket,
		urlExpire:  urlExpire,
		bcryptCost: bcryptCost,
	}
}

// RegisterForm is the registration request body.
type RegisterForm struct {
	OfficialName    string `json:"officialName"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// Register runs the registration gates in order, each one fail-fast:
// schema, duplicate name/email, password confirmation, hash, insert.
func (s *Service) Register(ctx context.Context, typ models.AccountType, raw []byte) (*repo.RegisterResult, *models.Failure) {
	if err := validation.Validate(ctx, validation.RegisterSchema, raw); err != nil {
		return nil, models.Failf(http.StatusBadRequest, err.Error())
	}
	var form RegisterForm
	if err := json.Unmarshal(raw, &form); err != nil {
		return nil, models.Failf(http.StatusBadRequest, "Invalid request body")
	}

	dup, err := s.accounts.FindDuplicate(ctx, form.OfficialName, form.Email)
	if err != nil {
		logs.Logger.Errorf("accounts: duplicate check: %v", err)
		return nil, models.Failf(http.StatusForbidden, MsgSomethingWrong)
	}
	if dup != nil {
		if dup.OfficialName == form.OfficialName && dup.Email != form.Email {
			return nil, models.Failf(http.StatusBadRequest, MsgNameUsed)
		}
		if dup.Email == form.Email {
			return nil, models.Failf(http.StatusBadRequest, MsgEmailUsed)
		}
	}

	if form.Password != form.ConfirmPassword {
		return nil, models.Failf(http.StatusBadRequest, MsgPasswordMismatch)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(form.Password), s.bcryptCost)
	if err != nil {
		logs.Logger.Errorf("accounts: hash password: %v", err)
		return nil, models.Failf(http.StatusForbidden, MsgSomethingWrong)
	}

	result, err := s.accounts.Register(ctx, repo.RegisterInput{
		Type:         typ,
		OfficialName: form.OfficialName,
		Email:        form.Email,
		PasswordHash: string(hash),
	})
	// the unique constraint is the authoritative duplicate signal; a
	// concurrent registration can slip past the pre-check above
	if errors.Is(err, repo.ErrDuplicateName) {
		return nil, models.Failf(http.StatusBadRequest, MsgNameUsed)
	}
	if errors.Is(err, repo.ErrDuplicateEmail) {
		return nil, models.Failf(http.StatusBadRequest, MsgEmailUsed)
	}
	if err != nil {
		logs.Logger.Errorf("accounts: register insert: %v", err)
		return nil, models.Failf(http.StatusForbidden, MsgSomethingWrong)
	}
	return result, nil
}

// Authenticate verifies a username-or-email credential against every
// matching account of the given type. The password is checked before
// existence is reported, and approval is checked last: an unapproved
// account never authenticates even with the right password.
func (s *Service) Authenticate(ctx context.Context, typ models.AccountType, username, password string) (*session.Identity, *models.Failure) {
	candidates, err := s.accounts.MatchNameEmail(ctx, typ, username)
	if err != nil {
		logs.Logger.Errorf("accounts: match name/email: %v", err)
		return nil, models.Failf(http.StatusForbidden, MsgSomethingWrong)
	}
	if len(candidates) == 0 {
		return nil, models.Failf(http.StatusUnauthorized, MsgUserNotExist)
	}

	var matched *models.Account
	for i := range candidates {
		if bcrypt.CompareHashAndPassword([]byte(candidates[i].Password), []byte(password)) == nil {
			matched = &candidates[i]
			break
		}
	}
	if matched == nil {
		return nil, models.Failf(http.StatusUnauthorized, MsgWrongPassword)
	}
	if matched.ApprovalStatus != models.ApprovalStatusApproved {
		return nil, models.Failf(http.StatusUnauthorized, MsgNotApproved)
	}

	return &session.Identity{ID: matched.ID, Type: matched.Type}, nil
}

// CheckCurrent is the role gate: no session at all is a 403, a session
// of the wrong type a 401.
func (s *Service) CheckCurrent(id *session.Identity, typ models.AccountType) (*session.Identity, *models.Failure) {
	if id == nil {
		return nil, models.Failf(http.StatusForbidden, MsgSomethingWrong)
	}
	if id.Type != typ {
		return nil, models.Failf(http.StatusUnauthorized, MsgNotLoggedIn)
	}
	return id, nil
}

// GetCurrent resolves the session identity to the full account row
// (the password hash never leaves the model's json:"-" tag).
func (s *Service) GetCurrent(ctx context.Context, id *session.Identity, typ models.AccountType) (*models.Account, *models.Failure) {
	if id == nil {
		return nil, models.Failf(http.StatusForbidden, MsgSomethingWrong)
	}
	if id.Type != typ {
		return nil, models.Failf(http.StatusBadRequest, MsgNotLoggedIn)
	}
	acc, err := s.accounts.GetByID(ctx, id.ID)
	if err != nil {
		logs.Logger.Errorf("accounts: get current %s: %v", id.ID, err)
		return nil, models.Failf(http.StatusForbidden, MsgSomethingWrong)
	}
	return acc, nil
}

// RegistrationImage is the upload result.
type RegistrationImage struct {
	ApprovalID uuid.UUID `json:"approvalId"`
	URL        string    `json:"url"`
}

// UploadRegistrationImage stores the proof image under
// "{approvalId}_register", presigns a GET URL and persists it onto the
// approval row. Callers enforce the size and MIME limits beforehand.
func (s *Service) UploadRegistrationImage(ctx context.Context, approvalID uuid.UUID, img io.Reader, size int64, contentType string) (*RegistrationImage, *models.Failure) {
	key := fmt.Sprintf("%s_register", approvalID)

	if err := s.store.EnsureBucket(ctx, s.bucket); err != nil {
		logs.Logger.Errorf("accounts: ensure bucket %s: %v", s.bucket, err)
		return nil, models.Failf(http.StatusBadRequest, MsgSomethingWrong)
	}
	if err := s.store.Put(ctx, s.bucket, key, img, size, contentType); err != nil {
		logs.Logger.Errorf("accounts: put %s/%s: %v", s.bucket, key, err)
		return nil, models.Failf(http.StatusBadRequest, MsgSomethingWrong)
	}
	url, err := s.store.PresignGet(ctx, s.bucket, key, s.urlExpire)
	if err != nil {
		logs.Logger.Errorf("accounts: presign %s/%s: %v", s.bucket, key, err)
		return nil, models.Failf(http.StatusBadRequest, MsgSomethingWrong)
	}
	if err := s.approvals.SetImageURL(ctx, approvalID, url); err != nil {
		logs.Logger.Errorf("accounts: set image url %s: %v", approvalID, err)
		return nil, models.Failf(http.StatusBadRequest, MsgSomethingWrong)
	}
	return &RegistrationImage{ApprovalID: approvalID, URL: url}, nil
}

// ApprovalDecision is the admin decision request body.
type ApprovalDecision struct {
	AccountID string `json:"accountId"`
	Status    string `json:"status"`
}

// DecisionResult reports the affected account.
type DecisionResult struct {
	ID uuid.UUID `json:"id"`
}

// Decide applies an admin approval decision: APPROVED flips the account
// status, REJECTED removes the account and its approval row.
func (s *Service) Decide(ctx context.Context, raw []byte) (*DecisionResult, *models.Failure) {
	if err := validation.Validate(ctx, validation.ApprovalDecisionSchema, raw); err != nil {
		return nil, models.Failf(http.StatusBadRequest, err.Error())
	}
	var dec ApprovalDecision
	if err := json.Unmarshal(raw, &dec); err != nil {
		return nil, models.Failf(http.StatusBadRequest, "Invalid request body")
	}
	accountID, err := uuid.Parse(dec.AccountID)
	if err != nil {
		return nil, models.Failf(http.StatusBadRequest, MsgCredentialMissing)
	}

	status := models.ApprovalStatus(dec.Status)
	id, err := s.accounts.Decide(ctx, accountID, status)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, models.Failf(http.StatusBadRequest, MsgUserNotExist)
	}
	if err != nil {
		logs.Logger.Errorf("accounts: decide %s: %v", accountID, err)
		return nil, models.Failf(http.StatusForbidden, MsgSomethingWrong)
	}
	return &DecisionResult{ID: id}, nil
}
