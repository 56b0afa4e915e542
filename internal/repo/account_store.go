package repo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"jobhub/internal/models"
)

var (
	ErrNotFound       = errors.New("record not found")
	ErrDuplicateName  = errors.New("official name already used")
	ErrDuplicateEmail = errors.New("email already used")
)

type AccountStore struct{ db *gorm.DB }

func NewAccountStore(db *gorm.DB) *AccountStore { return &AccountStore{db: db} }

type RegisterInput struct {
	Type         models.AccountType
	OfficialName string
	Email        string
	PasswordHash string
}

type RegisterResult struct {
	UserID     uuid.UUID `json:"userId"`
	ApprovalID uuid.UUID `json:"approvalId"`
}

// FindDuplicate returns an account colliding with the given name or
// email, or nil. Advisory only: the unique indexes stay authoritative.
func (s *AccountStore) FindDuplicate(ctx context.Context, officialName, email string) (*models.Account, error) {
	var acc models.Account
	err := s.db.WithContext(ctx).
		Select("official_name", "email").
		Where("official_name = ? OR email = ?", officialName, email).
		First(&acc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &acc, nil
}

// Register inserts the account and its approval row in one transaction;
// neither exists without the other. A unique violation comes back as
// ErrDuplicateName or ErrDuplicateEmail.
func (s *AccountStore) Register(ctx context.Context, in RegisterInput) (*RegisterResult, error) {
	acc := models.Account{
		Type:           in.Type,
		OfficialName:   in.OfficialName,
		Email:          in.Email,
		Password:       in.PasswordHash,
		ApprovalStatus: models.ApprovalStatusUnapproved,
	}
	approval := models.RegistrationApproval{UserType: in.Type}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&acc).Error; err != nil {
			return err
		}
		approval.AccountID = acc.ID
		return tx.Create(&approval).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, s.classifyDuplicate(ctx, in.OfficialName)
	}
	if err != nil {
		return nil, err
	}
	return &RegisterResult{UserID: acc.ID, ApprovalID: approval.ID}, nil
}

// classifyDuplicate decides which constraint fired after an insert was
// rejected. Losing the race between the check and a concurrent delete
// still yields a duplicate error, just the email-flavored one.
func (s *AccountStore) classifyDuplicate(ctx context.Context, officialName string) error {
	var n int64
	if err := s.db.WithContext(ctx).Model(&models.Account{}).
		Where("official_name = ?", officialName).Count(&n).Error; err == nil && n > 0 {
		return ErrDuplicateName
	}
	return ErrDuplicateEmail
}

// MatchNameEmail returns every account of the given type whose official
// name or email equals the credential. More than one row is possible
// (one account's name may equal another's email).
func (s *AccountStore) MatchNameEmail(ctx context.Context, typ models.AccountType, credential string) ([]models.Account, error) {
	var accs []models.Account
	err := s.db.WithContext(ctx).
		Where("type = ? AND (official_name = ? OR email = ?)", typ, credential, credential).
		Find(&accs).Error
	if err != nil {
		return nil, err
	}
	return accs, nil
}

func (s *AccountStore) GetByID(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	var acc models.Account
	err := s.db.WithContext(ctx).First(&acc, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &acc, nil
}

func (s *AccountStore) GetByEmail(ctx context.Context, typ models.AccountType, email string) (*models.Account, error) {
	var acc models.Account
	err := s.db.WithContext(ctx).
		Where("type = ? AND email = ?", typ, email).
		First(&acc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &acc, nil
}

// Decide applies an admin approval decision. APPROVED flips the status
// in place; anything else removes the approval row and the account in
// one transaction. Returns the affected account id.
func (s *AccountStore) Decide(ctx context.Context, id uuid.UUID, status models.ApprovalStatus) (uuid.UUID, error) {
	if status == models.ApprovalStatusApproved {
		res := s.db.WithContext(ctx).Model(&models.Account{}).
			Where("id = ?", id).
			Update("approval_status", models.ApprovalStatusApproved)
		if res.Error != nil {
			return uuid.Nil, res.Error
		}
		if res.RowsAffected == 0 {
			return uuid.Nil, ErrNotFound
		}
		return id, nil
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("account_id = ?", id).Delete(&models.RegistrationApproval{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&models.Account{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}
