package repo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"jobhub/internal/models"
)

type ApprovalStore struct{ db *gorm.DB }

func NewApprovalStore(db *gorm.DB) *ApprovalStore { return &ApprovalStore{db: db} }

func (s *ApprovalStore) GetByID(ctx context.Context, id uuid.UUID) (*models.RegistrationApproval, error) {
	var a models.RegistrationApproval
	err := s.db.WithContext(ctx).First(&a, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// SetImageURL persists the presigned proof-image URL onto the approval row.
func (s *ApprovalStore) SetImageURL(ctx context.Context, id uuid.UUID, url string) error {
	res := s.db.WithContext(ctx).Model(&models.RegistrationApproval{}).
		Where("id = ?", id).
		Update("image_url", url)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
