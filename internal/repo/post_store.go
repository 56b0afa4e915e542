package repo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"jobhub/internal/models"
)

type PostStore struct{ db *gorm.DB }

func NewPostStore(db *gorm.DB) *PostStore { return &PostStore{db: db} }

// ---- job posts ----

func (s *PostStore) CreateJobPost(ctx context.Context, p *models.JobPost) error {
	return s.db.WithContext(ctx).Create(p).Error
}

func (s *PostStore) GetJobPost(ctx context.Context, id uuid.UUID) (*models.JobPost, error) {
	var p models.JobPost
	err := s.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *PostStore) ListJobPosts(ctx context.Context, limit, offset int) ([]models.JobPost, error) {
	var ps []models.JobPost
	err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&ps).Error
	if err != nil {
		return nil, err
	}
	return ps, nil
}

func (s *PostStore) ListJobPostsByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.JobPost, error) {
	var ps []models.JobPost
	err := s.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&ps).Error
	if err != nil {
		return nil, err
	}
	return ps, nil
}

func (s *PostStore) UpdateJobPost(ctx context.Context, p *models.JobPost) error {
	return s.db.WithContext(ctx).Save(p).Error
}

func (s *PostStore) DeleteJobPost(ctx context.Context, id uuid.UUID) error {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.JobPost{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ---- job-finding posts ----

func (s *PostStore) CreateFindingPost(ctx context.Context, p *models.JobFindingPost) error {
	return s.db.WithContext(ctx).Create(p).Error
}

func (s *PostStore) GetFindingPost(ctx context.Context, id uuid.UUID) (*models.JobFindingPost, error) {
	var p models.JobFindingPost
	err := s.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *PostStore) ListFindingPosts(ctx context.Context, limit, offset int) ([]models.JobFindingPost, error) {
	var ps []models.JobFindingPost
	err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&ps).Error
	if err != nil {
		return nil, err
	}
	return ps, nil
}

func (s *PostStore) ListFindingPostsByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.JobFindingPost, error) {
	var ps []models.JobFindingPost
	err := s.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&ps).Error
	if err != nil {
		return nil, err
	}
	return ps, nil
}

func (s *PostStore) UpdateFindingPost(ctx context.Context, p *models.JobFindingPost) error {
	return s.db.WithContext(ctx).Save(p).Error
}

func (s *PostStore) DeleteFindingPost(ctx context.Context, id uuid.UUID) error {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.JobFindingPost{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
