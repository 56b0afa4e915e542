package posts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"jobhub/internal/logs"
	"jobhub/internal/models"
	"jobhub/internal/repo"
	"jobhub/internal/session"
	"jobhub/internal/validation"
)

const (
	MsgPostNotExist   = "Post doesn't existed"
	MsgNotOwner       = "User isn't the owner"
	MsgSomethingWrong = "Something went wrong"

	defaultPageSize = 20
	maxPageSize     = 100
)

// Store is what the posts service needs from the repository.
type Store interface {
	CreateJobPost(ctx context.Context, p *models.JobPost) error
	GetJobPost(ctx context.Context, id uuid.UUID) (*models.JobPost, error)
	ListJobPosts(ctx context.Context, limit, offset int) ([]models.JobPost, error)
	ListJobPostsByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.JobPost, error)
	UpdateJobPost(ctx context.Context, p *models.JobPost) error
	DeleteJobPost(ctx context.Context, id uuid.UUID) error

	CreateFindingPost(ctx context.Context, p *models.JobFindingPost) error
	GetFindingPost(ctx context.Context, id uuid.UUID) (*models.JobFindingPost, error)
	ListFindingPosts(ctx context.Context, limit, offset int) ([]models.JobFindingPost, error)
	ListFindingPostsByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.JobFindingPost, error)
	UpdateFindingPost(ctx context.Context, p *models.JobFindingPost) error
	DeleteFindingPost(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	store Store
}

func NewService(store Store) *Service { return &Service{store: store} }

// Page clamps user-supplied pagination to sane bounds.
type Page struct {
	Limit  int
	Offset int
}

func ParsePage(rawPage, rawLimit string) Page {
	page, _ := strconv.Atoi(rawPage)
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(rawLimit)
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	return Page{Limit: limit, Offset: (page - 1) * limit}
}

// JobPostForm is the create/update body for hiring posts.
type JobPostForm struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	JobType     string `json:"jobType"`
	SalaryMin   int    `json:"salaryMin"`
	SalaryMax   int    `json:"salaryMax"`
}

func (s *Service) CreateJobPost(ctx context.Context, owner session.Identity, raw []byte) (*models.JobPost, *models.Failure) {
	form, fail := parseJobPostForm(ctx, raw)
	if fail != nil {
		return nil, fail
	}
	post := &models.JobPost{
		OwnerID:     owner.ID,
		OwnerType:   owner.Type,
		Title:       form.Title,
		Description: form.Description,
		Location:    form.Location,
		JobType:     form.JobType,
		SalaryMin:   form.SalaryMin,
		SalaryMax:   form.SalaryMax,
	}
	if err := s.store.CreateJobPost(ctx, post); err != nil {
		logs.Logger.Errorf("posts: create job post: %v", err)
		return nil, models.Failf(http.StatusForbidden, MsgSomethingWrong)
	}
	return post, nil
}

func (s *Service) GetJobPost(ctx context.Context, id uuid.UUID) (*models.JobPost, *models.Failure) {
	post, err := s.store.GetJobPost(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, models.Failf(http.StatusBadRequest, MsgPostNotExist)
	}
	if err != nil {
		logs.Logger.Errorf("posts: get job post %s: %v", id, err)
		return nil, models.Failf(http.StatusForbidden, MsgSomethingWrong)
	}
	return post, nil
}

func (s *Service) ListJobPosts(ctx context.Context, page Page) ([]models.JobPost, *models.Failure) {
	posts, err := s.store.ListJobPosts(ctx, page.Limit, page.Offset)
	if err != nil {
		logs.Logger.Errorf("posts: list job posts: %v", err)
		return nil, models.Failf(http.StatusForbidden, MsgSomethingWrong)
	}
	return posts, nil
}

func (s *Service) ListOwnJobPosts(ctx context.Context, owner session.Identity) ([]models.JobPost, *models.Failure) {
	posts, err := s.store.ListJobPostsByOwner(ctx, owner.ID)
	if err != nil {
		logs.Logger.Errorf("posts: list own job posts: %v", err)
		return nil, models.Failf(http.StatusForbidden, MsgSomethingWrong)
	}
	return posts, nil
}

// UpdateJobPost rewrites an owned post; only the owner may touch it.
func (s *Service) UpdateJobPost(ctx context.Context, owner session.Identity, id uuid.UUID, raw []byte) (*models.JobPost, *models.Failure) {
	form, fail := parseJobPostForm(ctx, raw)
	if fail != nil {
		return nil, fail
	}
	post, err := s.store.GetJobPost(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, models.Failf(http.StatusBadRequest, MsgPostNotExist)
	}
	if err != nil {
		logs.Logger.Errorf("posts: get job post %s: %v", id, err)
		return nil, models.Failf(http.StatusForbidden, MsgSomethingWrong)
	}
	if post.OwnerID != owner.ID {
		return nil, models.Failf(http.StatusUnauthorized, MsgNotOwner)
	}

	post.Title = form.Title
	post.Description = form.Description
	post.Location = form.Location
	post.JobType = form.JobType
	post.SalaryMin = form.SalaryMin
	post.SalaryMax = form.SalaryMax
	if err := s.store.UpdateJobPost(ctx, post); err != nil {
		logs.Logger.Errorf("posts: update job post %s: %v", id, err)
		return nil, models.Failf(http.StatusForbidden, MsgSomethingWrong)
	}
	return post, nil
}

func (s *Service) DeleteJobPost(ctx context.Context, owner session.Identity, id uuid.UUID) (*models.JobPost, *models.Failure) {
	post, err := s.store.GetJobPost(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, models.Failf(http.StatusBadRequest, MsgPostNotExist)
	}
	if err != nil {
		logs.Logger.Errorf("posts: get job post %s: %v", id, err)
		return nil, models.Failf(http.StatusForbidden, MsgSomethingWrong)
	}
	if post.OwnerID != owner.ID {
		return nil, models.Failf(http.StatusUnauthorized, MsgNotOwner)
	}
	if err := s.store.DeleteJobPost(ctx, id); err != nil {
		logs.Logger.Errorf("posts: delete job post %s: %v", id, err)
		return nil, models.Failf(http.StatusForbidden, MsgSomethingWrong)
	}
	return post, nil
}

// JobFindingPostForm is the create/update body for job-seeking posts.
type JobFindingPostForm struct {
	Title          string `json:"title"`
	Description    string `json:"description"`
	Location       string `json:"location"`
	ExpectedSalary int    `json:"expectedSalary"`
}

func (s *Service) CreateFindingPost(ctx context.Context, owner session.Identity, raw []byte) (*models.JobFindingPost, *models.Failure) {
	form, fail := parseFindingPostForm(ctx, raw)
	if fail != nil {
		return nil, fail
	}
	post := &models.JobFindingPost{
		OwnerID:        owner.ID,
		Title:          form.Title,
		Description:    form.Description,
		Location:       form.Location,
		ExpectedSalary: form.ExpectedSalary,
	}
	if err := s.store.CreateFindingPost(ctx, post); err != nil {
		logs.Logger.Errorf("posts: create finding post: %v", err)
		return nil, models.Failf(http.StatusForbidden, MsgSomethingWrong)
	}
	return post, nil
}

func (s *Service) GetFindingPost(ctx context.Context, id uuid.UUID) (*models.JobFindingPost, *models.Failure) {
	post, err := s.store.GetFindingPost(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, models.Failf(http.StatusBadRequest, MsgPostNotExist)
	}
	if err != nil {
		logs.Logger.Errorf("posts: get finding post %s: %v", id, err)
		return nil, models.Failf(http.StatusForbidden, MsgSomethingWrong)
	}
	return post, nil
}

func (s *Service) ListFindingPosts(ctx context.Context, page Page) ([]models.JobFindingPost, *models.Failure) {
	posts, err := s.store.ListFindingPosts(ctx, page.Limit, page.Offset)
	if err != nil {
		logs.Logger.Errorf("posts: list finding posts: %v", err)
		return nil, models.Failf(http.StatusForbidden, MsgSomethingWrong)
	}
	return posts, nil
}

func (s *Service) ListOwnFindingPosts(ctx context.Context, owner session.Identity) ([]models.JobFindingPost, *models.Failure) {
	posts, err := s.store.ListFindingPostsByOwner(ctx, owner.ID)
	if err != nil {
		logs.Logger.Errorf("posts: list own finding posts: %v", err)
		return nil, models.Failf(http.StatusForbidden, MsgSomethingWrong)
	}
	return posts, nil
}

func (s *Service) UpdateFindingPost(ctx context.Context, owner session.Identity, id uuid.UUID, raw []byte) (*models.JobFindingPost, *models.Failure) {
	form, fail := parseFindingPostForm(ctx, raw)
	if fail != nil {
		return nil, fail
	}
	post, err := s.store.GetFindingPost(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, models.Failf(http.StatusBadRequest, MsgPostNotExist)
	}
	if err != nil {
		logs.Logger.Errorf("posts: get finding post %s: %v", id, err)
		return nil, models.Failf(http.StatusForbidden, MsgSomethingWrong)
	}
	if post.OwnerID != owner.ID {
		return nil, models.Failf(http.StatusUnauthorized, MsgNotOwner)
	}

	post.Title = form.Title
	post.Description = form.Description
	post.Location = form.Location
	post.ExpectedSalary = form.ExpectedSalary
	if err := s.store.UpdateFindingPost(ctx, post); err != nil {
		logs.Logger.Errorf("posts: update finding post %s: %v", id, err)
		return nil, models.Failf(http.StatusForbidden, MsgSomethingWrong)
	}
	return post, nil
}

func (s *Service) DeleteFindingPost(ctx context.Context, owner session.Identity, id uuid.UUID) (*models.JobFindingPost, *models.Failure) {
	post, err := s.store.GetFindingPost(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, models.Failf(http.StatusBadRequest, MsgPostNotExist)
	}
	if err != nil {
		logs.Logger.Errorf("posts: get finding post %s: %v", id, err)
		return nil, models.Failf(http.StatusForbidden, MsgSomethingWrong)
	}
	if post.OwnerID != owner.ID {
		return nil, models.Failf(http.StatusUnauthorized, MsgNotOwner)
	}
	if err := s.store.DeleteFindingPost(ctx, id); err != nil {
		logs.Logger.Errorf("posts: delete finding post %s: %v", id, err)
		return nil, models.Failf(http.StatusForbidden, MsgSomethingWrong)
	}
	return post, nil
}

func parseJobPostForm(ctx context.Context, raw []byte) (*JobPostForm, *models.Failure) {
	if err := validation.Validate(ctx, validation.JobPostSchema, raw); err != nil {
		return nil, models.Failf(http.StatusBadRequest, err.Error())
	}
	var form JobPostForm
	if err := json.Unmarshal(raw, &form); err != nil {
		return nil, models.Failf(http.StatusBadRequest, "Invalid request body")
	}
	if form.SalaryMax != 0 && form.SalaryMax < form.SalaryMin {
		return nil, models.Failf(http.StatusBadRequest, "Salary range is invalid")
	}
	return &form, nil
}

func parseFindingPostForm(ctx context.Context, raw []byte) (*JobFindingPostForm, *models.Failure) {
	if err := validation.Validate(ctx, validation.JobFindingPostSchema, raw); err != nil {
		return nil, models.Failf(http.StatusBadRequest, err.Error())
	}
	var form JobFindingPostForm
	if err := json.Unmarshal(raw, &form); err != nil {
		return nil, models.Failf(http.StatusBadRequest, "Invalid request body")
	}
	return &form, nil
}
