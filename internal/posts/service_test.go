package posts

import (
	"context"
	"net/http"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobhub/internal/logs"
	"jobhub/internal/models"
	"jobhub/internal/repo"
	"jobhub/internal/session"
)

func TestMain(m *testing.M) {
	logs.Init(logs.Options{Level: "error"})
	os.Exit(m.Run())
}

type fakeStore struct {
	jobPosts     map[uuid.UUID]*models.JobPost
	findingPosts map[uuid.UUID]*models.JobFindingPost
	failWith     error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		jobPosts:     map[uuid.UUID]*models.JobPost{},
		findingPosts: map[uuid.UUID]*models.JobFindingPost{},
	}
}

func (f *fakeStore) CreateJobPost(_ context.Context, p *models.JobPost) error {
	if f.failWith != nil {
		return f.failWith
	}
	p.ID = uuid.New()
	f.jobPosts[p.ID] = p
	return nil
}

func (f *fakeStore) GetJobPost(_ context.Context, id uuid.UUID) (*models.JobPost, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	p, ok := f.jobPosts[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeStore) ListJobPosts(_ context.Context, limit, offset int) ([]models.JobPost, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	var out []models.JobPost
	for _, p := range f.jobPosts {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeStore) ListJobPostsByOwner(_ context.Context, ownerID uuid.UUID) ([]models.JobPost, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	var out []models.JobPost
	for _, p := range f.jobPosts {
		if p.OwnerID == ownerID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeStore) UpdateJobPost(_ context.Context, p *models.JobPost) error {
	if f.failWith != nil {
		return f.failWith
	}
	cp := *p
	f.jobPosts[p.ID] = &cp
	return nil
}

func (f *fakeStore) DeleteJobPost(_ context.Context, id uuid.UUID) error {
	if f.failWith != nil {
		return f.failWith
	}
	if _, ok := f.jobPosts[id]; !ok {
		return repo.ErrNotFound
	}
	delete(f.jobPosts, id)
	return nil
}

func (f *fakeStore) CreateFindingPost(_ context.Context, p *models.JobFindingPost) error {
	if f.failWith != nil {
		return f.failWith
	}
	p.ID = uuid.New()
	f.findingPosts[p.ID] = p
	return nil
}

func (f *fakeStore) GetFindingPost(_ context.Context, id uuid.UUID) (*models.JobFindingPost, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	p, ok := f.findingPosts[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeStore) ListFindingPosts(_ context.Context, limit, offset int) ([]models.JobFindingPost, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	var out []models.JobFindingPost
	for _, p := range f.findingPosts {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeStore) ListFindingPostsByOwner(_ context.Context, ownerID uuid.UUID) ([]models.JobFindingPost, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	var out []models.JobFindingPost
	for _, p := range f.findingPosts {
		if p.OwnerID == ownerID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeStore) UpdateFindingPost(_ context.Context, p *models.JobFindingPost) error {
	if f.failWith != nil {
		return f.failWith
	}
	cp := *p
	f.findingPosts[p.ID] = &cp
	return nil
}

func (f *fakeStore) DeleteFindingPost(_ context.Context, id uuid.UUID) error {
	if f.failWith != nil {
		return f.failWith
	}
	if _, ok := f.findingPosts[id]; !ok {
		return repo.ErrNotFound
	}
	delete(f.findingPosts, id)
	return nil
}

func companyIdentity() session.Identity {
	return session.Identity{ID: uuid.New(), Type: models.AccountTypeCompany}
}

func TestCreateJobPost(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)
	owner := companyIdentity()

	body := []byte(`{"title":"Backend Engineer","description":"Go services","location":"Bangkok","jobType":"FULLTIME","salaryMin":40000,"salaryMax":70000}`)
	post, fail := svc.CreateJobPost(context.Background(), owner, body)
	require.Nil(t, fail)
	require.NotNil(t, post)

	assert.NotEqual(t, uuid.Nil, post.ID)
	assert.Equal(t, owner.ID, post.OwnerID)
	assert.Equal(t, owner.Type, post.OwnerType)
	assert.Equal(t, "Backend Engineer", post.Title)
	assert.Len(t, store.jobPosts, 1)
}

func TestCreateJobPostRejectsBadBody(t *testing.T) {
	svc := NewService(newFakeStore())
	owner := companyIdentity()

	cases := [][]byte{
		[]byte(`{"description":"no title"}`),
		[]byte(`{"title":"x","jobType":"GIG"}`),
		[]byte(`{"title":"x","salaryMin":50000,"salaryMax":30000}`),
		[]byte(`not json`),
	}
	for _, body := range cases {
		post, fail := svc.CreateJobPost(context.Background(), owner, body)
		require.NotNil(t, fail, "body %s", body)
		assert.Equal(t, http.StatusBadRequest, fail.Status)
		assert.Nil(t, post)
	}
}

func TestGetJobPostUnknown(t *testing.T) {
	svc := NewService(newFakeStore())

	post, fail := svc.GetJobPost(context.Background(), uuid.New())
	require.NotNil(t, fail)
	assert.Equal(t, http.StatusBadRequest, fail.Status)
	assert.Equal(t, MsgPostNotExist, fail.Msg)
	assert.Nil(t, post)
}

func TestUpdateJobPostOwnerOnly(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)
	owner := companyIdentity()

	created, fail := svc.CreateJobPost(context.Background(), owner,
		[]byte(`{"title":"Backend Engineer"}`))
	require.Nil(t, fail)

	// a different company cannot touch it
	intruder := companyIdentity()
	_, fail = svc.UpdateJobPost(context.Background(), intruder, created.ID,
		[]byte(`{"title":"Hijacked"}`))
	require.NotNil(t, fail)
	assert.Equal(t, http.StatusUnauthorized, fail.Status)
	assert.Equal(t, MsgNotOwner, fail.Msg)
	assert.Equal(t, "Backend Engineer", store.jobPosts[created.ID].Title)

	updated, fail := svc.UpdateJobPost(context.Background(), owner, created.ID,
		[]byte(`{"title":"Senior Backend Engineer","location":"Remote"}`))
	require.Nil(t, fail)
	assert.Equal(t, "Senior Backend Engineer", updated.Title)
	assert.Equal(t, "Remote", store.jobPosts[created.ID].Location)
}

func TestDeleteJobPostOwnerOnly(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)
	owner := companyIdentity()

	created, fail := svc.CreateJobPost(context.Background(), owner, []byte(`{"title":"Backend Engineer"}`))
	require.Nil(t, fail)

	_, fail = svc.DeleteJobPost(context.Background(), companyIdentity(), created.ID)
	require.NotNil(t, fail)
	assert.Equal(t, http.StatusUnauthorized, fail.Status)
	assert.Len(t, store.jobPosts, 1)

	deleted, fail := svc.DeleteJobPost(context.Background(), owner, created.ID)
	require.Nil(t, fail)
	assert.Equal(t, created.ID, deleted.ID)
	assert.Empty(t, store.jobPosts)
}

func TestListOwnJobPosts(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)
	owner := companyIdentity()
	other := companyIdentity()

	for _, o := range []session.Identity{owner, owner, other} {
		_, fail := svc.CreateJobPost(context.Background(), o, []byte(`{"title":"Backend Engineer"}`))
		require.Nil(t, fail)
	}

	mine, fail := svc.ListOwnJobPosts(context.Background(), owner)
	require.Nil(t, fail)
	assert.Len(t, mine, 2)
}

func TestFindingPostLifecycle(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)
	owner := session.Identity{ID: uuid.New(), Type: models.AccountTypeEmployer}

	created, fail := svc.CreateFindingPost(context.Background(), owner,
		[]byte(`{"title":"Looking for Go work","expectedSalary":45000}`))
	require.Nil(t, fail)
	assert.Equal(t, 45000, created.ExpectedSalary)

	updated, fail := svc.UpdateFindingPost(context.Background(), owner, created.ID,
		[]byte(`{"title":"Looking for Go work","expectedSalary":50000}`))
	require.Nil(t, fail)
	assert.Equal(t, 50000, updated.ExpectedSalary)

	_, fail = svc.UpdateFindingPost(context.Background(),
		session.Identity{ID: uuid.New(), Type: models.AccountTypeEmployer},
		created.ID, []byte(`{"title":"Hijacked"}`))
	require.NotNil(t, fail)
	assert.Equal(t, MsgNotOwner, fail.Msg)

	_, fail = svc.DeleteFindingPost(context.Background(), owner, created.ID)
	require.Nil(t, fail)
	assert.Empty(t, store.findingPosts)
}

func TestServiceInfraFailure(t *testing.T) {
	store := newFakeStore()
	store.failWith = context.DeadlineExceeded
	svc := NewService(store)

	_, fail := svc.ListJobPosts(context.Background(), ParsePage("", ""))
	require.NotNil(t, fail)
	assert.Equal(t, http.StatusForbidden, fail.Status)
	assert.Equal(t, MsgSomethingWrong, fail.Msg)
}

func TestParsePage(t *testing.T) {
	assert.Equal(t, Page{Limit: 20, Offset: 0}, ParsePage("", ""))
	assert.Equal(t, Page{Limit: 20, Offset: 0}, ParsePage("0", "-5"))
	assert.Equal(t, Page{Limit: 10, Offset: 20}, ParsePage("3", "10"))
	assert.Equal(t, Page{Limit: 100, Offset: 0}, ParsePage("1", "500"))
}
