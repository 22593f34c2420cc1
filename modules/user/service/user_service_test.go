package service

import (
	"context"
	"sort"
	"testing"

	coreEntity "availability-api/core/entity"
	"availability-api/core/params"
	"availability-api/modules/user/dto"
	"availability-api/modules/user/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	users []entity.User
}

func (f *fakeUserRepo) List(_ context.Context, p params.QueryParams) ([]entity.User, error) {
	sorted := make([]entity.User, len(f.users))
	copy(sorted, f.users)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	offset := (p.PageNumber - 1) * p.PageSize
	if offset >= len(sorted) {
		return nil, nil
	}
	end := offset + p.PageSize
	if end > len(sorted) {
		end = len(sorted)
	}
	return sorted[offset:end], nil
}

func (f *fakeUserRepo) Count(_ context.Context) (int, error) {
	return len(f.users), nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	for i := range f.users {
		if f.users[i].ID == id {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	user.ID = uuid.New()
	f.users = append(f.users, *user)
	return nil
}

func seedUsers(names ...string) *fakeUserRepo {
	repo := &fakeUserRepo{}
	for _, name := range names {
		repo.users = append(repo.users, entity.User{
			Name:       name,
			BaseEntity: coreEntity.BaseEntity{ID: uuid.New()},
		})
	}
	return repo
}

func TestListPaginatesByName(t *testing.T) {
	svc := NewUserService(seedUsers("carol", "alice", "dave", "bob", "erin"))
	ctx := context.Background()

	page1, appErr := svc.List(ctx, params.QueryParams{PageNumber: 1, PageSize: 2})
	require.Nil(t, appErr)
	assert.Equal(t, 5, page1.TotalItems)
	assert.Equal(t, 1, page1.PageNumber)
	assert.Equal(t, 2, page1.PageSize)
	require.Len(t, page1.Items, 2)
	assert.Equal(t, "alice", page1.Items[0].Name)
	assert.Equal(t, "bob", page1.Items[1].Name)

	page3, appErr := svc.List(ctx, params.QueryParams{PageNumber: 3, PageSize: 2})
	require.Nil(t, appErr)
	require.Len(t, page3.Items, 1)
	assert.Equal(t, "erin", page3.Items[0].Name)
	assert.Equal(t, 5, page3.TotalItems)
}

func TestListPastTheEnd(t *testing.T) {
	svc := NewUserService(seedUsers("alice", "bob"))

	page, appErr := svc.List(context.Background(), params.QueryParams{PageNumber: 9, PageSize: 20})
	require.Nil(t, appErr)
	assert.Empty(t, page.Items)
	assert.Equal(t, 2, page.TotalItems)
}

func TestCreateAndGet(t *testing.T) {
	repo := seedUsers()
	svc := NewUserService(repo)
	ctx := context.Background()

	created, appErr := svc.Create(ctx, &dto.CreateUserRequest{Name: "mallory"})
	require.Nil(t, appErr)
	assert.Equal(t, "mallory", created.Name)

	id, err := uuid.Parse(created.ID)
	require.NoError(t, err)

	got, appErr := svc.GetByID(ctx, id)
	require.Nil(t, appErr)
	assert.Equal(t, "mallory", got.Name)

	_, appErr = svc.GetByID(ctx, uuid.New())
	assert.NotNil(t, appErr)
}
