package service

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"recipe-be/internal/cache"
	"recipe-be/internal/common"
	"recipe-be/internal/entities"
	"recipe-be/internal/logging"
	"recipe-be/internal/models"
	"recipe-be/internal/repository/mocks"
	"recipe-be/internal/validation"
)

func strPtr(s string) *string { return &s }

func newUserService(t *testing.T) (UserService, *mocks.MockUserRepository, cache.Cache, *miniredis.Miniredis) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUserRepository(ctrl)
	c, mr := newTestCache(t)
	return NewUserService(repo, c, logging.Discard()), repo, c, mr
}

func TestUserService_UpdateProfile_Partial(t *testing.T) {
	svc, repo, c, mr := newUserService(t)
	ctx := context.Background()

	require.NoError(t, c.SetJSON(ctx, cache.UserKey(1), entities.User{ID: 1}, time.Minute))

	current := &entities.User{ID: 1, Email: "me@example.com", Name: "Old", PasswordHash: "old-hash", IsActive: true}
	repo.EXPECT().FindByID(ctx, int64(1)).Return(current, nil)
	repo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, u *entities.User) (*entities.User, error) {
		assert.Equal(t, "me@example.com", u.Email)
		assert.Equal(t, "Updated name", u.Name)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("newpassword123")))
		return u, nil
	})

	updated, err := svc.UpdateProfile(ctx, 1, &models.UpdateUserRequest{
		Name:     strPtr("Updated name"),
		Password: strPtr("newpassword123"),
	}, true)
	require.NoError(t, err)
	assert.Equal(t, "Updated name", updated.Name)

	assert.False(t, mr.Exists(cache.UserKey(1)))
}

func TestUserService_UpdateProfile_EmailTaken(t *testing.T) {
	svc, repo, _, _ := newUserService(t)
	ctx := context.Background()

	repo.EXPECT().FindByID(ctx, int64(1)).Return(&entities.User{ID: 1, Email: "me@example.com"}, nil)
	repo.EXPECT().FindByEmail(ctx, "other@example.com").Return(&entities.User{ID: 2, Email: "other@example.com"}, nil)

	_, err := svc.UpdateProfile(ctx, 1, &models.UpdateUserRequest{Email: strPtr("Other@Example.com")}, true)
	verr, ok := validation.As(err)
	require.True(t, ok)
	assert.Contains(t, verr, "email")
}

func TestUserService_UpdateProfile_FullRequiresCredentials(t *testing.T) {
	svc, _, _, _ := newUserService(t)

	_, err := svc.UpdateProfile(context.Background(), 1, &models.UpdateUserRequest{Name: strPtr("x")}, false)
	verr, ok := validation.As(err)
	require.True(t, ok)
	assert.Equal(t, []string{"This field is required."}, verr["email"])
	assert.Equal(t, []string{"This field is required."}, verr["password"])
}

func TestUserService_UpdateProfile_FullResetsName(t *testing.T) {
	svc, repo, _, _ := newUserService(t)
	ctx := context.Background()

	repo.EXPECT().FindByID(ctx, int64(1)).Return(&entities.User{ID: 1, Email: "me@example.com", Name: "Keep?"}, nil)
	repo.EXPECT().FindByEmail(ctx, "new@example.com").Return(nil, common.ErrorNotFound)
	repo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, u *entities.User) (*entities.User, error) {
		assert.Equal(t, "new@example.com", u.Email)
		assert.Empty(t, u.Name)
		return u, nil
	})

	_, err := svc.UpdateProfile(ctx, 1, &models.UpdateUserRequest{
		Email:    strPtr("new@example.com"),
		Password: strPtr("password123"),
	}, false)
	require.NoError(t, err)
}

func TestUserService_UpdateProfile_MissingUser(t *testing.T) {
	svc, repo, _, _ := newUserService(t)
	ctx := context.Background()

	repo.EXPECT().FindByID(ctx, int64(8)).Return(nil, common.ErrorNotFound)

	_, err := svc.UpdateProfile(ctx, 8, &models.UpdateUserRequest{Name: strPtr("x")}, true)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestUserService_CreateSuperuser(t *testing.T) {
	svc, repo, _, _ := newUserService(t)
	ctx := context.Background()

	repo.EXPECT().FindByEmail(ctx, "admin@example.com").Return(nil, common.ErrorNotFound)
	repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, u *entities.User) (*entities.User, error) {
		assert.True(t, u.IsActive)
		assert.True(t, u.IsStaff)
		assert.True(t, u.IsSuperuser)
		created := *u
		created.ID = 1
		return &created, nil
	})

	user, err := svc.CreateSuperuser(ctx, &models.CreateUserRequest{Email: "Admin@Example.com", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", user.Email)
}

func TestUserService_ListUsers(t *testing.T) {
	svc, repo, _, _ := newUserService(t)
	ctx := context.Background()

	users := []*entities.User{{ID: 1, Email: "a@example.com"}}
	repo.EXPECT().List(ctx, "exa").Return(users, nil)

	got, err := svc.ListUsers(ctx, "exa")
	require.NoError(t, err)
	assert.Equal(t, users, got)
}
