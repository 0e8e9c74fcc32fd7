package user

import (
	"context"
	"testing"

	"Recipe-Share-Backend/domain"
	"Recipe-Share-Backend/entities"
	"Recipe-Share-Backend/pkg/jwt"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entities.User{},
		&entities.UserFollow{},
		&entities.Recipe{},
	))
	return db
}

func newTestService(t *testing.T) (UserService, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	return NewUserService(NewUserRepository(db), jwt.NewJWTService()), db
}

func register(t *testing.T, svc UserService, username string) *domain.UserResponse {
	t.Helper()
	res, err := svc.Register(context.Background(), domain.RegisterRequest{
		Username: username,
		Email:    username + "@example.com",
		Password: "secret123",
		FullName: username,
	})
	require.NoError(t, err)
	return res
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	res := register(t, svc, "alice")
	assert.Equal(t, "alice", res.Username)
	assert.Equal(t, domain.RoleUser, res.Role)
	assert.Equal(t, 0, res.RecipeCount)

	login, err := svc.Login(ctx, domain.LoginRequest{Username: "alice", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, login.Token)
	assert.Equal(t, res.ID, login.User.ID)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	register(t, svc, "alice")

	_, err := svc.Register(ctx, domain.RegisterRequest{
		Username: "alice",
		Email:    "other@example.com",
		Password: "secret123",
		FullName: "Other",
	})
	assert.ErrorIs(t, err, domain.ErrConflict)

	_, err = svc.Register(ctx, domain.RegisterRequest{
		Username: "alice2",
		Email:    "alice@example.com",
		Password: "secret123",
		FullName: "Other",
	})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	register(t, svc, "alice")

	_, err := svc.Login(ctx, domain.LoginRequest{Username: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = svc.Login(ctx, domain.LoginRequest{Username: "nobody", Password: "secret123"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLoginDisabledAccount(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	res := register(t, svc, "alice")
	require.NoError(t, db.Model(&entities.User{}).Where("id = ?", res.ID).Update("enabled", false).Error)

	_, err := svc.Login(ctx, domain.LoginRequest{Username: "alice", Password: "secret123"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestUpdateProfilePartial(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	res := register(t, svc, "alice")

	updated, err := svc.UpdateProfile(ctx, domain.UpdateProfileRequest{Bio: "I cook"}, res.ID)
	require.NoError(t, err)
	assert.Equal(t, "I cook", updated.Bio)
	assert.Equal(t, "alice", updated.FullName)
}

func TestFollowUser(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	alice := register(t, svc, "alice")
	bob := register(t, svc, "bob")

	require.NoError(t, svc.FollowUser(ctx, bob.ID, alice.ID))

	// Repeating the follow is a no-op, not an error.
	require.NoError(t, svc.FollowUser(ctx, bob.ID, alice.ID))

	var count int64
	require.NoError(t, db.Model(&entities.UserFollow{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	followers, err := svc.GetFollowers(ctx, bob.ID)
	require.NoError(t, err)
	require.Len(t, followers, 1)
	assert.Equal(t, "alice", followers[0].Username)

	following, err := svc.GetFollowing(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, following, 1)
	assert.Equal(t, "bob", following[0].Username)

	bobView, err := svc.GetUserByID(ctx, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, bobView.FollowerCount)
	assert.Equal(t, 0, bobView.FollowingCount)
}

func TestFollowSelfRejected(t *testing.T) {
	svc, _ := newTestService(t)

	alice := register(t, svc, "alice")

	err := svc.FollowUser(context.Background(), alice.ID, alice.ID)
	assert.ErrorIs(t, err, domain.ErrBadRequest)
}

func TestFollowMissingUser(t *testing.T) {
	svc, _ := newTestService(t)

	alice := register(t, svc, "alice")

	err := svc.FollowUser(context.Background(), uuid.NewString(), alice.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUnfollowIdempotent(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	alice := register(t, svc, "alice")
	bob := register(t, svc, "bob")

	require.NoError(t, svc.FollowUser(ctx, bob.ID, alice.ID))
	require.NoError(t, svc.UnfollowUser(ctx, bob.ID, alice.ID))
	require.NoError(t, svc.UnfollowUser(ctx, bob.ID, alice.ID))

	followers, err := svc.GetFollowers(ctx, bob.ID)
	require.NoError(t, err)
	assert.Empty(t, followers)
}

func TestGetUserMissing(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.GetUserByID(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
