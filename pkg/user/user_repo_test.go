package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vivektiwari660/edx-platform/internal/test_utils"
)

func setupTestRepo(t *testing.T) *UserRepoImpl {
	db := test_utils.SetupTestDB(t)
	return NewUserRepo(db)
}

func TestUserRepoImpl_CreateAndGetUser(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	id, err := repo.CreateUser(ctx, User{Uid: "abc-123", Username: "student42", Email: "student42@example.org"})
	require.NoError(t, err)
	require.NotZero(t, id)

	fetched, err := repo.GetUser(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "abc-123", fetched.Uid)
	assert.Equal(t, "student42", fetched.Username)
	assert.Equal(t, "student42@example.org", fetched.Email)

	byUid, err := repo.GetUserByUid(ctx, "abc-123")
	require.NoError(t, err)
	assert.Equal(t, fetched, byUid)
}

func TestUserRepoImpl_GetUser_NotFound(t *testing.T) {
	repo := setupTestRepo(t)

	_, err := repo.GetUser(context.Background(), 9999)
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = repo.GetUserByUid(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
