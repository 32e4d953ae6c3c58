package course

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vivektiwari660/edx-platform/internal/test_utils"
)

func setupTestRepository(t *testing.T) *RepositoryImpl {
	db := test_utils.SetupTestDB(t)
	return NewRepository(db)
}

func TestRepositoryImpl_StoreAndGetByKey(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()

	start := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	id, err := repo.Store(ctx, Course{Key: "CS101", DisplayName: "CS 101", StartDate: start})
	require.NoError(t, err)
	require.NotZero(t, id)

	fetched, err := repo.GetByKey(ctx, "CS101")
	require.NoError(t, err)
	assert.Equal(t, id, fetched.Id)
	assert.Equal(t, "CS101", fetched.Key)
	assert.Equal(t, "CS 101", fetched.DisplayName)
	assert.Equal(t, start, fetched.StartDate)
}

func TestRepositoryImpl_GetByKey_NotFound(t *testing.T) {
	repo := setupTestRepository(t)

	_, err := repo.GetByKey(context.Background(), "NOPE")
	assert.ErrorIs(t, err, ErrCourseNotFound)
}

func TestCourse_DisplayNameOrDefault(t *testing.T) {
	assert.Equal(t, "CS 101", Course{Key: "CS101", DisplayName: "CS 101"}.DisplayNameOrDefault())
	assert.Equal(t, "CS101", Course{Key: "CS101"}.DisplayNameOrDefault())
}
