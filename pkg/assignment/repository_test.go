package assignment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vivektiwari660/edx-platform/internal/test_utils"
	"github.com/vivektiwari660/edx-platform/pkg/course"
)

func setupTestRepository(t *testing.T) (*RepositoryImpl, int) {
	db := test_utils.SetupTestDB(t)

	courseId, err := course.NewRepository(db).Store(context.Background(), course.Course{
		Key:         "CS101",
		DisplayName: "CS 101",
		StartDate:   time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	return NewRepository(db), courseId
}

func TestRepositoryImpl_GetForCourse_OrderedByDueDate(t *testing.T) {
	repo, courseId := setupTestRepository(t)
	ctx := context.Background()

	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	_, err := repo.Store(ctx, Assignment{CourseId: courseId, Title: "HW2", BlockKey: "block-v1:hw2", DueDate: base.AddDate(0, 0, 7)})
	require.NoError(t, err)
	_, err = repo.Store(ctx, Assignment{CourseId: courseId, Title: "HW1", BlockKey: "block-v1:abc", DueDate: base})
	require.NoError(t, err)

	assignments, err := repo.GetForCourse(ctx, courseId)
	require.NoError(t, err)
	require.Len(t, assignments, 2)

	assert.Equal(t, "HW1", assignments[0].Title)
	assert.Equal(t, base, assignments[0].DueDate)
	assert.Equal(t, "block-v1:abc", assignments[0].BlockKey)
	assert.Equal(t, "HW2", assignments[1].Title)
}

// Read failures must surface as errors, never as a truncated result set.
func TestRepositoryImpl_GetForCourse_ReadFailure(t *testing.T) {
	db := test_utils.SetupTestDB(t)
	repo := NewRepository(db)
	require.NoError(t, db.Close())

	_, err := repo.GetForCourse(context.Background(), 1)
	assert.Error(t, err)
}

func TestRepositoryImpl_GetForCourse_Empty(t *testing.T) {
	repo, courseId := setupTestRepository(t)

	assignments, err := repo.GetForCourse(context.Background(), courseId)
	require.NoError(t, err)
	assert.Empty(t, assignments)
}
