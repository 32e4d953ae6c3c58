package siteconfig

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vivektiwari660/edx-platform/internal/test_utils"
)

func TestServiceImpl_GetValue_FallsBackToDefault(t *testing.T) {
	service := NewService(NewRepositoryStub())
	ctx := context.Background()

	value := service.GetValue(ctx, "example.org", "platform_name", "Open edX")
	assert.Equal(t, "Open edX", value)
}

func TestServiceImpl_GetValue_ReturnsOverride(t *testing.T) {
	repo := NewRepositoryStub()
	service := NewService(repo)
	ctx := context.Background()

	require.NoError(t, service.StoreValue(ctx, "example.org", "platform_name", "Example University"))

	value := service.GetValue(ctx, "example.org", "platform_name", "Open edX")
	assert.Equal(t, "Example University", value)

	// A different site still gets the default.
	value = service.GetValue(ctx, "other.org", "platform_name", "Open edX")
	assert.Equal(t, "Open edX", value)
}

func TestRepositoryImpl_StoreAndGet(t *testing.T) {
	db := test_utils.SetupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.StoreValue(ctx, "example.org", "email_from_address", "hello@example.org"))

	value, err := repo.GetValue(ctx, "example.org", "email_from_address")
	require.NoError(t, err)
	assert.Equal(t, "hello@example.org", value)

	// Upsert overwrites.
	require.NoError(t, repo.StoreValue(ctx, "example.org", "email_from_address", "updated@example.org"))
	value, err = repo.GetValue(ctx, "example.org", "email_from_address")
	require.NoError(t, err)
	assert.Equal(t, "updated@example.org", value)

	all, err := repo.GetAll(ctx, "example.org")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"email_from_address": "updated@example.org"}, all)

	_, err = repo.GetValue(ctx, "example.org", "missing")
	assert.ErrorIs(t, err, ErrValueNotFound)
}

// Read failures must surface as errors, never as a truncated result set.
func TestRepositoryImpl_GetAll_ReadFailure(t *testing.T) {
	db := test_utils.SetupTestDB(t)
	repo := NewRepository(db)
	require.NoError(t, db.Close())

	_, err := repo.GetAll(context.Background(), "example.org")
	assert.Error(t, err)
}
