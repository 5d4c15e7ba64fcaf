package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediatrackapp/mediatrack-server/internal/domain"
	apperrors "github.com/mediatrackapp/mediatrack-server/internal/errors"
)

func TestCategoryCreate_Defaults(t *testing.T) {
	svc := setupServices(t)

	c, err := svc.categories.Create(context.Background(), CreateCategoryRequest{Name: "Podcasts"})
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultCategoryIcon, c.Icon)
	assert.Equal(t, domain.DefaultCategoryColor, c.Color)
	assert.False(t, c.IsSystem)
}

func TestCategoryCreate_Validation(t *testing.T) {
	svc := setupServices(t)
	ctx := context.Background()

	_, err := svc.categories.Create(ctx, CreateCategoryRequest{Name: ""})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = svc.categories.Create(ctx, CreateCategoryRequest{Name: "Ok", Color: "red"})
	assert.ErrorIs(t, err, apperrors.ErrValidation, "color must be hex")
}

func TestCategoryCreate_DuplicateName(t *testing.T) {
	svc := setupServices(t)

	_, err := svc.categories.Create(context.Background(), CreateCategoryRequest{Name: "Movies"})
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestCategoryDeleteLifecycle(t *testing.T) {
	svc := setupServices(t)
	ctx := context.Background()

	// Built-ins always refuse, even when empty.
	moviesID := seededCategory(t, svc, "Movies")
	err := svc.categories.Delete(ctx, moviesID)
	assert.ErrorIs(t, err, apperrors.ErrSystemCategory)

	// A custom category with items refuses until emptied.
	podcasts, err := svc.categories.Create(ctx, CreateCategoryRequest{Name: "Podcasts"})
	require.NoError(t, err)
	item, err := svc.media.Create(ctx, CreateMediaRequest{Title: "Ep1", CategoryID: podcasts.ID})
	require.NoError(t, err)

	err = svc.categories.Delete(ctx, podcasts.ID)
	assert.ErrorIs(t, err, apperrors.ErrCategoryHasItems)

	require.NoError(t, svc.media.Delete(ctx, item.ID))
	require.NoError(t, svc.categories.Delete(ctx, podcasts.ID))

	_, err = svc.categories.Get(ctx, podcasts.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCategoryUpdate(t *testing.T) {
	svc := setupServices(t)
	ctx := context.Background()

	c, err := svc.categories.Create(ctx, CreateCategoryRequest{Name: "Zines"})
	require.NoError(t, err)

	updated, err := svc.categories.Update(ctx, c.ID, UpdateCategoryRequest{
		Name:  ptr("Magazines"),
		Color: ptr("#14b8a6"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Magazines", updated.Name)
	assert.Equal(t, "#14b8a6", updated.Color)
	assert.Equal(t, c.Icon, updated.Icon)
}
