package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediatrackapp/mediatrack-server/internal/domain"
	apperrors "github.com/mediatrackapp/mediatrack-server/internal/errors"
)

func TestTagCreate_DefaultColor(t *testing.T) {
	svc := setupServices(t)

	tag, err := svc.tags.Create(context.Background(), CreateTagRequest{Name: "favorites"})
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultTagColor, tag.Color)
}

func TestTagCreate_Duplicate(t *testing.T) {
	svc := setupServices(t)
	ctx := context.Background()

	_, err := svc.tags.Create(ctx, CreateTagRequest{Name: "dup"})
	require.NoError(t, err)
	_, err = svc.tags.Create(ctx, CreateTagRequest{Name: "dup"})
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestTagDelete_DetachesFromItems(t *testing.T) {
	svc := setupServices(t)
	ctx := context.Background()

	tag, err := svc.tags.Create(ctx, CreateTagRequest{Name: "doomed"})
	require.NoError(t, err)
	item, err := svc.media.Create(ctx, CreateMediaRequest{
		Title:      "Tagged",
		CategoryID: seededCategory(t, svc, "Movies"),
		TagIDs:     []int64{tag.ID},
	})
	require.NoError(t, err)

	require.NoError(t, svc.tags.Delete(ctx, tag.ID))

	got, err := svc.media.Get(ctx, item.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Tags)
}

func TestTagUsageCount(t *testing.T) {
	svc := setupServices(t)
	ctx := context.Background()

	tag, err := svc.tags.Create(ctx, CreateTagRequest{Name: "counted"})
	require.NoError(t, err)
	_, err = svc.media.Create(ctx, CreateMediaRequest{
		Title:      "One",
		CategoryID: seededCategory(t, svc, "Books"),
		TagIDs:     []int64{tag.ID},
	})
	require.NoError(t, err)

	got, err := svc.tags.Get(ctx, tag.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.UsageCount)
}
