package service

import (
	"context"
	"encoding/json/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediatrackapp/mediatrack-server/internal/domain"
	apperrors "github.com/mediatrackapp/mediatrack-server/internal/errors"
	"github.com/mediatrackapp/mediatrack-server/internal/store"
)

func TestMediaCreate(t *testing.T) {
	svc := setupServices(t)
	ctx := context.Background()

	moviesID := seededCategory(t, svc, "Movies")
	tag, err := svc.tags.Create(ctx, CreateTagRequest{Name: "noir"})
	require.NoError(t, err)

	item, err := svc.media.Create(ctx, CreateMediaRequest{
		Title:      "  Chinatown  ",
		CategoryID: moviesID,
		Rating:     ptr("A"),
		Metadata:   domain.Metadata{"director": "Roman Polanski"},
		TagIDs:     []int64{tag.ID},
	})
	require.NoError(t, err)

	assert.Equal(t, "Chinatown", item.Title, "title is trimmed")
	assert.Equal(t, domain.StatusWishlist, item.Status, "status defaults to wishlist")
	assert.Equal(t, "Movies", item.CategoryName)
	require.Len(t, item.Tags, 1)
	assert.Equal(t, "noir", item.Tags[0].Name)
}

func TestMediaCreate_Validation(t *testing.T) {
	svc := setupServices(t)
	ctx := context.Background()
	moviesID := seededCategory(t, svc, "Movies")

	cases := []struct {
		name string
		req  CreateMediaRequest
	}{
		{"missing title", CreateMediaRequest{CategoryID: moviesID}},
		{"blank title", CreateMediaRequest{Title: "   ", CategoryID: moviesID}},
		{"missing category", CreateMediaRequest{Title: "x"}},
		{"bad status", CreateMediaRequest{Title: "x", CategoryID: moviesID, Status: "borrowed"}},
		{"bad rating", CreateMediaRequest{Title: "x", CategoryID: moviesID, Rating: ptr("S+")}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.media.Create(ctx, tc.req)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
		})
	}

	// Unknown category passes shape validation but fails the reference check.
	_, err := svc.media.Create(ctx, CreateMediaRequest{Title: "x", CategoryID: 99999})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestMediaUpdate_TriState(t *testing.T) {
	svc := setupServices(t)
	ctx := context.Background()

	item, err := svc.media.Create(ctx, CreateMediaRequest{
		Title:      "Solaris",
		CategoryID: seededCategory(t, svc, "Movies"),
		Rating:     ptr("B+"),
		Notes:      ptr("rewatch soon"),
	})
	require.NoError(t, err)

	// Absent fields stay; explicit null clears; values replace.
	updated, err := svc.media.Update(ctx, item.ID, UpdateMediaRequest{
		Rating: optNull[string](),
		Notes:  opt("done rewatching"),
	})
	require.NoError(t, err)

	assert.Nil(t, updated.Rating)
	require.NotNil(t, updated.Notes)
	assert.Equal(t, "done rewatching", *updated.Notes)
	assert.Equal(t, "Solaris", updated.Title)
}

func TestMediaUpdate_NullOnRequiredField(t *testing.T) {
	svc := setupServices(t)
	ctx := context.Background()

	item, err := svc.media.Create(ctx, CreateMediaRequest{
		Title:      "Alien",
		CategoryID: seededCategory(t, svc, "Movies"),
	})
	require.NoError(t, err)

	_, err = svc.media.Update(ctx, item.ID, UpdateMediaRequest{Title: optNull[string]()})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = svc.media.Update(ctx, item.ID, UpdateMediaRequest{CategoryID: optNull[int64]()})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = svc.media.Update(ctx, item.ID, UpdateMediaRequest{Status: optNull[string]()})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestMediaUpdate_WishlistToOwned(t *testing.T) {
	svc := setupServices(t)
	ctx := context.Background()

	item, err := svc.media.Create(ctx, CreateMediaRequest{
		Title:      "Disco Elysium",
		CategoryID: seededCategory(t, svc, "Games"),
		Status:     "wishlist",
	})
	require.NoError(t, err)

	updated, err := svc.media.Update(ctx, item.ID, UpdateMediaRequest{
		Status:       opt("owned"),
		DateStarted:  opt("2026-08-01"),
		DateFinished: opt("2026-08-30"),
	})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusOwned, updated.Status)
	require.NotNil(t, updated.DateFinished)
	assert.Equal(t, "2026-08-30", *updated.DateFinished)
}

func TestMediaUpdateRequest_JSONTriState(t *testing.T) {
	// Absent, null, and value decode to the three distinct states.
	var req UpdateMediaRequest
	body := []byte(`{"rating": null, "notes": "kept", "tag_ids": []}`)
	require.NoError(t, json.Unmarshal(body, &req))

	assert.False(t, req.Title.Set, "absent field stays unset")
	assert.True(t, req.Rating.Set)
	assert.Nil(t, req.Rating.Value)
	assert.True(t, req.Notes.Set)
	require.NotNil(t, req.Notes.Value)
	assert.Equal(t, "kept", *req.Notes.Value)
	require.True(t, req.TagIDs.Set)
	require.NotNil(t, req.TagIDs.Value)
	assert.Empty(t, *req.TagIDs.Value)
}

func TestMediaSetTags(t *testing.T) {
	svc := setupServices(t)
	ctx := context.Background()

	a, err := svc.tags.Create(ctx, CreateTagRequest{Name: "a"})
	require.NoError(t, err)
	b, err := svc.tags.Create(ctx, CreateTagRequest{Name: "b"})
	require.NoError(t, err)

	item, err := svc.media.Create(ctx, CreateMediaRequest{
		Title:      "Tagged",
		CategoryID: seededCategory(t, svc, "Books"),
		TagIDs:     []int64{a.ID},
	})
	require.NoError(t, err)

	updated, err := svc.media.SetTags(ctx, item.ID, []int64{b.ID})
	require.NoError(t, err)
	require.Len(t, updated.Tags, 1)
	assert.Equal(t, b.ID, updated.Tags[0].ID)

	// nil clears, same as an empty list.
	updated, err = svc.media.SetTags(ctx, item.ID, nil)
	require.NoError(t, err)
	assert.Empty(t, updated.Tags)
}

func TestMediaNotFound(t *testing.T) {
	svc := setupServices(t)
	ctx := context.Background()

	_, err := svc.media.Get(ctx, 99999)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = svc.media.Update(ctx, 99999, UpdateMediaRequest{Title: opt("x")})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	err = svc.media.Delete(ctx, 99999)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = svc.media.SetTags(ctx, 99999, nil)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestMediaList_InvalidStatusFilter(t *testing.T) {
	svc := setupServices(t)

	_, err := svc.media.List(context.Background(), store.ListMediaParams{Status: "borrowed"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
