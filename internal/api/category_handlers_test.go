package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediatrackapp/mediatrack-server/internal/domain"
)

func TestListCategoriesSeeded(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Get("/api/categories")
	require.Equal(t, http.StatusOK, resp.Code)

	var categories []domain.Category
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &categories))
	require.Len(t, categories, 5)

	for _, c := range categories {
		assert.True(t, c.IsSystem, "seeded category %q should be system", c.Name)
		assert.Zero(t, c.ItemCount)
	}
}

func TestCreateCategory(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Post("/api/categories", map[string]any{
		"name":  "Board Games",
		"icon":  "🎲",
		"color": "#10b981",
	})
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())

	var c domain.Category
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &c))
	assert.Equal(t, "Board Games", c.Name)
	assert.Equal(t, "🎲", c.Icon)
	assert.Equal(t, "#10b981", c.Color)
	assert.False(t, c.IsSystem)
}

func TestCreateCategoryDefaults(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Post("/api/categories", map[string]any{"name": "Podcasts"})
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())

	var c domain.Category
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &c))
	assert.Equal(t, domain.DefaultCategoryIcon, c.Icon)
	assert.Equal(t, domain.DefaultCategoryColor, c.Color)
}

func TestCreateCategoryDuplicateName(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Post("/api/categories", map[string]any{"name": "Movies"})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, "CONFLICT", decodeError(t, resp.Body.Bytes()).Code)
}

func TestCreateCategoryInvalidColor(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Post("/api/categories", map[string]any{
		"name":  "Zines",
		"color": "green",
	})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, "VALIDATION", decodeError(t, resp.Body.Bytes()).Code)
}

func TestUpdateCategory(t *testing.T) {
	ts := setupTestServer(t)

	var created domain.Category
	resp := ts.api.Post("/api/categories", map[string]any{"name": "Comics"})
	require.Equal(t, http.StatusCreated, resp.Code)
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &created))

	resp = ts.api.Put(fmt.Sprintf("/api/categories/%d", created.ID), map[string]any{
		"name": "Graphic Novels",
	})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var updated domain.Category
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &updated))
	assert.Equal(t, "Graphic Novels", updated.Name)
	assert.Equal(t, created.Icon, updated.Icon, "icon untouched by partial update")
}

func TestDeleteCategoryLifecycle(t *testing.T) {
	ts := setupTestServer(t)
	movies := ts.categoryID(t, "Movies")

	// System categories can never be deleted.
	resp := ts.api.Delete(fmt.Sprintf("/api/categories/%d", movies))
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, "SYSTEM_CATEGORY", decodeError(t, resp.Body.Bytes()).Code)

	// A user category holding items refuses deletion.
	var c domain.Category
	createResp := ts.api.Post("/api/categories", map[string]any{"name": "Vinyl"})
	require.Equal(t, http.StatusCreated, createResp.Code)
	require.NoError(t, json.Unmarshal(createResp.Body.Bytes(), &c))

	item := ts.createItem(t, map[string]any{
		"title":       "OK Computer",
		"category_id": c.ID,
	})

	resp = ts.api.Delete(fmt.Sprintf("/api/categories/%d", c.ID))
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, "CATEGORY_HAS_ITEMS", decodeError(t, resp.Body.Bytes()).Code)

	// Emptied, it deletes.
	resp = ts.api.Delete(fmt.Sprintf("/api/media/%d", item.ID))
	require.Equal(t, http.StatusNoContent, resp.Code)

	resp = ts.api.Delete(fmt.Sprintf("/api/categories/%d", c.ID))
	assert.Equal(t, http.StatusNoContent, resp.Code)

	// Gone means 404 on the next attempt.
	resp = ts.api.Delete(fmt.Sprintf("/api/categories/%d", c.ID))
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestCategoryItemCountIsLive(t *testing.T) {
	ts := setupTestServer(t)
	books := ts.categoryID(t, "Books")

	ts.createItem(t, map[string]any{"title": "Ubik", "category_id": books})
	ts.createItem(t, map[string]any{"title": "Valis", "category_id": books})

	resp := ts.api.Get("/api/categories")
	require.Equal(t, http.StatusOK, resp.Code)

	var categories []domain.Category
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &categories))
	for _, c := range categories {
		if c.ID == books {
			assert.Equal(t, 2, c.ItemCount)
			return
		}
	}
	t.Fatal("books category missing from list")
}
