package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediatrackapp/mediatrack-server/internal/domain"
)

func TestStatsOverview(t *testing.T) {
	ts := setupTestServer(t)
	movies := ts.categoryID(t, "Movies")
	books := ts.categoryID(t, "Books")

	ts.createItem(t, map[string]any{
		"title": "Stalker", "category_id": movies, "status": "owned", "rating": "A+",
	})
	ts.createItem(t, map[string]any{
		"title": "Solaris", "category_id": movies, "status": "owned", "rating": "B",
	})
	ts.createItem(t, map[string]any{
		"title": "Roadside Picnic", "category_id": books, "status": "wishlist",
	})

	resp := ts.api.Get("/api/stats/overview")
	require.Equal(t, http.StatusOK, resp.Code)

	var stats domain.OverviewStats
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &stats))

	assert.Equal(t, 3, stats.TotalItems)
	assert.Equal(t, 2, stats.ByStatus["owned"])
	assert.Equal(t, 1, stats.ByStatus["wishlist"])

	// A+ (12) and B (8) average to 10.0.
	assert.InDelta(t, 10.0, stats.AvgRating, 0.001)
	assert.Equal(t, 1, stats.RatingDistribution["A+"])
	assert.Equal(t, 1, stats.RatingDistribution["B"])
	assert.Len(t, stats.RatingDistribution, len(domain.RatingGrades), "all grades present")
	assert.Equal(t, 0, stats.RatingDistribution["F"], "empty grades reported as zero")

	counts := map[string]int{}
	for _, c := range stats.ByCategory {
		counts[c.Name] = c.Count
	}
	assert.Equal(t, 2, counts["Movies"])
	assert.Equal(t, 1, counts["Books"])
	assert.Equal(t, 0, counts["Games"], "empty seeded categories still listed")
}

func TestStatsOverviewEmpty(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Get("/api/stats/overview")
	require.Equal(t, http.StatusOK, resp.Code)

	var stats domain.OverviewStats
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &stats))
	assert.Zero(t, stats.TotalItems)
	assert.Zero(t, stats.AvgRating)
	assert.Len(t, stats.ByCategory, 5)
	assert.Len(t, stats.RatingDistribution, len(domain.RatingGrades))
	assert.Equal(t, map[string]int{"wishlist": 0, "owned": 0}, stats.ByStatus)
}

func TestStatsRecent(t *testing.T) {
	ts := setupTestServer(t)
	games := ts.categoryID(t, "Games")

	first := ts.createItem(t, map[string]any{
		"title": "Outer Wilds", "category_id": games, "status": "owned",
	})
	ts.createItem(t, map[string]any{
		"title": "Backlog Game", "category_id": games, "status": "wishlist",
	})
	second := ts.createItem(t, map[string]any{
		"title": "Hollow Knight", "category_id": games, "status": "owned",
	})

	// Touching the older item moves it to the front.
	putResp := ts.api.Put(fmt.Sprintf("/api/media/%d", first.ID),
		strings.NewReader(`{"rating": "A"}`))
	require.Equal(t, http.StatusOK, putResp.Code)

	resp := ts.api.Get("/api/stats/recent")
	require.Equal(t, http.StatusOK, resp.Code)

	var items []domain.MediaItem
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &items))
	require.Len(t, items, 2, "wishlist items excluded")
	assert.Equal(t, first.ID, items[0].ID)
	assert.Equal(t, second.ID, items[1].ID)
}
