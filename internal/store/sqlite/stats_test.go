package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/mediatrackapp/mediatrack-server/internal/domain"
	"github.com/mediatrackapp/mediatrack-server/internal/store"
)

func ratedItem(t *testing.T, s *Store, title string, categoryID int64, status domain.Status, grade string) int64 {
	t.Helper()
	id := createTestItem(t, s, title, categoryID, status)
	if err := s.UpdateMediaItem(context.Background(), id, store.MediaItemPatch{
		Rating: store.OptString{Set: true, Value: &grade},
	}); err != nil {
		t.Fatalf("set rating: %v", err)
	}
	return id
}

func TestOverviewStats_Empty(t *testing.T) {
	s := newTestStore(t)

	stats, err := s.OverviewStats(context.Background())
	if err != nil {
		t.Fatalf("OverviewStats: %v", err)
	}
	if stats.TotalItems != 0 {
		t.Errorf("TotalItems: got %d, want 0", stats.TotalItems)
	}
	if stats.AvgRating != 0 {
		t.Errorf("AvgRating: got %v, want 0", stats.AvgRating)
	}
	if len(stats.ByStatus) != 0 {
		t.Errorf("ByStatus: got %v, want empty", stats.ByStatus)
	}
	// Seeded categories appear with zero counts.
	if len(stats.ByCategory) != len(builtinCategories) {
		t.Errorf("ByCategory: got %d entries, want %d", len(stats.ByCategory), len(builtinCategories))
	}
	for _, cc := range stats.ByCategory {
		if cc.Count != 0 {
			t.Errorf("category %q count: got %d, want 0", cc.Name, cc.Count)
		}
	}
}

func TestOverviewStats_ByStatus(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	moviesID := seededCategoryID(t, s, "Movies")
	for i := 0; i < 3; i++ {
		createTestItem(t, s, "Owned", moviesID, domain.StatusOwned)
	}
	for i := 0; i < 2; i++ {
		createTestItem(t, s, "Wished", moviesID, domain.StatusWishlist)
	}

	stats, err := s.OverviewStats(ctx)
	if err != nil {
		t.Fatalf("OverviewStats: %v", err)
	}
	if stats.TotalItems != 5 {
		t.Errorf("TotalItems: got %d, want 5", stats.TotalItems)
	}
	if stats.ByStatus["owned"] != 3 {
		t.Errorf("owned: got %d, want 3", stats.ByStatus["owned"])
	}
	if stats.ByStatus["wishlist"] != 2 {
		t.Errorf("wishlist: got %d, want 2", stats.ByStatus["wishlist"])
	}
}

func TestOverviewStats_AvgRating(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	moviesID := seededCategoryID(t, s, "Movies")
	// A+ = 12, B = 8, F = 0; mean 20/3 = 6.7 after rounding.
	ratedItem(t, s, "Best", moviesID, domain.StatusOwned, "A+")
	ratedItem(t, s, "Fine", moviesID, domain.StatusOwned, "B")
	ratedItem(t, s, "Worst", moviesID, domain.StatusOwned, "F")
	// Unrated items stay out of the average.
	createTestItem(t, s, "Unrated", moviesID, domain.StatusOwned)

	stats, err := s.OverviewStats(ctx)
	if err != nil {
		t.Fatalf("OverviewStats: %v", err)
	}
	if stats.AvgRating != 6.7 {
		t.Errorf("AvgRating: got %v, want 6.7", stats.AvgRating)
	}
}

func TestOverviewStats_RatingDistribution(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	booksID := seededCategoryID(t, s, "Books")
	ratedItem(t, s, "One", booksID, domain.StatusOwned, "A")
	ratedItem(t, s, "Two", booksID, domain.StatusOwned, "A")
	ratedItem(t, s, "Three", booksID, domain.StatusOwned, "C-")

	stats, err := s.OverviewStats(ctx)
	if err != nil {
		t.Fatalf("OverviewStats: %v", err)
	}
	if stats.RatingDistribution["A"] != 2 {
		t.Errorf("A: got %d, want 2", stats.RatingDistribution["A"])
	}
	if stats.RatingDistribution["C-"] != 1 {
		t.Errorf("C-: got %d, want 1", stats.RatingDistribution["C-"])
	}
	if len(stats.RatingDistribution) != len(domain.RatingGrades) {
		t.Errorf("distribution: got %v, want all %d grades", stats.RatingDistribution, len(domain.RatingGrades))
	}
	if count, ok := stats.RatingDistribution["D+"]; !ok || count != 0 {
		t.Errorf("D+: got %d (present %v), want zero-count key", count, ok)
	}
}

func TestOverviewStats_ZeroCountKeysAlwaysPresent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	moviesID := seededCategoryID(t, s, "Movies")
	ratedItem(t, s, "Only", moviesID, domain.StatusOwned, "A")

	stats, err := s.OverviewStats(ctx)
	if err != nil {
		t.Fatalf("OverviewStats: %v", err)
	}

	for _, grade := range domain.RatingGrades {
		if _, ok := stats.RatingDistribution[grade]; !ok {
			t.Errorf("distribution missing grade %q: %v", grade, stats.RatingDistribution)
		}
	}
	if stats.RatingDistribution["A"] != 1 {
		t.Errorf("A: got %d, want 1", stats.RatingDistribution["A"])
	}
	if count, ok := stats.ByStatus["wishlist"]; !ok || count != 0 {
		t.Errorf("by_status wishlist: got %d (present %v), want zero-count key", count, ok)
	}
	if stats.ByStatus["owned"] != 1 {
		t.Errorf("by_status owned: got %d, want 1", stats.ByStatus["owned"])
	}
}

func TestOverviewStats_ByCategory(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	moviesID := seededCategoryID(t, s, "Movies")
	gamesID := seededCategoryID(t, s, "Games")
	createTestItem(t, s, "M1", moviesID, domain.StatusOwned)
	createTestItem(t, s, "M2", moviesID, domain.StatusOwned)
	createTestItem(t, s, "G1", gamesID, domain.StatusWishlist)

	stats, err := s.OverviewStats(ctx)
	if err != nil {
		t.Fatalf("OverviewStats: %v", err)
	}

	counts := map[string]int{}
	for _, cc := range stats.ByCategory {
		counts[cc.Name] = cc.Count
	}
	if counts["Movies"] != 2 {
		t.Errorf("Movies: got %d, want 2", counts["Movies"])
	}
	if counts["Games"] != 1 {
		t.Errorf("Games: got %d, want 1", counts["Games"])
	}
	if counts["Books"] != 0 {
		t.Errorf("Books: got %d, want 0", counts["Books"])
	}
}

func TestRecentOwned(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	moviesID := seededCategoryID(t, s, "Movies")
	first := createTestItem(t, s, "First", moviesID, domain.StatusOwned)
	createTestItem(t, s, "Wishlist only", moviesID, domain.StatusWishlist)
	time.Sleep(2 * time.Millisecond)
	second := createTestItem(t, s, "Second", moviesID, domain.StatusOwned)

	recent, err := s.RecentOwned(ctx, 10)
	if err != nil {
		t.Fatalf("RecentOwned: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("recent: got %d items, want 2", len(recent))
	}
	if recent[0].ID != second || recent[1].ID != first {
		t.Errorf("order: got %d, %d; want %d, %d", recent[0].ID, recent[1].ID, second, first)
	}

	// Updating an older item bumps it to the front.
	title := "First, revisited"
	if err := s.UpdateMediaItem(ctx, first, store.MediaItemPatch{Title: &title}); err != nil {
		t.Fatalf("UpdateMediaItem: %v", err)
	}
	recent, err = s.RecentOwned(ctx, 10)
	if err != nil {
		t.Fatalf("RecentOwned: %v", err)
	}
	if recent[0].ID != first {
		t.Errorf("after update: got %d first, want %d", recent[0].ID, first)
	}
}

func TestRecentOwned_Limit(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	booksID := seededCategoryID(t, s, "Books")
	for i := 0; i < 12; i++ {
		createTestItem(t, s, "Owned", booksID, domain.StatusOwned)
	}

	recent, err := s.RecentOwned(ctx, 10)
	if err != nil {
		t.Fatalf("RecentOwned: %v", err)
	}
	if len(recent) != 10 {
		t.Errorf("recent: got %d items, want 10", len(recent))
	}
}
