package service

import (
	"context"
	"log/slog"

	"github.com/mediatrackapp/mediatrack-server/internal/domain"
	"github.com/mediatrackapp/mediatrack-server/internal/store"
)

// recentLimit caps the recent-completed listing.
const recentLimit = 10

// StatsService serves collection-wide aggregates.
type StatsService struct {
	store  store.Store
	logger *slog.Logger
}

// NewStatsService creates a new stats service.
func NewStatsService(store store.Store, logger *slog.Logger) *StatsService {
	return &StatsService{
		store:  store,
		logger: logger,
	}
}

// Overview returns the aggregate snapshot: totals, status breakdown,
// average rating, per-category counts, and the rating histogram.
func (s *StatsService) Overview(ctx context.Context) (*domain.OverviewStats, error) {
	return s.store.OverviewStats(ctx)
}

// Recent returns the most recently updated owned items.
func (s *StatsService) Recent(ctx context.Context) ([]*domain.MediaItem, error) {
	return s.store.RecentOwned(ctx, recentLimit)
}
