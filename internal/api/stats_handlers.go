package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/mediatrackapp/mediatrack-server/internal/domain"
)

func (s *Server) registerStatsRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "getStatsOverview",
		Method:      http.MethodGet,
		Path:        "/api/stats/overview",
		Summary:     "Collection overview",
		Description: "Returns collection totals, status and rating breakdowns, and per-category counts",
		Tags:        []string{"Stats"},
	}, s.handleStatsOverview)

	huma.Register(s.api, huma.Operation{
		OperationID: "getRecentMedia",
		Method:      http.MethodGet,
		Path:        "/api/stats/recent",
		Summary:     "Recently updated owned items",
		Description: "Returns the most recently updated owned media items",
		Tags:        []string{"Stats"},
	}, s.handleStatsRecent)
}

// === DTOs ===

// StatsOverviewOutput wraps the overview stats for Huma.
type StatsOverviewOutput struct {
	Body *domain.OverviewStats
}

// RecentMediaOutput wraps the recent items list for Huma.
type RecentMediaOutput struct {
	Body []*domain.MediaItem
}

// === Handlers ===

func (s *Server) handleStatsOverview(ctx context.Context, _ *struct{}) (*StatsOverviewOutput, error) {
	stats, err := s.services.Stats.Overview(ctx)
	if err != nil {
		return nil, err
	}
	return &StatsOverviewOutput{Body: stats}, nil
}

func (s *Server) handleStatsRecent(ctx context.Context, _ *struct{}) (*RecentMediaOutput, error) {
	items, err := s.services.Stats.Recent(ctx)
	if err != nil {
		return nil, err
	}
	return &RecentMediaOutput{Body: items}, nil
}
