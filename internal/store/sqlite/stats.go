package sqlite

import (
	"context"
	"fmt"
	"math"

	"github.com/mediatrackapp/mediatrack-server/internal/domain"
)

// OverviewStats computes the aggregate snapshot for the stats endpoint.
// Everything derives from a handful of grouped queries; nothing is cached.
func (s *Store) OverviewStats(ctx context.Context) (*domain.OverviewStats, error) {
	stats := &domain.OverviewStats{
		ByStatus:           map[string]int{},
		ByCategory:         []domain.CategoryCount{},
		RatingDistribution: map[string]int{},
	}

	// Zero-count keys are part of the wire shape: every status and every
	// grade appears even when nothing matches it.
	for _, status := range domain.Statuses {
		stats.ByStatus[string(status)] = 0
	}
	for _, grade := range domain.RatingGrades {
		stats.RatingDistribution[grade] = 0
	}

	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM media_items`).Scan(&stats.TotalItems); err != nil {
		return nil, fmt.Errorf("count items: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT status, COUNT(*) FROM media_items GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("count by status: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		stats.ByStatus[status] = count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// One pass over rated items feeds both the distribution and the
	// average. Grades are averaged on their 0-12 numeric scores; a grade
	// outside the scale still counts in the distribution but not the
	// average.
	ratingRows, err := s.db.QueryContext(ctx,
		`SELECT rating, COUNT(*) FROM media_items WHERE rating IS NOT NULL GROUP BY rating`)
	if err != nil {
		return nil, fmt.Errorf("count by rating: %w", err)
	}
	defer ratingRows.Close()

	var scoreSum, scored int
	for ratingRows.Next() {
		var rating string
		var count int
		if err := ratingRows.Scan(&rating, &count); err != nil {
			return nil, err
		}
		stats.RatingDistribution[rating] = count
		if score, ok := domain.RatingScore(rating); ok {
			scoreSum += score * count
			scored += count
		}
	}
	if err := ratingRows.Err(); err != nil {
		return nil, err
	}
	if scored > 0 {
		stats.AvgRating = math.Round(float64(scoreSum)/float64(scored)*10) / 10
	}

	categoryRows, err := s.db.QueryContext(ctx, `
		SELECT c.name, c.color, c.icon, COUNT(m.id)
		FROM categories c
		LEFT JOIN media_items m ON m.category_id = c.id
		GROUP BY c.id
		ORDER BY c.id ASC`)
	if err != nil {
		return nil, fmt.Errorf("count by category: %w", err)
	}
	defer categoryRows.Close()
	for categoryRows.Next() {
		var cc domain.CategoryCount
		if err := categoryRows.Scan(&cc.Name, &cc.Color, &cc.Icon, &cc.Count); err != nil {
			return nil, err
		}
		stats.ByCategory = append(stats.ByCategory, cc)
	}
	if err := categoryRows.Err(); err != nil {
		return nil, err
	}

	return stats, nil
}

// RecentOwned returns the most recently updated items with status owned,
// newest first, with category and tags joined in.
func (s *Store) RecentOwned(ctx context.Context, limit int) ([]*domain.MediaItem, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+mediaColumns+mediaFrom+`
		WHERE m.status = ?
		ORDER BY m.updated_at DESC
		LIMIT ?`,
		string(domain.StatusOwned), limit)
	if err != nil {
		return nil, fmt.Errorf("query recent owned: %w", err)
	}
	defer rows.Close()

	items := []*domain.MediaItem{}
	for rows.Next() {
		m, err := scanMediaItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := s.attachTags(ctx, items); err != nil {
		return nil, err
	}
	return items, nil
}
