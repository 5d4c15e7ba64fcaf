// Package store defines the persistence interface for the Media Tracker server.
package store

import (
	"context"

	"github.com/mediatrackapp/mediatrack-server/internal/domain"
)

// Store defines the interface for all persistence operations.
// The sqlite subpackage provides the only implementation.
type Store interface {
	Close() error

	// Media items
	ListMedia(ctx context.Context, params ListMediaParams) (*MediaPage, error)
	GetMediaItem(ctx context.Context, id int64) (*domain.MediaItem, error)
	CreateMediaItem(ctx context.Context, item *domain.MediaItem, tagIDs []int64) (int64, error)
	UpdateMediaItem(ctx context.Context, id int64, patch MediaItemPatch) error
	DeleteMediaItem(ctx context.Context, id int64) error
	SetMediaTags(ctx context.Context, id int64, tagIDs []int64) error

	// Categories
	ListCategories(ctx context.Context) ([]*domain.Category, error)
	GetCategory(ctx context.Context, id int64) (*domain.Category, error)
	CreateCategory(ctx context.Context, c *domain.Category) (int64, error)
	UpdateCategory(ctx context.Context, id int64, patch CategoryPatch) error
	DeleteCategory(ctx context.Context, id int64) error

	// Tags
	ListTags(ctx context.Context) ([]*domain.Tag, error)
	GetTag(ctx context.Context, id int64) (*domain.Tag, error)
	CreateTag(ctx context.Context, t *domain.Tag) (int64, error)
	UpdateTag(ctx context.Context, id int64, patch TagPatch) error
	DeleteTag(ctx context.Context, id int64) error

	// Field values
	ListFieldValues(ctx context.Context, filter FieldValueFilter) ([]*domain.FieldValue, error)
	GetFieldValue(ctx context.Context, id int64) (*domain.FieldValue, error)
	CreateFieldValue(ctx context.Context, fv *domain.FieldValue) (int64, error)
	UpdateFieldValue(ctx context.Context, id int64, patch FieldValuePatch) error
	DeleteFieldValue(ctx context.Context, id int64) error

	// Stats
	OverviewStats(ctx context.Context) (*domain.OverviewStats, error)
	RecentOwned(ctx context.Context, limit int) ([]*domain.MediaItem, error)
}
