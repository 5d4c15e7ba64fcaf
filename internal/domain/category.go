package domain

import "time"

// Default presentation values applied when a category supplies none,
// and when serializing an item whose category relation is missing.
const (
	DefaultCategoryIcon  = "📁"
	DefaultCategoryColor = "#6366f1"
)

// Category is a top-level grouping of media items (Movies, Books, ...).
// The five built-in categories carry IsSystem and can never be deleted.
type Category struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Icon      string    `json:"icon"`
	Color     string    `json:"color"`
	IsSystem  bool      `json:"is_system"`
	ItemCount int       `json:"item_count"` // Computed on read, never stored
	CreatedAt time.Time `json:"created_at"`
}
