package domain

// DefaultTagColor is applied when a tag is created without a color.
const DefaultTagColor = "#94a3b8"

// Tag is a user-defined label, many-to-many with media items.
type Tag struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Color      string `json:"color"`
	UsageCount int    `json:"usage_count"` // Computed on read, never stored
}

// TagRef is the compact tag shape embedded in a serialized media item.
type TagRef struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}
