package domain

import "time"

// Status is the lifecycle stage of a media item.
type Status string

// Lifecycle stages.
const (
	StatusWishlist Status = "wishlist"
	StatusOwned    Status = "owned"
)

// Statuses lists every valid lifecycle stage.
var Statuses = []Status{StatusWishlist, StatusOwned}

// Metadata is the free-form per-category attribute bag stored on a media
// item (director, genre, platform, ...). It is serialized wholesale to a
// JSON text column; corrupt stored text degrades to an empty bag on read.
type Metadata map[string]any

// MediaItem is a tracked movie, show, book, game, or album. Category
// presentation fields and the tag list are denormalized onto the struct
// when an item is read; they are never written back.
type MediaItem struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	CategoryID    int64     `json:"category_id"`
	CategoryName  string    `json:"category_name"`
	CategoryColor string    `json:"category_color"`
	CategoryIcon  string    `json:"category_icon"`
	Status        Status    `json:"status"`
	Rating        *string   `json:"rating"`
	Notes         *string   `json:"notes"`
	CoverImageURL *string   `json:"cover_image_url"`
	DateStarted   *string   `json:"date_started"`  // Opaque date string, not validated
	DateFinished  *string   `json:"date_finished"` // Opaque date string, not validated
	Metadata      Metadata  `json:"metadata"`
	Tags          []TagRef  `json:"tags"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Touch refreshes the UpdatedAt timestamp.
func (m *MediaItem) Touch() {
	m.UpdatedAt = time.Now().UTC()
}
