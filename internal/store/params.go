package store

import "github.com/mediatrackapp/mediatrack-server/internal/domain"

// Pagination bounds for media listing.
const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

// mediaSortColumns is the whitelist of sortable columns for ListMedia.
// Anything outside the whitelist silently falls back to created_at.
var mediaSortColumns = map[string]bool{
	"title":         true,
	"created_at":    true,
	"date_finished": true,
	"date_started":  true,
	"rating":        true,
	"status":        true,
}

// ListMediaParams holds the filter, sort, and pagination inputs for ListMedia.
type ListMediaParams struct {
	Query      string  // Case-insensitive substring match on title OR notes
	CategoryID *int64  // nil = all categories
	Status     string  // Empty = all statuses
	Rating     *string // nil = all ratings
	TagIDs     []int64 // AND semantics: item must carry every listed tag
	SortBy     string
	SortDir    string // "asc" or "desc"; NULLs sort last either way
	Limit      int
	Offset     int
}

// Normalize clamps pagination and applies the sort whitelist in place.
func (p *ListMediaParams) Normalize() {
	if !mediaSortColumns[p.SortBy] {
		p.SortBy = "created_at"
	}
	if p.SortDir != "asc" {
		p.SortDir = "desc"
	}
	if p.Limit <= 0 {
		p.Limit = DefaultListLimit
	}
	if p.Limit > MaxListLimit {
		p.Limit = MaxListLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// MediaPage is one page of media items plus the total count over the same
// filter predicate, computed before pagination is applied.
type MediaPage struct {
	Items []*domain.MediaItem
	Total int
}

// OptString is a tri-state string field for partial updates:
// not set (untouched), set to a value, or set to nil (explicit clear).
type OptString struct {
	Set   bool
	Value *string // nil with Set=true clears the column
}

// MediaItemPatch describes a partial media item update. Nil pointer fields
// are untouched. Metadata, when present, replaces the stored bag wholesale.
// TagIDs, when present (even empty), replaces the full tag set.
type MediaItemPatch struct {
	Title         *string
	CategoryID    *int64
	Status        *domain.Status
	Rating        OptString
	Notes         OptString
	CoverImageURL OptString
	DateStarted   OptString
	DateFinished  OptString
	Metadata      *domain.Metadata
	TagIDs        *[]int64
}

// CategoryPatch describes a partial category update; nil fields are untouched.
type CategoryPatch struct {
	Name  *string
	Icon  *string
	Color *string
}

// TagPatch describes a partial tag update; nil fields are untouched.
type TagPatch struct {
	Name  *string
	Color *string
}

// FieldValuePatch describes a partial field value update. Only value and
// sort_order are mutable; field_type and category_id are fixed at creation.
type FieldValuePatch struct {
	Value     *string
	SortOrder *int
}

// FieldValueFilter selects field values for listing. Zero value lists all
// rows. Scoped=false ignores CategoryID entirely; Scoped=true matches
// CategoryID exactly, including nil for the global scope.
type FieldValueFilter struct {
	FieldType  string
	Scoped     bool
	CategoryID *int64
}
