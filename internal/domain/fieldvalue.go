package domain

// FieldValue is a reusable pick-list entry for a category-specific or
// global attribute. CategoryID nil means the value is shared across all
// categories; non-nil scopes it to one category. The chosen value is
// copied into MediaItem.Metadata as plain text, never referenced by key,
// so deleting a FieldValue does not touch existing items.
type FieldValue struct {
	ID         int64  `json:"id"`
	FieldType  string `json:"field_type"`
	CategoryID *int64 `json:"category_id"`
	Value      string `json:"value"`
	SortOrder  int    `json:"sort_order"`
}
