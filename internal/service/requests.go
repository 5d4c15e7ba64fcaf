package service

import (
	"bytes"
	"encoding/json/v2"

	"github.com/mediatrackapp/mediatrack-server/internal/domain"
)

// Optional is a tri-state JSON field for partial updates. A field left out
// of the request body stays Set=false; an explicit null arrives as Set=true
// with a nil Value; anything else arrives as Set=true with the value.
type Optional[T any] struct {
	Set   bool
	Value *T
}

// UnmarshalJSON records presence before decoding the value.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(data, []byte("null")) {
		o.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}

// Get returns the dereferenced value, or T's zero value when absent or null.
func (o Optional[T]) Get() T {
	if o.Value == nil {
		var zero T
		return zero
	}
	return *o.Value
}

// CreateMediaRequest is the payload for creating a media item.
type CreateMediaRequest struct {
	Title         string          `json:"title" validate:"required,min=1,max=500"`
	CategoryID    int64           `json:"category_id" validate:"required"`
	Status        string          `json:"status,omitempty" validate:"omitempty,oneof=wishlist owned"`
	Rating        *string         `json:"rating,omitempty"`
	Notes         *string         `json:"notes,omitempty"`
	CoverImageURL *string         `json:"cover_image_url,omitempty"`
	DateStarted   *string         `json:"date_started,omitempty"`
	DateFinished  *string         `json:"date_finished,omitempty"`
	Metadata      domain.Metadata `json:"metadata,omitempty"`
	TagIDs        []int64         `json:"tag_ids,omitempty"`
}

// UpdateMediaRequest is the payload for a partial media item update.
// Every field is tri-state; nullable columns are cleared with an explicit
// null, while title, category_id, and status reject null.
type UpdateMediaRequest struct {
	Title         Optional[string]          `json:"title"`
	CategoryID    Optional[int64]           `json:"category_id"`
	Status        Optional[string]          `json:"status"`
	Rating        Optional[string]          `json:"rating"`
	Notes         Optional[string]          `json:"notes"`
	CoverImageURL Optional[string]          `json:"cover_image_url"`
	DateStarted   Optional[string]          `json:"date_started"`
	DateFinished  Optional[string]          `json:"date_finished"`
	Metadata      Optional[domain.Metadata] `json:"metadata"`
	TagIDs        Optional[[]int64]         `json:"tag_ids"`
}

// CreateCategoryRequest is the payload for creating a category.
// Icon and color fall back to the defaults when omitted.
type CreateCategoryRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=100"`
	Icon  string `json:"icon,omitempty" validate:"omitempty,max=16"`
	Color string `json:"color,omitempty" validate:"omitempty,hexcolor"`
}

// UpdateCategoryRequest is the payload for a partial category update.
type UpdateCategoryRequest struct {
	Name  *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Icon  *string `json:"icon,omitempty" validate:"omitempty,max=16"`
	Color *string `json:"color,omitempty" validate:"omitempty,hexcolor"`
}

// CreateTagRequest is the payload for creating a tag.
type CreateTagRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=100"`
	Color string `json:"color,omitempty" validate:"omitempty,hexcolor"`
}

// UpdateTagRequest is the payload for a partial tag update.
type UpdateTagRequest struct {
	Name  *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Color *string `json:"color,omitempty" validate:"omitempty,hexcolor"`
}

// CreateFieldValueRequest is the payload for creating a pick-list value.
type CreateFieldValueRequest struct {
	FieldType  string `json:"field_type" validate:"required,min=1,max=100"`
	CategoryID *int64 `json:"category_id,omitempty"`
	Value      string `json:"value" validate:"required,min=1,max=200"`
	SortOrder  int    `json:"sort_order,omitempty"`
}

// UpdateFieldValueRequest is the payload for a partial pick-list update.
// Only value and sort_order are mutable.
type UpdateFieldValueRequest struct {
	Value     *string `json:"value,omitempty" validate:"omitempty,min=1,max=200"`
	SortOrder *int    `json:"sort_order,omitempty"`
}
