package api

import (
	"context"
	"encoding/json/v2"
	"net/http"
	"strconv"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"github.com/mediatrackapp/mediatrack-server/internal/domain"
	"github.com/mediatrackapp/mediatrack-server/internal/service"
	"github.com/mediatrackapp/mediatrack-server/internal/store"
)

func (s *Server) registerMediaRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listMedia",
		Method:      http.MethodGet,
		Path:        "/api/media",
		Summary:     "List media items",
		Description: "Returns a filtered, sorted page of media items",
		Tags:        []string{"Media"},
	}, s.handleListMedia)

	huma.Register(s.api, huma.Operation{
		OperationID:   "createMediaItem",
		Method:        http.MethodPost,
		Path:          "/api/media",
		Summary:       "Create media item",
		Description:   "Creates a new media item",
		Tags:          []string{"Media"},
		DefaultStatus: http.StatusCreated,
	}, s.handleCreateMedia)

	huma.Register(s.api, huma.Operation{
		OperationID: "getMediaItem",
		Method:      http.MethodGet,
		Path:        "/api/media/{id}",
		Summary:     "Get media item",
		Description: "Returns a media item by ID",
		Tags:        []string{"Media"},
	}, s.handleGetMedia)

	huma.Register(s.api, huma.Operation{
		OperationID: "updateMediaItem",
		Method:      http.MethodPut,
		Path:        "/api/media/{id}",
		Summary:     "Update media item",
		Description: "Partially updates a media item; absent fields are untouched, explicit nulls clear nullable fields",
		Tags:        []string{"Media"},
	}, s.handleUpdateMedia)

	huma.Register(s.api, huma.Operation{
		OperationID:   "deleteMediaItem",
		Method:        http.MethodDelete,
		Path:          "/api/media/{id}",
		Summary:       "Delete media item",
		Description:   "Deletes a media item and its tag links",
		Tags:          []string{"Media"},
		DefaultStatus: http.StatusNoContent,
	}, s.handleDeleteMedia)

	huma.Register(s.api, huma.Operation{
		OperationID: "setMediaTags",
		Method:      http.MethodPost,
		Path:        "/api/media/{id}/tags",
		Summary:     "Set media tags",
		Description: "Replaces the full tag set of a media item",
		Tags:        []string{"Media"},
	}, s.handleSetMediaTags)
}

// === DTOs ===

// EmptyOutput is the response for operations that return no body.
type EmptyOutput struct{}

// ListMediaInput contains filter, sort, and pagination query parameters.
type ListMediaInput struct {
	Query      string `query:"q" doc:"Case-insensitive substring match on title or notes"`
	CategoryID int64  `query:"category_id" doc:"Filter by category ID"`
	Status     string `query:"status" doc:"Filter by status (wishlist or owned)"`
	Rating     string `query:"rating" doc:"Filter by exact letter grade"`
	TagIDs     string `query:"tag_ids" doc:"Comma-separated tag IDs; items must carry all of them"`
	SortBy     string `query:"sort_by" doc:"Sort column (title, created_at, date_started, date_finished, rating, status)"`
	SortDir    string `query:"sort_dir" doc:"Sort direction (asc or desc)"`
	Limit      int    `query:"limit" doc:"Page size, 1 to 200"`
	Offset     int    `query:"offset" doc:"Rows to skip"`
}

// ListMediaResponse is one page of media items.
type ListMediaResponse struct {
	Items  []*domain.MediaItem `json:"items" doc:"Media items in this page"`
	Total  int                 `json:"total" doc:"Total matches before pagination"`
	Limit  int                 `json:"limit" doc:"Applied page size"`
	Offset int                 `json:"offset" doc:"Applied offset"`
}

// ListMediaOutput wraps the media list response for Huma.
type ListMediaOutput struct {
	Body ListMediaResponse
}

// MediaOutput wraps a single media item for Huma.
type MediaOutput struct {
	Body *domain.MediaItem
}

// CreateMediaInput wraps the create request for Huma.
type CreateMediaInput struct {
	Body service.CreateMediaRequest
}

// GetMediaInput contains parameters for getting a media item.
type GetMediaInput struct {
	ID int64 `path:"id" doc:"Media item ID"`
}

// UpdateMediaInput carries the raw body so absent fields and explicit
// nulls stay distinguishable when decoding.
type UpdateMediaInput struct {
	ID      int64 `path:"id" doc:"Media item ID"`
	RawBody []byte
}

// DeleteMediaInput contains parameters for deleting a media item.
type DeleteMediaInput struct {
	ID int64 `path:"id" doc:"Media item ID"`
}

// SetMediaTagsInput carries the raw body because the endpoint accepts
// either a bare JSON array of tag ids or a {"tag_ids": [...]} object.
type SetMediaTagsInput struct {
	ID      int64 `path:"id" doc:"Media item ID"`
	RawBody []byte
}

// === Handlers ===

func (s *Server) handleListMedia(ctx context.Context, input *ListMediaInput) (*ListMediaOutput, error) {
	params := store.ListMediaParams{
		Query:   input.Query,
		Status:  input.Status,
		SortBy:  input.SortBy,
		SortDir: input.SortDir,
		Limit:   input.Limit,
		Offset:  input.Offset,
	}
	if input.CategoryID != 0 {
		params.CategoryID = &input.CategoryID
	}
	if input.Rating != "" {
		params.Rating = &input.Rating
	}

	tagIDs, err := parseTagIDs(input.TagIDs)
	if err != nil {
		return nil, huma.Error400BadRequest("tag_ids must be a comma-separated list of integers")
	}
	params.TagIDs = tagIDs

	// Normalized here so the echoed limit and offset match what ran.
	params.Normalize()

	page, err := s.services.Media.List(ctx, params)
	if err != nil {
		return nil, err
	}

	return &ListMediaOutput{Body: ListMediaResponse{
		Items:  page.Items,
		Total:  page.Total,
		Limit:  params.Limit,
		Offset: params.Offset,
	}}, nil
}

func (s *Server) handleCreateMedia(ctx context.Context, input *CreateMediaInput) (*MediaOutput, error) {
	item, err := s.services.Media.Create(ctx, input.Body)
	if err != nil {
		return nil, err
	}
	return &MediaOutput{Body: item}, nil
}

func (s *Server) handleGetMedia(ctx context.Context, input *GetMediaInput) (*MediaOutput, error) {
	item, err := s.services.Media.Get(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	return &MediaOutput{Body: item}, nil
}

func (s *Server) handleUpdateMedia(ctx context.Context, input *UpdateMediaInput) (*MediaOutput, error) {
	var req service.UpdateMediaRequest
	if err := json.Unmarshal(input.RawBody, &req); err != nil {
		return nil, huma.Error400BadRequest("invalid request body")
	}

	item, err := s.services.Media.Update(ctx, input.ID, req)
	if err != nil {
		return nil, err
	}
	return &MediaOutput{Body: item}, nil
}

func (s *Server) handleDeleteMedia(ctx context.Context, input *DeleteMediaInput) (*EmptyOutput, error) {
	if err := s.services.Media.Delete(ctx, input.ID); err != nil {
		return nil, err
	}
	return &EmptyOutput{}, nil
}

func (s *Server) handleSetMediaTags(ctx context.Context, input *SetMediaTagsInput) (*MediaOutput, error) {
	tagIDs, err := decodeTagIDsBody(input.RawBody)
	if err != nil {
		return nil, huma.Error400BadRequest("body must be a JSON array of tag ids")
	}

	item, err := s.services.Media.SetTags(ctx, input.ID, tagIDs)
	if err != nil {
		return nil, err
	}
	return &MediaOutput{Body: item}, nil
}

// decodeTagIDsBody accepts both `[1, 2]` and `{"tag_ids": [1, 2]}`.
func decodeTagIDsBody(raw []byte) ([]int64, error) {
	var ids []int64
	if err := json.Unmarshal(raw, &ids); err == nil {
		return ids, nil
	}
	var wrapped struct {
		TagIDs []int64 `json:"tag_ids"`
	}
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return nil, err
	}
	return wrapped.TagIDs, nil
}

// parseTagIDs splits a comma-separated ID list, ignoring empty segments.
func parseTagIDs(raw string) ([]int64, error) {
	if raw == "" {
		return nil, nil
	}
	var ids []int64
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
