package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/mediatrackapp/mediatrack-server/internal/domain"
	"github.com/mediatrackapp/mediatrack-server/internal/service"
)

func (s *Server) registerTagRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listTags",
		Method:      http.MethodGet,
		Path:        "/api/tags",
		Summary:     "List tags",
		Description: "Returns all tags with usage counts",
		Tags:        []string{"Tags"},
	}, s.handleListTags)

	huma.Register(s.api, huma.Operation{
		OperationID:   "createTag",
		Method:        http.MethodPost,
		Path:          "/api/tags",
		Summary:       "Create tag",
		Description:   "Creates a new tag",
		Tags:          []string{"Tags"},
		DefaultStatus: http.StatusCreated,
	}, s.handleCreateTag)

	huma.Register(s.api, huma.Operation{
		OperationID: "updateTag",
		Method:      http.MethodPut,
		Path:        "/api/tags/{id}",
		Summary:     "Update tag",
		Description: "Updates a tag's name or color",
		Tags:        []string{"Tags"},
	}, s.handleUpdateTag)

	huma.Register(s.api, huma.Operation{
		OperationID:   "deleteTag",
		Method:        http.MethodDelete,
		Path:          "/api/tags/{id}",
		Summary:       "Delete tag",
		Description:   "Deletes a tag and detaches it from all media items",
		Tags:          []string{"Tags"},
		DefaultStatus: http.StatusNoContent,
	}, s.handleDeleteTag)
}

// === DTOs ===

// TagListOutput wraps the tag list for Huma.
type TagListOutput struct {
	Body []*domain.Tag
}

// TagOutput wraps a single tag for Huma.
type TagOutput struct {
	Body *domain.Tag
}

// CreateTagInput wraps the create request for Huma.
type CreateTagInput struct {
	Body service.CreateTagRequest
}

// UpdateTagInput wraps the update request for Huma.
type UpdateTagInput struct {
	ID   int64 `path:"id" doc:"Tag ID"`
	Body service.UpdateTagRequest
}

// DeleteTagInput contains parameters for deleting a tag.
type DeleteTagInput struct {
	ID int64 `path:"id" doc:"Tag ID"`
}

// === Handlers ===

func (s *Server) handleListTags(ctx context.Context, _ *struct{}) (*TagListOutput, error) {
	tags, err := s.services.Tags.List(ctx)
	if err != nil {
		return nil, err
	}
	return &TagListOutput{Body: tags}, nil
}

func (s *Server) handleCreateTag(ctx context.Context, input *CreateTagInput) (*TagOutput, error) {
	tag, err := s.services.Tags.Create(ctx, input.Body)
	if err != nil {
		return nil, err
	}
	return &TagOutput{Body: tag}, nil
}

func (s *Server) handleUpdateTag(ctx context.Context, input *UpdateTagInput) (*TagOutput, error) {
	tag, err := s.services.Tags.Update(ctx, input.ID, input.Body)
	if err != nil {
		return nil, err
	}
	return &TagOutput{Body: tag}, nil
}

func (s *Server) handleDeleteTag(ctx context.Context, input *DeleteTagInput) (*EmptyOutput, error) {
	if err := s.services.Tags.Delete(ctx, input.ID); err != nil {
		return nil, err
	}
	return &EmptyOutput{}, nil
}
