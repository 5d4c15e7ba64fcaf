package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/mediatrackapp/mediatrack-server/internal/domain"
	"github.com/mediatrackapp/mediatrack-server/internal/service"
)

func (s *Server) registerCategoryRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listCategories",
		Method:      http.MethodGet,
		Path:        "/api/categories",
		Summary:     "List categories",
		Description: "Returns all categories with live item counts",
		Tags:        []string{"Categories"},
	}, s.handleListCategories)

	huma.Register(s.api, huma.Operation{
		OperationID:   "createCategory",
		Method:        http.MethodPost,
		Path:          "/api/categories",
		Summary:       "Create category",
		Description:   "Creates a new user category",
		Tags:          []string{"Categories"},
		DefaultStatus: http.StatusCreated,
	}, s.handleCreateCategory)

	huma.Register(s.api, huma.Operation{
		OperationID: "updateCategory",
		Method:      http.MethodPut,
		Path:        "/api/categories/{id}",
		Summary:     "Update category",
		Description: "Updates a category's name, icon, or color",
		Tags:        []string{"Categories"},
	}, s.handleUpdateCategory)

	huma.Register(s.api, huma.Operation{
		OperationID:   "deleteCategory",
		Method:        http.MethodDelete,
		Path:          "/api/categories/{id}",
		Summary:       "Delete category",
		Description:   "Deletes an empty, non-system category",
		Tags:          []string{"Categories"},
		DefaultStatus: http.StatusNoContent,
	}, s.handleDeleteCategory)
}

// === DTOs ===

// CategoryListOutput wraps the category list for Huma.
type CategoryListOutput struct {
	Body []*domain.Category
}

// CategoryOutput wraps a single category for Huma.
type CategoryOutput struct {
	Body *domain.Category
}

// CreateCategoryInput wraps the create request for Huma.
type CreateCategoryInput struct {
	Body service.CreateCategoryRequest
}

// UpdateCategoryInput wraps the update request for Huma.
type UpdateCategoryInput struct {
	ID   int64 `path:"id" doc:"Category ID"`
	Body service.UpdateCategoryRequest
}

// DeleteCategoryInput contains parameters for deleting a category.
type DeleteCategoryInput struct {
	ID int64 `path:"id" doc:"Category ID"`
}

// === Handlers ===

func (s *Server) handleListCategories(ctx context.Context, _ *struct{}) (*CategoryListOutput, error) {
	categories, err := s.services.Categories.List(ctx)
	if err != nil {
		return nil, err
	}
	return &CategoryListOutput{Body: categories}, nil
}

func (s *Server) handleCreateCategory(ctx context.Context, input *CreateCategoryInput) (*CategoryOutput, error) {
	category, err := s.services.Categories.Create(ctx, input.Body)
	if err != nil {
		return nil, err
	}
	return &CategoryOutput{Body: category}, nil
}

func (s *Server) handleUpdateCategory(ctx context.Context, input *UpdateCategoryInput) (*CategoryOutput, error) {
	category, err := s.services.Categories.Update(ctx, input.ID, input.Body)
	if err != nil {
		return nil, err
	}
	return &CategoryOutput{Body: category}, nil
}

func (s *Server) handleDeleteCategory(ctx context.Context, input *DeleteCategoryInput) (*EmptyOutput, error) {
	if err := s.services.Categories.Delete(ctx, input.ID); err != nil {
		return nil, err
	}
	return &EmptyOutput{}, nil
}
