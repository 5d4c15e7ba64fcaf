package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/mediatrackapp/mediatrack-server/internal/domain"
	"github.com/mediatrackapp/mediatrack-server/internal/service"
	"github.com/mediatrackapp/mediatrack-server/internal/store"
)

func (s *Server) registerFieldValueRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listFieldValues",
		Method:      http.MethodGet,
		Path:        "/api/field-values",
		Summary:     "List field values",
		Description: "Returns pick-list values, optionally filtered by field type and category scope",
		Tags:        []string{"Field Values"},
	}, s.handleListFieldValues)

	huma.Register(s.api, huma.Operation{
		OperationID:   "createFieldValue",
		Method:        http.MethodPost,
		Path:          "/api/field-values",
		Summary:       "Create field value",
		Description:   "Creates a new pick-list value",
		Tags:          []string{"Field Values"},
		DefaultStatus: http.StatusCreated,
	}, s.handleCreateFieldValue)

	huma.Register(s.api, huma.Operation{
		OperationID: "updateFieldValue",
		Method:      http.MethodPut,
		Path:        "/api/field-values/{id}",
		Summary:     "Update field value",
		Description: "Updates a pick-list value's text or sort order",
		Tags:        []string{"Field Values"},
	}, s.handleUpdateFieldValue)

	huma.Register(s.api, huma.Operation{
		OperationID:   "deleteFieldValue",
		Method:        http.MethodDelete,
		Path:          "/api/field-values/{id}",
		Summary:       "Delete field value",
		Description:   "Deletes a pick-list value",
		Tags:          []string{"Field Values"},
		DefaultStatus: http.StatusNoContent,
	}, s.handleDeleteFieldValue)
}

// === DTOs ===

// ListFieldValuesInput contains filter query parameters.
// Scoped narrows the category match to exactly category_id; a scoped
// request without category_id selects the global scope.
type ListFieldValuesInput struct {
	FieldType  string `query:"field_type" doc:"Filter by field type"`
	CategoryID int64  `query:"category_id" doc:"Category scope to match when scoped is true"`
	Scoped     bool   `query:"scoped" doc:"Match the category scope exactly"`
}

// FieldValueListOutput wraps the field value list for Huma.
type FieldValueListOutput struct {
	Body []*domain.FieldValue
}

// FieldValueOutput wraps a single field value for Huma.
type FieldValueOutput struct {
	Body *domain.FieldValue
}

// CreateFieldValueInput wraps the create request for Huma.
type CreateFieldValueInput struct {
	Body service.CreateFieldValueRequest
}

// UpdateFieldValueInput wraps the update request for Huma.
type UpdateFieldValueInput struct {
	ID   int64 `path:"id" doc:"Field value ID"`
	Body service.UpdateFieldValueRequest
}

// DeleteFieldValueInput contains parameters for deleting a field value.
type DeleteFieldValueInput struct {
	ID int64 `path:"id" doc:"Field value ID"`
}

// === Handlers ===

func (s *Server) handleListFieldValues(ctx context.Context, input *ListFieldValuesInput) (*FieldValueListOutput, error) {
	filter := store.FieldValueFilter{
		FieldType: input.FieldType,
		Scoped:    input.Scoped,
	}
	if input.Scoped && input.CategoryID != 0 {
		filter.CategoryID = &input.CategoryID
	}

	values, err := s.services.FieldValues.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &FieldValueListOutput{Body: values}, nil
}

func (s *Server) handleCreateFieldValue(ctx context.Context, input *CreateFieldValueInput) (*FieldValueOutput, error) {
	fv, err := s.services.FieldValues.Create(ctx, input.Body)
	if err != nil {
		return nil, err
	}
	return &FieldValueOutput{Body: fv}, nil
}

func (s *Server) handleUpdateFieldValue(ctx context.Context, input *UpdateFieldValueInput) (*FieldValueOutput, error) {
	fv, err := s.services.FieldValues.Update(ctx, input.ID, input.Body)
	if err != nil {
		return nil, err
	}
	return &FieldValueOutput{Body: fv}, nil
}

func (s *Server) handleDeleteFieldValue(ctx context.Context, input *DeleteFieldValueInput) (*EmptyOutput, error) {
	if err := s.services.FieldValues.Delete(ctx, input.ID); err != nil {
		return nil, err
	}
	return &EmptyOutput{}, nil
}
