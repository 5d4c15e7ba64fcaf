package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/mediatrackapp/mediatrack-server/internal/domain"
	apperrors "github.com/mediatrackapp/mediatrack-server/internal/errors"
	"github.com/mediatrackapp/mediatrack-server/internal/store"
	"github.com/mediatrackapp/mediatrack-server/internal/validation"
)

// FieldValueService orchestrates pick-list value operations.
type FieldValueService struct {
	store     store.Store
	validator *validation.Validator
	logger    *slog.Logger
}

// NewFieldValueService creates a new field value service.
func NewFieldValueService(store store.Store, validator *validation.Validator, logger *slog.Logger) *FieldValueService {
	return &FieldValueService{
		store:     store,
		validator: validator,
		logger:    logger,
	}
}

// List returns pick-list values matching the filter.
func (s *FieldValueService) List(ctx context.Context, filter store.FieldValueFilter) ([]*domain.FieldValue, error) {
	return s.store.ListFieldValues(ctx, filter)
}

// Create inserts a pick-list value, enforcing triple uniqueness via the store.
func (s *FieldValueService) Create(ctx context.Context, req CreateFieldValueRequest) (*domain.FieldValue, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}
	value := strings.TrimSpace(req.Value)
	if value == "" {
		return nil, apperrors.Validation("value must not be blank")
	}

	fv := &domain.FieldValue{
		FieldType:  strings.TrimSpace(req.FieldType),
		CategoryID: req.CategoryID,
		Value:      value,
		SortOrder:  req.SortOrder,
	}

	id, err := s.store.CreateFieldValue(ctx, fv)
	if err != nil {
		return nil, translateStoreError(err, "field value")
	}

	s.logger.Info("field value created", "id", id, "field_type", fv.FieldType, "value", fv.Value)
	fv.ID = id
	return fv, nil
}

// Update applies value and sort_order changes, returning the refreshed row.
func (s *FieldValueService) Update(ctx context.Context, id int64, req UpdateFieldValueRequest) (*domain.FieldValue, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	patch := store.FieldValuePatch{Value: req.Value, SortOrder: req.SortOrder}
	if patch.Value != nil {
		value := strings.TrimSpace(*patch.Value)
		if value == "" {
			return nil, apperrors.Validation("value must not be blank")
		}
		patch.Value = &value
	}

	if err := s.store.UpdateFieldValue(ctx, id, patch); err != nil {
		return nil, translateStoreError(err, "field value")
	}

	fv, err := s.store.GetFieldValue(ctx, id)
	if err != nil {
		return nil, translateStoreError(err, "field value")
	}
	s.logger.Info("field value updated", "id", id)
	return fv, nil
}

// Delete removes a pick-list value. Items that copied it keep their text.
func (s *FieldValueService) Delete(ctx context.Context, id int64) error {
	if err := s.store.DeleteFieldValue(ctx, id); err != nil {
		return translateStoreError(err, "field value")
	}
	s.logger.Info("field value deleted", "id", id)
	return nil
}
