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

// CategoryService orchestrates category operations. Deletion refusals for
// built-in and non-empty categories surface as distinct error codes.
type CategoryService struct {
	store     store.Store
	validator *validation.Validator
	logger    *slog.Logger
}

// NewCategoryService creates a new category service.
func NewCategoryService(store store.Store, validator *validation.Validator, logger *slog.Logger) *CategoryService {
	return &CategoryService{
		store:     store,
		validator: validator,
		logger:    logger,
	}
}

// List returns every category with live item counts.
func (s *CategoryService) List(ctx context.Context) ([]*domain.Category, error) {
	return s.store.ListCategories(ctx)
}

// Get returns a single category by id.
func (s *CategoryService) Get(ctx context.Context, id int64) (*domain.Category, error) {
	c, err := s.store.GetCategory(ctx, id)
	if err != nil {
		return nil, translateStoreError(err, "category")
	}
	return c, nil
}

// Create inserts a user category. Created categories are never system and
// fall back to the default icon and color when none are given.
func (s *CategoryService) Create(ctx context.Context, req CreateCategoryRequest) (*domain.Category, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.Validation("name must not be blank")
	}

	c := &domain.Category{
		Name:  name,
		Icon:  req.Icon,
		Color: req.Color,
	}
	if c.Icon == "" {
		c.Icon = domain.DefaultCategoryIcon
	}
	if c.Color == "" {
		c.Color = domain.DefaultCategoryColor
	}

	id, err := s.store.CreateCategory(ctx, c)
	if err != nil {
		return nil, translateStoreError(err, "category")
	}

	s.logger.Info("category created", "id", id, "name", c.Name)
	return s.Get(ctx, id)
}

// Update applies the provided fields and returns the refreshed category.
func (s *CategoryService) Update(ctx context.Context, id int64, req UpdateCategoryRequest) (*domain.Category, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	patch := store.CategoryPatch{
		Name:  req.Name,
		Icon:  req.Icon,
		Color: req.Color,
	}
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return nil, apperrors.Validation("name must not be blank")
		}
		patch.Name = &name
	}

	if err := s.store.UpdateCategory(ctx, id, patch); err != nil {
		return nil, translateStoreError(err, "category")
	}

	s.logger.Info("category updated", "id", id)
	return s.Get(ctx, id)
}

// Delete removes a category. Built-in categories and categories that still
// hold items are refused with reason-specific errors.
func (s *CategoryService) Delete(ctx context.Context, id int64) error {
	if err := s.store.DeleteCategory(ctx, id); err != nil {
		return translateStoreError(err, "category")
	}
	s.logger.Info("category deleted", "id", id)
	return nil
}
