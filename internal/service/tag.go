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

// TagService orchestrates tag operations. Tags have no protected flag;
// deleting one silently detaches it from every media item.
type TagService struct {
	store     store.Store
	validator *validation.Validator
	logger    *slog.Logger
}

// NewTagService creates a new tag service.
func NewTagService(store store.Store, validator *validation.Validator, logger *slog.Logger) *TagService {
	return &TagService{
		store:     store,
		validator: validator,
		logger:    logger,
	}
}

// List returns every tag with live usage counts.
func (s *TagService) List(ctx context.Context) ([]*domain.Tag, error) {
	return s.store.ListTags(ctx)
}

// Get returns a single tag by id.
func (s *TagService) Get(ctx context.Context, id int64) (*domain.Tag, error) {
	t, err := s.store.GetTag(ctx, id)
	if err != nil {
		return nil, translateStoreError(err, "tag")
	}
	return t, nil
}

// Create inserts a tag, defaulting the color when none is given.
func (s *TagService) Create(ctx context.Context, req CreateTagRequest) (*domain.Tag, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.Validation("name must not be blank")
	}

	t := &domain.Tag{Name: name, Color: req.Color}
	if t.Color == "" {
		t.Color = domain.DefaultTagColor
	}

	id, err := s.store.CreateTag(ctx, t)
	if err != nil {
		return nil, translateStoreError(err, "tag")
	}

	s.logger.Info("tag created", "id", id, "name", t.Name)
	return s.Get(ctx, id)
}

// Update applies the provided fields and returns the refreshed tag.
func (s *TagService) Update(ctx context.Context, id int64, req UpdateTagRequest) (*domain.Tag, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	patch := store.TagPatch{Name: req.Name, Color: req.Color}
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return nil, apperrors.Validation("name must not be blank")
		}
		patch.Name = &name
	}

	if err := s.store.UpdateTag(ctx, id, patch); err != nil {
		return nil, translateStoreError(err, "tag")
	}

	s.logger.Info("tag updated", "id", id)
	return s.Get(ctx, id)
}

// Delete removes a tag and its media associations.
func (s *TagService) Delete(ctx context.Context, id int64) error {
	if err := s.store.DeleteTag(ctx, id); err != nil {
		return translateStoreError(err, "tag")
	}
	s.logger.Info("tag deleted", "id", id)
	return nil
}
