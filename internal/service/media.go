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

// MediaService orchestrates media item operations: request validation,
// status and rating domain checks, and store error translation.
type MediaService struct {
	store     store.Store
	validator *validation.Validator
	logger    *slog.Logger
}

// NewMediaService creates a new media service.
func NewMediaService(store store.Store, validator *validation.Validator, logger *slog.Logger) *MediaService {
	return &MediaService{
		store:     store,
		validator: validator,
		logger:    logger,
	}
}

// List returns one page of media items plus the unpaginated total.
func (s *MediaService) List(ctx context.Context, params store.ListMediaParams) (*store.MediaPage, error) {
	if params.Status != "" && !validStatus(params.Status) {
		return nil, apperrors.Validationf("invalid status %q", params.Status)
	}
	return s.store.ListMedia(ctx, params)
}

// Get returns a single media item by id.
func (s *MediaService) Get(ctx context.Context, id int64) (*domain.MediaItem, error) {
	item, err := s.store.GetMediaItem(ctx, id)
	if err != nil {
		return nil, translateStoreError(err, "media item")
	}
	return item, nil
}

// Create validates and inserts a new media item, returning it fully
// hydrated (category fields and tags joined in).
func (s *MediaService) Create(ctx context.Context, req CreateMediaRequest) (*domain.MediaItem, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Title) == "" {
		return nil, apperrors.Validation("title must not be blank")
	}
	if req.Rating != nil && !domain.ValidRating(*req.Rating) {
		return nil, apperrors.Validationf("invalid rating %q", *req.Rating)
	}

	status := domain.StatusWishlist
	if req.Status != "" {
		status = domain.Status(req.Status)
	}

	item := &domain.MediaItem{
		Title:         strings.TrimSpace(req.Title),
		CategoryID:    req.CategoryID,
		Status:        status,
		Rating:        req.Rating,
		Notes:         req.Notes,
		CoverImageURL: req.CoverImageURL,
		DateStarted:   req.DateStarted,
		DateFinished:  req.DateFinished,
		Metadata:      req.Metadata,
	}

	id, err := s.store.CreateMediaItem(ctx, item, req.TagIDs)
	if err != nil {
		return nil, translateStoreError(err, "media item")
	}

	s.logger.Info("media item created", "id", id, "title", item.Title, "category_id", item.CategoryID)
	return s.Get(ctx, id)
}

// Update applies a partial update and returns the refreshed item.
// Absent fields are untouched; null clears nullable fields; null on title,
// category_id, or status is rejected.
func (s *MediaService) Update(ctx context.Context, id int64, req UpdateMediaRequest) (*domain.MediaItem, error) {
	patch, err := buildMediaPatch(req)
	if err != nil {
		return nil, err
	}

	if err := s.store.UpdateMediaItem(ctx, id, patch); err != nil {
		return nil, translateStoreError(err, "media item")
	}

	s.logger.Info("media item updated", "id", id)
	return s.Get(ctx, id)
}

// Delete removes a media item and its tag associations.
func (s *MediaService) Delete(ctx context.Context, id int64) error {
	if err := s.store.DeleteMediaItem(ctx, id); err != nil {
		return translateStoreError(err, "media item")
	}
	s.logger.Info("media item deleted", "id", id)
	return nil
}

// SetTags replaces the item's full tag set and returns the refreshed item.
func (s *MediaService) SetTags(ctx context.Context, id int64, tagIDs []int64) (*domain.MediaItem, error) {
	if tagIDs == nil {
		tagIDs = []int64{}
	}
	if err := s.store.SetMediaTags(ctx, id, tagIDs); err != nil {
		return nil, translateStoreError(err, "media item")
	}
	s.logger.Info("media item tags replaced", "id", id, "tag_count", len(tagIDs))
	return s.Get(ctx, id)
}

// buildMediaPatch converts the tri-state request into a store patch,
// rejecting nulls on required fields and out-of-domain values.
func buildMediaPatch(req UpdateMediaRequest) (store.MediaItemPatch, error) {
	var patch store.MediaItemPatch

	if req.Title.Set {
		if req.Title.Value == nil || strings.TrimSpace(*req.Title.Value) == "" {
			return patch, apperrors.Validation("title must not be blank")
		}
		title := strings.TrimSpace(*req.Title.Value)
		patch.Title = &title
	}
	if req.CategoryID.Set {
		if req.CategoryID.Value == nil {
			return patch, apperrors.Validation("category_id must not be null")
		}
		patch.CategoryID = req.CategoryID.Value
	}
	if req.Status.Set {
		if req.Status.Value == nil || !validStatus(*req.Status.Value) {
			return patch, apperrors.Validationf("invalid status %q", req.Status.Get())
		}
		status := domain.Status(*req.Status.Value)
		patch.Status = &status
	}
	if req.Rating.Set {
		if req.Rating.Value != nil && !domain.ValidRating(*req.Rating.Value) {
			return patch, apperrors.Validationf("invalid rating %q", *req.Rating.Value)
		}
		patch.Rating = store.OptString{Set: true, Value: req.Rating.Value}
	}
	if req.Notes.Set {
		patch.Notes = store.OptString{Set: true, Value: req.Notes.Value}
	}
	if req.CoverImageURL.Set {
		patch.CoverImageURL = store.OptString{Set: true, Value: req.CoverImageURL.Value}
	}
	if req.DateStarted.Set {
		patch.DateStarted = store.OptString{Set: true, Value: req.DateStarted.Value}
	}
	if req.DateFinished.Set {
		patch.DateFinished = store.OptString{Set: true, Value: req.DateFinished.Value}
	}
	if req.Metadata.Set {
		metadata := req.Metadata.Get()
		if metadata == nil {
			metadata = domain.Metadata{}
		}
		patch.Metadata = &metadata
	}
	if req.TagIDs.Set {
		tagIDs := req.TagIDs.Get()
		if tagIDs == nil {
			tagIDs = []int64{}
		}
		patch.TagIDs = &tagIDs
	}

	return patch, nil
}

func validStatus(s string) bool {
	for _, status := range domain.Statuses {
		if string(status) == s {
			return true
		}
	}
	return false
}
