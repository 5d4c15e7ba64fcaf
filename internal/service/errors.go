package service

import (
	"errors"

	apperrors "github.com/mediatrackapp/mediatrack-server/internal/errors"
	"github.com/mediatrackapp/mediatrack-server/internal/store"
)

// translateStoreError maps store-level errors onto domain error codes.
// entity names the resource for not-found and conflict messages.
func translateStoreError(err error, entity string) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, store.ErrNotFound):
		return apperrors.NotFoundf("%s not found", entity)
	case errors.Is(err, store.ErrSystemCategory):
		return apperrors.SystemCategory("cannot delete built-in category")
	case errors.Is(err, store.ErrCategoryHasItems):
		return apperrors.CategoryHasItems("category still has media items")
	case errors.Is(err, store.ErrAlreadyExists):
		return apperrors.Conflictf("%s already exists", entity)
	}

	// Remaining 4xx store errors (bad references and the like) carry their
	// own message; everything else is internal.
	var storeErr *store.Error
	if errors.As(err, &storeErr) && storeErr.Code < 500 {
		return apperrors.Validation(storeErr.Message)
	}
	return apperrors.Wrap(err, apperrors.CodeInternal, "storage failure")
}
