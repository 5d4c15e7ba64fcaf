package providers

import (
	"github.com/samber/do/v2"

	"github.com/mediatrackapp/mediatrack-server/internal/logger"
	"github.com/mediatrackapp/mediatrack-server/internal/service"
	"github.com/mediatrackapp/mediatrack-server/internal/validation"
)

// ProvideValidator provides the request body validator.
func ProvideValidator(i do.Injector) (*validation.Validator, error) {
	return validation.New(), nil
}

// ProvideMediaService provides the media item service.
func ProvideMediaService(i do.Injector) (*service.MediaService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	v := do.MustInvoke[*validation.Validator](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewMediaService(storeHandle.Store, v, log.Logger), nil
}

// ProvideCategoryService provides the category service.
func ProvideCategoryService(i do.Injector) (*service.CategoryService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	v := do.MustInvoke[*validation.Validator](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewCategoryService(storeHandle.Store, v, log.Logger), nil
}

// ProvideTagService provides the tag service.
func ProvideTagService(i do.Injector) (*service.TagService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	v := do.MustInvoke[*validation.Validator](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewTagService(storeHandle.Store, v, log.Logger), nil
}

// ProvideFieldValueService provides the pick-list value service.
func ProvideFieldValueService(i do.Injector) (*service.FieldValueService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	v := do.MustInvoke[*validation.Validator](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewFieldValueService(storeHandle.Store, v, log.Logger), nil
}

// ProvideStatsService provides the collection stats service.
func ProvideStatsService(i do.Injector) (*service.StatsService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewStatsService(storeHandle.Store, log.Logger), nil
}
