// Package di provides dependency injection configuration for the MediaTrack server.
package di

import (
	"github.com/samber/do/v2"

	"github.com/mediatrackapp/mediatrack-server/internal/config"
	"github.com/mediatrackapp/mediatrack-server/internal/di/providers"
	"github.com/mediatrackapp/mediatrack-server/internal/logger"
	"github.com/mediatrackapp/mediatrack-server/internal/media/covers"
	"github.com/mediatrackapp/mediatrack-server/internal/service"
	"github.com/mediatrackapp/mediatrack-server/internal/validation"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer() *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)
	do.Provide(injector, providers.ProvideValidator)

	// Database layer
	do.Provide(injector, providers.ProvideStore)

	// Storage layer
	do.Provide(injector, providers.ProvideCoverStorage)

	// Business services
	do.Provide(injector, providers.ProvideMediaService)
	do.Provide(injector, providers.ProvideCategoryService)
	do.Provide(injector, providers.ProvideTagService)
	do.Provide(injector, providers.ProvideFieldValueService)
	do.Provide(injector, providers.ProvideStatsService)

	// Server
	do.Provide(injector, providers.ProvideHTTPServer)

	return injector
}

// Bootstrap initializes all services and returns handles for lifecycle management.
// This triggers lazy initialization of all core services.
func Bootstrap(injector *do.RootScope) error {
	_ = do.MustInvoke[*config.Config](injector)
	_ = do.MustInvoke[*logger.Logger](injector)
	_ = do.MustInvoke[*validation.Validator](injector)
	_ = do.MustInvoke[*providers.StoreHandle](injector)
	_ = do.MustInvoke[*covers.Storage](injector)

	// Business services
	_ = do.MustInvoke[*service.MediaService](injector)
	_ = do.MustInvoke[*service.CategoryService](injector)
	_ = do.MustInvoke[*service.TagService](injector)
	_ = do.MustInvoke[*service.FieldValueService](injector)
	_ = do.MustInvoke[*service.StatsService](injector)

	// Server
	_ = do.MustInvoke[*providers.HTTPServerHandle](injector)

	return nil
}
