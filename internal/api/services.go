package api

import (
	"github.com/mediatrackapp/mediatrack-server/internal/service"
)

// Services groups all business logic services used by the API server.
// This reduces the parameter count for NewServer and improves testability.
type Services struct {
	Media       *service.MediaService
	Categories  *service.CategoryService
	Tags        *service.TagService
	FieldValues *service.FieldValueService
	Stats       *service.StatsService
}
