package providers

import (
	"context"
	"net/http"

	"github.com/samber/do/v2"

	"github.com/mediatrackapp/mediatrack-server/internal/api"
	"github.com/mediatrackapp/mediatrack-server/internal/config"
	"github.com/mediatrackapp/mediatrack-server/internal/logger"
	"github.com/mediatrackapp/mediatrack-server/internal/media/covers"
	"github.com/mediatrackapp/mediatrack-server/internal/service"
)

// HTTPServerHandle wraps http.Server with Shutdownable.
type HTTPServerHandle struct {
	*http.Server
}

// Shutdown implements do.Shutdownable.
func (h *HTTPServerHandle) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return h.Server.Shutdown(ctx)
}

// ProvideHTTPServer provides the HTTP server and starts it in the background.
func ProvideHTTPServer(i do.Injector) (*HTTPServerHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	storeHandle := do.MustInvoke[*StoreHandle](i)
	coverStorage := do.MustInvoke[*covers.Storage](i)
	log := do.MustInvoke[*logger.Logger](i)

	services := &api.Services{
		Media:       do.MustInvoke[*service.MediaService](i),
		Categories:  do.MustInvoke[*service.CategoryService](i),
		Tags:        do.MustInvoke[*service.TagService](i),
		FieldValues: do.MustInvoke[*service.FieldValueService](i),
		Stats:       do.MustInvoke[*service.StatsService](i),
	}

	handler := api.NewServer(cfg, storeHandle.Store, services, coverStorage, log.Logger)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info("HTTP server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error", "error", err)
		}
	}()

	log.Info("Server running", "addr", srv.Addr)

	return &HTTPServerHandle{Server: srv}, nil
}
