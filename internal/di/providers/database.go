package providers

import (
	"github.com/samber/do/v2"

	"github.com/mediatrackapp/mediatrack-server/internal/config"
	"github.com/mediatrackapp/mediatrack-server/internal/logger"
	"github.com/mediatrackapp/mediatrack-server/internal/store/sqlite"
)

// StoreHandle wraps the store with shutdown capability.
type StoreHandle struct {
	*sqlite.Store
}

// Shutdown implements do.Shutdownable.
func (h *StoreHandle) Shutdown() error {
	return h.Close()
}

// ProvideStore provides the SQLite-backed store. Opening runs the schema
// and seeds the built-in categories and pick-list values on first start.
func ProvideStore(i do.Injector) (*StoreHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	db, err := sqlite.Open(cfg.DatabasePath(), log.Logger)
	if err != nil {
		return nil, err
	}

	log.Info("Database initialized", "path", cfg.DatabasePath())

	return &StoreHandle{Store: db}, nil
}
