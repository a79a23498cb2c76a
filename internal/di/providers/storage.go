package providers

import (
	"github.com/samber/do/v2"

	"github.com/bookclubapp/bookclub-client/internal/config"
	"github.com/bookclubapp/bookclub-client/internal/logger"
	"github.com/bookclubapp/bookclub-client/internal/store"
)

// StoreHandle wraps the local store with shutdown capability.
type StoreHandle struct {
	*store.Store
}

// Shutdown implements do.Shutdownable.
func (h *StoreHandle) Shutdown() error {
	return h.Close()
}

// ProvideStore provides the durable local store.
func ProvideStore(i do.Injector) (*StoreHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	st, err := store.New(cfg.Data.BasePath, log.Logger)
	if err != nil {
		return nil, err
	}

	log.Info("Local store opened", "path", cfg.Data.BasePath)
	return &StoreHandle{Store: st}, nil
}
