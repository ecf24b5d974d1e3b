package cli

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/terraincognita07/cyclezen/internal/config"
	"github.com/terraincognita07/cyclezen/internal/db"
	"go.uber.org/zap"
)

// OpenRecordStore opens the configured backend. The returned close function is
// never nil.
func OpenRecordStore(cfg *config.Config, logger *zap.Logger, registerer prometheus.Registerer) (*db.Store, func() error, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	kv, closeFn, err := db.OpenKeyValueStore(cfg.Storage.Backend, cfg.Storage.Path, logger)
	if err != nil {
		return nil, closeFn, fmt.Errorf("open %s store: %w", cfg.Storage.Backend, err)
	}

	options := []db.StoreOption{db.WithLogger(logger.Named("store"))}
	if registerer != nil {
		options = append(options, db.WithMetrics(db.NewStoreMetrics(registerer)))
	}
	return db.NewStore(kv, options...), closeFn, nil
}
