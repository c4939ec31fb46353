package bootstrap

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/AleRxjs/TianguiStore-Tienda-en--Linea/config"
	"github.com/AleRxjs/TianguiStore-Tienda-en--Linea/storage"
)

// InitMySQL builds the MySQL handle. The driver opens lazily, so this
// never blocks on the network; reachability is proven later by the
// startup health check.
func InitMySQL(cfg *config.Config, sugar *zap.SugaredLogger) (*storage.MySQL, error) {
	store, err := storage.NewMySQL(cfg, sugar)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize data store: %w", err)
	}

	sugar.Infow("Data store configured",
		"addr", store.Addr(),
		"database", cfg.Database.Name)

	return store, nil
}
