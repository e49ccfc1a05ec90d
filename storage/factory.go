package storage

import (
	"context"
	"fmt"
	"log"

	"github.com/status-im/market-data/config"
)

// Open constructs a Store based on the given configuration
func Open(ctx context.Context, cfg config.StorageConfig) (Store, error) {
	driver := cfg.Driver
	if driver == "" {
		driver = config.StorageDriverMemory
	}

	switch driver {
	case config.StorageDriverMemory:
		log.Printf("Storage: using in-memory backend")
		return NewMemoryStore(cfg.Namespace), nil

	case config.StorageDriverSQLite, config.StorageDriverPostgres:
		log.Printf("Storage: using gorm driver=%s", driver)
		st, err := NewGormStore(driver, cfg.DSN, cfg.Namespace)
		if err != nil {
			return nil, err
		}
		if err := st.Migrate(ctx); err != nil {
			st.Close()
			return nil, fmt.Errorf("storage migrate: %w", err)
		}
		return st, nil

	default:
		return nil, fmt.Errorf("%w %q", ErrUnsupportedDriver, driver)
	}
}
