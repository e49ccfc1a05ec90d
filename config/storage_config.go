package config

import "fmt"

const (
	StorageDriverMemory   = "memory"
	StorageDriverSQLite   = "sqlite"
	StorageDriverPostgres = "postgres"
)

// StorageConfig controls how the persistent key-value store is opened
type StorageConfig struct {
	Driver string `yaml:"driver"`
	DSN    string `yaml:"dsn"`
	// Namespace prefixes every key so several instances can share one database
	Namespace string `yaml:"namespace"`
}

func DefaultStorageConfig() StorageConfig {
	return StorageConfig{
		Driver:    StorageDriverMemory,
		Namespace: "marketData",
	}
}

func (c *StorageConfig) Validate() error {
	switch c.Driver {
	case "", StorageDriverMemory:
		return nil
	case StorageDriverSQLite, StorageDriverPostgres:
		if c.DSN == "" {
			return fmt.Errorf("dsn is required for driver %q", c.Driver)
		}
		return nil
	default:
		return fmt.Errorf("unsupported driver %q", c.Driver)
	}
}
