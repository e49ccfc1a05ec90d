package config

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/status-im/market-data/cache"
)

type Config struct {
	MarketData MarketDataConfig `yaml:"market_data"`
	Cache      cache.Config     `yaml:"cache"`
	Storage    StorageConfig    `yaml:"storage"`
	HTTPClient HTTPClientConfig `yaml:"http_client"`
	Server     ServerConfig     `yaml:"server"`
}

type ServerConfig struct {
	Port string `yaml:"port"`
}

// Default returns the configuration used when no file is provided
func Default() *Config {
	return &Config{
		MarketData: DefaultMarketDataConfig(),
		Cache:      cache.DefaultCacheConfig(),
		Storage:    DefaultStorageConfig(),
		HTTPClient: DefaultHTTPClientConfig(),
		Server:     ServerConfig{Port: "8080"},
	}
}

// LoadConfig reads the YAML file at path on top of the defaults
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	config.applyEnv()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return config, nil
}

// LoadConfigOrDefault loads the config at path, falling back to defaults when the file is missing
func LoadConfigOrDefault(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		log.Printf("Config: %s not found, using defaults", path)
		config := Default()
		config.applyEnv()
		return config, nil
	}
	return LoadConfig(path)
}

// applyEnv overrides values from the environment
func (c *Config) applyEnv() {
	if port := os.Getenv("PORT"); port != "" {
		c.Server.Port = port
	}
	if dsn := os.Getenv("MARKET_DATA_STORAGE_DSN"); dsn != "" {
		c.Storage.DSN = dsn
	}
}

// Validate checks every section
func (c *Config) Validate() error {
	if err := c.MarketData.Validate(); err != nil {
		return fmt.Errorf("market_data: %w", err)
	}
	if err := c.Storage.Validate(); err != nil {
		return fmt.Errorf("storage: %w", err)
	}
	if err := c.HTTPClient.Validate(); err != nil {
		return fmt.Errorf("http_client: %w", err)
	}
	if c.Server.Port == "" {
		return fmt.Errorf("server: port cannot be empty")
	}
	return nil
}
