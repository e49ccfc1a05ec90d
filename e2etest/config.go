package e2etest

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/status-im/market-data/config"
)

// createTestConfig writes a config pointing every provider at mockURL and returns its path
func createTestConfig(dir, mockURL, dsn string) (string, error) {
	configContent := fmt.Sprintf(`
market_data:
  coingecko_url: %s
  fiat_rates_url: %s%s
  refresh_delay: 5m
  default_currency: usd

cache:
  go_cache:
    enabled: true
    default_expiration: 5m
    cleanup_interval: 10m

storage:
  driver: sqlite
  dsn: %s
  namespace: e2e

http_client:
  max_retries: 1
  base_backoff: 10ms
  connection_timeout: 1s
  request_timeout: 5s
`, mockURL, mockURL, FiatRatesPath, dsn)

	configPath := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		return "", err
	}
	return configPath, nil
}

// loadTestConfig creates the config file and loads it the way main does
func loadTestConfig(dir, mockURL, dsn, port string) (*config.Config, error) {
	configPath, err := createTestConfig(dir, mockURL, dsn)
	if err != nil {
		return nil, err
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	cfg.Server.Port = port
	return cfg, nil
}
