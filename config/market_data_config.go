package config

import (
	"fmt"
	"time"
)

const (
	// DefaultCoingeckoURL is the CoinGecko-compatible proxy used for catalog, markets and prices
	DefaultCoingeckoURL = "https://partners.mewapi.io/coingecko"
	// DefaultFiatRatesURL returns the full fiat exchange rate list
	DefaultFiatRatesURL = "https://mainnet.mewwallet.dev/v2/prices/exchange-rates"
	// DefaultRefreshDelay is how long catalog, fiat table and market batches stay valid
	DefaultRefreshDelay = 5 * time.Minute
	// DefaultMarketsChunkSize is CoinGecko's max per_page value
	DefaultMarketsChunkSize = 250
)

type MarketDataConfig struct {
	CoingeckoURL              string        `yaml:"coingecko_url"`
	FiatRatesURL              string        `yaml:"fiat_rates_url"`
	RefreshDelay              time.Duration `yaml:"refresh_delay"`
	DefaultCurrency           string        `yaml:"default_currency"`
	BackgroundRefreshInterval time.Duration `yaml:"background_refresh_interval"` // 0 disables background refresh
	SupportedPlatforms        []string      `yaml:"supported_platforms"`         // Empty keeps every platform
	MarketsChunkSize          int           `yaml:"markets_chunk_size"`
}

func DefaultMarketDataConfig() MarketDataConfig {
	return MarketDataConfig{
		CoingeckoURL:     DefaultCoingeckoURL,
		FiatRatesURL:     DefaultFiatRatesURL,
		RefreshDelay:     DefaultRefreshDelay,
		DefaultCurrency:  "usd",
		MarketsChunkSize: DefaultMarketsChunkSize,
	}
}

// GetRefreshDelay returns the configured delay or the default one
func (c *MarketDataConfig) GetRefreshDelay() time.Duration {
	if c.RefreshDelay > 0 {
		return c.RefreshDelay
	}
	return DefaultRefreshDelay
}

// GetDefaultCurrency returns the quote currency used when none is given
func (c *MarketDataConfig) GetDefaultCurrency() string {
	if c.DefaultCurrency != "" {
		return c.DefaultCurrency
	}
	return "usd"
}

// GetMarketsChunkSize returns the max number of ids per markets request
func (c *MarketDataConfig) GetMarketsChunkSize() int {
	if c.MarketsChunkSize > 0 {
		return c.MarketsChunkSize
	}
	return DefaultMarketsChunkSize
}

func (c *MarketDataConfig) Validate() error {
	if c.CoingeckoURL == "" {
		return fmt.Errorf("coingecko_url cannot be empty")
	}
	if c.FiatRatesURL == "" {
		return fmt.Errorf("fiat_rates_url cannot be empty")
	}
	if c.RefreshDelay < 0 {
		return fmt.Errorf("refresh_delay must not be negative, got %v", c.RefreshDelay)
	}
	if c.BackgroundRefreshInterval < 0 {
		return fmt.Errorf("background_refresh_interval must not be negative, got %v", c.BackgroundRefreshInterval)
	}
	if c.MarketsChunkSize > DefaultMarketsChunkSize {
		return fmt.Errorf("markets_chunk_size must be <= %d, got %d", DefaultMarketsChunkSize, c.MarketsChunkSize)
	}
	return nil
}
