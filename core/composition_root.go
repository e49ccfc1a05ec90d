package core

import (
	"context"
	"fmt"
	"log"

	"github.com/status-im/market-data/api"
	"github.com/status-im/market-data/cache"
	cg "github.com/status-im/market-data/coingecko_common"
	"github.com/status-im/market-data/coingecko_markets"
	"github.com/status-im/market-data/coingecko_prices"
	"github.com/status-im/market-data/coingecko_tokens"
	"github.com/status-im/market-data/config"
	"github.com/status-im/market-data/events"
	"github.com/status-im/market-data/fiat_rates"
	"github.com/status-im/market-data/market_data"
	"github.com/status-im/market-data/metrics"
	"github.com/status-im/market-data/query_cache"
	"github.com/status-im/market-data/storage"
)

// Components holds the wired market data stack
type Components struct {
	Cache      *cache.Service
	Store      storage.Store
	MarketData *market_data.Service
}

// NewComponents opens the store and wires fetchers, refresher and service.
// The caller owns Store and must close it.
func NewComponents(ctx context.Context, cfg *config.Config) (*Components, error) {
	store, err := storage.Open(ctx, cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}

	cacheService := cache.NewService(cfg.Cache)
	limiter := cg.LimiterFromConfig(cfg.HTTPClient)
	mdCfg := cfg.MarketData
	refreshDelay := mdCfg.GetRefreshDelay()

	newHTTPClient := func(service, logPrefix string) (*cg.HTTPClientWithRetries, *metrics.MetricsWriter) {
		mw := metrics.NewMetricsWriter(service)
		return cg.NewHTTPClientWithRetries(cg.RetryOptionsFromConfig(cfg.HTTPClient, logPrefix), mw, limiter), mw
	}

	catalogClient, catalogMetrics := newHTTPClient(metrics.ServiceCatalog, "CoinGecko")
	catalogFetcher := coingecko_tokens.NewClient(mdCfg.CoingeckoURL, catalogClient, mdCfg.SupportedPlatforms, catalogMetrics)

	fiatClient, fiatMetrics := newHTTPClient(metrics.ServiceFiatRates, "FiatRates")
	fiatFetcher := fiat_rates.NewClient(mdCfg.FiatRatesURL, fiatClient, fiatMetrics)

	marketsClient, marketsMetrics := newHTTPClient(metrics.ServiceMarkets, "CoinGecko")
	marketsFetcher := coingecko_markets.NewFetcher(
		mdCfg.CoingeckoURL,
		query_cache.NewFetcher(cacheService, marketsClient, marketsMetrics),
		refreshDelay,
		mdCfg.GetMarketsChunkSize(),
		mdCfg.GetDefaultCurrency(),
	)

	pricesClient, pricesMetrics := newHTTPClient(metrics.ServicePrices, "CoinGecko")
	priceFetcher := coingecko_prices.NewFetcher(
		mdCfg.CoingeckoURL,
		query_cache.NewFetcher(cacheService, pricesClient, pricesMetrics),
		refreshDelay,
	)

	subscriptions := events.NewSubscriptionManager()
	refresher := market_data.NewRefresher(
		store,
		catalogFetcher,
		fiatFetcher,
		refreshDelay,
		subscriptions,
		metrics.NewMetricsWriter(metrics.ServiceMarketData),
	)

	return &Components{
		Cache:      cacheService,
		Store:      store,
		MarketData: market_data.NewService(mdCfg, refresher, marketsFetcher, priceFetcher, subscriptions),
	}, nil
}

// Close releases the store
func (c *Components) Close() error {
	return c.Store.Close()
}

// Start implements Interface
func (c *Components) Start(ctx context.Context) error {
	return nil
}

// Stop implements Interface. The store is closed after every service registered later was stopped.
func (c *Components) Stop() {
	if err := c.Close(); err != nil {
		log.Printf("Storage: failed to close store: %v", err)
	}
}

// Setup creates and registers all services
func Setup(ctx context.Context, cfg *config.Config) (*Registry, error) {
	components, err := NewComponents(ctx, cfg)
	if err != nil {
		return nil, err
	}

	registry := NewRegistry()

	// Registered first so it is stopped last
	registry.Register(components)
	registry.Register(components.Cache)
	registry.Register(components.MarketData)

	reporter := NewRefreshReporter(components.MarketData)
	registry.Register(reporter)

	server := api.New(cfg.Server.Port, components.MarketData, components.Cache)
	server.SetRefreshStatus(reporter)
	registry.Register(server)

	return registry, nil
}
