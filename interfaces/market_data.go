package interfaces

import (
	"context"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -destination=mocks/market_data.go . CatalogFetcher,FiatRatesFetcher,MarketsFetcher,PriceFetcher,MarketDataService

// CatalogFetcher retrieves the full token catalog from the provider
type CatalogFetcher interface {
	// FetchCatalog returns every catalog entry with its platform mappings
	FetchCatalog(ctx context.Context) ([]CatalogEntry, error)
}

// FiatRatesFetcher retrieves the full fiat exchange rate list
type FiatRatesFetcher interface {
	FetchFiatRates(ctx context.Context) ([]FiatRate, error)
}

// MarketsFetcher retrieves market snapshots for a batch of catalog IDs
type MarketsFetcher interface {
	// FetchMarkets returns one snapshot per requested id in the same order.
	// Missing ids are returned as nil.
	FetchMarkets(ctx context.Context, ids []string, currency string) ([]*MarketSnapshot, error)
}

// PriceFetcher retrieves the price of a single catalog ID
type PriceFetcher interface {
	// FetchPrice returns nil if the id or the currency is absent from the response
	FetchPrice(ctx context.Context, id string, currency string) (*decimal.Decimal, error)
}

// MarketDataService is the set of operations exposed to the rest of the wallet
type MarketDataService interface {
	// GetTokenValue returns balance × price × fiat rate with two decimals, or "0"
	GetTokenValue(ctx context.Context, balance, id, fiatSymbol string) string

	// GetTokenPrice returns the price of id in currency, nil if unknown
	GetTokenPrice(ctx context.Context, id, currency string) (*decimal.Decimal, error)

	// GetMarketInfoByContracts maps each contract address on network to its market snapshot
	GetMarketInfoByContracts(ctx context.Context, contracts []string, network string) (map[string]*MarketSnapshot, error)

	// GetMarketData returns market snapshots in the order of ids
	GetMarketData(ctx context.Context, ids []string) ([]*MarketSnapshot, error)

	// GetFiatValue returns the fiat rate for symbol, nil if unknown
	GetFiatValue(ctx context.Context, symbol string) (*FiatRate, error)

	// SetMarketInfo refreshes catalog and fiat tables if they are stale
	SetMarketInfo(ctx context.Context) error
}
