package interfaces

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// CatalogEntry represents a coin from the provider's catalog with its id, symbol, name
// and contract addresses per network
type CatalogEntry struct {
	ID        string            `json:"id"`
	Symbol    string            `json:"symbol"`
	Name      string            `json:"name"`
	Platforms map[string]string `json:"platforms"`
}

// Catalog maps CatalogEntry.ID to the entry. It is always read and written as a whole.
type Catalog map[string]CatalogEntry

// FiatRate is the exchange rate of a fiat currency relative to the base currency
type FiatRate struct {
	FiatCurrency string          `json:"fiat_currency"`
	ExchangeRate decimal.Decimal `json:"exchange_rate"`
}

// FiatTable maps FiatRate.FiatCurrency to the rate. It is always read and written as a whole.
type FiatTable map[string]FiatRate

// RefreshTimestamp marks the last successful catalog and fiat refresh
type RefreshTimestamp struct {
	// Timestamp in milliseconds since epoch
	Timestamp int64 `json:"timestamp"`
}

// SparklineData holds the 7d price sparkline returned with markets
type SparklineData struct {
	Price []decimal.Decimal `json:"price"`
}

// MarketSnapshot represents one entry of the coins/markets response.
// Only CurrentPrice is interpreted, the rest is passed through.
// A null current_price decodes to an invalid CurrentPrice.
type MarketSnapshot struct {
	ID                                string              `json:"id"`
	Symbol                            string              `json:"symbol"`
	Name                              string              `json:"name"`
	Image                             string              `json:"image,omitempty"`
	CurrentPrice                      decimal.NullDecimal `json:"current_price"`
	MarketCap                         decimal.NullDecimal `json:"market_cap"`
	MarketCapRank                     *int                `json:"market_cap_rank"`
	FullyDilutedValuation             decimal.NullDecimal `json:"fully_diluted_valuation"`
	TotalVolume                       decimal.NullDecimal `json:"total_volume"`
	High24h                           decimal.NullDecimal `json:"high_24h"`
	Low24h                            decimal.NullDecimal `json:"low_24h"`
	PriceChange24h                    decimal.NullDecimal `json:"price_change_24h"`
	PriceChangePercentage24h          decimal.NullDecimal `json:"price_change_percentage_24h"`
	MarketCapChange24h                decimal.NullDecimal `json:"market_cap_change_24h"`
	MarketCapChangePercentage24h      decimal.NullDecimal `json:"market_cap_change_percentage_24h"`
	CirculatingSupply                 decimal.NullDecimal `json:"circulating_supply"`
	TotalSupply                       decimal.NullDecimal `json:"total_supply"`
	MaxSupply                         decimal.NullDecimal `json:"max_supply"`
	ATH                               decimal.NullDecimal `json:"ath"`
	ATHChangePercentage               decimal.NullDecimal `json:"ath_change_percentage"`
	ATHDate                           string              `json:"ath_date,omitempty"`
	ATL                               decimal.NullDecimal `json:"atl"`
	ATLChangePercentage               decimal.NullDecimal `json:"atl_change_percentage"`
	ATLDate                           string              `json:"atl_date,omitempty"`
	ROI                               json.RawMessage     `json:"roi,omitempty"`
	LastUpdated                       string              `json:"last_updated,omitempty"`
	SparklineIn7d                     *SparklineData      `json:"sparkline_in_7d,omitempty"`
	PriceChangePercentage7dInCurrency decimal.NullDecimal `json:"price_change_percentage_7d_in_currency"`
}
