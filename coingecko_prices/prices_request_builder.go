package coingecko_prices

import (
	"strconv"
	"strings"

	cg "github.com/status-im/market-data/coingecko_common"
)

const (
	// Complete path for simple price API endpoint
	PRICES_API_PATH = "/api/v3/simple/price"
)

// PricesRequestBuilder builds simple/price requests
type PricesRequestBuilder struct {
	*cg.CoingeckoRequestBuilder
}

// NewPricesRequestBuilder creates a request builder for the simple price endpoint.
// Every include_* flag starts explicitly disabled.
func NewPricesRequestBuilder(baseURL string) *PricesRequestBuilder {
	rb := &PricesRequestBuilder{
		CoingeckoRequestBuilder: cg.NewCoingeckoRequestBuilder(baseURL, PRICES_API_PATH),
	}
	return rb.WithIncludeMarketCap(false).
		WithInclude24hVolume(false).
		WithInclude24hChange(false).
		WithIncludeLastUpdatedAt(false)
}

// WithCurrencies adds vs_currencies parameter
func (rb *PricesRequestBuilder) WithCurrencies(currencies []string) *PricesRequestBuilder {
	rb.With("vs_currencies", strings.Join(currencies, ","))
	return rb
}

func (rb *PricesRequestBuilder) WithIncludeMarketCap(include bool) *PricesRequestBuilder {
	rb.With("include_market_cap", strconv.FormatBool(include))
	return rb
}

func (rb *PricesRequestBuilder) WithInclude24hVolume(include bool) *PricesRequestBuilder {
	rb.With("include_24hr_vol", strconv.FormatBool(include))
	return rb
}

func (rb *PricesRequestBuilder) WithInclude24hChange(include bool) *PricesRequestBuilder {
	rb.With("include_24hr_change", strconv.FormatBool(include))
	return rb
}

func (rb *PricesRequestBuilder) WithIncludeLastUpdatedAt(include bool) *PricesRequestBuilder {
	rb.With("include_last_updated_at", strconv.FormatBool(include))
	return rb
}
