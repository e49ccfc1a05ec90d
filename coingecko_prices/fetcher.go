package coingecko_prices

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/status-im/market-data/query_cache"
)

// SimplePriceResponse is the simple/price body: id -> currency -> price
type SimplePriceResponse map[string]map[string]decimal.NullDecimal

// Fetcher implements interfaces.PriceFetcher through the query cache
type Fetcher struct {
	baseURL    string
	queryCache *query_cache.Fetcher
	ttl        time.Duration
}

func NewFetcher(baseURL string, queryCache *query_cache.Fetcher, ttl time.Duration) *Fetcher {
	return &Fetcher{
		baseURL:    baseURL,
		queryCache: queryCache,
		ttl:        ttl,
	}
}

// FetchPrice implements interfaces.PriceFetcher.
// Returns nil without error when the id or the currency is missing from the response.
func (f *Fetcher) FetchPrice(ctx context.Context, id string, currency string) (*decimal.Decimal, error) {
	rb := NewPricesRequestBuilder(f.baseURL).WithCurrencies([]string{currency})
	rb.WithIDs([]string{id})

	body, err := f.queryCache.Fetch(ctx, rb, f.ttl)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch price of %s: %w", id, err)
	}

	var response SimplePriceResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("error unmarshaling price of %s: %w", id, err)
	}

	price, ok := response[id][currency]
	if !ok || !price.Valid {
		return nil, nil
	}
	return &price.Decimal, nil
}
