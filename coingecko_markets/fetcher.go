package coingecko_markets

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"time"

	cg "github.com/status-im/market-data/coingecko_common"
	"github.com/status-im/market-data/interfaces"
	"github.com/status-im/market-data/query_cache"
)

const (
	// DEFAULT_CHUNK_SIZE is the provider's max page size
	DEFAULT_CHUNK_SIZE = 250
	// DEFAULT_CURRENCY is used when no quote currency is given
	DEFAULT_CURRENCY = "usd"
)

// Fetcher implements interfaces.MarketsFetcher.
// Each request is cached by the query cache, so equal id sets share one response.
type Fetcher struct {
	baseURL         string
	queryCache      *query_cache.Fetcher
	ttl             time.Duration
	chunkSize       int
	defaultCurrency string
}

// NewFetcher creates a markets fetcher whose responses stay cached for ttl
func NewFetcher(baseURL string, queryCache *query_cache.Fetcher, ttl time.Duration, chunkSize int, defaultCurrency string) *Fetcher {
	if chunkSize <= 0 || chunkSize > DEFAULT_CHUNK_SIZE {
		chunkSize = DEFAULT_CHUNK_SIZE
	}
	if defaultCurrency == "" {
		defaultCurrency = DEFAULT_CURRENCY
	}
	return &Fetcher{
		baseURL:         baseURL,
		queryCache:      queryCache,
		ttl:             ttl,
		chunkSize:       chunkSize,
		defaultCurrency: defaultCurrency,
	}
}

// FetchMarkets implements interfaces.MarketsFetcher.
// The result has one slot per input id in input order; ids the provider does not know are nil.
func (f *Fetcher) FetchMarkets(ctx context.Context, ids []string, currency string) ([]*interfaces.MarketSnapshot, error) {
	if len(ids) == 0 {
		return []*interfaces.MarketSnapshot{}, nil
	}
	if currency == "" {
		currency = f.defaultCurrency
	}

	signature := requestSignature(ids)
	byID := make(map[string]*interfaces.MarketSnapshot)

	if len(signature) > 0 {
		var err error
		byID, err = cg.ChunkMapFetcher(ctx, signature, f.chunkSize,
			func(ctx context.Context, chunk []string) (map[string]*interfaces.MarketSnapshot, error) {
				return f.fetchChunk(ctx, chunk, currency)
			})
		if err != nil {
			return nil, fmt.Errorf("failed to fetch markets: %w", err)
		}
	}

	result := make([]*interfaces.MarketSnapshot, len(ids))
	for i, id := range ids {
		result[i] = byID[id]
	}
	return result, nil
}

func (f *Fetcher) fetchChunk(ctx context.Context, chunk []string, currency string) (map[string]*interfaces.MarketSnapshot, error) {
	rb := NewMarketRequestBuilder(f.baseURL).
		WithPerPage(f.chunkSize).
		WithSparkline(true).
		WithPriceChangePercentage([]string{"7d"})
	rb.WithCurrency(currency)
	rb.WithIDs(chunk)

	body, err := f.queryCache.Fetch(ctx, rb, f.ttl)
	if err != nil {
		return nil, err
	}

	var snapshots []*interfaces.MarketSnapshot
	if err := json.Unmarshal(body, &snapshots); err != nil {
		return nil, fmt.Errorf("error unmarshaling markets: %w", err)
	}

	byID := make(map[string]*interfaces.MarketSnapshot, len(snapshots))
	for _, snapshot := range snapshots {
		if snapshot == nil {
			continue
		}
		byID[snapshot.ID] = snapshot
	}

	if len(byID) < len(chunk) {
		log.Printf("CoinGecko: markets returned %d of %d requested ids", len(byID), len(chunk))
	}
	return byID, nil
}

// requestSignature returns the sorted set of non-empty ids
func requestSignature(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	signature := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		signature = append(signature, id)
	}
	sort.Strings(signature)
	return signature
}
