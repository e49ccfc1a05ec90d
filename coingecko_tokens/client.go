package coingecko_tokens

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	cg "github.com/status-im/market-data/coingecko_common"
	"github.com/status-im/market-data/interfaces"
	"github.com/status-im/market-data/metrics"
)

const (
	// CoinsListPath is the catalog endpoint, always requested with platform mappings
	CoinsListPath = "/api/v3/coins/list"
)

// Client fetches the token catalog
type Client struct {
	baseURL            string
	httpClient         cg.RequestExecutor
	supportedPlatforms []string
	metricsWriter      *metrics.MetricsWriter
}

// NewClient creates a catalog client.
// When supportedPlatforms is not empty, platform mappings are trimmed to that set.
func NewClient(baseURL string, httpClient cg.RequestExecutor, supportedPlatforms []string, metricsWriter *metrics.MetricsWriter) *Client {
	return &Client{
		baseURL:            baseURL,
		httpClient:         httpClient,
		supportedPlatforms: supportedPlatforms,
		metricsWriter:      metricsWriter,
	}
}

// FetchCatalog implements interfaces.CatalogFetcher
func (c *Client) FetchCatalog(ctx context.Context) ([]interfaces.CatalogEntry, error) {
	startTime := time.Now()

	req, err := cg.NewCoingeckoRequestBuilder(c.baseURL, CoinsListPath).
		With("include_platform", "true").
		Build(ctx)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	_, body, _, err := c.httpClient.ExecuteRequest(req)
	if err != nil {
		return nil, fmt.Errorf("error fetching catalog: %w", err)
	}

	var entries []interfaces.CatalogEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("error unmarshaling catalog: %w", err)
	}

	if len(c.supportedPlatforms) > 0 {
		entries = FilterTokensByPlatform(entries, c.supportedPlatforms)
	}

	if c.metricsWriter != nil {
		c.metricsWriter.RecordDataFetchCycle(time.Since(startTime))
		c.metricsWriter.RecordCacheSize(len(entries))
	}
	metrics.RecordTokensByPlatform(CountTokensByPlatform(entries))

	log.Printf("CoinGecko: fetched catalog with %d entries", len(entries))
	return entries, nil
}
