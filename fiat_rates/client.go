package fiat_rates

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	cg "github.com/status-im/market-data/coingecko_common"
	"github.com/status-im/market-data/interfaces"
	"github.com/status-im/market-data/metrics"
)

// Client fetches the list of fiat exchange rates.
// The endpoint takes no parameters and returns every supported currency.
type Client struct {
	url           string
	httpClient    cg.RequestExecutor
	metricsWriter *metrics.MetricsWriter
}

func NewClient(url string, httpClient cg.RequestExecutor, metricsWriter *metrics.MetricsWriter) *Client {
	return &Client{
		url:           url,
		httpClient:    httpClient,
		metricsWriter: metricsWriter,
	}
}

// FetchFiatRates implements interfaces.FiatRatesFetcher
func (c *Client) FetchFiatRates(ctx context.Context) ([]interfaces.FiatRate, error) {
	startTime := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", cg.DefaultUserAgent)

	_, body, _, err := c.httpClient.ExecuteRequest(req)
	if err != nil {
		return nil, fmt.Errorf("error fetching fiat rates: %w", err)
	}

	var rates []interfaces.FiatRate
	if err := json.Unmarshal(body, &rates); err != nil {
		return nil, fmt.Errorf("error unmarshaling fiat rates: %w", err)
	}

	if c.metricsWriter != nil {
		c.metricsWriter.RecordDataFetchCycle(time.Since(startTime))
		c.metricsWriter.RecordCacheSize(len(rates))
	}

	log.Printf("FiatRates: fetched %d exchange rates", len(rates))
	return rates, nil
}
