package coingecko_prices

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/status-im/market-data/cache"
	cg "github.com/status-im/market-data/coingecko_common"
	"github.com/status-im/market-data/query_cache"
)

func newTestFetcher(baseURL string) *Fetcher {
	opts := cg.DefaultRetryOptions()
	opts.MaxRetries = 1
	httpClient := cg.NewHTTPClientWithRetries(opts, nil, nil)
	queryCache := query_cache.NewFetcher(cache.NewService(cache.DefaultCacheConfig()), httpClient, nil)
	return NewFetcher(baseURL, queryCache, 5*time.Minute)
}

func TestFetcher_FetchPrice(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		query := r.URL.Query()
		assert.Equal(t, PRICES_API_PATH, r.URL.Path)
		assert.Equal(t, "bitcoin", query.Get("ids"))
		assert.Equal(t, "eur", query.Get("vs_currencies"))
		for _, flag := range []string{"include_market_cap", "include_24hr_vol", "include_24hr_change", "include_last_updated_at"} {
			assert.Equal(t, "false", query.Get(flag), flag)
		}
		_, _ = w.Write([]byte(`{"bitcoin":{"eur":55000.12}}`))
	}))
	defer server.Close()

	fetcher := newTestFetcher(server.URL)

	for i := 0; i < 2; i++ {
		price, err := fetcher.FetchPrice(context.Background(), "bitcoin", "eur")
		require.NoError(t, err)
		require.NotNil(t, price)
		assert.True(t, decimal.RequireFromString("55000.12").Equal(*price))
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestFetcher_FetchPrice_Missing(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		currency string
	}{
		{"unknown id", `{}`, "usd"},
		{"unknown currency", `{"bitcoin":{"usd":1}}`, "xyz"},
		{"null price", `{"bitcoin":{"usd":null}}`, "usd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			price, err := newTestFetcher(server.URL).FetchPrice(context.Background(), "bitcoin", tt.currency)
			require.NoError(t, err)
			assert.Nil(t, price)
		})
	}
}

func TestFetcher_FetchPrice_ProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	price, err := newTestFetcher(server.URL).FetchPrice(context.Background(), "bitcoin", "usd")
	require.Error(t, err)
	assert.Nil(t, price)
}
