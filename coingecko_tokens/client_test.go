package coingecko_tokens

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cg "github.com/status-im/market-data/coingecko_common"
	"github.com/status-im/market-data/metrics"
)

const coinsListResponse = `[
  {"id":"bitcoin","symbol":"btc","name":"Bitcoin","platforms":{}},
  {"id":"tether","symbol":"usdt","name":"Tether","platforms":{"ethereum":"0xdac17f958d2ee523a2206206994597c13d831ec7","solana":"Es9vMFrzaCERmJfrF4H2FYD4KCoNkY11McCe8BenwNYB"}},
  {"id":"weird","symbol":"w","name":"Weird","platforms":{"ethereum":null}}
]`

func newTestHTTPClient() *cg.HTTPClientWithRetries {
	opts := cg.DefaultRetryOptions()
	opts.MaxRetries = 1
	return cg.NewHTTPClientWithRetries(opts, nil, nil)
}

func TestClient_FetchCatalog(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, CoinsListPath, r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("include_platform"))
		_, _ = w.Write([]byte(coinsListResponse))
	}))
	defer server.Close()

	client := NewClient(server.URL, newTestHTTPClient(), nil, metrics.NewMetricsWriter(metrics.ServiceCatalog))

	entries, err := client.FetchCatalog(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, "bitcoin", entries[0].ID)
	assert.Empty(t, entries[0].Platforms)
	assert.Equal(t, "usdt", entries[1].Symbol)
	assert.Equal(t, "0xdac17f958d2ee523a2206206994597c13d831ec7", entries[1].Platforms["ethereum"])
	assert.Equal(t, "", entries[2].Platforms["ethereum"])
}

func TestClient_FetchCatalog_SupportedPlatforms(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(coinsListResponse))
	}))
	defer server.Close()

	client := NewClient(server.URL, newTestHTTPClient(), []string{"ethereum"}, nil)

	entries, err := client.FetchCatalog(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, map[string]string{"ethereum": "0xdac17f958d2ee523a2206206994597c13d831ec7"}, entries[1].Platforms)
}

func TestClient_FetchCatalog_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		errText string
	}{
		{"provider failure", http.StatusInternalServerError, "", "error fetching catalog"},
		{"malformed body", http.StatusOK, `{"not":"a list"}`, "error unmarshaling catalog"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewClient(server.URL, newTestHTTPClient(), nil, nil)

			entries, err := client.FetchCatalog(context.Background())
			require.Error(t, err)
			assert.Nil(t, entries)
			assert.Contains(t, err.Error(), tt.errText)
		})
	}
}
