package e2etest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
)

const FiatRatesPath = "/v2/prices/exchange-rates"

// MockServer serves the catalog, markets, prices and fiat endpoints from fixed data
// and counts the requests each endpoint receives
type MockServer struct {
	server *httptest.Server

	mu      sync.RWMutex
	catalog string
	fiat    string
	markets map[string]map[string]interface{}
	prices  map[string]map[string]float64

	catalogRequests atomic.Int32
	fiatRequests    atomic.Int32
	marketsRequests atomic.Int32
	pricesRequests  atomic.Int32
	failFiat        atomic.Bool
}

func NewMockServer() *MockServer {
	ms := &MockServer{
		catalog: defaultCatalogData(),
		fiat:    defaultFiatData(),
		markets: defaultMarketsData(),
		prices:  defaultPricesData(),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v3/coins/list", ms.handleCatalog)
	mux.HandleFunc("/api/v3/coins/markets", ms.handleMarkets)
	mux.HandleFunc("/api/v3/simple/price", ms.handlePrices)
	mux.HandleFunc(FiatRatesPath, ms.handleFiat)
	ms.server = httptest.NewServer(mux)

	return ms
}

func (ms *MockServer) GetURL() string {
	return ms.server.URL
}

func (ms *MockServer) Close() {
	ms.server.Close()
}

// SetFiatFailing makes the fiat endpoint answer 404
func (ms *MockServer) SetFiatFailing(fail bool) {
	ms.failFiat.Store(fail)
}

func (ms *MockServer) CatalogRequests() int { return int(ms.catalogRequests.Load()) }
func (ms *MockServer) FiatRequests() int    { return int(ms.fiatRequests.Load()) }
func (ms *MockServer) MarketsRequests() int { return int(ms.marketsRequests.Load()) }
func (ms *MockServer) PricesRequests() int  { return int(ms.pricesRequests.Load()) }

func (ms *MockServer) handleCatalog(w http.ResponseWriter, r *http.Request) {
	ms.catalogRequests.Add(1)
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	writeJSON(w, ms.catalog)
}

func (ms *MockServer) handleFiat(w http.ResponseWriter, r *http.Request) {
	ms.fiatRequests.Add(1)
	if ms.failFiat.Load() {
		http.NotFound(w, r)
		return
	}
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	writeJSON(w, ms.fiat)
}

// handleMarkets answers in market cap order, not in the order of the ids parameter
func (ms *MockServer) handleMarkets(w http.ResponseWriter, r *http.Request) {
	ms.marketsRequests.Add(1)
	requested := make(map[string]bool)
	for _, id := range strings.Split(r.URL.Query().Get("ids"), ",") {
		requested[id] = true
	}

	ms.mu.RLock()
	defer ms.mu.RUnlock()
	result := []map[string]interface{}{}
	for _, id := range []string{"bitcoin", "ethereum", "tether", "usd-coin"} {
		if market, ok := ms.markets[id]; ok && requested[id] {
			result = append(result, market)
		}
	}
	body, _ := json.Marshal(result)
	writeJSON(w, string(body))
}

func (ms *MockServer) handlePrices(w http.ResponseWriter, r *http.Request) {
	ms.pricesRequests.Add(1)
	currencies := strings.Split(r.URL.Query().Get("vs_currencies"), ",")

	ms.mu.RLock()
	defer ms.mu.RUnlock()
	result := map[string]map[string]float64{}
	for _, id := range strings.Split(r.URL.Query().Get("ids"), ",") {
		byCurrency, ok := ms.prices[id]
		if !ok {
			continue
		}
		result[id] = map[string]float64{}
		for _, currency := range currencies {
			if price, ok := byCurrency[currency]; ok {
				result[id][currency] = price
			}
		}
	}
	body, _ := json.Marshal(result)
	writeJSON(w, string(body))
}

func writeJSON(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(body))
}

func defaultCatalogData() string {
	return `[
		{"id":"bitcoin","symbol":"btc","name":"Bitcoin","platforms":{}},
		{"id":"ethereum","symbol":"eth","name":"Ethereum","platforms":{"ethereum":""}},
		{"id":"tether","symbol":"usdt","name":"Tether","platforms":{"ethereum":"0xdac17f958d2ee523a2206206994597c13d831ec7","polygon-pos":"0xc2132d05d31c914a87c6611c10748aeb04b58e8f"}},
		{"id":"usd-coin","symbol":"usdc","name":"USDC","platforms":{"ethereum":"0xa0b86991c6218b36c1d19d4a2e9eb0ce3606eb48"}}
	]`
}

func defaultFiatData() string {
	return `[
		{"fiat_currency":"USD","exchange_rate":1},
		{"fiat_currency":"EUR","exchange_rate":0.9}
	]`
}

func defaultMarketsData() map[string]map[string]interface{} {
	return map[string]map[string]interface{}{
		"bitcoin":  {"id": "bitcoin", "symbol": "btc", "name": "Bitcoin", "current_price": 100, "market_cap_rank": 1},
		"ethereum": {"id": "ethereum", "symbol": "eth", "name": "Ethereum", "current_price": 3000, "market_cap_rank": 2},
		"tether":   {"id": "tether", "symbol": "usdt", "name": "Tether", "current_price": 1, "market_cap_rank": 3},
		"usd-coin": {"id": "usd-coin", "symbol": "usdc", "name": "USDC", "current_price": 0.9998, "market_cap_rank": 6},
	}
}

func defaultPricesData() map[string]map[string]float64 {
	return map[string]map[string]float64{
		"bitcoin":  {"usd": 100, "eur": 90},
		"ethereum": {"usd": 3000, "eur": 2700},
	}
}
