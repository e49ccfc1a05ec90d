package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitParamLowercase_CoinIds(t *testing.T) {
	tests := []struct {
		name     string
		param    string
		expected []string
	}{
		{
			name:     "mixed case ids",
			param:    "Bitcoin, ETHEREUM ,usd-coin",
			expected: []string{"bitcoin", "ethereum", "usd-coin"},
		},
		{
			name:     "duplicates keep request order",
			param:    "tether,Bitcoin,TETHER",
			expected: []string{"tether", "bitcoin", "tether"},
		},
		{
			name:     "empty entries dropped",
			param:    ",tether,, ,",
			expected: []string{"tether"},
		},
		{
			name:     "no ids",
			param:    "",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, splitParamLowercase(tt.param))
		})
	}
}

func TestSplitParam_KeepsContractCase(t *testing.T) {
	contracts := splitParam(" 0xdAC17F958D2ee523a2206206994597C13D831ec7 ,,0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48,")

	assert.Equal(t, []string{
		"0xdAC17F958D2ee523a2206206994597C13D831ec7",
		"0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48",
	}, contracts)
}

func TestGetParamLowercase_NetworkAndCurrency(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/markets/by_contracts?network=Ethereum&currency=EUR", nil)

	assert.Equal(t, "ethereum", getParamLowercase(req, "network"))
	assert.Equal(t, "eur", getParamLowercase(req, "currency"))
	assert.Equal(t, "", getParamLowercase(req, "contracts"))
	assert.Equal(t, "", getParamLowercase(nil, "network"))
}

func TestSendJSONResponse_TokenValue(t *testing.T) {
	server := &Server{}
	response := TokenValueResponse{ID: "bitcoin", Balance: "2.5", Fiat: "USD", Value: "250.00"}

	first := httptest.NewRecorder()
	server.sendJSONResponse(first, response)

	require.Equal(t, http.StatusOK, first.Code)
	body := `{"id":"bitcoin","balance":"2.5","fiat":"USD","value":"250.00"}`
	assert.Equal(t, body, first.Body.String())
	assert.Equal(t, "application/json", first.Header().Get("Content-Type"))
	assert.Equal(t, strconv.Itoa(len(body)), first.Header().Get("Content-Length"))

	// Same value, same ETag. A new price changes it.
	second := httptest.NewRecorder()
	server.sendJSONResponse(second, response)
	assert.Equal(t, first.Header().Get("ETag"), second.Header().Get("ETag"))

	response.Value = "251.00"
	changed := httptest.NewRecorder()
	server.sendJSONResponse(changed, response)
	assert.NotEqual(t, first.Header().Get("ETag"), changed.Header().Get("ETag"))
}

func TestSendProviderError_BadGateway(t *testing.T) {
	server := &Server{}
	recorder := httptest.NewRecorder()

	server.sendProviderError(recorder, "markets", errors.New("coingecko: 429 too many requests"))

	assert.Equal(t, http.StatusBadGateway, recorder.Code)
	assert.Equal(t, "upstream provider error\n", recorder.Body.String())
	assert.NotContains(t, recorder.Body.String(), "coingecko", "provider details stay in the log")
	assert.Empty(t, recorder.Header().Get("ETag"))
}
