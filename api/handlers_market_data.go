package api

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"github.com/status-im/market-data/interfaces"
)

type TokenValueResponse struct {
	ID      string `json:"id"`
	Balance string `json:"balance"`
	Fiat    string `json:"fiat"`
	Value   string `json:"value"`
}

type TokenPriceResponse struct {
	ID       string           `json:"id"`
	Currency string           `json:"currency"`
	Price    *decimal.Decimal `json:"price"`
}

// handleTokenValue responds with balance × price × fiat rate.
// Unknown tokens or currencies yield "0", never an error.
func (s *Server) handleTokenValue(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	balance := strings.TrimSpace(query.Get("balance"))
	id := getParamLowercase(r, "id")
	fiat := strings.ToUpper(strings.TrimSpace(query.Get("fiat")))

	if balance == "" || id == "" || fiat == "" {
		http.Error(w, "balance, id and fiat parameters are required", http.StatusBadRequest)
		return
	}

	value := s.marketData.GetTokenValue(r.Context(), balance, id, fiat)
	s.sendJSONResponse(w, TokenValueResponse{
		ID:      id,
		Balance: balance,
		Fiat:    fiat,
		Value:   value,
	})
}

// handleTokenPrice responds with the price of id, null when unknown
func (s *Server) handleTokenPrice(w http.ResponseWriter, r *http.Request) {
	id := getParamLowercase(r, "id")
	if id == "" {
		http.Error(w, "id parameter is required", http.StatusBadRequest)
		return
	}
	currency := getParamLowercase(r, "currency")

	price, err := s.marketData.GetTokenPrice(r.Context(), id, currency)
	if err != nil {
		s.sendProviderError(w, "token price", err)
		return
	}

	s.sendJSONResponse(w, TokenPriceResponse{
		ID:       id,
		Currency: currency,
		Price:    price,
	})
}

// handleMarkets responds with one snapshot per requested id in request order.
// Unknown ids are null.
func (s *Server) handleMarkets(w http.ResponseWriter, r *http.Request) {
	ids := splitParamLowercase(r.URL.Query().Get("ids"))

	snapshots, err := s.marketData.GetMarketData(r.Context(), ids)
	if err != nil {
		s.sendProviderError(w, "markets", err)
		return
	}
	if snapshots == nil {
		snapshots = []*interfaces.MarketSnapshot{}
	}

	s.sendJSONResponse(w, snapshots)
}

// handleMarketsByContracts responds with contract -> snapshot for a network.
// Contract addresses are matched exactly, so their case is kept.
func (s *Server) handleMarketsByContracts(w http.ResponseWriter, r *http.Request) {
	network := getParamLowercase(r, "network")
	if network == "" {
		http.Error(w, "network parameter is required", http.StatusBadRequest)
		return
	}
	contracts := splitParam(r.URL.Query().Get("contracts"))

	result, err := s.marketData.GetMarketInfoByContracts(r.Context(), contracts, network)
	if err != nil {
		s.sendProviderError(w, "markets by contracts", err)
		return
	}

	s.sendJSONResponse(w, result)
}

// handleFiat responds with the exchange rate of a fiat symbol
func (s *Server) handleFiat(w http.ResponseWriter, r *http.Request) {
	symbol := strings.ToUpper(mux.Vars(r)["symbol"])

	rate, err := s.marketData.GetFiatValue(r.Context(), symbol)
	if err != nil {
		s.sendProviderError(w, "fiat rate", err)
		return
	}
	if rate == nil {
		http.Error(w, "fiat rate not found", http.StatusNotFound)
		return
	}

	s.sendJSONResponse(w, rate)
}

// handleRefresh refreshes the catalog and fiat table if they are stale
func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	if err := s.marketData.SetMarketInfo(r.Context()); err != nil {
		s.sendProviderError(w, "refresh", err)
		return
	}

	s.sendJSONResponse(w, map[string]string{"status": "ok"})
}
