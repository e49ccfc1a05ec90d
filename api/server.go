package api

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/status-im/market-data/cache"
	"github.com/status-im/market-data/interfaces"
)

// RefreshStatus reports when the catalog was last committed
type RefreshStatus interface {
	LastRefresh() time.Time
}

type Server struct {
	port          string
	marketData    interfaces.MarketDataService
	cacheService  *cache.Service
	refreshStatus RefreshStatus
	server        *http.Server
}

func New(port string, marketData interfaces.MarketDataService, cacheService *cache.Service) *Server {
	return &Server{
		port:         port,
		marketData:   marketData,
		cacheService: cacheService,
	}
}

// SetRefreshStatus adds the last refresh time to /health
func (s *Server) SetRefreshStatus(status RefreshStatus) {
	s.refreshStatus = status
}

// Handler returns the router serving every endpoint
func (s *Server) Handler() http.Handler {
	router := mux.NewRouter()

	router.HandleFunc("/api/v1/token_value", s.handleTokenValue).Methods(http.MethodGet)
	router.HandleFunc("/api/v1/token_price", s.handleTokenPrice).Methods(http.MethodGet)
	router.HandleFunc("/api/v1/markets", s.handleMarkets).Methods(http.MethodGet)
	router.HandleFunc("/api/v1/markets/by_contracts", s.handleMarketsByContracts).Methods(http.MethodGet)
	router.HandleFunc("/api/v1/fiat/{symbol}", s.handleFiat).Methods(http.MethodGet)
	router.HandleFunc("/api/v1/refresh", s.handleRefresh).Methods(http.MethodPost)

	router.HandleFunc("/health", s.handleHealth)
	router.Handle("/metrics", promhttp.Handler())

	return router
}

func (s *Server) Start(ctx context.Context) error {
	s.server = &http.Server{
		Addr:    ":" + s.port,
		Handler: s.Handler(),
	}

	log.Printf("Server starting at http://localhost:%s", s.port)
	log.Println("Prometheus metrics available at /metrics endpoint")

	go func() {
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()

	return nil
}
