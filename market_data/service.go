package market_data

import (
	"context"
	"log"
	"time"

	"github.com/shopspring/decimal"

	"github.com/status-im/market-data/config"
	"github.com/status-im/market-data/events"
	"github.com/status-im/market-data/interfaces"
	"github.com/status-im/market-data/scheduler"
)

// refreshTimeout bounds a refresh started by the background scheduler
const refreshTimeout = 2 * time.Minute

// Service implements interfaces.MarketDataService.
// Every operation reads through Refresher.WithFreshCatalog.
type Service struct {
	config          config.MarketDataConfig
	refresher       *Refresher
	markets         interfaces.MarketsFetcher
	prices          interfaces.PriceFetcher
	subscriptions   *events.SubscriptionManager
	scheduler       *scheduler.Scheduler
	defaultCurrency string
}

// NewService wires the refresher with the market and price fetchers
func NewService(
	cfg config.MarketDataConfig,
	refresher *Refresher,
	markets interfaces.MarketsFetcher,
	prices interfaces.PriceFetcher,
	subscriptions *events.SubscriptionManager,
) *Service {
	return &Service{
		config:          cfg,
		refresher:       refresher,
		markets:         markets,
		prices:          prices,
		subscriptions:   subscriptions,
		defaultCurrency: cfg.GetDefaultCurrency(),
	}
}

// Start implements core.Interface.
// With a positive background_refresh_interval the catalog is also refreshed on a timer.
func (s *Service) Start(ctx context.Context) error {
	interval := s.config.BackgroundRefreshInterval
	if interval <= 0 {
		log.Printf("MarketData: background refresh disabled, refreshing on read")
		return nil
	}

	s.scheduler = scheduler.New("market-data-refresh", interval, func(ctx context.Context) {
		ctx, cancel := context.WithTimeout(ctx, refreshTimeout)
		defer cancel()
		if err := s.SetMarketInfo(ctx); err != nil {
			log.Printf("MarketData: background refresh failed: %v", err)
		}
	})
	s.scheduler.Start(ctx, true)
	log.Printf("MarketData: background refresh every %v", interval)
	return nil
}

// Stop implements core.Interface
func (s *Service) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}

// SubscribeOnRefresh returns a subscription notified after every successful refresh
func (s *Service) SubscribeOnRefresh() events.ISubscription {
	return s.subscriptions.Subscribe()
}

// RefreshState describes the committed catalog and fiat table
type RefreshState struct {
	CatalogEntries int
	FiatRates      int
	// LastRefresh is zero until a refresh was committed
	LastRefresh time.Time
}

// RefreshState reads the committed tables without refreshing them
func (s *Service) RefreshState(ctx context.Context) (RefreshState, error) {
	catalog, err := s.refresher.Catalog(ctx)
	if err != nil {
		return RefreshState{}, err
	}
	table, err := s.refresher.FiatTable(ctx)
	if err != nil {
		return RefreshState{}, err
	}
	ts, found, err := s.refresher.lastTimestamp(ctx)
	if err != nil {
		return RefreshState{}, err
	}

	state := RefreshState{CatalogEntries: len(catalog), FiatRates: len(table)}
	if found {
		state.LastRefresh = time.UnixMilli(ts.Timestamp).UTC()
	}
	return state, nil
}

// SetMarketInfo refreshes the catalog and fiat table if they are stale
func (s *Service) SetMarketInfo(ctx context.Context) error {
	return s.refresher.EnsureFresh(ctx)
}

// GetTokenPrice returns the price of id in currency, nil if the provider does not know either
func (s *Service) GetTokenPrice(ctx context.Context, id, currency string) (*decimal.Decimal, error) {
	if currency == "" {
		currency = s.defaultCurrency
	}

	var price *decimal.Decimal
	err := s.refresher.WithFreshCatalog(ctx, func() error {
		var err error
		price, err = s.prices.FetchPrice(ctx, id, currency)
		return err
	})
	return price, err
}

// GetMarketData returns one snapshot per id in the same order, nil for unknown ids
func (s *Service) GetMarketData(ctx context.Context, ids []string) ([]*interfaces.MarketSnapshot, error) {
	if len(ids) == 0 {
		return []*interfaces.MarketSnapshot{}, nil
	}

	var result []*interfaces.MarketSnapshot
	err := s.refresher.WithFreshCatalog(ctx, func() error {
		var err error
		result, err = s.markets.FetchMarkets(ctx, ids, s.defaultCurrency)
		return err
	})
	return result, err
}

// GetFiatValue returns the rate of symbol, nil if the fiat table does not contain it
func (s *Service) GetFiatValue(ctx context.Context, symbol string) (*interfaces.FiatRate, error) {
	var rate *interfaces.FiatRate
	err := s.refresher.WithFreshCatalog(ctx, func() error {
		var err error
		rate, err = s.fiatRate(ctx, symbol)
		return err
	})
	return rate, err
}

func (s *Service) fetchMarket(ctx context.Context, id string) (*interfaces.MarketSnapshot, error) {
	snapshots, err := s.markets.FetchMarkets(ctx, []string{id}, s.defaultCurrency)
	if err != nil {
		return nil, err
	}
	if len(snapshots) == 0 {
		return nil, nil
	}
	return snapshots[0], nil
}

// fiatRate reads the stored fiat table without triggering a refresh
func (s *Service) fiatRate(ctx context.Context, symbol string) (*interfaces.FiatRate, error) {
	table, err := s.refresher.FiatTable(ctx)
	if err != nil {
		return nil, err
	}
	rate, ok := table[symbol]
	if !ok {
		return nil, nil
	}
	return &rate, nil
}
