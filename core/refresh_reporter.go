package core

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/status-im/market-data/events"
	"github.com/status-im/market-data/market_data"
	"github.com/status-im/market-data/metrics"
)

// refreshSource is the part of market_data.Service the reporter reads
type refreshSource interface {
	SubscribeOnRefresh() events.ISubscription
	RefreshState(ctx context.Context) (market_data.RefreshState, error)
}

// RefreshReporter publishes the committed tables after every refresh
// and serves the last refresh time to the health endpoint.
type RefreshReporter struct {
	source refreshSource

	mu    sync.RWMutex
	state market_data.RefreshState
	sub   events.ISubscription
}

func NewRefreshReporter(source refreshSource) *RefreshReporter {
	return &RefreshReporter{source: source}
}

// Start implements Interface. State persisted by an earlier run is reported right away.
func (r *RefreshReporter) Start(ctx context.Context) error {
	sub := r.source.SubscribeOnRefresh()
	r.mu.Lock()
	r.sub = sub
	r.mu.Unlock()

	sub.Watch(ctx, func() { r.report(ctx) }, true)
	return nil
}

// Stop implements Interface
func (r *RefreshReporter) Stop() {
	r.mu.Lock()
	sub := r.sub
	r.sub = nil
	r.mu.Unlock()

	if sub != nil {
		sub.Cancel()
	}
}

// LastRefresh returns the time of the last committed refresh, zero if none
func (r *RefreshReporter) LastRefresh() time.Time {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state.LastRefresh
}

func (r *RefreshReporter) report(ctx context.Context) {
	state, err := r.source.RefreshState(ctx)
	if err != nil {
		log.Printf("MarketData: failed to read refresh state: %v", err)
		return
	}

	metrics.RecordCommittedTables(state.CatalogEntries, state.FiatRates, state.LastRefresh)

	r.mu.Lock()
	r.state = state
	r.mu.Unlock()
}
