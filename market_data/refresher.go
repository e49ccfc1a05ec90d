package market_data

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/status-im/market-data/events"
	"github.com/status-im/market-data/interfaces"
	"github.com/status-im/market-data/metrics"
	"github.com/status-im/market-data/storage"
)

// Store keys
const (
	KeyLastTimestamp = "lastTimestamp"
	KeyAllTokens     = "allTokens"
	KeyFiatInfo      = "fiatInfo"
)

// Refresher keeps the catalog and the fiat table in the store no older than refreshDelay.
// lastTimestamp is written last and only after both tables were stored, so it acts as the commit marker.
type Refresher struct {
	store          storage.Store
	catalogFetcher interfaces.CatalogFetcher
	fiatFetcher    interfaces.FiatRatesFetcher
	refreshDelay   time.Duration
	subscriptions  events.ISubscriptionManager
	metricsWriter  *metrics.MetricsWriter
	now            func() time.Time
	group          singleflight.Group
}

func NewRefresher(
	store storage.Store,
	catalogFetcher interfaces.CatalogFetcher,
	fiatFetcher interfaces.FiatRatesFetcher,
	refreshDelay time.Duration,
	subscriptions events.ISubscriptionManager,
	metricsWriter *metrics.MetricsWriter,
) *Refresher {
	return &Refresher{
		store:          store,
		catalogFetcher: catalogFetcher,
		fiatFetcher:    fiatFetcher,
		refreshDelay:   refreshDelay,
		subscriptions:  subscriptions,
		metricsWriter:  metricsWriter,
		now:            time.Now,
	}
}

// SetClock replaces the time source
func (r *Refresher) SetClock(now func() time.Time) {
	r.now = now
}

// IsFresh reports whether the last successful refresh is younger than refreshDelay
func (r *Refresher) IsFresh(ctx context.Context) (bool, error) {
	ts, found, err := r.lastTimestamp(ctx)
	if err != nil || !found {
		return false, err
	}
	age := r.now().Sub(time.UnixMilli(ts.Timestamp))
	return age < r.refreshDelay, nil
}

// EnsureFresh refreshes the catalog and fiat table when they are stale.
// Concurrent stale callers share one refresh. On error the stored tables are left as they were.
func (r *Refresher) EnsureFresh(ctx context.Context) error {
	fresh, err := r.IsFresh(ctx)
	if err != nil {
		metrics.RecordRefreshOutcome(metrics.RefreshFailed)
		return fmt.Errorf("failed to read %s: %w", KeyLastTimestamp, err)
	}
	if fresh {
		metrics.RecordRefreshOutcome(metrics.RefreshFresh)
		return nil
	}

	outcome, err, _ := r.group.Do("refresh", func() (interface{}, error) {
		// Another caller may have committed while we were waiting to enter
		if fresh, err := r.IsFresh(ctx); err == nil && fresh {
			return metrics.RefreshFresh, nil
		}
		if err := r.refresh(ctx); err != nil {
			return metrics.RefreshFailed, err
		}
		return metrics.RefreshRefreshed, nil
	})
	metrics.RecordRefreshOutcome(outcome.(string))
	return err
}

// WithFreshCatalog runs fn after a best-effort refresh.
// Refresh failures are logged and fn runs on whatever data is stored.
func (r *Refresher) WithFreshCatalog(ctx context.Context, fn func() error) error {
	if err := r.EnsureFresh(ctx); err != nil {
		log.Printf("MarketData: refresh failed, serving stored data: %v", err)
	}
	return fn()
}

func (r *Refresher) refresh(ctx context.Context) error {
	startTime := time.Now()

	var entries []interfaces.CatalogEntry
	var rates []interfaces.FiatRate

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		entries, err = r.catalogFetcher.FetchCatalog(gctx)
		if err != nil {
			return fmt.Errorf("failed to fetch catalog: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		rates, err = r.fiatFetcher.FetchFiatRates(gctx)
		if err != nil {
			return fmt.Errorf("failed to fetch fiat rates: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	catalog := make(interfaces.Catalog, len(entries))
	for _, entry := range entries {
		catalog[entry.ID] = entry
	}
	fiatTable := make(interfaces.FiatTable, len(rates))
	for _, rate := range rates {
		fiatTable[rate.FiatCurrency] = rate
	}

	if err := r.setJSON(ctx, KeyAllTokens, catalog); err != nil {
		return err
	}
	if err := r.setJSON(ctx, KeyFiatInfo, fiatTable); err != nil {
		return err
	}
	if err := r.setJSON(ctx, KeyLastTimestamp, interfaces.RefreshTimestamp{Timestamp: r.now().UnixMilli()}); err != nil {
		return err
	}

	if r.metricsWriter != nil {
		r.metricsWriter.RecordDataFetchCycle(time.Since(startTime))
	}
	log.Printf("MarketData: refreshed catalog with %d entries and %d fiat rates", len(catalog), len(fiatTable))

	if r.subscriptions != nil {
		r.subscriptions.Emit(ctx)
	}
	return nil
}

// Catalog returns the stored catalog, empty if no refresh ever succeeded
func (r *Refresher) Catalog(ctx context.Context) (interfaces.Catalog, error) {
	catalog := interfaces.Catalog{}
	if _, err := r.getJSON(ctx, KeyAllTokens, &catalog); err != nil {
		return nil, err
	}
	return catalog, nil
}

// FiatTable returns the stored fiat table, empty if no refresh ever succeeded
func (r *Refresher) FiatTable(ctx context.Context) (interfaces.FiatTable, error) {
	table := interfaces.FiatTable{}
	if _, err := r.getJSON(ctx, KeyFiatInfo, &table); err != nil {
		return nil, err
	}
	return table, nil
}

func (r *Refresher) lastTimestamp(ctx context.Context) (interfaces.RefreshTimestamp, bool, error) {
	var ts interfaces.RefreshTimestamp
	data, found, err := r.store.Get(ctx, KeyLastTimestamp)
	if err != nil || !found {
		return ts, false, err
	}
	if err := json.Unmarshal(data, &ts); err != nil {
		log.Printf("MarketData: ignoring unreadable %s: %v", KeyLastTimestamp, err)
		return ts, false, nil
	}
	// A zero timestamp is never a valid commit
	return ts, ts.Timestamp > 0, nil
}

func (r *Refresher) getJSON(ctx context.Context, key string, v interface{}) (bool, error) {
	data, found, err := r.store.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	if !found {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return true, nil
}

func (r *Refresher) setJSON(ctx context.Context, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := r.store.Set(ctx, key, data); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}
