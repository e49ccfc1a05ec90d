package metrics

import (
	"log"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsPrefix is the prefix used for all metrics
const MetricsPrefix = "market_data_"

// Service constants
const (
	ServiceCatalog    = "catalog"
	ServiceFiatRates  = "fiat-rates"
	ServiceMarkets    = "markets"
	ServicePrices     = "prices"
	ServiceMarketData = "market-data"
)

// Refresh outcomes
const (
	RefreshFresh     = "fresh"
	RefreshRefreshed = "refreshed"
	RefreshFailed    = "failed"
)

var (
	// TokensByPlatformGauge tracks the number of catalog entries per platform
	// Cardinality: ~100 (number of platforms in the catalog)
	TokensByPlatformGauge = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricsPrefix + "tokens_by_platform",
			Help: "Number of catalog entries per blockchain platform",
		},
		[]string{"platform"},
	)

	// Provider request counter
	// Cardinality: ~16 (4 services × 4 statuses)
	ProviderRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricsPrefix + "provider_requests_total",
			Help: "Total number of HTTP requests to upstream providers per service",
		},
		[]string{"service", "status"},
	)

	// Retry attempts counter
	// Cardinality: ~4 (number of services)
	ServiceRetryCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricsPrefix + "retry_attempts_total",
			Help: "Total number of retry attempts per service",
		},
		[]string{"service"},
	)

	// Data fetch cycle duration per service
	// Cardinality: ~5 (number of services)
	DataFetchCycleDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: MetricsPrefix + "data_fetch_cycle_duration_seconds",
			Help: "Time taken to complete a full data fetch cycle",
		},
		[]string{"service"},
	)

	// Service cache size
	// Cardinality: ~3 (catalog, fiat-rates, markets)
	ServiceCacheSizeGauge = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricsPrefix + "service_cache_size",
			Help: "Number of items in service cache",
		},
		[]string{"service"},
	)

	// Catalog refresh outcomes
	// Cardinality: 3
	RefreshOutcomeCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricsPrefix + "refresh_total",
			Help: "Number of freshness checks by outcome",
		},
		[]string{"outcome"},
	)

	// Committed table sizes
	// Cardinality: 2 (catalog, fiat)
	CommittedTableSizeGauge = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricsPrefix + "committed_table_size",
			Help: "Number of entries in the last committed catalog and fiat table",
		},
		[]string{"table"},
	)

	// LastRefreshTimestampGauge holds the unix time of the last committed refresh
	LastRefreshTimestampGauge = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricsPrefix + "last_refresh_timestamp_seconds",
			Help: "Unix time of the last committed catalog refresh",
		},
	)

	// Query cache lookups
	// Cardinality: ~8 (4 services × hit/miss)
	QueryCacheLookupCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricsPrefix + "query_cache_lookups_total",
			Help: "Number of query cache lookups by result",
		},
		[]string{"service", "result"},
	)
)

// RecordTokensByPlatform records the number of catalog entries for each platform
func RecordTokensByPlatform(tokensByPlatform map[string]int) {
	// Platforms that disappeared from the catalog must not keep their old value
	TokensByPlatformGauge.Reset()

	for platform, count := range tokensByPlatform {
		TokensByPlatformGauge.WithLabelValues(platform).Set(float64(count))
	}
	log.Printf("Metrics: recorded token counts for %d platforms", len(tokensByPlatform))
}

// RecordRefreshOutcome records the result of a freshness check
func RecordRefreshOutcome(outcome string) {
	RefreshOutcomeCounter.WithLabelValues(outcome).Inc()
}

// Committed tables
const (
	TableCatalog = "catalog"
	TableFiat    = "fiat"
)

// RecordCommittedTables records the committed table sizes. A zero lastRefresh leaves the timestamp untouched.
func RecordCommittedTables(catalogEntries, fiatRates int, lastRefresh time.Time) {
	CommittedTableSizeGauge.WithLabelValues(TableCatalog).Set(float64(catalogEntries))
	CommittedTableSizeGauge.WithLabelValues(TableFiat).Set(float64(fiatRates))
	if !lastRefresh.IsZero() {
		LastRefreshTimestampGauge.Set(float64(lastRefresh.Unix()))
	}
}

// MetricsWriter records metrics on behalf of one service
type MetricsWriter struct {
	serviceName string
}

// NewMetricsWriter creates a new MetricsWriter for the specified service
func NewMetricsWriter(serviceName string) *MetricsWriter {
	return &MetricsWriter{
		serviceName: serviceName,
	}
}

func (mw *MetricsWriter) GetServiceName() string {
	return mw.serviceName
}

// RecordProviderRequest records an upstream request with its status
func (mw *MetricsWriter) RecordProviderRequest(status string) {
	ProviderRequestsTotal.WithLabelValues(mw.serviceName, status).Inc()
}

// RecordDataFetchCycle records the duration of a data fetch cycle
func (mw *MetricsWriter) RecordDataFetchCycle(duration time.Duration) {
	DataFetchCycleDuration.WithLabelValues(mw.serviceName).Observe(duration.Seconds())
	log.Printf("Metrics: %s data fetch cycle took %.2fs", mw.serviceName, duration.Seconds())
}

// RecordCacheSize records the number of items held by the service
func (mw *MetricsWriter) RecordCacheSize(size int) {
	ServiceCacheSizeGauge.WithLabelValues(mw.serviceName).Set(float64(size))
}

// RecordRetryAttempt records a retry attempt
func (mw *MetricsWriter) RecordRetryAttempt() {
	ServiceRetryCounter.WithLabelValues(mw.serviceName).Inc()
	log.Printf("Metrics: %s recorded a retry attempt", mw.serviceName)
}

// RecordQueryCacheLookup records a query cache hit or miss
func (mw *MetricsWriter) RecordQueryCacheLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	QueryCacheLookupCounter.WithLabelValues(mw.serviceName, result).Inc()
}

// OnRequest implements coingecko_common.IHttpStatusHandler
func (mw *MetricsWriter) OnRequest(status string) {
	mw.RecordProviderRequest(status)
}

// OnRetry implements coingecko_common.IHttpStatusHandler
func (mw *MetricsWriter) OnRetry() {
	mw.RecordRetryAttempt()
}
