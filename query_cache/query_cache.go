package query_cache

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/status-im/market-data/cache"
	"github.com/status-im/market-data/coingecko_common"
	"github.com/status-im/market-data/metrics"
)

// RequestDescriptor describes a cacheable provider request
type RequestDescriptor interface {
	// Method returns the HTTP method
	Method() string
	// BuildURL returns the full request URL including the query string
	BuildURL() string
	// Build creates the request bound to ctx
	Build(ctx context.Context) (*http.Request, error)
}

// Fetcher caches raw response bodies of provider requests by identity.
// The identity of a request is its method and full URL.
type Fetcher struct {
	cache         cache.Cache
	executor      coingecko_common.RequestExecutor
	metricsWriter *metrics.MetricsWriter
	group         singleflight.Group
}

func NewFetcher(c cache.Cache, executor coingecko_common.RequestExecutor, metricsWriter *metrics.MetricsWriter) *Fetcher {
	return &Fetcher{
		cache:         c,
		executor:      executor,
		metricsWriter: metricsWriter,
	}
}

// Identity returns the cache key of a request
func Identity(rd RequestDescriptor) string {
	return rd.Method() + " " + rd.BuildURL()
}

// Fetch returns the cached body for the request or performs it and caches the body for ttl.
// Concurrent misses for the same identity share one request. Failed requests are not cached.
func (f *Fetcher) Fetch(ctx context.Context, rd RequestDescriptor, ttl time.Duration) ([]byte, error) {
	key := Identity(rd)

	if data, ok := f.cache.Get(key); ok {
		f.recordLookup(true)
		return data, nil
	}
	f.recordLookup(false)

	result, err, _ := f.group.Do(key, func() (interface{}, error) {
		loaded, err := f.cache.GetOrLoad([]string{key}, func(missingKeys []string) (map[string][]byte, error) {
			body, err := f.execute(ctx, rd)
			if err != nil {
				return nil, err
			}
			return map[string][]byte{key: body}, nil
		}, true, ttl)
		if err != nil {
			return nil, err
		}
		return loaded[key], nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}

	return result.([]byte), nil
}

func (f *Fetcher) execute(ctx context.Context, rd RequestDescriptor) ([]byte, error) {
	req, err := rd.Build(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	_, body, _, err := f.executor.ExecuteRequest(req)
	if err != nil {
		return nil, err
	}
	return body, nil
}

func (f *Fetcher) recordLookup(hit bool) {
	if f.metricsWriter != nil {
		f.metricsWriter.RecordQueryCacheLookup(hit)
	}
}
