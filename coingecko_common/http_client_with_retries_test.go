package coingecko_common

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/time/rate"

	mock_coingecko_common "github.com/status-im/market-data/coingecko_common/mocks"
	"github.com/status-im/market-data/config"
)

func fastRetryOptions(maxRetries int) RetryOptions {
	opts := DefaultRetryOptions()
	opts.MaxRetries = maxRetries
	opts.BaseBackoff = time.Millisecond
	opts.LogPrefix = "Test"
	return opts
}

func newRequest(t *testing.T, ctx context.Context, url string) *http.Request {
	t.Helper()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	require.NoError(t, err)
	return req
}

func TestHTTPClientWithRetries_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}))
	defer server.Close()

	ctrl := gomock.NewController(t)
	handler := mock_coingecko_common.NewMockIHttpStatusHandler(ctrl)
	handler.EXPECT().OnRequest("success").Times(1)

	client := NewHTTPClientWithRetries(fastRetryOptions(1), handler, nil)

	resp, body, _, err := client.ExecuteRequest(newRequest(t, context.Background(), server.URL))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, `{"status":"ok"}`, string(body))
}

func TestHTTPClientWithRetries_RetriesServerErrors(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch atomic.AddInt32(&calls, 1) {
		case 1:
			w.WriteHeader(http.StatusTooManyRequests)
		case 2:
			w.WriteHeader(http.StatusBadGateway)
		default:
			_, _ = w.Write([]byte(`[]`))
		}
	}))
	defer server.Close()

	ctrl := gomock.NewController(t)
	handler := mock_coingecko_common.NewMockIHttpStatusHandler(ctrl)
	gomock.InOrder(
		handler.EXPECT().OnRequest("rate_limited"),
		handler.EXPECT().OnRetry(),
		handler.EXPECT().OnRequest("error"),
		handler.EXPECT().OnRetry(),
		handler.EXPECT().OnRequest("success"),
	)

	client := NewHTTPClientWithRetries(fastRetryOptions(3), handler, nil)

	_, body, _, err := client.ExecuteRequest(newRequest(t, context.Background(), server.URL))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(body))
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestHTTPClientWithRetries_ClientErrorIsNotRetried(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewHTTPClientWithRetries(fastRetryOptions(3), nil, nil)

	_, _, _, err := client.ExecuteRequest(newRequest(t, context.Background(), server.URL))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestHTTPClientWithRetries_AllAttemptsFail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewHTTPClientWithRetries(fastRetryOptions(2), nil, nil)

	_, _, _, err := client.ExecuteRequest(newRequest(t, context.Background(), server.URL))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "all 2 attempts failed")
}

func TestHTTPClientWithRetries_BackoffHonoursContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	opts := fastRetryOptions(3)
	opts.BaseBackoff = time.Hour
	client := NewHTTPClientWithRetries(opts, nil, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, _, _, err := client.ExecuteRequest(newRequest(t, ctx, server.URL))
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestHTTPClientWithRetries_Limiter(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	// One token, refilled every 200ms
	limiter := rate.NewLimiter(rate.Every(200*time.Millisecond), 1)
	client := NewHTTPClientWithRetries(fastRetryOptions(1), nil, limiter)

	start := time.Now()
	for i := 0; i < 2; i++ {
		_, _, _, err := client.ExecuteRequest(newRequest(t, context.Background(), server.URL))
		require.NoError(t, err)
	}
	assert.GreaterOrEqual(t, time.Since(start), 150*time.Millisecond)
}

func TestLimiterFromConfig(t *testing.T) {
	assert.Nil(t, LimiterFromConfig(config.HTTPClientConfig{}))

	limiter := LimiterFromConfig(config.HTTPClientConfig{RequestsPerMinute: 60})
	require.NotNil(t, limiter)
	assert.Equal(t, rate.Limit(1), limiter.Limit())
	assert.Equal(t, 1, limiter.Burst())
}

func TestRetryOptionsFromConfig(t *testing.T) {
	opts := RetryOptionsFromConfig(config.HTTPClientConfig{MaxRetries: 5, BaseBackoff: time.Second}, "CoinGecko")

	assert.Equal(t, 5, opts.MaxRetries)
	assert.Equal(t, time.Second, opts.BaseBackoff)
	assert.Equal(t, "CoinGecko", opts.LogPrefix)
	assert.Equal(t, 30*time.Second, opts.RequestTimeout)
}

func TestCalculateBackoffWithJitter(t *testing.T) {
	base := 100 * time.Millisecond

	assert.Equal(t, base, calculateBackoffWithJitter(base, 0))
	for attempt := 1; attempt <= 3; attempt++ {
		backoff := calculateBackoffWithJitter(base, attempt)
		expected := base * time.Duration(1<<uint(attempt-1))
		assert.GreaterOrEqual(t, backoff, expected)
		assert.Less(t, backoff, expected+expected/2)
	}

	// Must not panic with a zero base
	assert.Equal(t, time.Duration(0), calculateBackoffWithJitter(0, 2))
}
