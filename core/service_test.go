package core

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/status-im/market-data/api"
	"github.com/status-im/market-data/config"
)

// lifecycleLog records Start and Stop calls across services
type lifecycleLog struct {
	mu     sync.Mutex
	events []string
}

func (l *lifecycleLog) add(event string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, event)
}

func (l *lifecycleLog) get() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.events...)
}

type loggedService struct {
	name     string
	log      *lifecycleLog
	startErr error
	onStop   func()
}

func (s *loggedService) Start(ctx context.Context) error {
	s.log.add("start:" + s.name)
	return s.startErr
}

func (s *loggedService) Stop() {
	if s.onStop != nil {
		s.onStop()
	}
	s.log.add("stop:" + s.name)
}

func newSQLiteComponents(t *testing.T) *Components {
	t.Helper()
	cfg := config.Default()
	cfg.Storage.Driver = config.StorageDriverSQLite
	cfg.Storage.DSN = filepath.Join(t.TempDir(), "market_data.db")

	components, err := NewComponents(context.Background(), cfg)
	require.NoError(t, err)
	return components
}

func TestStartAll_FailureStopsStartedComponentsAndClosesStore(t *testing.T) {
	ctx := context.Background()
	components := newSQLiteComponents(t)
	log := &lifecycleLog{}

	_, err := components.Cache.GetOrLoad([]string{"markets:bitcoin"}, func(keys []string) (map[string][]byte, error) {
		return map[string][]byte{"markets:bitcoin": []byte(`{"id":"bitcoin"}`)}, nil
	}, true, 0)
	require.NoError(t, err)

	startErr := errors.New("port already in use")
	registry := NewRegistry()
	registry.Register(components)
	registry.Register(components.Cache)
	registry.Register(&loggedService{name: "api", log: log, startErr: startErr})
	registry.Register(&loggedService{name: "never-started", log: log})

	err = registry.StartAll(ctx)
	require.ErrorIs(t, err, startErr)

	// The failed service is not stopped and later ones never start
	assert.Equal(t, []string{"start:api"}, log.get())

	assert.Equal(t, 0, components.Cache.Stats().GoCacheItems, "query cache must be cleared on rollback")
	assert.Error(t, components.Store.Set(ctx, "key", []byte("value")), "store must be closed on rollback")
}

func TestStopAll_ClosesStoreAfterLaterServices(t *testing.T) {
	ctx := context.Background()
	components := newSQLiteComponents(t)
	log := &lifecycleLog{}

	storeWritable := func() {
		if err := components.Store.Set(ctx, "key", []byte("value")); err != nil {
			log.add("store-closed")
		}
	}

	registry := NewRegistry()
	registry.Register(components)
	registry.Register(&loggedService{name: "market-data", log: log, onStop: storeWritable})
	registry.Register(&loggedService{name: "api", log: log, onStop: storeWritable})

	require.NoError(t, registry.StartAll(ctx))
	registry.StopAll()

	assert.Equal(t, []string{"start:market-data", "start:api", "stop:api", "stop:market-data"}, log.get())
	assert.Error(t, components.Store.Set(ctx, "key", []byte("value")))
}

func TestSetup_RegistersServicesWithMemoryStore(t *testing.T) {
	cfg := config.Default()
	cfg.Server.Port = "0"

	registry, err := Setup(context.Background(), cfg)
	require.NoError(t, err)

	// components, cache, market data, refresh reporter, api server
	require.Len(t, registry.services, 5)
	assert.IsType(t, &Components{}, registry.services[0])
	assert.IsType(t, &RefreshReporter{}, registry.services[3])
	assert.IsType(t, &api.Server{}, registry.services[4])
}

func TestNewComponents_UnsupportedDriver(t *testing.T) {
	cfg := config.Default()
	cfg.Storage.Driver = "redis"

	_, err := NewComponents(context.Background(), cfg)
	assert.Error(t, err)
}

func TestNewComponents_SQLiteStore(t *testing.T) {
	components := newSQLiteComponents(t)
	defer components.Stop()

	require.NoError(t, components.Store.Set(context.Background(), "key", []byte("value")))
	require.NotNil(t, components.MarketData)

	state, err := components.MarketData.RefreshState(context.Background())
	require.NoError(t, err)
	assert.True(t, state.LastRefresh.IsZero())
	assert.Zero(t, state.CatalogEntries)
}
