package e2etest

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/status-im/market-data/core"
)

// TestEnv is a running server wired against a MockServer
type TestEnv struct {
	Registry      *core.Registry
	MockServer    *MockServer
	CancelFunc    context.CancelFunc
	ServerBaseURL string
	DSN           string
}

// SetupTest starts the full stack with a fresh sqlite database
func SetupTest(t *testing.T) *TestEnv {
	mockServer := NewMockServer()
	t.Cleanup(mockServer.Close)
	return SetupTestWith(t, mockServer, filepath.Join(t.TempDir(), "market_data.db"))
}

// SetupTestWith starts the full stack on an existing mock server and database
func SetupTestWith(t *testing.T, mockServer *MockServer, dsn string) *TestEnv {
	port := freePort(t)
	cfg, err := loadTestConfig(t.TempDir(), mockServer.GetURL(), dsn, port)
	require.NoError(t, err, "Failed to load test config")

	ctx, cancel := context.WithCancel(context.Background())

	registry, err := core.Setup(ctx, cfg)
	if err != nil {
		cancel()
		t.Fatalf("Failed to setup services: %v", err)
	}

	if err := registry.StartAll(ctx); err != nil {
		cancel()
		t.Fatalf("Failed to start services: %v", err)
	}

	env := &TestEnv{
		Registry:      registry,
		MockServer:    mockServer,
		CancelFunc:    cancel,
		ServerBaseURL: fmt.Sprintf("http://localhost:%s", port),
		DSN:           dsn,
	}

	require.Eventually(t, func() bool {
		resp, err := http.Get(env.ServerBaseURL + "/health")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 50*time.Millisecond, "Server not responding")

	return env
}

// TearDown stops every service
func (env *TestEnv) TearDown() {
	if env.Registry != nil {
		env.Registry.StopAll()
	}
	if env.CancelFunc != nil {
		env.CancelFunc()
	}
}

func freePort(t *testing.T) string {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer listener.Close()
	return strconv.Itoa(listener.Addr().(*net.TCPAddr).Port)
}
