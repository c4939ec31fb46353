package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/AleRxjs/TianguiStore-Tienda-en--Linea/api"
	"github.com/AleRxjs/TianguiStore-Tienda-en--Linea/config"
)

// stubChecker stands in for the data store during startup tests.
type stubChecker struct {
	err error
}

func (s *stubChecker) HealthCheck(context.Context) error {
	return s.err
}

func testApp(t *testing.T, dep HealthChecker) *App {
	t.Helper()

	cfg := &config.Config{}
	cfg.Environment = config.EnvDevelopment
	cfg.Server.Host = "127.0.0.1"
	cfg.Server.Port = 0 // let the kernel pick a free port
	cfg.Database.Host = "127.0.0.1"
	cfg.Database.Port = 3306
	cfg.API.RateLimit.RequestsPerSecond = 1000
	cfg.API.RateLimit.Burst = 1000
	cfg.Static.Dir = t.TempDir()

	logger := zap.NewNop()
	sugar := logger.Sugar()

	return &App{
		Config:    cfg,
		Logger:    logger,
		Sugar:     sugar,
		APIServer: api.NewAPI(cfg, sugar, nil),
		dep:       dep,
		readyCh:   make(chan struct{}),
	}
}

func TestStartFailsWhenStoreUnreachable(t *testing.T) {
	app := testApp(t, &stubChecker{err: errors.New("dial tcp: connection refused")})

	err := app.Start(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "data store is not reachable")

	// No listener was ever bound and the server never became ready.
	assert.Equal(t, StateNotServing, app.State())
	assert.Empty(t, app.Addr())
	select {
	case <-app.Ready():
		t.Fatal("ready channel closed despite failed startup")
	default:
	}
}

func TestStartBindsAfterSuccessfulCheck(t *testing.T) {
	app := testApp(t, &stubChecker{})
	t.Cleanup(app.Shutdown)

	require.NoError(t, app.Start(context.Background()))

	assert.Equal(t, StateServing, app.State())
	assert.NotEmpty(t, app.Addr())

	select {
	case <-app.Ready():
	case <-time.After(time.Second):
		t.Fatal("ready channel not closed after successful startup")
	}

	resp, err := http.Get(fmt.Sprintf("http://%s/health", app.Addr()))
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok"}`, string(body))
}

func TestClassifyConnectionError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"refused", errors.New("dial tcp 127.0.0.1:3306: connect: connection refused"), "Connection refused"},
		{"no host", errors.New("dial tcp: lookup mysql-interno: no such host"), "Cannot resolve hostname"},
		{"auth", errors.New("Error 1045: Access denied for user 'tianguistore'"), "Authentication failed"},
		{"no schema", errors.New("Error 1049: Unknown database 'tianguistore_db'"), "does not exist"},
		{"other", errors.New("driver: bad connection"), "Failed to connect"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := ClassifyConnectionError(tt.err, "127.0.0.1:3306")
			assert.Contains(t, msg, tt.want)
		})
	}

	assert.Empty(t, ClassifyConnectionError(nil, "127.0.0.1:3306"))
}
