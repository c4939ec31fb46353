package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/AleRxjs/TianguiStore-Tienda-en--Linea/config"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Database.Host = "127.0.0.1"
	cfg.Database.Port = 3306
	cfg.Database.User = "tianguistore"
	cfg.Database.Password = "secret"
	cfg.Database.Name = "tianguistore"
	return cfg
}

func TestDSN(t *testing.T) {
	dsn := DSN(testConfig())
	assert.Contains(t, dsn, "tianguistore:secret@tcp(127.0.0.1:3306)/tianguistore")
	assert.Contains(t, dsn, "parseTime=true")
}

func TestDSNEmptyPassword(t *testing.T) {
	cfg := testConfig()
	cfg.Database.Password = ""
	assert.Contains(t, DSN(cfg), "tianguistore@tcp(127.0.0.1:3306)/tianguistore")
}

func TestNewMySQLOpensLazily(t *testing.T) {
	// sql.Open must not dial; construction succeeds with no server running.
	m, err := NewMySQL(testConfig(), zap.NewNop().Sugar())
	require.NoError(t, err)
	defer m.Close()

	assert.Equal(t, "127.0.0.1:3306", m.Addr())
}

func TestHealthCheckFailsWhenUnreachable(t *testing.T) {
	cfg := testConfig()
	// Port 1 is never a MySQL server; the dial is refused immediately.
	cfg.Database.Port = 1

	m, err := NewMySQL(cfg, zap.NewNop().Sugar())
	require.NoError(t, err)
	defer m.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = m.HealthCheck(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "health check failed")
}
