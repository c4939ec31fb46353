// Package storage provides the MySQL connection facility shared by the
// route groups and the startup dependency check.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/go-sql-driver/mysql"
	"go.uber.org/zap"

	"github.com/AleRxjs/TianguiStore-Tienda-en--Linea/config"
)

// MySQL holds the shared database handle. Pooling and locking are the
// driver's responsibility; this type only owns construction, the startup
// health check, and teardown.
type MySQL struct {
	DB     *sql.DB
	Config *config.Config
	Logger *zap.SugaredLogger
}

// NewMySQL opens the connection pool described by the configuration.
// Opening is lazy: no network round trip happens until the first query,
// so reachability is established by HealthCheck, not here.
func NewMySQL(cfg *config.Config, logger *zap.SugaredLogger) (*MySQL, error) {
	db, err := sql.Open("mysql", DSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to open MySQL connection: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(1 * time.Hour)

	return &MySQL{DB: db, Config: cfg, Logger: logger}, nil
}

// DSN builds the driver connection string from the configuration.
func DSN(cfg *config.Config) string {
	c := mysql.NewConfig()
	c.Net = "tcp"
	c.Addr = net.JoinHostPort(cfg.Database.Host, strconv.Itoa(cfg.Database.Port))
	c.User = cfg.Database.User
	c.Passwd = cfg.Database.Password
	c.DBName = cfg.Database.Name
	c.ParseTime = true
	return c.FormatDSN()
}

// Addr returns the host:port the pool connects to, for operator messages.
func (m *MySQL) Addr() string {
	return net.JoinHostPort(m.Config.Database.Host, strconv.Itoa(m.Config.Database.Port))
}

// HealthCheck issues a single trivial round-trip query against the store.
// One attempt, no retries: the caller decides whether an unreachable
// store is fatal. No timeout is imposed here; bound the context to bound
// the check.
func (m *MySQL) HealthCheck(ctx context.Context) error {
	var one int
	if err := m.DB.QueryRowContext(ctx, "SELECT 1").Scan(&one); err != nil {
		return fmt.Errorf("data store health check failed: %w", err)
	}
	return nil
}

// Close closes the connection pool.
func (m *MySQL) Close() error {
	return m.DB.Close()
}
