// Package bootstrap composes the TianguiStore server and sequences its
// startup: configuration first, then the one-shot data store check, and
// only after that check succeeds is the network listener bound.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"sync/atomic"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/AleRxjs/TianguiStore-Tienda-en--Linea/api"
	"github.com/AleRxjs/TianguiStore-Tienda-en--Linea/config"
	"github.com/AleRxjs/TianguiStore-Tienda-en--Linea/routes"
	"github.com/AleRxjs/TianguiStore-Tienda-en--Linea/storage"
)

// State is the process lifecycle phase. There are exactly two: the
// process either has not bound its listener yet, or it is serving. There
// is no "serving but degraded" state.
type State int32

const (
	StateNotServing State = iota
	StateServing
)

// HealthChecker is the one-shot reachability probe the startup sequence
// gates on.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// App represents the TianguiStore server with all its components.
type App struct {
	Config    *config.Config
	Logger    *zap.Logger
	Sugar     *zap.SugaredLogger
	Store     *storage.MySQL
	APIServer *api.API

	dep     HealthChecker
	ln      net.Listener
	state   atomic.Int32
	readyCh chan struct{}
}

// NewApp creates the application and initializes all components. Nothing
// here touches the network: construction can fail only on configuration.
func NewApp(ctx context.Context) (*App, error) {
	app := &App{readyCh: make(chan struct{})}

	logger, sugar, err := InitLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	app.Logger = logger
	app.Sugar = sugar

	sugar.Info("TianguiStore server starting...")

	cfg, err := InitConfig(sugar)
	if err != nil {
		return nil, err
	}
	app.Config = cfg

	store, err := InitMySQL(cfg, sugar)
	if err != nil {
		return nil, err
	}
	app.Store = store
	app.dep = store

	app.APIServer = api.NewAPI(cfg, sugar, routes.MountTable(store, sugar))

	return app, nil
}

// Start runs the dependency check and, only if it succeeds, binds the
// listener and begins serving. On failure no listener is ever bound and
// the state stays at not-serving; the caller is expected to exit
// non-zero.
func (a *App) Start(ctx context.Context) error {
	addr := net.JoinHostPort(a.Config.Database.Host, strconv.Itoa(a.Config.Database.Port))
	a.Sugar.Infow("checking data store reachability", "addr", addr)

	if err := a.dep.HealthCheck(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "\n========================================\n")
		fmt.Fprintf(os.Stderr, "FATAL: Data Store Unreachable\n")
		fmt.Fprintf(os.Stderr, "========================================\n")
		fmt.Fprintf(os.Stderr, "%s\n", ClassifyConnectionError(err, addr))
		fmt.Fprintf(os.Stderr, "========================================\n\n")
		return fmt.Errorf("data store is not reachable: %w", err)
	}
	a.Sugar.Info("data store reachable")

	listenAddr := net.JoinHostPort(a.Config.Server.Host, strconv.Itoa(a.Config.Server.Port))
	ln, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return fmt.Errorf("failed to bind listener on %s: %w", listenAddr, err)
	}
	a.ln = ln

	a.state.Store(int32(StateServing))
	close(a.readyCh)
	a.Sugar.Infow("server ready",
		"addr", ln.Addr().String(),
		"environment", string(a.Config.Environment))

	go func() {
		if err := a.APIServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.Sugar.Errorf("server error: %v", err)
		}
	}()

	return nil
}

// State returns the current lifecycle phase.
func (a *App) State() State {
	return State(a.state.Load())
}

// Ready returns a channel closed exactly once, at the moment the
// listener is bound. It never closes if startup fails.
func (a *App) Ready() <-chan struct{} {
	return a.readyCh
}

// Addr returns the bound listener address, or "" before Start succeeds.
func (a *App) Addr() string {
	if a.ln == nil {
		return ""
	}
	return a.ln.Addr().String()
}

// WaitForShutdown blocks until a shutdown signal is received.
func (a *App) WaitForShutdown() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c
}

// Shutdown gracefully shuts down all components.
func (a *App) Shutdown() {
	a.Sugar.Info("Shutting down...")

	if a.APIServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := a.APIServer.Stop(ctx); err != nil {
			a.Sugar.Errorw("Failed to stop API server", "error", err)
		}
	}

	if a.Store != nil {
		if err := a.Store.Close(); err != nil {
			a.Sugar.Errorw("Failed to close data store", "error", err)
		}
	}

	a.Sugar.Info("Shutdown complete")
	_ = a.Logger.Sync()
}
