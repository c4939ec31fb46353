// Package api assembles the TianguiStore request pipeline: the middleware
// chain, the route mount table, static pages, the liveness probe, and the
// error boundary that wraps all of it.
package api

import (
	"context"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/AleRxjs/TianguiStore-Tienda-en--Linea/config"
)

// RouteGroup is the capability every mounted route group implements. The
// group attaches its handlers to the subrouter rooted at its mount prefix
// and is otherwise opaque to the front controller.
type RouteGroup interface {
	Register(r *mux.Router)
}

// Mount binds a route group to a fixed URL path prefix. Mounts are tried
// in table order; the first matching prefix wins.
type Mount struct {
	Prefix string
	Group  RouteGroup
}

// pageRoutes maps the bare SPA entry paths to their HTML documents. These
// resolve ahead of the generic static lookup so they work without a file
// extension. "/carrito" the page answers GET and HEAD only; subpaths reach
// the cart route group instead.
var pageRoutes = []struct {
	path string
	file string
}{
	{"/", "index.html"},
	{"/login", "login.html"},
	{"/carrito", "carrito.html"},
	{"/registro", "registro.html"},
}

// API holds the HTTP front controller.
type API struct {
	router  *mux.Router
	handler http.Handler
	server  *http.Server
	config  *config.Config
	logger  *zap.SugaredLogger
	mounts  []Mount

	rateLimiters   map[string]*rateLimiterEntry
	rateLimitersMu sync.Mutex
	stopCh         chan struct{}
}

// NewAPI creates the front controller. The mount table and the middleware
// chain are fixed here and never change afterwards.
func NewAPI(cfg *config.Config, logger *zap.SugaredLogger, mounts []Mount) *API {
	a := &API{
		router:       mux.NewRouter(),
		config:       cfg,
		logger:       logger,
		mounts:       mounts,
		rateLimiters: make(map[string]*rateLimiterEntry),
		stopCh:       make(chan struct{}),
	}
	a.setupRoutes()

	// The chain is assembled by explicit wrapping, outermost first, so
	// the error boundary is structurally guaranteed to be the recovery
	// point and the CORS/security stages also cover preflight requests
	// and unmatched paths.
	a.handler = chain(a.router,
		a.errorBoundary,
		a.requestIDMiddleware,
		a.metricsMiddleware,
		a.securityHeadersMiddleware,
		a.parameterPollutionMiddleware,
		a.corsMiddleware,
		a.rateLimitMiddleware,
		a.jsonBodyMiddleware,
	)

	go a.cleanupRateLimiters()
	return a
}

// chain wraps h with the given middlewares; the first middleware listed
// becomes the outermost.
func chain(h http.Handler, mws ...mux.MiddlewareFunc) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

// setupRoutes registers routes in precedence order: probe and metrics,
// page routes, the mount table, then the static catch-all. The fallback
// handler answers anything that falls through.
func (a *API) setupRoutes() {
	a.router.HandleFunc("/health", a.healthCheck).Methods("GET")
	a.router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	for _, p := range pageRoutes {
		a.router.HandleFunc(p.path, a.servePage(p.file)).Methods("GET", "HEAD")
	}

	for _, m := range a.mounts {
		m.Group.Register(a.router.PathPrefix(m.Prefix).Subrouter())
	}

	a.router.PathPrefix("/").HandlerFunc(a.serveStatic).Methods("GET", "HEAD")

	// Any path or method no route claims gets the same fixed 404 document;
	// a method mismatch is not surfaced as 405.
	a.router.NotFoundHandler = http.HandlerFunc(a.serveNotFound)
	a.router.MethodNotAllowedHandler = http.HandlerFunc(a.serveNotFound)
}

// Handler returns the fully wrapped request pipeline.
func (a *API) Handler() http.Handler {
	return a.handler
}

// Serve serves requests on an already bound listener. The caller owns the
// bind so it can sequence it after the startup dependency check.
func (a *API) Serve(ln net.Listener) error {
	a.server = &http.Server{
		Handler:           a.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return a.server.Serve(ln)
}

// Stop gracefully shuts down the server.
func (a *API) Stop(ctx context.Context) error {
	close(a.stopCh)
	if a.server != nil {
		return a.server.Shutdown(ctx)
	}
	return nil
}
