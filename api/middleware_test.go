package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/AleRxjs/TianguiStore-Tienda-en--Linea/config"
)

func TestSecurityHeaders(t *testing.T) {
	a := newTestAPI(t, config.EnvDevelopment)

	w := httptest.NewRecorder()
	a.Handler().ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))

	h := w.Header()
	assert.Equal(t, "nosniff", h.Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", h.Get("X-Frame-Options"))
	assert.Equal(t, "no-referrer", h.Get("Referrer-Policy"))
	assert.Contains(t, h.Get("Content-Security-Policy"), "default-src 'self'")
	assert.Empty(t, h.Get("X-Powered-By"))
}

func TestHSTSOnlyOutsideDevelopment(t *testing.T) {
	dev := newTestAPI(t, config.EnvDevelopment)
	w := httptest.NewRecorder()
	dev.Handler().ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))
	assert.Empty(t, w.Header().Get("Strict-Transport-Security"))

	prod := newTestAPI(t, config.EnvProduction)
	w = httptest.NewRecorder()
	prod.Handler().ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))
	assert.Equal(t, "max-age=31536000; includeSubDomains; preload",
		w.Header().Get("Strict-Transport-Security"))
}

func TestSecurityHeadersCoverFallback(t *testing.T) {
	a := newTestAPI(t, config.EnvDevelopment)

	w := httptest.NewRecorder()
	a.Handler().ServeHTTP(w, httptest.NewRequest("GET", "/no/existe", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.NotEmpty(t, w.Header().Get("Content-Security-Policy"))
}

func TestCORSDevelopmentAllowsAnyOrigin(t *testing.T) {
	a := newTestAPI(t, config.EnvDevelopment)

	req := httptest.NewRequest("GET", "/health", nil)
	req.Header.Set("Origin", "https://cualquier.example.net")
	w := httptest.NewRecorder()
	a.Handler().ServeHTTP(w, req)

	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORSProductionOnlyConfiguredOrigin(t *testing.T) {
	a := newTestAPI(t, config.EnvProduction)

	req := httptest.NewRequest("GET", "/health", nil)
	req.Header.Set("Origin", "https://tienda.example.com")
	w := httptest.NewRecorder()
	a.Handler().ServeHTTP(w, req)

	assert.Equal(t, "https://tienda.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
	assert.Contains(t, w.Header().Values("Vary"), "Origin")

	req = httptest.NewRequest("GET", "/health", nil)
	req.Header.Set("Origin", "https://malicioso.example.net")
	w = httptest.NewRecorder()
	a.Handler().ServeHTTP(w, req)

	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	// The rejected branch still varies by Origin, so shared caches never
	// replay a response carrying another origin's headers.
	assert.Contains(t, w.Header().Values("Vary"), "Origin")
}

func TestPreflightShortCircuits(t *testing.T) {
	a := newTestAPI(t, config.EnvDevelopment)

	// Even a path no route matches gets a preflight answer, since CORS
	// runs outside the router.
	req := httptest.NewRequest("OPTIONS", "/api/lo-que-sea", nil)
	req.Header.Set("Origin", "https://cualquier.example.net")
	w := httptest.NewRecorder()
	a.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "OPTIONS")
}

func TestParameterPollutionLastValueWins(t *testing.T) {
	var seen []string
	g := &queryEchoGroup{key: "orden", out: &seen}
	a := newTestAPI(t, config.EnvDevelopment, Mount{Prefix: "/api", Group: g})

	w := httptest.NewRecorder()
	a.Handler().ServeHTTP(w, httptest.NewRequest("GET", "/api/eco?orden=precio&orden=nombre", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, seen, 1)
	assert.Equal(t, "nombre", seen[0])
}

type queryEchoGroup struct {
	key string
	out *[]string
}

func (g *queryEchoGroup) Register(r *mux.Router) {
	r.HandleFunc("/eco", func(w http.ResponseWriter, r *http.Request) {
		*g.out = r.URL.Query()[g.key]
	})
}

func TestParameterPollutionCollapsesFormBody(t *testing.T) {
	var seen []string
	g := &formEchoGroup{key: "orden", out: &seen}
	a := newTestAPI(t, config.EnvDevelopment, Mount{Prefix: "/api", Group: g})

	req := httptest.NewRequest("POST", "/api/eco", strings.NewReader("orden=precio&orden=nombre&pagina=2"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	a.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, seen, 1)
	assert.Equal(t, "nombre", seen[0])
}

type formEchoGroup struct {
	key string
	out *[]string
}

func (g *formEchoGroup) Register(r *mux.Router) {
	r.HandleFunc("/eco", func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		*g.out = r.PostForm[g.key]
	}).Methods("POST")
}

func TestRequestIDAssignedAndEchoed(t *testing.T) {
	a := newTestAPI(t, config.EnvDevelopment)

	w := httptest.NewRecorder()
	a.Handler().ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	req := httptest.NewRequest("GET", "/health", nil)
	req.Header.Set("X-Request-ID", "id-fijo")
	w = httptest.NewRecorder()
	a.Handler().ServeHTTP(w, req)
	assert.Equal(t, "id-fijo", w.Header().Get("X-Request-ID"))
}

func TestRateLimitReturns429(t *testing.T) {
	cfg := testConfig(t, config.EnvDevelopment)
	cfg.API.RateLimit.RequestsPerSecond = 1
	cfg.API.RateLimit.Burst = 1
	a := NewAPI(cfg, zap.NewNop().Sugar(), nil)
	t.Cleanup(func() { close(a.stopCh) })

	req := httptest.NewRequest("GET", "/health", nil)
	req.RemoteAddr = "10.0.0.1:1234"

	w := httptest.NewRecorder()
	a.Handler().ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	a.Handler().ServeHTTP(w, req)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	// A different client keeps its own budget.
	other := httptest.NewRequest("GET", "/health", nil)
	other.RemoteAddr = "10.0.0.2:1234"
	w = httptest.NewRecorder()
	a.Handler().ServeHTTP(w, other)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestJSONBodyOversizedRejected(t *testing.T) {
	a := newTestAPI(t, config.EnvDevelopment)

	body := `{"relleno":"` + strings.Repeat("x", config.MaxJSONBodyBytes) + `"}`
	req := httptest.NewRequest("POST", "/api/nada", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	a.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var env ErrorEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, "request body exceeds the allowed size", env.Message)
}

func TestJSONBodyMalformedRejected(t *testing.T) {
	a := newTestAPI(t, config.EnvDevelopment)

	req := httptest.NewRequest("POST", "/api/nada", strings.NewReader(`{"abierto":`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	a.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var env ErrorEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, "malformed JSON body", env.Message)
}

func TestJSONBodyValidReachesHandler(t *testing.T) {
	var got string
	g := &bodyEchoGroup{out: &got}
	a := newTestAPI(t, config.EnvDevelopment, Mount{Prefix: "/api", Group: g})

	req := httptest.NewRequest("POST", "/api/eco", strings.NewReader(`{"nombre":"café"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	a.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `{"nombre":"café"}`, got)
}

func TestNonJSONBodyPassesThrough(t *testing.T) {
	var got string
	g := &bodyEchoGroup{out: &got}
	a := newTestAPI(t, config.EnvDevelopment, Mount{Prefix: "/api", Group: g})

	// Not JSON: the parser must not touch it, malformed or not.
	req := httptest.NewRequest("POST", "/api/eco", strings.NewReader("a=1&b=2"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	a.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "a=1&b=2", got)
}

type bodyEchoGroup struct {
	out *string
}

func (g *bodyEchoGroup) Register(r *mux.Router) {
	r.HandleFunc("/eco", func(w http.ResponseWriter, r *http.Request) {
		buf, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		*g.out = string(buf)
	}).Methods("POST")
}
