package api

import (
	"bytes"
	"context"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/AleRxjs/TianguiStore-Tienda-en--Linea/metrics"
)

// contentSecurityPolicy restricts sub-resource origins to self plus the
// CDNs the storefront pages load Bootstrap, icons, and fonts from. Images
// additionally allow inline data URIs for generated thumbnails.
const contentSecurityPolicy = "default-src 'self'; " +
	"script-src 'self' https://cdn.jsdelivr.net https://cdnjs.cloudflare.com; " +
	"style-src 'self' 'unsafe-inline' https://cdn.jsdelivr.net https://fonts.googleapis.com; " +
	"font-src 'self' https://fonts.gstatic.com; " +
	"img-src 'self' data:"

type contextKey string

const requestIDKey contextKey = "request_id"

// RequestID returns the request ID attached by the pipeline, or "".
func RequestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}

// requestIDMiddleware tags every request with an ID for log correlation.
func (a *API) requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey, id)))
	})
}

// statusRecorder captures the status code written downstream.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

// metricsMiddleware records request counts and latency.
func (a *API) metricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		metrics.HTTPRequestDuration.Observe(time.Since(start).Seconds())
		metrics.HTTPRequestsTotal.WithLabelValues(r.Method, http.StatusText(rec.status)).Inc()
	})
}

// securityHeadersMiddleware shapes the response headers independent of
// any route: no framework fingerprint, a fixed content security policy,
// and HSTS everywhere except development so local HTTP testing keeps
// working.
func (a *API) securityHeadersMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Del("X-Powered-By")
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "no-referrer")
		h.Set("Content-Security-Policy", contentSecurityPolicy)
		if !a.config.IsDevelopment() {
			h.Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains; preload")
		}
		next.ServeHTTP(w, r)
	})
}

// parameterPollutionMiddleware collapses repeated keys in the query string
// and in urlencoded form bodies so handlers always see a single value per
// key. Policy: the last occurrence wins. JSON bodies need no handling, as
// decoding is inherently last-wins for duplicate object keys.
func (a *API) parameterPollutionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if collapseRepeatedKeys(q) {
			r.URL.RawQuery = q.Encode()
		}

		if isFormRequest(r) && r.Body != nil && r.Body != http.NoBody {
			if buf, err := io.ReadAll(r.Body); err == nil {
				if form, perr := url.ParseQuery(string(buf)); perr == nil && collapseRepeatedKeys(form) {
					buf = []byte(form.Encode())
				}
				r.Body = io.NopCloser(bytes.NewReader(buf))
				r.ContentLength = int64(len(buf))
			}
		}

		next.ServeHTTP(w, r)
	})
}

func collapseRepeatedKeys(vals url.Values) bool {
	changed := false
	for k, vs := range vals {
		if len(vs) > 1 {
			vals[k] = []string{vs[len(vs)-1]}
			changed = true
		}
	}
	return changed
}

func isFormRequest(r *http.Request) bool {
	switch r.Method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return false
	}
	ct := r.Header.Get("Content-Type")
	return strings.HasPrefix(strings.ToLower(ct), "application/x-www-form-urlencoded")
}

// corsMiddleware applies the cross-origin policy: any origin in
// development, only the configured origin (with credentials) otherwise.
// Preflight requests short-circuit here.
func (a *API) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if a.config.IsDevelopment() {
			w.Header().Set("Access-Control-Allow-Origin", "*")
		} else {
			// The response differs by request Origin whether or not it is
			// allowed, so caches must key on it either way.
			w.Header().Add("Vary", "Origin")
			if origin := r.Header.Get("Origin"); origin != "" && origin == a.config.CORS.AllowedOrigin {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Credentials", "true")
			}
		}
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// rateLimiterEntry holds a per-client limiter with last seen time.
type rateLimiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// rateLimitMiddleware provides rate limiting per client IP.
func (a *API) rateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r)
		a.rateLimitersMu.Lock()
		entry, exists := a.rateLimiters[ip]
		if !exists {
			entry = &rateLimiterEntry{
				limiter: rate.NewLimiter(
					rate.Limit(a.config.API.RateLimit.RequestsPerSecond),
					a.config.API.RateLimit.Burst,
				),
				lastSeen: time.Now(),
			}
			a.rateLimiters[ip] = entry
		} else {
			entry.lastSeen = time.Now()
		}
		limiter := entry.limiter
		a.rateLimitersMu.Unlock()

		if !limiter.Allow() {
			metrics.RequestsRateLimited.Inc()
			http.Error(w, "Too many requests", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// cleanupRateLimiters periodically drops limiters for clients not seen
// in a while to bound memory.
func (a *API) cleanupRateLimiters() {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			a.rateLimitersMu.Lock()
			for ip, entry := range a.rateLimiters {
				if time.Since(entry.lastSeen) > 1*time.Hour {
					delete(a.rateLimiters, ip)
				}
			}
			a.rateLimitersMu.Unlock()
		case <-a.stopCh:
			return
		}
	}
}

// clientIP extracts the client host from the connection address.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
