package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/AleRxjs/TianguiStore-Tienda-en--Linea/metrics"
)

// ErrorEnvelope is the structured failure body returned for per-request
// errors. Detail is populated only in development mode so internals never
// leak from a deployed server.
type ErrorEnvelope struct {
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

// writeErrorEnvelope writes an error envelope with the given status.
func (a *API) writeErrorEnvelope(w http.ResponseWriter, status int, message string, err error) {
	env := ErrorEnvelope{Message: message}
	if a.config.IsDevelopment() && err != nil {
		env.Detail = err.Error()
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(env)
}

// errorBoundary is the outermost pipeline stage and the single recovery
// point for per-request failures. A panic anywhere downstream is caught
// exactly once, logged with the request ID, and converted into a 500
// error envelope; it never propagates to the server loop.
func (a *API) errorBoundary(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			metrics.PanicsRecovered.Inc()
			a.logger.Errorw("panic while handling request",
				"method", r.Method,
				"path", r.URL.Path,
				"request_id", RequestID(r.Context()),
				"panic", rec)

			err, ok := rec.(error)
			if !ok {
				err = fmt.Errorf("%v", rec)
			}
			a.writeErrorEnvelope(w, http.StatusInternalServerError, "internal server error", err)
		}()
		next.ServeHTTP(w, r)
	})
}
