package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/AleRxjs/TianguiStore-Tienda-en--Linea/config"
)

// jsonBodyMiddleware enforces the JSON body contract before any route
// handler runs: bodies above the 1 MiB ceiling and malformed JSON are
// both answered with a 400 error envelope. Valid bodies are rewound so
// handlers can decode them normally.
func (a *API) jsonBodyMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body == nil || r.Body == http.NoBody || !isJSONRequest(r) {
			next.ServeHTTP(w, r)
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, config.MaxJSONBodyBytes)
		buf, err := io.ReadAll(r.Body)
		if err != nil {
			a.logger.Warnw("rejected oversized request body",
				"path", r.URL.Path,
				"request_id", RequestID(r.Context()))
			a.writeErrorEnvelope(w, http.StatusBadRequest, "request body exceeds the allowed size", err)
			return
		}

		if len(buf) > 0 && !json.Valid(buf) {
			a.writeErrorEnvelope(w, http.StatusBadRequest, "malformed JSON body", nil)
			return
		}

		r.Body = io.NopCloser(bytes.NewReader(buf))
		r.ContentLength = int64(len(buf))
		next.ServeHTTP(w, r)
	})
}

func isJSONRequest(r *http.Request) bool {
	switch r.Method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return false
	}
	ct := r.Header.Get("Content-Type")
	return strings.HasPrefix(strings.ToLower(ct), "application/json")
}
