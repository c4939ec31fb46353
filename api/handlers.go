package api

import (
	"encoding/json"
	"net/http"
)

// healthCheck reports process liveness only. It deliberately does not
// consult the data store: dependency readiness is established once at
// startup, and this probe answers as long as the process can run
// request-handling code at all.
func (a *API) healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
