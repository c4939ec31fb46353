package routes

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// Auth owns the /auth prefix. Credential and session handling live
// outside this server, so the endpoints answer 501 with a stable body.
type Auth struct {
	logger *zap.SugaredLogger
}

func NewAuth(logger *zap.SugaredLogger) *Auth {
	return &Auth{logger: logger}
}

func (g *Auth) Register(r *mux.Router) {
	r.HandleFunc("/login", g.notImplemented).Methods("POST")
	r.HandleFunc("/registro", g.notImplemented).Methods("POST")
}

func (g *Auth) notImplemented(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotImplemented, map[string]string{
		"message": "autenticación no disponible en este servidor",
	})
}
