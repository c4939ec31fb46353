package routes

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/AleRxjs/TianguiStore-Tienda-en--Linea/storage"
)

// APITest serves the connectivity probe under /api/test. Unlike /health
// it does consult the data store, so clients can tell "process is up"
// apart from "process can reach the database".
type APITest struct {
	store  *storage.MySQL
	logger *zap.SugaredLogger
}

func NewAPITest(store *storage.MySQL, logger *zap.SugaredLogger) *APITest {
	return &APITest{store: store, logger: logger}
}

func (g *APITest) Register(r *mux.Router) {
	r.HandleFunc("", g.probe).Methods("GET")
	r.HandleFunc("/", g.probe).Methods("GET")
}

func (g *APITest) probe(w http.ResponseWriter, r *http.Request) {
	dbOK := g.store.HealthCheck(r.Context()) == nil
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"ok": true,
		"db": dbOK,
	})
}
