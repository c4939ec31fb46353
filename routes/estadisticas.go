package routes

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/AleRxjs/TianguiStore-Tienda-en--Linea/storage"
)

// Estadisticas serves store-wide counters under /estadisticas.
type Estadisticas struct {
	store  *storage.MySQL
	logger *zap.SugaredLogger
}

func NewEstadisticas(store *storage.MySQL, logger *zap.SugaredLogger) *Estadisticas {
	return &Estadisticas{store: store, logger: logger}
}

func (g *Estadisticas) Register(r *mux.Router) {
	r.HandleFunc("/resumen", g.resumen).Methods("GET")
}

func (g *Estadisticas) resumen(w http.ResponseWriter, r *http.Request) {
	counts := map[string]int64{}
	for name, query := range map[string]string{
		"productos": `SELECT COUNT(*) FROM productos WHERE publicado = 1`,
		"pedidos":   `SELECT COUNT(*) FROM pedidos`,
		"usuarios":  `SELECT COUNT(*) FROM usuarios`,
	} {
		var n int64
		if err := g.store.DB.QueryRowContext(r.Context(), query).Scan(&n); err != nil {
			g.logger.Errorw("failed to count rows", "table", name, "error", err)
			http.Error(w, "failed to retrieve statistics", http.StatusInternalServerError)
			return
		}
		counts[name] = n
	}

	writeJSON(w, http.StatusOK, counts)
}
