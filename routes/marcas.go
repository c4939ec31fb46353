package routes

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/AleRxjs/TianguiStore-Tienda-en--Linea/storage"
)

// Marca is a product brand.
type Marca struct {
	ID     int64  `json:"marca_id"`
	Nombre string `json:"nombre"`
}

// Marcas serves the brand list under /marcas.
type Marcas struct {
	store  *storage.MySQL
	logger *zap.SugaredLogger
}

func NewMarcas(store *storage.MySQL, logger *zap.SugaredLogger) *Marcas {
	return &Marcas{store: store, logger: logger}
}

func (g *Marcas) Register(r *mux.Router) {
	r.HandleFunc("", g.list).Methods("GET")
	r.HandleFunc("/", g.list).Methods("GET")
}

func (g *Marcas) list(w http.ResponseWriter, r *http.Request) {
	rows, err := g.store.DB.QueryContext(r.Context(),
		`SELECT marca_id, nombre FROM marcas ORDER BY nombre`)
	if err != nil {
		g.logger.Errorw("failed to list brands", "error", err)
		http.Error(w, "failed to retrieve brands", http.StatusInternalServerError)
		return
	}
	defer rows.Close()

	marcas := []Marca{}
	for rows.Next() {
		var m Marca
		if err := rows.Scan(&m.ID, &m.Nombre); err != nil {
			g.logger.Errorw("failed to scan brand", "error", err)
			http.Error(w, "failed to retrieve brands", http.StatusInternalServerError)
			return
		}
		marcas = append(marcas, m)
	}
	if err := rows.Err(); err != nil {
		g.logger.Errorw("failed to iterate brands", "error", err)
		http.Error(w, "failed to retrieve brands", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, marcas)
}
