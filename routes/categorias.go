package routes

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/AleRxjs/TianguiStore-Tienda-en--Linea/storage"
)

// Categoria groups products for navigation.
type Categoria struct {
	ID          int64  `json:"categoria_id"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
}

// Categorias serves the category list under /categorias.
type Categorias struct {
	store  *storage.MySQL
	logger *zap.SugaredLogger
}

func NewCategorias(store *storage.MySQL, logger *zap.SugaredLogger) *Categorias {
	return &Categorias{store: store, logger: logger}
}

func (g *Categorias) Register(r *mux.Router) {
	r.HandleFunc("", g.list).Methods("GET")
	r.HandleFunc("/", g.list).Methods("GET")
}

func (g *Categorias) list(w http.ResponseWriter, r *http.Request) {
	rows, err := g.store.DB.QueryContext(r.Context(),
		`SELECT categoria_id, nombre, COALESCE(descripcion, '') FROM categorias ORDER BY nombre`)
	if err != nil {
		g.logger.Errorw("failed to list categories", "error", err)
		http.Error(w, "failed to retrieve categories", http.StatusInternalServerError)
		return
	}
	defer rows.Close()

	categorias := []Categoria{}
	for rows.Next() {
		var c Categoria
		if err := rows.Scan(&c.ID, &c.Nombre, &c.Descripcion); err != nil {
			g.logger.Errorw("failed to scan category", "error", err)
			http.Error(w, "failed to retrieve categories", http.StatusInternalServerError)
			return
		}
		categorias = append(categorias, c)
	}
	if err := rows.Err(); err != nil {
		g.logger.Errorw("failed to iterate categories", "error", err)
		http.Error(w, "failed to retrieve categories", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, categorias)
}
