package routes

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/AleRxjs/TianguiStore-Tienda-en--Linea/storage"
)

// Usuario is the public slice of an account record. Credentials never
// leave the database through this group.
type Usuario struct {
	ID     int64  `json:"usuario_id"`
	Correo string `json:"correo_electronico"`
	Nombre string `json:"nombre"`
}

// Usuarios serves the account directory under /usuarios.
type Usuarios struct {
	store  *storage.MySQL
	logger *zap.SugaredLogger
}

func NewUsuarios(store *storage.MySQL, logger *zap.SugaredLogger) *Usuarios {
	return &Usuarios{store: store, logger: logger}
}

func (g *Usuarios) Register(r *mux.Router) {
	r.HandleFunc("", g.list).Methods("GET")
	r.HandleFunc("/", g.list).Methods("GET")
}

func (g *Usuarios) list(w http.ResponseWriter, r *http.Request) {
	rows, err := g.store.DB.QueryContext(r.Context(),
		`SELECT usuario_id, correo_electronico, COALESCE(nombre, '')
		 FROM usuarios ORDER BY usuario_id LIMIT 100`)
	if err != nil {
		g.logger.Errorw("failed to list users", "error", err)
		http.Error(w, "failed to retrieve users", http.StatusInternalServerError)
		return
	}
	defer rows.Close()

	usuarios := []Usuario{}
	for rows.Next() {
		var u Usuario
		if err := rows.Scan(&u.ID, &u.Correo, &u.Nombre); err != nil {
			g.logger.Errorw("failed to scan user", "error", err)
			http.Error(w, "failed to retrieve users", http.StatusInternalServerError)
			return
		}
		usuarios = append(usuarios, u)
	}
	if err := rows.Err(); err != nil {
		g.logger.Errorw("failed to iterate users", "error", err)
		http.Error(w, "failed to retrieve users", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, usuarios)
}
