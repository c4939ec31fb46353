package routes

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/AleRxjs/TianguiStore-Tienda-en--Linea/storage"
)

// Configuracion serves the public site settings under /configuracion.
type Configuracion struct {
	store  *storage.MySQL
	logger *zap.SugaredLogger
}

func NewConfiguracion(store *storage.MySQL, logger *zap.SugaredLogger) *Configuracion {
	return &Configuracion{store: store, logger: logger}
}

func (g *Configuracion) Register(r *mux.Router) {
	r.HandleFunc("", g.list).Methods("GET")
	r.HandleFunc("/", g.list).Methods("GET")
}

func (g *Configuracion) list(w http.ResponseWriter, r *http.Request) {
	rows, err := g.store.DB.QueryContext(r.Context(),
		`SELECT clave, valor FROM configuraciones WHERE publica = 1 ORDER BY clave`)
	if err != nil {
		g.logger.Errorw("failed to list settings", "error", err)
		http.Error(w, "failed to retrieve settings", http.StatusInternalServerError)
		return
	}
	defer rows.Close()

	settings := map[string]string{}
	for rows.Next() {
		var clave, valor string
		if err := rows.Scan(&clave, &valor); err != nil {
			g.logger.Errorw("failed to scan setting", "error", err)
			http.Error(w, "failed to retrieve settings", http.StatusInternalServerError)
			return
		}
		settings[clave] = valor
	}
	if err := rows.Err(); err != nil {
		g.logger.Errorw("failed to iterate settings", "error", err)
		http.Error(w, "failed to retrieve settings", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, settings)
}
