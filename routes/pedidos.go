package routes

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/AleRxjs/TianguiStore-Tienda-en--Linea/storage"
)

// Pedido is an order header.
type Pedido struct {
	ID        int64     `json:"pedido_id"`
	UsuarioID int64     `json:"usuario_id"`
	Fecha     time.Time `json:"fecha_pedido"`
	Total     float64   `json:"total"`
	Estado    string    `json:"estado"`
}

// Pedidos serves recent order headers under /pedidos.
type Pedidos struct {
	store  *storage.MySQL
	logger *zap.SugaredLogger
}

func NewPedidos(store *storage.MySQL, logger *zap.SugaredLogger) *Pedidos {
	return &Pedidos{store: store, logger: logger}
}

func (g *Pedidos) Register(r *mux.Router) {
	r.HandleFunc("", g.list).Methods("GET")
	r.HandleFunc("/", g.list).Methods("GET")
}

func (g *Pedidos) list(w http.ResponseWriter, r *http.Request) {
	rows, err := g.store.DB.QueryContext(r.Context(),
		`SELECT pedido_id, usuario_id, fecha_pedido, total, estado
		 FROM pedidos ORDER BY fecha_pedido DESC LIMIT 50`)
	if err != nil {
		g.logger.Errorw("failed to list orders", "error", err)
		http.Error(w, "failed to retrieve orders", http.StatusInternalServerError)
		return
	}
	defer rows.Close()

	pedidos := []Pedido{}
	for rows.Next() {
		var p Pedido
		if err := rows.Scan(&p.ID, &p.UsuarioID, &p.Fecha, &p.Total, &p.Estado); err != nil {
			g.logger.Errorw("failed to scan order", "error", err)
			http.Error(w, "failed to retrieve orders", http.StatusInternalServerError)
			return
		}
		pedidos = append(pedidos, p)
	}
	if err := rows.Err(); err != nil {
		g.logger.Errorw("failed to iterate orders", "error", err)
		http.Error(w, "failed to retrieve orders", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, pedidos)
}
