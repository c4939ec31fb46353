package routes

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/AleRxjs/TianguiStore-Tienda-en--Linea/storage"
)

// CarritoItem is a cart line with the product data the page renders.
type CarritoItem struct {
	ProductoID int64   `json:"producto_id"`
	Nombre     string  `json:"nombre"`
	Cantidad   int     `json:"cantidad"`
	Precio     float64 `json:"precio"`
}

// Carrito serves cart contents under /carrito. The bare GET /carrito is
// claimed by the page router before this group is consulted; everything
// else under the prefix lands here.
type Carrito struct {
	store  *storage.MySQL
	logger *zap.SugaredLogger
}

func NewCarrito(store *storage.MySQL, logger *zap.SugaredLogger) *Carrito {
	return &Carrito{store: store, logger: logger}
}

func (g *Carrito) Register(r *mux.Router) {
	r.HandleFunc("/items", g.items).Methods("GET")
}

func (g *Carrito) items(w http.ResponseWriter, r *http.Request) {
	usuarioID := r.URL.Query().Get("usuario_id")
	if usuarioID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "usuario_id es requerido"})
		return
	}

	rows, err := g.store.DB.QueryContext(r.Context(),
		`SELECT ci.producto_id, p.nombre, ci.cantidad, p.precio
		 FROM carrito_items ci
		 JOIN productos p ON p.producto_id = ci.producto_id
		 WHERE ci.usuario_id = ?`, usuarioID)
	if err != nil {
		g.logger.Errorw("failed to list cart items", "error", err)
		http.Error(w, "failed to retrieve cart", http.StatusInternalServerError)
		return
	}
	defer rows.Close()

	items := []CarritoItem{}
	for rows.Next() {
		var it CarritoItem
		if err := rows.Scan(&it.ProductoID, &it.Nombre, &it.Cantidad, &it.Precio); err != nil {
			g.logger.Errorw("failed to scan cart item", "error", err)
			http.Error(w, "failed to retrieve cart", http.StatusInternalServerError)
			return
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		g.logger.Errorw("failed to iterate cart items", "error", err)
		http.Error(w, "failed to retrieve cart", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, items)
}
