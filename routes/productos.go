package routes

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/AleRxjs/TianguiStore-Tienda-en--Linea/storage"
)

// Producto is a published catalog entry.
type Producto struct {
	ID          int64   `json:"producto_id"`
	Nombre      string  `json:"nombre"`
	Descripcion string  `json:"descripcion"`
	Precio      float64 `json:"precio"`
	Stock       int     `json:"stock"`
	ImagenURL   string  `json:"imagen_url"`
}

// Productos serves read-only catalog queries under /productos.
type Productos struct {
	store  *storage.MySQL
	logger *zap.SugaredLogger
}

func NewProductos(store *storage.MySQL, logger *zap.SugaredLogger) *Productos {
	return &Productos{store: store, logger: logger}
}

func (g *Productos) Register(r *mux.Router) {
	r.HandleFunc("", g.list).Methods("GET")
	r.HandleFunc("/", g.list).Methods("GET")
	r.HandleFunc("/{id:[0-9]+}", g.get).Methods("GET")
}

func (g *Productos) list(w http.ResponseWriter, r *http.Request) {
	rows, err := g.store.DB.QueryContext(r.Context(),
		`SELECT producto_id, nombre, COALESCE(descripcion, ''), precio, stock, COALESCE(imagen_url, '')
		 FROM productos WHERE publicado = 1 ORDER BY producto_id LIMIT 100`)
	if err != nil {
		g.logger.Errorw("failed to list products", "error", err)
		http.Error(w, "failed to retrieve products", http.StatusInternalServerError)
		return
	}
	defer rows.Close()

	productos := []Producto{}
	for rows.Next() {
		var p Producto
		if err := rows.Scan(&p.ID, &p.Nombre, &p.Descripcion, &p.Precio, &p.Stock, &p.ImagenURL); err != nil {
			g.logger.Errorw("failed to scan product", "error", err)
			http.Error(w, "failed to retrieve products", http.StatusInternalServerError)
			return
		}
		productos = append(productos, p)
	}
	if err := rows.Err(); err != nil {
		g.logger.Errorw("failed to iterate products", "error", err)
		http.Error(w, "failed to retrieve products", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, productos)
}

func (g *Productos) get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var p Producto
	err := g.store.DB.QueryRowContext(r.Context(),
		`SELECT producto_id, nombre, COALESCE(descripcion, ''), precio, stock, COALESCE(imagen_url, '')
		 FROM productos WHERE producto_id = ? AND publicado = 1`, id).
		Scan(&p.ID, &p.Nombre, &p.Descripcion, &p.Precio, &p.Stock, &p.ImagenURL)
	if errors.Is(err, sql.ErrNoRows) {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "producto no encontrado"})
		return
	}
	if err != nil {
		g.logger.Errorw("failed to get product", "id", id, "error", err)
		http.Error(w, "failed to retrieve product", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, p)
}
