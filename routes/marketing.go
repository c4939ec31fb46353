package routes

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/AleRxjs/TianguiStore-Tienda-en--Linea/storage"
)

// Cupon is an active discount coupon.
type Cupon struct {
	ID        int64   `json:"cupon_id"`
	Codigo    string  `json:"codigo"`
	Descuento float64 `json:"descuento_porcentaje"`
}

// Marketing serves promotion data under /marketing.
type Marketing struct {
	store  *storage.MySQL
	logger *zap.SugaredLogger
}

func NewMarketing(store *storage.MySQL, logger *zap.SugaredLogger) *Marketing {
	return &Marketing{store: store, logger: logger}
}

func (g *Marketing) Register(r *mux.Router) {
	r.HandleFunc("/cupones", g.cupones).Methods("GET")
}

func (g *Marketing) cupones(w http.ResponseWriter, r *http.Request) {
	rows, err := g.store.DB.QueryContext(r.Context(),
		`SELECT cupon_id, codigo, descuento_porcentaje FROM cupones WHERE activo = 1 ORDER BY codigo`)
	if err != nil {
		g.logger.Errorw("failed to list coupons", "error", err)
		http.Error(w, "failed to retrieve coupons", http.StatusInternalServerError)
		return
	}
	defer rows.Close()

	cupones := []Cupon{}
	for rows.Next() {
		var c Cupon
		if err := rows.Scan(&c.ID, &c.Codigo, &c.Descuento); err != nil {
			g.logger.Errorw("failed to scan coupon", "error", err)
			http.Error(w, "failed to retrieve coupons", http.StatusInternalServerError)
			return
		}
		cupones = append(cupones, c)
	}
	if err := rows.Err(); err != nil {
		g.logger.Errorw("failed to iterate coupons", "error", err)
		http.Error(w, "failed to retrieve coupons", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, cupones)
}
