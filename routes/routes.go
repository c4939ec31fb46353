// Package routes contains the route groups mounted by the front
// controller. Each group attaches its handlers to the subrouter rooted at
// its mount prefix; the front controller never looks inside a group.
package routes

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/AleRxjs/TianguiStore-Tienda-en--Linea/api"
	"github.com/AleRxjs/TianguiStore-Tienda-en--Linea/storage"
)

// MountTable builds the ordered route mount table. The order is fixed at
// startup and matching is first-prefix-wins, so more specific prefixes
// would have to precede overlapping general ones; today no two prefixes
// overlap.
func MountTable(store *storage.MySQL, logger *zap.SugaredLogger) []api.Mount {
	return []api.Mount{
		{Prefix: "/auth", Group: NewAuth(logger)},
		{Prefix: "/productos", Group: NewProductos(store, logger)},
		{Prefix: "/carrito", Group: NewCarrito(store, logger)},
		{Prefix: "/pedidos", Group: NewPedidos(store, logger)},
		{Prefix: "/categorias", Group: NewCategorias(store, logger)},
		{Prefix: "/marcas", Group: NewMarcas(store, logger)},
		{Prefix: "/marketing", Group: NewMarketing(store, logger)},
		{Prefix: "/usuarios", Group: NewUsuarios(store, logger)},
		{Prefix: "/configuracion", Group: NewConfiguracion(store, logger)},
		{Prefix: "/estadisticas", Group: NewEstadisticas(store, logger)},
		{Prefix: "/api/test", Group: NewAPITest(store, logger)},
	}
}

// writeJSON writes v as a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
