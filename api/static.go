package api

import (
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
)

// servePage returns a handler for one of the fixed entry pages.
func (a *API) servePage(file string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, filepath.Join(a.config.Static.Dir, file))
	}
}

// serveStatic resolves the request path against the public directory and
// serves the file verbatim. Anything that does not resolve to a regular
// file falls to the fallback handler.
func (a *API) serveStatic(w http.ResponseWriter, r *http.Request) {
	// Clean with a leading slash so ".." cannot escape the public dir.
	p := path.Clean("/" + r.URL.Path)
	full := filepath.Join(a.config.Static.Dir, filepath.FromSlash(p))

	info, err := os.Stat(full)
	if err != nil || info.IsDir() {
		a.serveNotFound(w, r)
		return
	}
	http.ServeFile(w, r, full)
}

// serveNotFound is the terminal stage for requests no earlier stage
// claimed: a fixed not-found document with status 404. Expected traffic,
// not logged as an error.
func (a *API) serveNotFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)

	body, err := os.ReadFile(filepath.Join(a.config.Static.Dir, "404.html"))
	if err != nil {
		_, _ = io.WriteString(w, "<h1>404 - Recurso no encontrado</h1>")
		return
	}
	_, _ = w.Write(body)
}
