package handler

import (
	"net/http"
	"path/filepath"
)

// mountStatic serves "/" as index.html, "/dashboard" as dashboard.html and
// anything else from dir.
func mountStatic(mux *http.ServeMux, dir string) {
	page := func(name string) http.HandlerFunc {
		path := filepath.Join(dir, name)
		return func(w http.ResponseWriter, r *http.Request) {
			http.ServeFile(w, r, path)
		}
	}
	mux.Handle("GET /{$}", page("index.html"))
	mux.Handle("GET /dashboard", page("dashboard.html"))
	mux.Handle("/", http.FileServer(http.Dir(dir)))
}
