package api

import (
	"net/http"

	"github.com/erazemk/katalog/internal/store"
)

// placeholder is the body served at the root path.
const placeholder = "Placeholder Text"

// NewRouter creates the router with all endpoints registered.
func NewRouter(s *store.Store) http.Handler {
	mux := http.NewServeMux()

	itemsHandler := &ItemsHandler{Store: s}

	mux.HandleFunc("GET /{$}", index)

	mux.Handle("GET /api", handle(itemsHandler.List))
	mux.Handle("POST /api", handle(itemsHandler.Create))
	mux.Handle("GET /api/{id}", handle(itemsHandler.Get))
	mux.Handle("PATCH /api/{id}", handle(itemsHandler.Update))
	mux.Handle("DELETE /api/{id}", handle(itemsHandler.Delete))

	// Everything the routes above don't match still gets a JSON envelope.
	mux.Handle("/{$}", handle(notAllowed("GET", "HEAD")))
	mux.Handle("/api", handle(notAllowed("GET", "HEAD", "POST")))
	mux.Handle("/api/{id}", handle(notAllowed("GET", "HEAD", "PATCH", "DELETE")))
	mux.Handle("/", handle(noRoute))

	return mux
}

// index handles GET /.
func index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(placeholder))
}
