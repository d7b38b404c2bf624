package shop

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

const ItemsPath = "/api/shop/items"

type Handler struct {
	catalog *Catalog
}

func NewHandler(c *Catalog) *Handler {
	return &Handler{catalog: c}
}

// Routes returns the shop's http routes. Requests with any other method
// than GET get a 405 from the mux.
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET "+ItemsPath, h.listItems)
	return mux
}

func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	if err := json.NewEncoder(w).Encode(h.catalog.Listings()); err != nil {
		slog.WarnContext(r.Context(), "writing item listing", "remote", r.RemoteAddr, "error", err)
	}
}
