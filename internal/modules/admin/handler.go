package admin

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handler exposes admin dashboard HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(router *chi.Mux, protect, adminOnly func(http.Handler) http.Handler) {
	router.Route("/api/v1/admin/stats", func(r chi.Router) {
		r.Use(protect, adminOnly)
		r.Get("/", h.getStats)
	})
}

func (h *Handler) getStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.GetStats(r.Context())
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}
	respond(w, http.StatusOK, stats)
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
