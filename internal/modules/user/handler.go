package user

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fightwisdom/storefront-backend/internal/httpx"
)

// Handler exposes user HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(router *chi.Mux, protect, adminOnly func(http.Handler) http.Handler) {
	router.Route("/api/v1/users", func(r chi.Router) {
		r.Use(protect)
		r.Get("/profile", h.getProfile)
		r.Put("/profile", h.updateProfile)
	})
	router.Route("/api/v1/admin/users", func(r chi.Router) {
		r.Use(protect, adminOnly)
		r.Get("/", h.listUsers)
		r.Delete("/{id}", h.deleteUser)
		r.Put("/{id}/block", h.blockUser)
	})
}

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	id, ok := httpx.IdentityFrom(r.Context())
	if !ok {
		respond(w, http.StatusUnauthorized, map[string]string{"error": "not authorized"})
		return
	}
	u, err := h.service.GetProfile(r.Context(), id.UserID.String())
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, u)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	id, ok := httpx.IdentityFrom(r.Context())
	if !ok {
		respond(w, http.StatusUnauthorized, map[string]string{"error": "not authorized"})
		return
	}
	var req UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	u, err := h.service.UpdateProfile(r.Context(), id.UserID.String(), req)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, u)
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.ListUsers(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, users)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteUser(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, map[string]string{"status": "user deleted"})
}

func (h *Handler) blockUser(w http.ResponseWriter, r *http.Request) {
	var req BlockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	u, err := h.service.BlockUser(r.Context(), chi.URLParam(r, "id"), req.IsBlocked)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, u)
}

func respondError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrNotFound) {
		respond(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
