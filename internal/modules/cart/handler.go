package cart

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/fightwisdom/storefront-backend/internal/httpx"
)

// Handler exposes cart and wishlist HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(router *chi.Mux, protect func(http.Handler) http.Handler) {
	router.Route("/api/v1/cart", func(r chi.Router) {
		r.Use(protect)
		r.Get("/", h.getCart)
		r.Post("/", h.addToCart)
		r.Put("/", h.updateCart)
		r.Delete("/", h.removeFromCart)
	})
	router.Route("/api/v1/wishlist", func(r chi.Router) {
		r.Use(protect)
		r.Get("/", h.getWishlist)
		r.Post("/", h.addToWishlist)
		r.Delete("/", h.removeFromWishlist)
	})
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	id, ok := httpx.IdentityFrom(r.Context())
	if !ok {
		respond(w, http.StatusUnauthorized, map[string]string{"error": "not authorized"})
		return
	}
	c, err := h.service.GetCart(r.Context(), id.UserID.String())
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, c)
}

func (h *Handler) addToCart(w http.ResponseWriter, r *http.Request) {
	id, ok := httpx.IdentityFrom(r.Context())
	if !ok {
		respond(w, http.StatusUnauthorized, map[string]string{"error": "not authorized"})
		return
	}
	var req ItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	c, err := h.service.AddToCart(r.Context(), id.UserID.String(), req)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, c)
}

func (h *Handler) updateCart(w http.ResponseWriter, r *http.Request) {
	id, ok := httpx.IdentityFrom(r.Context())
	if !ok {
		respond(w, http.StatusUnauthorized, map[string]string{"error": "not authorized"})
		return
	}
	var req ItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	c, err := h.service.UpdateCart(r.Context(), id.UserID.String(), req)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, c)
}

func (h *Handler) removeFromCart(w http.ResponseWriter, r *http.Request) {
	id, ok := httpx.IdentityFrom(r.Context())
	if !ok {
		respond(w, http.StatusUnauthorized, map[string]string{"error": "not authorized"})
		return
	}
	var req ItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	c, err := h.service.RemoveFromCart(r.Context(), id.UserID.String(), req.ProductID)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, c)
}

func (h *Handler) getWishlist(w http.ResponseWriter, r *http.Request) {
	id, ok := httpx.IdentityFrom(r.Context())
	if !ok {
		respond(w, http.StatusUnauthorized, map[string]string{"error": "not authorized"})
		return
	}
	items, err := h.service.GetWishlist(r.Context(), id.UserID.String())
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, items)
}

func (h *Handler) addToWishlist(w http.ResponseWriter, r *http.Request) {
	id, ok := httpx.IdentityFrom(r.Context())
	if !ok {
		respond(w, http.StatusUnauthorized, map[string]string{"error": "not authorized"})
		return
	}
	var req ItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	items, err := h.service.AddToWishlist(r.Context(), id.UserID.String(), req.ProductID)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, items)
}

func (h *Handler) removeFromWishlist(w http.ResponseWriter, r *http.Request) {
	id, ok := httpx.IdentityFrom(r.Context())
	if !ok {
		respond(w, http.StatusUnauthorized, map[string]string{"error": "not authorized"})
		return
	}
	var req ItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	items, err := h.service.RemoveFromWishlist(r.Context(), id.UserID.String(), req.ProductID)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, items)
}

func respondError(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	msg := err.Error()
	switch {
	case errors.Is(err, ErrItemNotFound):
		code = http.StatusNotFound
	case strings.Contains(msg, "required") || strings.Contains(msg, "must"):
		code = http.StatusBadRequest
	default:
		msg = "internal server error"
	}
	respond(w, code, map[string]string{"error": msg})
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
