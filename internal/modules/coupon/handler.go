package coupon

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// Handler exposes coupon HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(router *chi.Mux, protect, adminOnly func(http.Handler) http.Handler) {
	// Public: the storefront shows active, unexpired coupons.
	router.Get("/api/v1/coupons", h.listActiveCoupons)

	router.Route("/api/v1/admin/coupons", func(r chi.Router) {
		r.Use(protect, adminOnly)
		r.Post("/", h.createCoupon)
		r.Get("/", h.listCoupons)
		r.Delete("/{id}", h.deleteCoupon)
	})
}

func (h *Handler) listActiveCoupons(w http.ResponseWriter, r *http.Request) {
	coupons, err := h.service.ListActiveCoupons(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, coupons)
}

func (h *Handler) createCoupon(w http.ResponseWriter, r *http.Request) {
	var req CreateCouponRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	c, err := h.service.CreateCoupon(r.Context(), req)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusCreated, c)
}

func (h *Handler) listCoupons(w http.ResponseWriter, r *http.Request) {
	coupons, err := h.service.ListCoupons(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, coupons)
}

func (h *Handler) deleteCoupon(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteCoupon(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, map[string]string{"status": "coupon deleted"})
}

func respondError(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	msg := err.Error()
	switch {
	case errors.Is(err, ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, ErrCodeTaken):
		code = http.StatusConflict
	case strings.Contains(msg, "required") || strings.Contains(msg, "must") ||
		strings.Contains(msg, "cannot"):
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
