package order

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fightwisdom/storefront-backend/internal/httpx"
)

// Handler exposes order HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(router *chi.Mux, protect, adminOnly func(http.Handler) http.Handler) {
	router.Route("/api/v1/orders", func(r chi.Router) {
		r.Use(protect)
		r.Post("/", h.placeOrder)
		r.Get("/", h.listMyOrders)
		r.Post("/coupon/apply", h.applyCoupon)
		r.Get("/{id}", h.getOrder)
		r.Put("/{id}/transaction/submit", h.submitTransaction)

		r.Group(func(r chi.Router) {
			r.Use(adminOnly)
			r.Put("/{id}/status", h.updateStatus)
			r.Put("/{id}/transaction", h.verifyTransaction)
		})
	})

	router.Route("/api/v1/admin/orders", func(r chi.Router) {
		r.Use(protect, adminOnly)
		r.Get("/", h.listAllOrders)
	})
}

func (h *Handler) placeOrder(w http.ResponseWriter, r *http.Request) {
	id, _ := httpx.IdentityFrom(r.Context())
	var req PlaceOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	o, err := h.service.PlaceOrder(r.Context(), id.UserID.String(), req)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusCreated, o)
}

func (h *Handler) listMyOrders(w http.ResponseWriter, r *http.Request) {
	id, _ := httpx.IdentityFrom(r.Context())
	orders, err := h.service.ListUserOrders(r.Context(), id.UserID.String())
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, orders)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	id, _ := httpx.IdentityFrom(r.Context())
	o, err := h.service.GetOrder(r.Context(), id.UserID.String(), id.IsAdmin, chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, o)
}

func (h *Handler) applyCoupon(w http.ResponseWriter, r *http.Request) {
	id, _ := httpx.IdentityFrom(r.Context())
	var req ApplyCouponRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	preview, err := h.service.PreviewCoupon(r.Context(), id.UserID.String(), req.Code)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, preview)
}

func (h *Handler) submitTransaction(w http.ResponseWriter, r *http.Request) {
	id, _ := httpx.IdentityFrom(r.Context())
	var req SubmitTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	o, err := h.service.SubmitTransaction(r.Context(), id.UserID.String(), chi.URLParam(r, "id"), req)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, o)
}

func (h *Handler) updateStatus(w http.ResponseWriter, r *http.Request) {
	var req UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	o, err := h.service.UpdateStatus(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, o)
}

func (h *Handler) verifyTransaction(w http.ResponseWriter, r *http.Request) {
	var req VerifyTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	o, err := h.service.VerifyTransaction(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, o)
}

func (h *Handler) listAllOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.ListAllOrders(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, orders)
}

func respondError(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	msg := err.Error()
	switch {
	case errors.Is(err, ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, ErrOrderNumberTaken):
		code = http.StatusConflict
	case errors.Is(err, ErrValidation),
		errors.Is(err, ErrCouponInvalid),
		errors.Is(err, ErrCouponNotApplicable),
		errors.Is(err, ErrShipmentInfoMissing):
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
