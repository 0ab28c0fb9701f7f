package order

import (
	"context"

	"github.com/fightwisdom/storefront-backend/internal/modules/coupon"
)

// Repository defines data access for orders, plus the catalog lookups the
// pricing engine depends on.
type Repository interface {
	// CreateOrder persists the order, its items and its seed history entry
	// atomically. Returns ErrOrderNumberTaken when the order_number unique
	// index rejects the insert.
	CreateOrder(ctx context.Context, o *Order) error

	// GetOrderByID retrieves a full order with items and history.
	GetOrderByID(ctx context.Context, id string) (*Order, error)

	ListOrdersByUser(ctx context.Context, userID string) ([]*Order, error)
	ListOrders(ctx context.Context) ([]*Order, error)

	OrderNumberExists(ctx context.Context, number string) (bool, error)

	// UpdateFulfillment persists the order's fulfillment and shipment
	// fields and appends the history entry in one transaction.
	UpdateFulfillment(ctx context.Context, o *Order, change StatusChange) error

	// UpdatePayment persists payment status and transaction reference.
	UpdatePayment(ctx context.Context, o *Order) error

	// GetProductPrice returns the current catalog price; an error means the
	// reference does not resolve and the line contributes nothing.
	GetProductPrice(ctx context.Context, productID string) (float64, error)

	// DecrementStock lowers a product's stock by qty, floored at zero.
	DecrementStock(ctx context.Context, productID string, qty int) error
}

// CouponSource provides the coupon lookups the pricing engine needs.
type CouponSource interface {
	GetByCode(ctx context.Context, code string) (*coupon.Coupon, error)
}

// CartSubtotaler returns the server-side subtotal of a user's stored cart,
// used by the coupon preview.
type CartSubtotaler interface {
	Subtotal(ctx context.Context, userID string) (float64, error)
}
