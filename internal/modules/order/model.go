package order

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// FulfillmentStatus is the shipping/delivery lifecycle state of an order,
// independent of payment status.
type FulfillmentStatus string

const (
	StatusPending    FulfillmentStatus = "PENDING"
	StatusProcessing FulfillmentStatus = "PROCESSING"
	StatusShipped    FulfillmentStatus = "SHIPPED"
	StatusDelivered  FulfillmentStatus = "DELIVERED"
	StatusCancelled  FulfillmentStatus = "CANCELLED"
)

// Valid reports whether s is a known fulfillment status.
func (s FulfillmentStatus) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// PaymentMethod indicates how the buyer pays.
type PaymentMethod string

const (
	PaymentCOD    PaymentMethod = "COD"
	PaymentOnline PaymentMethod = "ONLINE"
)

// PaymentStatus is the online-payment confirmation lifecycle. It applies
// only to ONLINE-method orders and never feeds back into fulfillment.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "PENDING"
	PaymentSubmitted PaymentStatus = "SUBMITTED"
	PaymentPaid      PaymentStatus = "PAID"
	PaymentFailed    PaymentStatus = "FAILED"
)

// Order is a placed order. Identity, line items and totals are fixed at
// creation; only fulfillment, shipment and payment fields change afterward.
type Order struct {
	ID          uuid.UUID `json:"id"`
	OrderNumber string    `json:"order_number"`
	UserID      uuid.UUID `json:"user_id"`

	Items    []*OrderItem `json:"items,omitempty"`
	Subtotal float64      `json:"subtotal"`
	Discount float64      `json:"discount"`
	Total    float64      `json:"total"`
	CouponID *uuid.UUID   `json:"coupon_id,omitempty"`

	PaymentMethod PaymentMethod `json:"payment_method"`
	PaymentStatus PaymentStatus `json:"payment_status,omitempty"`
	UPIURI        string        `json:"upi_uri,omitempty"`
	TransactionID string        `json:"transaction_id,omitempty"`

	Status          FulfillmentStatus `json:"status"`
	ShippingAddress json.RawMessage   `json:"shipping_address,omitempty"`
	CourierName     string            `json:"courier_name,omitempty"`
	TrackingID      string            `json:"tracking_id,omitempty"`
	TrackingURL     string            `json:"tracking_url,omitempty"`
	ShippedAt       *time.Time        `json:"shipped_at,omitempty"`
	DeliveredAt     *time.Time        `json:"delivered_at,omitempty"`
	History         []StatusChange    `json:"history,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OrderItem is a single line item. UnitPrice is the catalog price at order
// time, never a client-supplied figure; unresolvable products are kept with
// a zero price.
type OrderItem struct {
	ID        uuid.UUID `json:"id"`
	OrderID   uuid.UUID `json:"order_id"`
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
	UnitPrice float64   `json:"unit_price"`
	LineTotal float64   `json:"line_total"`
}

// StatusChange is one entry of the append-only fulfillment history.
type StatusChange struct {
	Status FulfillmentStatus `json:"status"`
	At     time.Time         `json:"at"`
}

// OrderLine is a requested line item; the server looks the price up itself.
type OrderLine struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// PlaceOrderRequest is the payload for creating an order.
type PlaceOrderRequest struct {
	Items           []OrderLine     `json:"items"`
	PaymentMethod   string          `json:"payment_method"`
	CouponCode      string          `json:"coupon_code,omitempty"`
	ShippingAddress json.RawMessage `json:"shipping_address,omitempty"`
}

// ShipmentPatch carries optional shipment fields of a status update.
// Empty fields leave the stored values untouched.
type ShipmentPatch struct {
	CourierName string `json:"courier_name,omitempty"`
	TrackingID  string `json:"tracking_id,omitempty"`
	TrackingURL string `json:"tracking_url,omitempty"`
}

// UpdateStatusRequest is the admin payload for advancing fulfillment.
type UpdateStatusRequest struct {
	Status string `json:"status"`
	ShipmentPatch
}

// SubmitTransactionRequest is the buyer payload after paying in a UPI app.
type SubmitTransactionRequest struct {
	TransactionID string `json:"transaction_id"`
}

// VerifyTransactionRequest is the admin payload confirming or rejecting a
// submitted payment.
type VerifyTransactionRequest struct {
	Success       bool   `json:"success"`
	TransactionID string `json:"transaction_id,omitempty"`
}

// ApplyCouponRequest previews a coupon against the caller's stored cart.
type ApplyCouponRequest struct {
	Code string `json:"code"`
}
