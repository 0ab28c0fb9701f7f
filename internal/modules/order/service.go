package order

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fightwisdom/storefront-backend/internal/modules/coupon"
)

// Service exposes order placement, fulfillment and payment operations.
type Service interface {
	PlaceOrder(ctx context.Context, userID string, req PlaceOrderRequest) (*Order, error)
	GetOrder(ctx context.Context, userID string, isAdmin bool, orderID string) (*Order, error)
	ListUserOrders(ctx context.Context, userID string) ([]*Order, error)
	ListAllOrders(ctx context.Context) ([]*Order, error)

	// PreviewCoupon prices a coupon against the caller's stored cart
	// without placing an order.
	PreviewCoupon(ctx context.Context, userID, code string) (*CouponPreview, error)

	UpdateStatus(ctx context.Context, orderID string, req UpdateStatusRequest) (*Order, error)
	SubmitTransaction(ctx context.Context, userID, orderID string, req SubmitTransactionRequest) (*Order, error)
	VerifyTransaction(ctx context.Context, orderID string, req VerifyTransactionRequest) (*Order, error)
}

// CouponPreview is the result of pricing a coupon against a cart.
type CouponPreview struct {
	Code     string  `json:"code"`
	Subtotal float64 `json:"subtotal"`
	Discount float64 `json:"discount"`
	Total    float64 `json:"total"`
}

type service struct {
	repo    Repository
	coupons CouponSource
	carts   CartSubtotaler
	upi     UPIConfig
}

// NewService creates the order service.
func NewService(repo Repository, coupons CouponSource, carts CartSubtotaler, upi UPIConfig) Service {
	return &service{repo: repo, coupons: coupons, carts: carts, upi: upi}
}

// pricedLine is a request line the catalog resolved, or kept with a zero
// price when the product no longer exists.
type pricedLine struct {
	productID uuid.UUID
	quantity  int
	unitPrice float64
	inCatalog bool
}

func (s *service) PlaceOrder(ctx context.Context, userID string, req PlaceOrderRequest) (*Order, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid user id", ErrValidation)
	}
	method := PaymentMethod(strings.ToUpper(strings.TrimSpace(req.PaymentMethod)))
	if method != PaymentCOD && method != PaymentOnline {
		return nil, fmt.Errorf("%w: payment method must be COD or ONLINE", ErrValidation)
	}
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: order must contain at least one item", ErrValidation)
	}
	for _, l := range req.Items {
		if l.Quantity <= 0 {
			return nil, fmt.Errorf("%w: item quantity must be positive", ErrValidation)
		}
	}

	lines, subtotal := s.priceLines(ctx, req.Items)
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: no valid items in order", ErrValidation)
	}

	// An unknown code at checkout is inapplicable, not fatal: the order is
	// placed at full price, like any coupon that computes to zero.
	discount := 0.0
	var couponID *uuid.UUID
	if code := strings.ToUpper(strings.TrimSpace(req.CouponCode)); code != "" {
		c, err := s.coupons.GetByCode(ctx, code)
		switch {
		case errors.Is(err, coupon.ErrNotFound):
		case err != nil:
			return nil, err
		default:
			discount = coupon.ComputeDiscount(subtotal, c, time.Now())
			couponID = &c.ID
		}
	}
	total := roundedTotal(subtotal, discount)

	now := time.Now()
	o := &Order{
		ID:              uuid.New(),
		UserID:          uid,
		Subtotal:        subtotal,
		Discount:        discount,
		Total:           total,
		CouponID:        couponID,
		PaymentMethod:   method,
		Status:          StatusPending,
		ShippingAddress: req.ShippingAddress,
		History:         []StatusChange{{Status: StatusPending, At: now}},
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	for _, l := range lines {
		lt, _ := decimal.NewFromFloat(l.unitPrice).
			Mul(decimal.NewFromInt(int64(l.quantity))).Round(2).Float64()
		o.Items = append(o.Items, &OrderItem{
			ID:        uuid.New(),
			OrderID:   o.ID,
			ProductID: l.productID,
			Quantity:  l.quantity,
			UnitPrice: l.unitPrice,
			LineTotal: lt,
		})
	}

	number, err := s.uniqueOrderNumber(ctx)
	if err != nil {
		return nil, err
	}
	o.OrderNumber = number

	if method == PaymentOnline {
		o.PaymentStatus = PaymentPending
		o.UPIURI = buildUPIURI(s.upi, o.Total, o.OrderNumber)
	}

	if err := s.repo.CreateOrder(ctx, o); err != nil {
		return nil, err
	}

	// Stock adjustment is best effort: the order already exists and a
	// failed decrement must not undo it.
	for _, l := range lines {
		if !l.inCatalog {
			continue
		}
		if err := s.repo.DecrementStock(ctx, l.productID.String(), l.quantity); err != nil {
			log.Printf("order %s: decrement stock for product %s: %v", o.OrderNumber, l.productID, err)
		}
	}
	return o, nil
}

// priceLines resolves request lines against the catalog. References that do
// not parse are dropped; parsable references the catalog no longer knows are
// kept at a zero price so the order record mirrors what was submitted.
func (s *service) priceLines(ctx context.Context, reqLines []OrderLine) ([]pricedLine, float64) {
	var lines []pricedLine
	sum := decimal.Zero
	for _, l := range reqLines {
		pid, err := uuid.Parse(l.ProductID)
		if err != nil {
			continue
		}
		price, err := s.repo.GetProductPrice(ctx, pid.String())
		line := pricedLine{productID: pid, quantity: l.Quantity}
		if err == nil {
			line.unitPrice = price
			line.inCatalog = true
			sum = sum.Add(decimal.NewFromFloat(price).Mul(decimal.NewFromInt(int64(l.Quantity))))
		}
		lines = append(lines, line)
	}
	subtotal, _ := sum.Round(2).Float64()
	return lines, subtotal
}

// roundedTotal computes max(0, subtotal-discount) rounded to two decimals.
func roundedTotal(subtotal, discount float64) float64 {
	t := decimal.NewFromFloat(subtotal).Sub(decimal.NewFromFloat(discount)).Round(2)
	if t.IsNegative() {
		return 0
	}
	f, _ := t.Float64()
	return f
}

// uniqueOrderNumber draws candidates until one is free. The check is a
// courtesy to keep retries out of the insert path; the unique index still
// decides on a race.
func (s *service) uniqueOrderNumber(ctx context.Context) (string, error) {
	var number string
	for i := 0; i < orderNumberRetries; i++ {
		number = generateOrderNumber()
		taken, err := s.repo.OrderNumberExists(ctx, number)
		if err != nil {
			return "", err
		}
		if !taken {
			return number, nil
		}
	}
	return number, nil
}

func (s *service) GetOrder(ctx context.Context, userID string, isAdmin bool, orderID string) (*Order, error) {
	o, err := s.repo.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	// Non-owners get not-found rather than a hint the order exists.
	if !isAdmin && o.UserID.String() != userID {
		return nil, ErrNotFound
	}
	return o, nil
}

func (s *service) ListUserOrders(ctx context.Context, userID string) ([]*Order, error) {
	return s.repo.ListOrdersByUser(ctx, userID)
}

func (s *service) ListAllOrders(ctx context.Context) ([]*Order, error) {
	return s.repo.ListOrders(ctx)
}

func (s *service) PreviewCoupon(ctx context.Context, userID, code string) (*CouponPreview, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, fmt.Errorf("%w: coupon code is required", ErrValidation)
	}
	c, err := s.coupons.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, coupon.ErrNotFound) {
			return nil, ErrCouponInvalid
		}
		return nil, err
	}
	subtotal, err := s.carts.Subtotal(ctx, userID)
	if err != nil {
		return nil, err
	}
	// A found coupon that grants nothing (inactive, expired, or the cart is
	// below its minimum) is not applicable; only unknown codes are invalid.
	discount := coupon.ComputeDiscount(subtotal, c, time.Now())
	if discount == 0 {
		return nil, ErrCouponNotApplicable
	}
	return &CouponPreview{
		Code:     c.Code,
		Subtotal: subtotal,
		Discount: discount,
		Total:    roundedTotal(subtotal, discount),
	}, nil
}

func (s *service) UpdateStatus(ctx context.Context, orderID string, req UpdateStatusRequest) (*Order, error) {
	status := FulfillmentStatus(strings.ToUpper(strings.TrimSpace(req.Status)))
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, req.Status)
	}
	o, err := s.repo.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if req.CourierName != "" {
		o.CourierName = req.CourierName
	}
	if req.TrackingID != "" {
		o.TrackingID = req.TrackingID
	}
	if req.TrackingURL != "" {
		o.TrackingURL = req.TrackingURL
	} else if req.CourierName != "" || req.TrackingID != "" {
		o.TrackingURL = trackingURLFor(o.CourierName, o.TrackingID)
	}

	now := time.Now()
	switch status {
	case StatusShipped:
		if o.CourierName == "" || o.TrackingID == "" {
			return nil, ErrShipmentInfoMissing
		}
		if o.TrackingURL == "" {
			o.TrackingURL = trackingURLFor(o.CourierName, o.TrackingID)
		}
		if o.ShippedAt == nil {
			o.ShippedAt = &now
		}
	case StatusDelivered:
		if o.DeliveredAt == nil {
			o.DeliveredAt = &now
		}
	}

	o.Status = status
	o.UpdatedAt = now
	change := StatusChange{Status: status, At: now}
	if err := s.repo.UpdateFulfillment(ctx, o, change); err != nil {
		return nil, err
	}
	o.History = append(o.History, change)
	return o, nil
}

func (s *service) SubmitTransaction(ctx context.Context, userID, orderID string, req SubmitTransactionRequest) (*Order, error) {
	o, err := s.repo.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o.UserID.String() != userID {
		return nil, ErrNotFound
	}
	if o.PaymentMethod != PaymentOnline {
		return nil, fmt.Errorf("%w: order is not paid online", ErrValidation)
	}
	txID := strings.TrimSpace(req.TransactionID)
	if txID == "" {
		return nil, fmt.Errorf("%w: transaction id is required", ErrValidation)
	}
	o.TransactionID = txID
	o.PaymentStatus = PaymentSubmitted
	o.UpdatedAt = time.Now()
	if err := s.repo.UpdatePayment(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *service) VerifyTransaction(ctx context.Context, orderID string, req VerifyTransactionRequest) (*Order, error) {
	o, err := s.repo.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o.PaymentMethod != PaymentOnline {
		return nil, fmt.Errorf("%w: order is not paid online", ErrValidation)
	}
	if req.Success {
		o.PaymentStatus = PaymentPaid
	} else {
		o.PaymentStatus = PaymentFailed
	}
	if tx := strings.TrimSpace(req.TransactionID); tx != "" {
		o.TransactionID = tx
	}
	o.UpdatedAt = time.Now()
	if err := s.repo.UpdatePayment(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}
