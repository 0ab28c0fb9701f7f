package coupon

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound  = errors.New("coupon not found")
	ErrCodeTaken = errors.New("coupon code already exists")
)

// Coupon is a percentage discount code with an activity window and a
// minimum-order eligibility gate.
type Coupon struct {
	ID              uuid.UUID `json:"id"`
	Code            string    `json:"code"`
	DiscountPercent float64   `json:"discount_percent"`
	MinAmount       float64   `json:"min_amount"`
	Expiration      time.Time `json:"expiration"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// CreateCouponRequest is the admin payload for creating a coupon.
type CreateCouponRequest struct {
	Code            string    `json:"code"`
	DiscountPercent float64   `json:"discount_percent"`
	MinAmount       float64   `json:"min_amount,omitempty"`
	Expiration      time.Time `json:"expiration"`
}
