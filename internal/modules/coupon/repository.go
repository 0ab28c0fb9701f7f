package coupon

import (
	"context"
	"time"
)

// Repository defines data access for coupons.
type Repository interface {
	Create(ctx context.Context, c *Coupon) error
	GetByCode(ctx context.Context, code string) (*Coupon, error)
	List(ctx context.Context) ([]*Coupon, error)

	// ListActive returns coupons that are active and unexpired at now.
	ListActive(ctx context.Context, now time.Time) ([]*Coupon, error)

	Delete(ctx context.Context, id string) error
}
