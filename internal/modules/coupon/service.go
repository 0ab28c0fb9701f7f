package coupon

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service defines coupon business logic.
type Service interface {
	CreateCoupon(ctx context.Context, req CreateCouponRequest) (*Coupon, error)
	ListCoupons(ctx context.Context) ([]*Coupon, error)
	ListActiveCoupons(ctx context.Context) ([]*Coupon, error)
	DeleteCoupon(ctx context.Context, id string) error
}

type service struct{ repo Repository }

// NewService creates a new coupon service.
func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) CreateCoupon(ctx context.Context, req CreateCouponRequest) (*Coupon, error) {
	// Codes are stored uppercase so lookups are case-insensitive.
	code := strings.ToUpper(strings.TrimSpace(req.Code))
	if code == "" {
		return nil, fmt.Errorf("code is required")
	}
	if req.DiscountPercent <= 0 || req.DiscountPercent > 100 {
		return nil, fmt.Errorf("discount_percent must be between 0 and 100")
	}
	if req.Expiration.IsZero() {
		return nil, fmt.Errorf("expiration is required")
	}
	if req.MinAmount < 0 {
		return nil, fmt.Errorf("min_amount cannot be negative")
	}

	c := &Coupon{
		ID:              uuid.New(),
		Code:            code,
		DiscountPercent: req.DiscountPercent,
		MinAmount:       req.MinAmount,
		Expiration:      req.Expiration,
		IsActive:        true,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) ListCoupons(ctx context.Context) ([]*Coupon, error) {
	return s.repo.List(ctx)
}

func (s *service) ListActiveCoupons(ctx context.Context) ([]*Coupon, error) {
	return s.repo.ListActive(ctx, time.Now())
}

func (s *service) DeleteCoupon(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
