package admin

import "context"

// Stats is the dashboard summary shown on the admin home screen. Revenue
// is the sum of every order's total, whatever its state.
type Stats struct {
	TotalUsers    int     `json:"total_users"`
	TotalProducts int     `json:"total_products"`
	TotalOrders   int     `json:"total_orders"`
	PendingOrders int     `json:"pending_orders"`
	Revenue       float64 `json:"revenue"`
}

// Repository aggregates counts across the store's tables.
type Repository interface {
	GetStats(ctx context.Context) (*Stats, error)
}

// Service exposes admin dashboard operations.
type Service interface {
	GetStats(ctx context.Context) (*Stats, error)
}

type service struct{ repo Repository }

// NewService creates the admin service.
func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) GetStats(ctx context.Context) (*Stats, error) {
	return s.repo.GetStats(ctx)
}
