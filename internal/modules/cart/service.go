package cart

import (
	"context"
	"fmt"
)

// Service defines cart and wishlist business logic.
type Service interface {
	GetCart(ctx context.Context, userID string) (*Cart, error)
	AddToCart(ctx context.Context, userID string, req ItemRequest) (*Cart, error)
	UpdateCart(ctx context.Context, userID string, req ItemRequest) (*Cart, error)
	RemoveFromCart(ctx context.Context, userID, productID string) (*Cart, error)

	GetWishlist(ctx context.Context, userID string) ([]*Item, error)
	AddToWishlist(ctx context.Context, userID, productID string) ([]*Item, error)
	RemoveFromWishlist(ctx context.Context, userID, productID string) ([]*Item, error)
}

type service struct{ repo Repository }

// NewService creates a new cart service.
func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) GetCart(ctx context.Context, userID string) (*Cart, error) {
	return s.repo.GetCart(ctx, userID)
}

func (s *service) AddToCart(ctx context.Context, userID string, req ItemRequest) (*Cart, error) {
	if req.ProductID == "" {
		return nil, fmt.Errorf("product_id is required")
	}
	if req.Quantity <= 0 {
		return nil, fmt.Errorf("quantity must be greater than 0")
	}
	if err := s.repo.AddItem(ctx, userID, req.ProductID, req.Quantity); err != nil {
		return nil, err
	}
	return s.repo.GetCart(ctx, userID)
}

func (s *service) UpdateCart(ctx context.Context, userID string, req ItemRequest) (*Cart, error) {
	if req.ProductID == "" {
		return nil, fmt.Errorf("product_id is required")
	}
	if req.Quantity <= 0 {
		return nil, fmt.Errorf("quantity must be greater than 0")
	}
	if err := s.repo.SetItemQuantity(ctx, userID, req.ProductID, req.Quantity); err != nil {
		return nil, err
	}
	return s.repo.GetCart(ctx, userID)
}

func (s *service) RemoveFromCart(ctx context.Context, userID, productID string) (*Cart, error) {
	if productID == "" {
		return nil, fmt.Errorf("product_id is required")
	}
	if err := s.repo.RemoveItem(ctx, userID, productID); err != nil {
		return nil, err
	}
	return s.repo.GetCart(ctx, userID)
}

func (s *service) GetWishlist(ctx context.Context, userID string) ([]*Item, error) {
	return s.repo.GetWishlist(ctx, userID)
}

func (s *service) AddToWishlist(ctx context.Context, userID, productID string) ([]*Item, error) {
	if productID == "" {
		return nil, fmt.Errorf("product_id is required")
	}
	if err := s.repo.AddToWishlist(ctx, userID, productID); err != nil {
		return nil, err
	}
	return s.repo.GetWishlist(ctx, userID)
}

func (s *service) RemoveFromWishlist(ctx context.Context, userID, productID string) ([]*Item, error) {
	if productID == "" {
		return nil, fmt.Errorf("product_id is required")
	}
	if err := s.repo.RemoveFromWishlist(ctx, userID, productID); err != nil {
		return nil, err
	}
	return s.repo.GetWishlist(ctx, userID)
}
