package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Service defines catalog business logic.
type Service interface {
	ListProducts(ctx context.Context, category string) ([]*Product, error)
	GetProduct(ctx context.Context, id string) (*Product, error)
	CreateProduct(ctx context.Context, req SaveProductRequest) (*Product, error)
	UpdateProduct(ctx context.Context, id string, req SaveProductRequest) (*Product, error)
	DeleteProduct(ctx context.Context, id string) error
	AddReview(ctx context.Context, productID, userID string, req AddReviewRequest) (*Product, error)
}

type service struct{ repo Repository }

// NewService creates a new catalog service.
func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) ListProducts(ctx context.Context, category string) ([]*Product, error) {
	return s.repo.List(ctx, category)
}

func (s *service) GetProduct(ctx context.Context, id string) (*Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) CreateProduct(ctx context.Context, req SaveProductRequest) (*Product, error) {
	if err := validate(req); err != nil {
		return nil, err
	}
	p := &Product{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) UpdateProduct(ctx context.Context, id string, req SaveProductRequest) (*Product, error) {
	if err := validate(req); err != nil {
		return nil, err
	}
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Name = strings.TrimSpace(req.Name)
	p.Description = req.Description
	p.Price = req.Price
	p.Stock = req.Stock
	p.Category = req.Category
	p.ImageURL = req.ImageURL
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) DeleteProduct(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) AddReview(ctx context.Context, productID, userID string, req AddReviewRequest) (*Product, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, fmt.Errorf("rating must be between 1 and 5")
	}
	pid, err := uuid.Parse(productID)
	if err != nil {
		return nil, ErrNotFound
	}
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id: %w", err)
	}

	rv := &Review{
		ID:        uuid.New(),
		ProductID: pid,
		UserID:    uid,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}
	if _, err := s.repo.AddReview(ctx, rv); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, productID)
}

func validate(req SaveProductRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if req.Price <= 0 {
		return fmt.Errorf("price must be greater than 0")
	}
	if req.Stock < 0 {
		return fmt.Errorf("stock cannot be negative")
	}
	for _, c := range Categories {
		if req.Category == c {
			return nil
		}
	}
	return fmt.Errorf("unknown category: %s", req.Category)
}
