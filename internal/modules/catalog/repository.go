package catalog

import "context"

// Repository defines data access for products and reviews.
type Repository interface {
	Create(ctx context.Context, p *Product) error

	// GetByID retrieves a product with its reviews.
	GetByID(ctx context.Context, id string) (*Product, error)

	// List returns products, optionally filtered by category.
	List(ctx context.Context, category string) ([]*Product, error)

	Update(ctx context.Context, p *Product) error
	Delete(ctx context.Context, id string) error

	// AddReview stores a review and returns the product's recomputed
	// average rating.
	AddReview(ctx context.Context, rv *Review) (float64, error)
}
