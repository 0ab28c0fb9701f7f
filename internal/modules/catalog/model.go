package catalog

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("product not found")

// Product is a catalog entry. Price is the authoritative server-side price
// the order engine reads at checkout.
type Product struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	Price         float64   `json:"price"`
	Stock         int       `json:"stock"`
	Category      string    `json:"category"`
	ImageURL      string    `json:"image_url,omitempty"`
	AverageRating float64   `json:"average_rating"`
	Reviews       []*Review `json:"reviews,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Review is a customer rating attached to a product.
type Review struct {
	ID        uuid.UUID `json:"id"`
	ProductID uuid.UUID `json:"product_id"`
	UserID    uuid.UUID `json:"user_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Categories lists the storefront's fixed product categories.
var Categories = []string{"Streetwear", "Sportswear", "Dailywear", "Accessories"}

// SaveProductRequest holds the data for creating or replacing a product.
type SaveProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	Category    string  `json:"category"`
	ImageURL    string  `json:"image_url,omitempty"`
}

// AddReviewRequest is the payload for reviewing a product.
type AddReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment,omitempty"`
}
