package cart

import (
	"errors"

	"github.com/google/uuid"
)

var ErrItemNotFound = errors.New("cart item not found")

// Cart is a user's current cart. A user with no stored rows reads as an
// empty cart.
type Cart struct {
	UserID uuid.UUID `json:"user_id"`
	Items  []*Item   `json:"items"`
}

// Item is a cart or wishlist line, joined with the product fields the
// storefront renders.
type Item struct {
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity,omitempty"`
	Name      string    `json:"name,omitempty"`
	Price     float64   `json:"price,omitempty"`
	ImageURL  string    `json:"image_url,omitempty"`
}

// ItemRequest is the payload for cart and wishlist mutations.
type ItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity,omitempty"`
}
