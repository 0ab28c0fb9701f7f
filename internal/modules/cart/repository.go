package cart

import "context"

// Repository defines data access for carts and wishlists.
type Repository interface {
	GetCart(ctx context.Context, userID string) (*Cart, error)

	// AddItem merges the quantity into an existing line or creates one.
	AddItem(ctx context.Context, userID, productID string, quantity int) error

	// SetItemQuantity replaces the quantity of an existing line.
	SetItemQuantity(ctx context.Context, userID, productID string, quantity int) error

	RemoveItem(ctx context.Context, userID, productID string) error

	// Subtotal computes the cart total from current catalog prices,
	// never from anything the client sent.
	Subtotal(ctx context.Context, userID string) (float64, error)

	GetWishlist(ctx context.Context, userID string) ([]*Item, error)
	AddToWishlist(ctx context.Context, userID, productID string) error
	RemoveFromWishlist(ctx context.Context, userID, productID string) error
}
