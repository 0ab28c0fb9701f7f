package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryCarts struct {
	items    map[string]int
	wishlist map[string]bool
}

func newMemoryCarts() *memoryCarts {
	return &memoryCarts{items: map[string]int{}, wishlist: map[string]bool{}}
}

func (m *memoryCarts) GetCart(ctx context.Context, userID string) (*Cart, error) {
	c := &Cart{}
	for _, qty := range m.items {
		c.Items = append(c.Items, &Item{Quantity: qty})
	}
	return c, nil
}

func (m *memoryCarts) AddItem(ctx context.Context, userID, productID string, quantity int) error {
	m.items[productID] += quantity
	return nil
}

func (m *memoryCarts) SetItemQuantity(ctx context.Context, userID, productID string, quantity int) error {
	if _, ok := m.items[productID]; !ok {
		return ErrItemNotFound
	}
	m.items[productID] = quantity
	return nil
}

func (m *memoryCarts) RemoveItem(ctx context.Context, userID, productID string) error {
	delete(m.items, productID)
	return nil
}

func (m *memoryCarts) Subtotal(ctx context.Context, userID string) (float64, error) {
	return 0, nil
}

func (m *memoryCarts) GetWishlist(ctx context.Context, userID string) ([]*Item, error) {
	var out []*Item
	for range m.wishlist {
		out = append(out, &Item{})
	}
	return out, nil
}

func (m *memoryCarts) AddToWishlist(ctx context.Context, userID, productID string) error {
	m.wishlist[productID] = true
	return nil
}

func (m *memoryCarts) RemoveFromWishlist(ctx context.Context, userID, productID string) error {
	delete(m.wishlist, productID)
	return nil
}

func TestCartService(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryCarts()
	svc := NewService(repo)

	t.Run("adding merges quantities", func(t *testing.T) {
		_, err := svc.AddToCart(ctx, "u1", ItemRequest{ProductID: "p1", Quantity: 2})
		require.NoError(t, err)
		_, err = svc.AddToCart(ctx, "u1", ItemRequest{ProductID: "p1", Quantity: 3})
		require.NoError(t, err)
		assert.Equal(t, 5, repo.items["p1"])
	})

	t.Run("update replaces the quantity", func(t *testing.T) {
		_, err := svc.UpdateCart(ctx, "u1", ItemRequest{ProductID: "p1", Quantity: 1})
		require.NoError(t, err)
		assert.Equal(t, 1, repo.items["p1"])
	})

	t.Run("rejects non-positive quantities", func(t *testing.T) {
		_, err := svc.AddToCart(ctx, "u1", ItemRequest{ProductID: "p1", Quantity: 0})
		assert.Error(t, err)
		_, err = svc.UpdateCart(ctx, "u1", ItemRequest{ProductID: "p1", Quantity: -2})
		assert.Error(t, err)
	})

	t.Run("rejects a missing product id", func(t *testing.T) {
		_, err := svc.AddToCart(ctx, "u1", ItemRequest{Quantity: 1})
		assert.Error(t, err)
	})

	t.Run("remove drops the line", func(t *testing.T) {
		_, err := svc.RemoveFromCart(ctx, "u1", "p1")
		require.NoError(t, err)
		assert.NotContains(t, repo.items, "p1")
	})

	t.Run("wishlist add and remove", func(t *testing.T) {
		items, err := svc.AddToWishlist(ctx, "u1", "p9")
		require.NoError(t, err)
		assert.Len(t, items, 1)
		items, err = svc.RemoveFromWishlist(ctx, "u1", "p9")
		require.NoError(t, err)
		assert.Empty(t, items)
	})
}
