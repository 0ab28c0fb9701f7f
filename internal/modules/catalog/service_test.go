package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryProducts struct {
	products map[string]*Product
	reviews  []*Review
}

func newMemoryProducts() *memoryProducts {
	return &memoryProducts{products: map[string]*Product{}}
}

func (m *memoryProducts) Create(ctx context.Context, p *Product) error {
	m.products[p.ID.String()] = p
	return nil
}

func (m *memoryProducts) GetByID(ctx context.Context, id string) (*Product, error) {
	p, ok := m.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	return p, nil
}

func (m *memoryProducts) List(ctx context.Context, category string) ([]*Product, error) {
	var out []*Product
	for _, p := range m.products {
		if category == "" || p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memoryProducts) Update(ctx context.Context, p *Product) error {
	if _, ok := m.products[p.ID.String()]; !ok {
		return ErrNotFound
	}
	m.products[p.ID.String()] = p
	return nil
}

func (m *memoryProducts) Delete(ctx context.Context, id string) error {
	if _, ok := m.products[id]; !ok {
		return ErrNotFound
	}
	delete(m.products, id)
	return nil
}

func (m *memoryProducts) AddReview(ctx context.Context, rv *Review) (float64, error) {
	m.reviews = append(m.reviews, rv)
	var sum float64
	var n int
	for _, r := range m.reviews {
		if r.ProductID == rv.ProductID {
			sum += float64(r.Rating)
			n++
		}
	}
	avg := sum / float64(n)
	if p, ok := m.products[rv.ProductID.String()]; ok {
		p.AverageRating = avg
	}
	return avg, nil
}

func validProduct() SaveProductRequest {
	return SaveProductRequest{
		Name:     "Oversized Hoodie",
		Price:    49.99,
		Stock:    10,
		Category: "Streetwear",
	}
}

func TestCreateProductValidation(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newMemoryProducts())

	t.Run("valid product", func(t *testing.T) {
		p, err := svc.CreateProduct(ctx, validProduct())
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, p.ID)
	})

	t.Run("missing name", func(t *testing.T) {
		req := validProduct()
		req.Name = "   "
		_, err := svc.CreateProduct(ctx, req)
		assert.Error(t, err)
	})

	t.Run("non-positive price", func(t *testing.T) {
		req := validProduct()
		req.Price = 0
		_, err := svc.CreateProduct(ctx, req)
		assert.Error(t, err)
	})

	t.Run("negative stock", func(t *testing.T) {
		req := validProduct()
		req.Stock = -1
		_, err := svc.CreateProduct(ctx, req)
		assert.Error(t, err)
	})

	t.Run("unknown category", func(t *testing.T) {
		req := validProduct()
		req.Category = "Gadgets"
		_, err := svc.CreateProduct(ctx, req)
		assert.Error(t, err)
	})
}

func TestAddReview(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryProducts()
	svc := NewService(repo)

	p, err := svc.CreateProduct(ctx, validProduct())
	require.NoError(t, err)
	userID := uuid.New().String()

	t.Run("rating out of range", func(t *testing.T) {
		_, err := svc.AddReview(ctx, p.ID.String(), userID, AddReviewRequest{Rating: 0})
		assert.Error(t, err)
		_, err = svc.AddReview(ctx, p.ID.String(), userID, AddReviewRequest{Rating: 6})
		assert.Error(t, err)
	})

	t.Run("average rating is recomputed", func(t *testing.T) {
		_, err := svc.AddReview(ctx, p.ID.String(), userID, AddReviewRequest{Rating: 5, Comment: "great"})
		require.NoError(t, err)
		got, err := svc.AddReview(ctx, p.ID.String(), uuid.New().String(), AddReviewRequest{Rating: 3})
		require.NoError(t, err)
		assert.Equal(t, 4.0, got.AverageRating)
	})

	t.Run("unknown product id", func(t *testing.T) {
		_, err := svc.AddReview(ctx, "not-a-uuid", userID, AddReviewRequest{Rating: 4})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
