package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a new PostgreSQL catalog repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

const productColumns = `id, name, description, price, stock, category, image_url, average_rating, created_at, updated_at`

func (r *postgresRepo) Create(ctx context.Context, p *Product) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO products (id, name, description, price, stock, category, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		p.ID, p.Name, p.Description, p.Price, p.Stock, p.Category, p.ImageURL)
	return err
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*Product, error) {
	parsedID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrNotFound
	}

	p := &Product{}
	err = r.db.QueryRowContext(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1`, parsedID).Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.Category,
		&p.ImageURL, &p.AverageRating, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	p.Reviews, err = r.listReviews(ctx, parsedID)
	return p, err
}

func (r *postgresRepo) List(ctx context.Context, category string) ([]*Product, error) {
	query := `SELECT ` + productColumns + ` FROM products`
	args := []interface{}{}
	if category != "" {
		query += ` WHERE category = $1`
		args = append(args, category)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*Product
	for rows.Next() {
		p := &Product{}
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock,
			&p.Category, &p.ImageURL, &p.AverageRating, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *postgresRepo) Update(ctx context.Context, p *Product) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE products
		SET name = $1, description = $2, price = $3, stock = $4, category = $5,
		    image_url = $6, updated_at = $7
		WHERE id = $8`,
		p.Name, p.Description, p.Price, p.Stock, p.Category, p.ImageURL, time.Now(), p.ID)
	return err
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	parsedID, err := uuid.Parse(id)
	if err != nil {
		return ErrNotFound
	}
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, parsedID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// AddReview inserts the review and refreshes the denormalised average
// rating in one transaction.
func (r *postgresRepo) AddReview(ctx context.Context, rv *Review) (float64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO product_reviews (id, product_id, user_id, rating, comment)
		VALUES ($1, $2, $3, $4, $5)`,
		rv.ID, rv.ProductID, rv.UserID, rv.Rating, rv.Comment)
	if err != nil {
		return 0, fmt.Errorf("insert review: %w", err)
	}

	var avg float64
	err = tx.QueryRowContext(ctx, `
		UPDATE products
		SET average_rating = (
			SELECT COALESCE(AVG(rating), 0) FROM product_reviews WHERE product_id = $1
		), updated_at = $2
		WHERE id = $1
		RETURNING average_rating`, rv.ProductID, time.Now()).Scan(&avg)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, err
	}
	return avg, tx.Commit()
}

func (r *postgresRepo) listReviews(ctx context.Context, productID uuid.UUID) ([]*Review, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, product_id, user_id, rating, comment, created_at
		FROM product_reviews WHERE product_id = $1 ORDER BY created_at ASC`, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []*Review
	for rows.Next() {
		rv := &Review{}
		if err := rows.Scan(&rv.ID, &rv.ProductID, &rv.UserID, &rv.Rating,
			&rv.Comment, &rv.CreatedAt); err != nil {
			return nil, err
		}
		reviews = append(reviews, rv)
	}
	return reviews, rows.Err()
}
