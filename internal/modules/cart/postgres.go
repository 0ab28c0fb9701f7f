package cart

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a new PostgreSQL cart repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) GetCart(ctx context.Context, userID string) (*Cart, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT ci.product_id, ci.quantity, p.name, p.price, p.image_url
		FROM cart_items ci
		JOIN products p ON p.id = ci.product_id
		WHERE ci.user_id = $1
		ORDER BY p.name ASC`, uid)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	c := &Cart{UserID: uid, Items: []*Item{}}
	for rows.Next() {
		item := &Item{}
		if err := rows.Scan(&item.ProductID, &item.Quantity, &item.Name,
			&item.Price, &item.ImageURL); err != nil {
			return nil, err
		}
		c.Items = append(c.Items, item)
	}
	return c, rows.Err()
}

func (r *postgresRepo) AddItem(ctx context.Context, userID, productID string, quantity int) error {
	uid, pid, err := parsePair(userID, productID)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO cart_items (user_id, product_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, product_id)
		DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity`,
		uid, pid, quantity)
	return err
}

func (r *postgresRepo) SetItemQuantity(ctx context.Context, userID, productID string, quantity int) error {
	uid, pid, err := parsePair(userID, productID)
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, `
		UPDATE cart_items SET quantity = $1 WHERE user_id = $2 AND product_id = $3`,
		quantity, uid, pid)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrItemNotFound
	}
	return nil
}

func (r *postgresRepo) RemoveItem(ctx context.Context, userID, productID string) error {
	uid, pid, err := parsePair(userID, productID)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx,
		`DELETE FROM cart_items WHERE user_id = $1 AND product_id = $2`, uid, pid)
	return err
}

func (r *postgresRepo) Subtotal(ctx context.Context, userID string) (float64, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return 0, err
	}
	var subtotal float64
	err = r.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(p.price * ci.quantity), 0)
		FROM cart_items ci
		JOIN products p ON p.id = ci.product_id
		WHERE ci.user_id = $1`, uid).Scan(&subtotal)
	return subtotal, err
}

func (r *postgresRepo) GetWishlist(ctx context.Context, userID string) ([]*Item, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT wi.product_id, p.name, p.price, p.image_url
		FROM wishlist_items wi
		JOIN products p ON p.id = wi.product_id
		WHERE wi.user_id = $1
		ORDER BY p.name ASC`, uid)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []*Item{}
	for rows.Next() {
		item := &Item{}
		if err := rows.Scan(&item.ProductID, &item.Name, &item.Price, &item.ImageURL); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *postgresRepo) AddToWishlist(ctx context.Context, userID, productID string) error {
	uid, pid, err := parsePair(userID, productID)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO wishlist_items (user_id, product_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING`, uid, pid)
	return err
}

func (r *postgresRepo) RemoveFromWishlist(ctx context.Context, userID, productID string) error {
	uid, pid, err := parsePair(userID, productID)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx,
		`DELETE FROM wishlist_items WHERE user_id = $1 AND product_id = $2`, uid, pid)
	return err
}

func parsePair(userID, productID string) (uuid.UUID, uuid.UUID, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	pid, err := uuid.Parse(productID)
	if err != nil {
		return uuid.Nil, uuid.Nil, ErrItemNotFound
	}
	return uid, pid, nil
}
