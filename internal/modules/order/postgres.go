package order

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a new PostgreSQL order repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

const orderColumns = `id, order_number, user_id, coupon_id, subtotal, discount, total,
	payment_method, payment_status, upi_uri, transaction_id, status, shipping_address,
	courier_name, tracking_id, tracking_url, shipped_at, delivered_at, created_at, updated_at`

func (r *postgresRepo) CreateOrder(ctx context.Context, o *Order) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var paymentStatus sql.NullString
	if o.PaymentStatus != "" {
		paymentStatus = sql.NullString{String: string(o.PaymentStatus), Valid: true}
	}
	_, err = tx.ExecContext(ctx, `
		INSERT INTO orders (id, order_number, user_id, coupon_id, subtotal, discount, total,
			payment_method, payment_status, upi_uri, status, shipping_address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		o.ID, o.OrderNumber, o.UserID, o.CouponID, o.Subtotal, o.Discount, o.Total,
		o.PaymentMethod, paymentStatus, o.UPIURI, o.Status,
		nullableJSON(o.ShippingAddress), o.CreatedAt, o.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return ErrOrderNumberTaken
		}
		return err
	}

	for _, it := range o.Items {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO order_items (id, order_id, product_id, quantity, unit_price, line_total)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			it.ID, o.ID, it.ProductID, it.Quantity, it.UnitPrice, it.LineTotal)
		if err != nil {
			return err
		}
	}
	for _, h := range o.History {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO order_status_history (order_id, status, at) VALUES ($1, $2, $3)`,
			o.ID, h.Status, h.At)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *postgresRepo) GetOrderByID(ctx context.Context, id string) (*Order, error) {
	parsedID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrNotFound
	}
	row := r.db.QueryRowContext(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id = $1`, parsedID)
	o, err := scanOrder(row)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, order_id, product_id, quantity, unit_price, line_total
		FROM order_items WHERE order_id = $1`, o.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		it := &OrderItem{}
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID,
			&it.Quantity, &it.UnitPrice, &it.LineTotal); err != nil {
			return nil, err
		}
		o.Items = append(o.Items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	hrows, err := r.db.QueryContext(ctx, `
		SELECT status, at FROM order_status_history
		WHERE order_id = $1 ORDER BY id ASC`, o.ID)
	if err != nil {
		return nil, err
	}
	defer hrows.Close()
	for hrows.Next() {
		var h StatusChange
		if err := hrows.Scan(&h.Status, &h.At); err != nil {
			return nil, err
		}
		o.History = append(o.History, h)
	}
	return o, hrows.Err()
}

func (r *postgresRepo) ListOrdersByUser(ctx context.Context, userID string) ([]*Order, error) {
	parsedID, err := uuid.Parse(userID)
	if err != nil {
		return nil, nil
	}
	return r.queryOrders(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE user_id = $1 ORDER BY created_at DESC`,
		parsedID)
}

func (r *postgresRepo) ListOrders(ctx context.Context) ([]*Order, error) {
	return r.queryOrders(ctx,
		`SELECT `+orderColumns+` FROM orders ORDER BY created_at DESC`)
}

func (r *postgresRepo) OrderNumberExists(ctx context.Context, number string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM orders WHERE order_number = $1)`, number).Scan(&exists)
	return exists, err
}

func (r *postgresRepo) UpdateFulfillment(ctx context.Context, o *Order, change StatusChange) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		UPDATE orders
		SET status = $2, courier_name = $3, tracking_id = $4, tracking_url = $5,
			shipped_at = $6, delivered_at = $7, updated_at = $8
		WHERE id = $1`,
		o.ID, o.Status, o.CourierName, o.TrackingID, o.TrackingURL,
		o.ShippedAt, o.DeliveredAt, o.UpdatedAt)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	_, err = tx.ExecContext(ctx, `
		INSERT INTO order_status_history (order_id, status, at) VALUES ($1, $2, $3)`,
		o.ID, change.Status, change.At)
	if err != nil {
		return err
	}
	return tx.Commit()
}

func (r *postgresRepo) UpdatePayment(ctx context.Context, o *Order) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE orders
		SET payment_status = $2, transaction_id = $3, updated_at = $4
		WHERE id = $1`,
		o.ID, string(o.PaymentStatus), o.TransactionID, o.UpdatedAt)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *postgresRepo) GetProductPrice(ctx context.Context, productID string) (float64, error) {
	parsedID, err := uuid.Parse(productID)
	if err != nil {
		return 0, sql.ErrNoRows
	}
	var price float64
	err = r.db.QueryRowContext(ctx,
		`SELECT price FROM products WHERE id = $1`, parsedID).Scan(&price)
	return price, err
}

func (r *postgresRepo) DecrementStock(ctx context.Context, productID string, qty int) error {
	parsedID, err := uuid.Parse(productID)
	if err != nil {
		return nil
	}
	_, err = r.db.ExecContext(ctx, `
		UPDATE products SET stock = GREATEST(stock - $2, 0), updated_at = now()
		WHERE id = $1`, parsedID, qty)
	return err
}

func (r *postgresRepo) queryOrders(ctx context.Context, query string, args ...interface{}) ([]*Order, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanOrder(row rowScanner) (*Order, error) {
	o := &Order{}
	var paymentStatus sql.NullString
	var address []byte
	err := row.Scan(&o.ID, &o.OrderNumber, &o.UserID, &o.CouponID,
		&o.Subtotal, &o.Discount, &o.Total,
		&o.PaymentMethod, &paymentStatus, &o.UPIURI, &o.TransactionID,
		&o.Status, &address, &o.CourierName, &o.TrackingID, &o.TrackingURL,
		&o.ShippedAt, &o.DeliveredAt, &o.CreatedAt, &o.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if paymentStatus.Valid {
		o.PaymentStatus = PaymentStatus(paymentStatus.String)
	}
	if len(address) > 0 {
		o.ShippingAddress = address
	}
	return o, nil
}

func nullableJSON(raw []byte) interface{} {
	if len(raw) == 0 {
		return nil
	}
	return raw
}
