package coupon

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a new PostgreSQL coupon repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

const couponColumns = `id, code, discount_percent, min_amount, expiration, is_active, created_at, updated_at`

func (r *postgresRepo) Create(ctx context.Context, c *Coupon) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO coupons (id, code, discount_percent, min_amount, expiration, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		c.ID, c.Code, c.DiscountPercent, c.MinAmount, c.Expiration, c.IsActive)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return ErrCodeTaken
	}
	return err
}

func (r *postgresRepo) GetByCode(ctx context.Context, code string) (*Coupon, error) {
	c := &Coupon{}
	err := r.db.QueryRowContext(ctx,
		`SELECT `+couponColumns+` FROM coupons WHERE code = $1`, code).Scan(
		&c.ID, &c.Code, &c.DiscountPercent, &c.MinAmount, &c.Expiration,
		&c.IsActive, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *postgresRepo) List(ctx context.Context) ([]*Coupon, error) {
	return r.queryCoupons(ctx,
		`SELECT `+couponColumns+` FROM coupons ORDER BY created_at DESC`)
}

func (r *postgresRepo) ListActive(ctx context.Context, now time.Time) ([]*Coupon, error) {
	return r.queryCoupons(ctx,
		`SELECT `+couponColumns+` FROM coupons WHERE is_active AND expiration > $1 ORDER BY expiration ASC`,
		now)
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	parsedID, err := uuid.Parse(id)
	if err != nil {
		return ErrNotFound
	}
	res, err := r.db.ExecContext(ctx, `DELETE FROM coupons WHERE id = $1`, parsedID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *postgresRepo) queryCoupons(ctx context.Context, query string, args ...interface{}) ([]*Coupon, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var coupons []*Coupon
	for rows.Next() {
		c := &Coupon{}
		if err := rows.Scan(&c.ID, &c.Code, &c.DiscountPercent, &c.MinAmount,
			&c.Expiration, &c.IsActive, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		coupons = append(coupons, c)
	}
	return coupons, rows.Err()
}
