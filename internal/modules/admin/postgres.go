package admin

import (
	"context"
	"database/sql"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a new PostgreSQL admin repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) GetStats(ctx context.Context) (*Stats, error) {
	s := &Stats{}
	err := r.db.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM products),
			(SELECT COUNT(*) FROM orders),
			(SELECT COUNT(*) FROM orders WHERE status = 'PENDING'),
			(SELECT COALESCE(SUM(total), 0) FROM orders)`).Scan(
		&s.TotalUsers, &s.TotalProducts, &s.TotalOrders, &s.PendingOrders, &s.Revenue)
	if err != nil {
		return nil, err
	}
	return s, nil
}
