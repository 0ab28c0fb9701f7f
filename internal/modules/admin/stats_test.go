package admin

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStats(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// Revenue sums every order's total, so the subselect must carry no
	// filter on status or payment state.
	mock.ExpectQuery(`\(SELECT COALESCE\(SUM\(total\), 0\) FROM orders\)`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"users", "products", "orders", "pending", "revenue"}).
			AddRow(3, 7, 5, 2, 199.5))

	stats, err := NewPostgresRepository(db).GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalUsers)
	assert.Equal(t, 7, stats.TotalProducts)
	assert.Equal(t, 5, stats.TotalOrders)
	assert.Equal(t, 2, stats.PendingOrders)
	assert.Equal(t, 199.5, stats.Revenue)
	assert.NoError(t, mock.ExpectationsWereMet())
}
