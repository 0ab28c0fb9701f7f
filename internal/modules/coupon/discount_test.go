package coupon

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func activeCoupon(percent, minAmount float64) *Coupon {
	return &Coupon{
		Code:            "SAVE10",
		DiscountPercent: percent,
		MinAmount:       minAmount,
		Expiration:      time.Now().Add(24 * time.Hour),
		IsActive:        true,
	}
}

func TestComputeDiscount(t *testing.T) {
	now := time.Now()

	t.Run("percentage of subtotal", func(t *testing.T) {
		c := activeCoupon(10, 10)
		assert.Equal(t, 5.0, ComputeDiscount(50, c, now))
	})

	t.Run("below minimum amount", func(t *testing.T) {
		c := activeCoupon(10, 100)
		assert.Equal(t, 0.0, ComputeDiscount(50, c, now))
	})

	t.Run("exactly at minimum amount qualifies", func(t *testing.T) {
		c := activeCoupon(10, 50)
		assert.Equal(t, 5.0, ComputeDiscount(50, c, now))
	})

	t.Run("nil coupon", func(t *testing.T) {
		assert.Equal(t, 0.0, ComputeDiscount(50, nil, now))
	})

	t.Run("inactive coupon", func(t *testing.T) {
		c := activeCoupon(10, 0)
		c.IsActive = false
		assert.Equal(t, 0.0, ComputeDiscount(50, c, now))
	})

	t.Run("expired coupon", func(t *testing.T) {
		c := activeCoupon(10, 0)
		c.Expiration = now.Add(-time.Minute)
		assert.Equal(t, 0.0, ComputeDiscount(50, c, now))
	})

	t.Run("percent clamped to 100", func(t *testing.T) {
		c := activeCoupon(150, 0)
		assert.Equal(t, 50.0, ComputeDiscount(50, c, now))
	})

	t.Run("negative percent clamped to 0", func(t *testing.T) {
		c := activeCoupon(-10, 0)
		assert.Equal(t, 0.0, ComputeDiscount(50, c, now))
	})

	t.Run("rounds to two decimals", func(t *testing.T) {
		c := activeCoupon(15, 0)
		// 33.33 * 0.15 = 4.9995, rounds to 5.00
		assert.Equal(t, 5.0, ComputeDiscount(33.33, c, now))
	})

	t.Run("no float drift on typical amounts", func(t *testing.T) {
		c := activeCoupon(10, 0)
		assert.Equal(t, 0.03, ComputeDiscount(0.30, c, now))
	})
}
