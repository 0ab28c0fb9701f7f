package coupon

import (
	"time"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ComputeDiscount returns the discount amount the coupon grants on the
// given subtotal, rounded to 2 decimals (half up). It returns 0 when the
// coupon is missing, inactive, expired at now, or the subtotal is below
// the coupon's minimum order amount. The percentage is clamped to [0, 100].
func ComputeDiscount(subtotal float64, c *Coupon, now time.Time) float64 {
	if c == nil || !c.IsActive {
		return 0
	}
	if !c.Expiration.IsZero() && c.Expiration.Before(now) {
		return 0
	}
	if subtotal < c.MinAmount {
		return 0
	}

	pct := decimal.NewFromFloat(c.DiscountPercent)
	if pct.IsNegative() {
		pct = decimal.Zero
	} else if pct.GreaterThan(hundred) {
		pct = hundred
	}

	amount := decimal.NewFromFloat(subtotal).Mul(pct).Div(hundred).Round(2)
	f, _ := amount.Float64()
	return f
}
