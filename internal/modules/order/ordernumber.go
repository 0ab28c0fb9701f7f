package order

import "math/rand"

const orderNumberLength = 15

// The retry loop is best-effort only; the unique index on
// orders.order_number is the real uniqueness guarantee.
const orderNumberRetries = 3

// generateOrderNumber produces the customer-facing identifier: 15 random
// decimal digits. A leading zero is replaced by '1' so the number keeps
// its full width everywhere it is displayed.
func generateOrderNumber() string {
	digits := make([]byte, orderNumberLength)
	for i := range digits {
		digits[i] = '0' + byte(rand.Intn(10))
	}
	if digits[0] == '0' {
		digits[0] = '1'
	}
	return string(digits)
}
