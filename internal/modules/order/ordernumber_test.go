package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateOrderNumber(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 1000; i++ {
		n := generateOrderNumber()
		assert.Len(t, n, orderNumberLength)
		assert.NotEqual(t, byte('0'), n[0], "order number must not start with a zero")
		for _, c := range n {
			assert.True(t, c >= '0' && c <= '9', "order number must be all digits, got %q", n)
		}
		seen[n] = true
	}
	// 1000 draws from a 15-digit space colliding would mean a broken generator.
	assert.Equal(t, 1000, len(seen))
}
