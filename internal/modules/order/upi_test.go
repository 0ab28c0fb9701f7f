package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildUPIURI(t *testing.T) {
	cfg := UPIConfig{PayeeVPA: "store@upi", PayeeName: "My Store"}

	t.Run("full uri", func(t *testing.T) {
		got := buildUPIURI(cfg, 45, "123456789012345")
		assert.Equal(t,
			"upi://pay?pa=store%40upi&pn=My+Store&am=45.00&cu=INR&tn=Order+123456789012345",
			got)
	})

	t.Run("amount always has two decimals", func(t *testing.T) {
		assert.Contains(t, buildUPIURI(cfg, 99.9, "111111111111111"), "am=99.90")
		assert.Contains(t, buildUPIURI(cfg, 100, "111111111111111"), "am=100.00")
	})
}
