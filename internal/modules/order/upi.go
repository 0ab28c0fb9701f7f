package order

import (
	"fmt"
	"net/url"
)

// UPIConfig identifies the merchant account ONLINE payments are collected
// on. Both fields come from the environment at startup.
type UPIConfig struct {
	PayeeVPA  string
	PayeeName string
}

// buildUPIURI renders the deep link an ONLINE order is paid through.
// Parameter order (pa, pn, am, cu, tn) is what UPI apps expect; the
// customer-facing order number rides in the transaction note.
func buildUPIURI(cfg UPIConfig, total float64, orderNumber string) string {
	return fmt.Sprintf("upi://pay?pa=%s&pn=%s&am=%.2f&cu=INR&tn=%s",
		url.QueryEscape(cfg.PayeeVPA),
		url.QueryEscape(cfg.PayeeName),
		total,
		url.QueryEscape("Order "+orderNumber))
}
