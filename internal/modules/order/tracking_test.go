package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrackingURLFor(t *testing.T) {
	t.Run("known couriers embed the tracking id", func(t *testing.T) {
		cases := map[string]string{
			"BlueDart":   "https://www.bluedart.com/track?track=AWB123",
			"DTDC":       "https://www.dtdc.in/tracking/tracking_results.asp?Ttype=awb_no&strCnno=AWB123",
			"Delhivery":  "https://www.delhivery.com/track/package/AWB123",
			"Ekart":      "https://ekartlogistics.com/track/AWB123",
			"XpressBees": "https://www.xpressbees.com/track-shipment?isawb=Yes&trackid=AWB123",
		}
		for name, want := range cases {
			assert.Equal(t, want, trackingURLFor(name, "AWB123"), name)
		}
	})

	t.Run("matches on substring, case-insensitive", func(t *testing.T) {
		got := trackingURLFor("Blue Dart Express Ltd. (BLUEDART)", "AWB123")
		assert.Equal(t, "https://www.bluedart.com/track?track=AWB123", got)
	})

	t.Run("india post has no id placeholder", func(t *testing.T) {
		want := "https://www.indiapost.gov.in/_layouts/15/dop.portal.tracking/trackconsignment.aspx"
		assert.Equal(t, want, trackingURLFor("India Post", "EK123456789IN"))
		assert.Equal(t, want, trackingURLFor("Speed Post", "EK123456789IN"))
	})

	t.Run("tracking id is escaped", func(t *testing.T) {
		got := trackingURLFor("Delhivery", "AWB 123&x=1")
		assert.Equal(t, "https://www.delhivery.com/track/package/AWB+123%26x%3D1", got)
	})

	t.Run("unknown courier", func(t *testing.T) {
		assert.Equal(t, "", trackingURLFor("Some Local Courier", "AWB123"))
	})

	t.Run("empty tracking id", func(t *testing.T) {
		assert.Equal(t, "", trackingURLFor("BlueDart", ""))
	})
}
