package order

import (
	"fmt"
	"net/url"
	"strings"
)

// Known couriers and their public tracking URL templates, evaluated in
// order; the first case-insensitive substring match of the courier name
// wins. Templates without a placeholder are consignment-lookup landing
// pages that take no id in the URL.
var courierPatterns = []struct {
	match    string
	template string
}{
	{"bluedart", "https://www.bluedart.com/track?track=%s"},
	{"dtdc", "https://www.dtdc.in/tracking/tracking_results.asp?Ttype=awb_no&strCnno=%s"},
	{"delhivery", "https://www.delhivery.com/track/package/%s"},
	{"ekart", "https://ekartlogistics.com/track/%s"},
	{"xpressbees", "https://www.xpressbees.com/track-shipment?isawb=Yes&trackid=%s"},
	{"india post", "https://www.indiapost.gov.in/_layouts/15/dop.portal.tracking/trackconsignment.aspx"},
	{"speed post", "https://www.indiapost.gov.in/_layouts/15/dop.portal.tracking/trackconsignment.aspx"},
}

// trackingURLFor synthesizes a public tracking URL from the courier name
// and tracking id. Unknown couriers and empty tracking ids yield "".
func trackingURLFor(courierName, trackingID string) string {
	if trackingID == "" {
		return ""
	}
	name := strings.ToLower(courierName)
	id := url.QueryEscape(trackingID)
	for _, p := range courierPatterns {
		if !strings.Contains(name, p.match) {
			continue
		}
		if strings.Contains(p.template, "%s") {
			return fmt.Sprintf(p.template, id)
		}
		return p.template
	}
	return ""
}
