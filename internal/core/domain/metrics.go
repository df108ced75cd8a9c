package domain

// Metrics are the delivery figures accumulated by a campaign. They are
// written by the delivery side and are read-only here. Money is stored in
// integer minor units.
type Metrics struct {
	Clicks      int64   `json:"clicks"`
	Bookings    int64   `json:"bookings"`
	SpendCents  int64   `json:"spend_cents"`
	AvgCPCCents int64   `json:"avg_cpc_cents"`
	CTR         float64 `json:"ctr"`
}
