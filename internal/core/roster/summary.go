package roster

import "promo-ads/internal/core/domain"

// Summary aggregates the metrics of a list of campaigns.
type Summary struct {
	Total      int
	ByStatus   map[domain.Status]int
	SpendCents int64
	Clicks     int64
	Bookings   int64
	// AvgCTR is the plain mean of the campaigns' CTR.
	AvgCTR float64
}

// Summarize totals the given campaigns.
func Summarize(campaigns []domain.Campaign) Summary {
	s := Summary{
		Total:    len(campaigns),
		ByStatus: make(map[domain.Status]int, len(domain.Statuses)),
	}
	for _, st := range domain.Statuses {
		s.ByStatus[st] = 0
	}
	var ctr float64
	for _, c := range campaigns {
		s.ByStatus[c.Status]++
		s.SpendCents += c.Metrics.SpendCents
		s.Clicks += c.Metrics.Clicks
		s.Bookings += c.Metrics.Bookings
		ctr += c.Metrics.CTR
	}
	if len(campaigns) > 0 {
		s.AvgCTR = ctr / float64(len(campaigns))
	}
	return s
}
