// Package estimate projects the outcome of a campaign from its budget and
// targeting. Every function is pure: the same inputs always give the same
// outputs, so callers recompute on every read instead of caching.
//
// Money enters in integer minor units. Rates are applied as exact integer
// fractions so floor and ceil behave as declared, without float drift.
package estimate

import (
	"time"

	"promo-ads/internal/core/domain"
)

const (
	// ReachPerSquareKm is the number of people assumed per square kilometre
	// of radius.
	ReachPerSquareKm = 150
	// One impression costs 0.002 major units, i.e. 20 hundredths of a cent.
	costPerImpressionCentiCents = 20
	// Click-through rate of 3% and booking rate of 8% as exact fractions.
	clickRateNum, clickRateDen     = 3, 100
	bookingRateNum, bookingRateDen = 8, 100
)

// Reach estimates how many distinct people the targeting can expose:
// floor(radiusKm² × 150 / (excludeAreaCount + 1)).
func Reach(radiusKm, excludeAreaCount int) int64 {
	if radiusKm <= 0 {
		return 0
	}
	if excludeAreaCount < 0 {
		excludeAreaCount = 0
	}
	r := int64(radiusKm)
	return r * r * ReachPerSquareKm / int64(excludeAreaCount+1)
}

// DailyImpressions estimates impressions bought per day:
// floor(dailyAmount / 0.002) with dailyAmount in major units.
func DailyImpressions(dailyAmountCents int64) int64 {
	if dailyAmountCents <= 0 {
		return 0
	}
	return dailyAmountCents * 100 / costPerImpressionCentiCents
}

// DailyClicks estimates clicks per day: floor(impressions × 0.03).
func DailyClicks(impressions int64) int64 {
	if impressions <= 0 {
		return 0
	}
	return impressions * clickRateNum / clickRateDen
}

// CPC estimates the cost per click in major units: dailyAmount / clicks, or
// 0 when no click is expected.
func CPC(dailyAmountCents, clicks int64) float64 {
	if clicks <= 0 {
		return 0
	}
	return MajorUnits(dailyAmountCents) / float64(clicks)
}

// DailyBookings estimates bookings per day: floor(clicks × 0.08).
func DailyBookings(clicks int64) int64 {
	if clicks <= 0 {
		return 0
	}
	return clicks * bookingRateNum / bookingRateDen
}

// TotalBudget returns the whole-campaign spend in minor units:
// ceil(days(start, end)) × dailyAmount. It returns nil for an open-ended
// campaign.
func TotalBudget(dailyAmountCents int64, start time.Time, end *time.Time) *int64 {
	if end == nil {
		return nil
	}
	total := DaysBetween(start, *end) * dailyAmountCents
	return &total
}

// DaysBetween returns the calendar-day difference end − start, rounded up,
// and never negative.
func DaysBetween(start, end time.Time) int64 {
	d := domain.DateOf(end).Sub(domain.DateOf(start))
	if d <= 0 {
		return 0
	}
	days := int64(d / (24 * time.Hour))
	if d%(24*time.Hour) != 0 {
		days++
	}
	return days
}

// MajorUnits converts minor currency units to major units for display.
func MajorUnits(cents int64) float64 {
	return float64(cents) / 100
}

// Projection gathers every estimate for one set of inputs.
type Projection struct {
	Reach            int64   `json:"reach"`
	DailyImpressions int64   `json:"daily_impressions"`
	DailyClicks      int64   `json:"daily_clicks"`
	CPC              float64 `json:"cpc"`
	DailyBookings    int64   `json:"daily_bookings"`
	// TotalBudgetCents is nil for open-ended campaigns.
	TotalBudgetCents *int64 `json:"total_budget_cents"`
}

// Project computes the projection for an audience and budget.
func Project(a domain.Audience, b domain.Budget) Projection {
	impressions := DailyImpressions(b.DailyAmountCents)
	clicks := DailyClicks(impressions)
	return Projection{
		Reach:            Reach(a.RadiusKm, len(a.ExcludeAreas)),
		DailyImpressions: impressions,
		DailyClicks:      clicks,
		CPC:              CPC(b.DailyAmountCents, clicks),
		DailyBookings:    DailyBookings(clicks),
		TotalBudgetCents: TotalBudget(b.DailyAmountCents, b.StartDate, b.EndDate),
	}
}

// ProjectDraft computes the projection for a draft.
func ProjectDraft(d domain.CampaignDraft) Projection {
	return Project(d.Audience, d.Budget)
}
