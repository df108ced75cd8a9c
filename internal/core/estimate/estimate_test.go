package estimate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promo-ads/internal/core/domain"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := domain.ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestReach(t *testing.T) {
	assert.Equal(t, int64(3750), Reach(5, 0))
	assert.Equal(t, int64(1875), Reach(5, 1))
	assert.Equal(t, int64(1250), Reach(5, 2))
	assert.Equal(t, int64(150), Reach(1, 0))
	assert.Equal(t, int64(135000), Reach(30, 0))
	assert.Equal(t, int64(0), Reach(0, 0))
}

// TestReachMonotonic checks reach never grows with more exclusions and never
// shrinks with a larger radius.
func TestReachMonotonic(t *testing.T) {
	for r := 1; r <= 30; r++ {
		for n := 0; n < 20; n++ {
			assert.LessOrEqual(t, Reach(r, n+1), Reach(r, n), "radius %d exclusions %d", r, n)
			if r < 30 {
				assert.GreaterOrEqual(t, Reach(r+1, n), Reach(r, n), "radius %d exclusions %d", r, n)
			}
		}
	}
}

func TestDailyFunnel(t *testing.T) {
	impressions := DailyImpressions(2500)
	assert.Equal(t, int64(12500), impressions)

	clicks := DailyClicks(impressions)
	assert.Equal(t, int64(375), clicks)

	assert.Equal(t, int64(30), DailyBookings(clicks))
	assert.InDelta(t, 25.0/375.0, CPC(2500, clicks), 1e-12)
}

func TestFunnelFloors(t *testing.T) {
	assert.Equal(t, int64(2500), DailyImpressions(500))
	assert.Equal(t, int64(1), DailyImpressions(1))
	assert.Equal(t, int64(0), DailyImpressions(0))
	assert.Equal(t, int64(0), DailyImpressions(-100))

	// 33 × 0.03 = 0.99
	assert.Equal(t, int64(0), DailyClicks(33))
	assert.Equal(t, int64(1), DailyClicks(34))
	// 12 × 0.08 = 0.96
	assert.Equal(t, int64(0), DailyBookings(12))
	assert.Equal(t, int64(1), DailyBookings(13))
}

func TestCPCWithoutClicks(t *testing.T) {
	assert.Equal(t, 0.0, CPC(2500, 0))
}

func TestTotalBudget(t *testing.T) {
	start := date(t, "2024-12-01")
	end := date(t, "2024-12-08")

	total := TotalBudget(2000, start, &end)
	require.NotNil(t, total)
	assert.Equal(t, int64(14000), *total)
	assert.Equal(t, 140.0, MajorUnits(*total))

	assert.Nil(t, TotalBudget(2000, start, nil))

	same := TotalBudget(2000, start, &start)
	require.NotNil(t, same)
	assert.Equal(t, int64(0), *same)
}

func TestDaysBetween(t *testing.T) {
	start := date(t, "2024-02-27")
	assert.Equal(t, int64(3), DaysBetween(start, date(t, "2024-03-01")))
	assert.Equal(t, int64(0), DaysBetween(start, date(t, "2024-02-20")))

	// Clock time is ignored: both ends are calendar dates.
	late := time.Date(2024, 2, 27, 23, 30, 0, 0, time.UTC)
	early := time.Date(2024, 2, 28, 0, 15, 0, 0, time.UTC)
	assert.Equal(t, int64(1), DaysBetween(late, early))
}

func TestProjectIsDeterministic(t *testing.T) {
	end := date(t, "2025-01-31")
	d := domain.NewDraft(date(t, "2025-01-01"))
	d.Audience.ExcludeAreas = []string{"Centro"}
	d.Budget.DailyAmountCents = 2500
	d.Budget.EndDate = &end

	first := ProjectDraft(d)
	second := ProjectDraft(d)
	assert.Equal(t, first, second)

	assert.Equal(t, int64(1875), first.Reach)
	assert.Equal(t, int64(12500), first.DailyImpressions)
	assert.Equal(t, int64(375), first.DailyClicks)
	assert.Equal(t, int64(30), first.DailyBookings)
	require.NotNil(t, first.TotalBudgetCents)
	assert.Equal(t, int64(30*2500), *first.TotalBudgetCents)
}
