package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"promo-ads/internal/core/domain"
)

// BillingRepository implements port.BillingScheduler by writing charge
// plans to the billing_schedules table, which the billing engine polls.
type BillingRepository struct {
	pool *pgxpool.Pool
	now  func() time.Time
}

// NewBillingRepository returns a new repository instance.
func NewBillingRepository(pool *pgxpool.Pool) *BillingRepository {
	return &BillingRepository{pool: pool, now: time.Now}
}

// ScheduleCharges records the plan. Scheduling the same campaign twice
// replaces the previous plan.
func (r *BillingRepository) ScheduleCharges(ctx context.Context, plan domain.ChargePlan) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO billing_schedules
    (campaign_id, daily_amount_cents, start_date, end_date, created_at)
VALUES ($1,$2,$3,$4,$5)
ON CONFLICT (campaign_id) DO UPDATE SET
    daily_amount_cents = EXCLUDED.daily_amount_cents,
    start_date = EXCLUDED.start_date,
    end_date = EXCLUDED.end_date`,
		plan.CampaignID, plan.DailyAmountCents, plan.StartDate, plan.EndDate, r.now().UTC())
	return err
}
