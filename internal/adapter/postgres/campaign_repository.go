package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"promo-ads/internal/core/domain"
)

const campaignColumns = `
            c.id,
            c.owner_id,
            c.name,
            c.objective,
            c.service_id,
            c.service_name,
            c.service_price_cents,
            c.radius_km,
            c.time_windows,
            c.exclude_areas,
            c.message,
            c.image_url,
            c.daily_budget_cents,
            c.start_date,
            c.end_date,
            c.max_cpc_cents,
            c.status,
            c.clicks,
            c.bookings,
            c.spend_cents,
            c.avg_cpc_cents,
            c.ctr,
            c.created_at,
            c.updated_at`

// CampaignRepository implements port.CampaignRepository using pgxpool for
// PostgreSQL.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

// ListByOwner returns the owner's campaigns, newest first.
func (r *CampaignRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `SELECT`+campaignColumns+`
        FROM campaigns c
        WHERE c.owner_id = $1
        ORDER BY c.created_at DESC, c.id`, ownerID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		return scanCampaign(row)
	})
}

// Get returns one of the owner's campaigns, or nil when it does not exist.
func (r *CampaignRepository) Get(ctx context.Context, ownerID string, id uuid.UUID) (*domain.Campaign, error) {
	row := r.pool.QueryRow(ctx, `SELECT`+campaignColumns+`
        FROM campaigns c
        WHERE c.owner_id = $1 AND c.id = $2`, ownerID, id)
	c, err := scanCampaign(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create inserts a new campaign with its current status and metrics.
func (r *CampaignRepository) Create(ctx context.Context, c *domain.Campaign) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO campaigns
    (id, owner_id, name, objective, service_id, service_name, service_price_cents,
     radius_km, time_windows, exclude_areas, message, image_url,
     daily_budget_cents, start_date, end_date, max_cpc_cents, status,
     clicks, bookings, spend_cents, avg_cpc_cents, ctr, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23,$24)`,
		c.ID, c.OwnerID, c.Name, string(c.Objective), c.Service.ID, c.Service.Name, c.Service.PriceCents,
		c.Audience.RadiusKm, windowsToText(c.Audience.TimeWindows), nonNil(c.Audience.ExcludeAreas),
		c.Creative.Message, c.Creative.ImageURL,
		c.Budget.DailyAmountCents, c.Budget.StartDate, c.Budget.EndDate, c.Budget.MaxCPCCents, string(c.Status),
		c.Metrics.Clicks, c.Metrics.Bookings, c.Metrics.SpendCents, c.Metrics.AvgCPCCents, c.Metrics.CTR,
		c.CreatedAt, c.UpdatedAt)
	return err
}

// Update stores the editable fields of a campaign. Status, metrics and
// creation data are left as they are.
func (r *CampaignRepository) Update(ctx context.Context, c *domain.Campaign) error {
	tag, err := r.pool.Exec(ctx, `UPDATE campaigns SET
    name = $3, radius_km = $4, time_windows = $5, exclude_areas = $6,
    message = $7, image_url = $8, daily_budget_cents = $9, end_date = $10,
    max_cpc_cents = $11, updated_at = $12
WHERE owner_id = $1 AND id = $2`,
		c.OwnerID, c.ID, c.Name, c.Audience.RadiusKm,
		windowsToText(c.Audience.TimeWindows), nonNil(c.Audience.ExcludeAreas),
		c.Creative.Message, c.Creative.ImageURL, c.Budget.DailyAmountCents, c.Budget.EndDate,
		c.Budget.MaxCPCCents, c.UpdatedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCampaignNotFound
	}
	return nil
}

// UpdateStatus stores a status decided by the lifecycle.
func (r *CampaignRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.Status, updatedAt time.Time) error {
	tag, err := r.pool.Exec(ctx, `UPDATE campaigns SET status = $2, updated_at = $3 WHERE id = $1`,
		id, string(status), updatedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCampaignNotFound
	}
	return nil
}

// Delete removes a campaign permanently. Scheduled charges go with it.
func (r *CampaignRepository) Delete(ctx context.Context, ownerID string, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM campaigns WHERE owner_id = $1 AND id = $2`, ownerID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCampaignNotFound
	}
	return nil
}

// ListExpired returns active or paused campaigns of every owner whose end
// date lies before today.
func (r *CampaignRepository) ListExpired(ctx context.Context, today time.Time) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `SELECT`+campaignColumns+`
        FROM campaigns c
        WHERE c.status IN ('active', 'paused')
          AND c.end_date IS NOT NULL
          AND c.end_date < $1`, domain.DateOf(today))
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		return scanCampaign(row)
	})
}

func scanCampaign(row pgx.Row) (domain.Campaign, error) {
	var (
		c         domain.Campaign
		objective string
		status    string
		windows   []string
		areas     []string
	)
	err := row.Scan(
		&c.ID,
		&c.OwnerID,
		&c.Name,
		&objective,
		&c.Service.ID,
		&c.Service.Name,
		&c.Service.PriceCents,
		&c.Audience.RadiusKm,
		&windows,
		&areas,
		&c.Creative.Message,
		&c.Creative.ImageURL,
		&c.Budget.DailyAmountCents,
		&c.Budget.StartDate,
		&c.Budget.EndDate,
		&c.Budget.MaxCPCCents,
		&status,
		&c.Metrics.Clicks,
		&c.Metrics.Bookings,
		&c.Metrics.SpendCents,
		&c.Metrics.AvgCPCCents,
		&c.Metrics.CTR,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return c, err
	}
	c.Objective = domain.Objective(objective)
	c.Status = domain.Status(status)
	c.Audience.TimeWindows = textToWindows(windows)
	if len(areas) > 0 {
		c.Audience.ExcludeAreas = areas
	}
	return c, nil
}

func windowsToText(ws []domain.TimeWindow) []string {
	out := make([]string, len(ws))
	for i, w := range ws {
		out[i] = string(w)
	}
	return out
}

func textToWindows(ss []string) []domain.TimeWindow {
	if len(ss) == 0 {
		return nil
	}
	out := make([]domain.TimeWindow, len(ss))
	for i, s := range ss {
		out[i] = domain.TimeWindow(s)
	}
	return out
}

// nonNil keeps NOT NULL array columns from receiving NULL.
func nonNil(ss []string) []string {
	if ss == nil {
		return []string{}
	}
	return ss
}
