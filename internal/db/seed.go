package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"promo-ads/internal/core/domain"
)

// DemoOwner owns the seeded catalog and campaigns.
const DemoOwner = "demo"

var demoServices = []domain.Service{
	{ID: "svc-bath", Name: "Banho", PriceCents: 6000},
	{ID: "svc-groom", Name: "Tosa", PriceCents: 8000},
	{ID: "svc-vet", Name: "Consulta veterinária", PriceCents: 15000},
}

// Seed inserts a demo service catalog and a handful of campaigns in every
// status for DemoOwner. Running it again leaves existing rows untouched.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	for _, s := range demoServices {
		_, err := db.Exec(ctx, `INSERT INTO services (id, owner_id, name, price_cents)
VALUES ($1,$2,$3,$4) ON CONFLICT DO NOTHING`, s.ID, DemoOwner, s.Name, s.PriceCents)
		if err != nil {
			return err
		}
	}

	today := domain.DateOf(time.Now())
	statuses := []domain.Status{
		domain.StatusActive, domain.StatusActive, domain.StatusPaused,
		domain.StatusEnded, domain.StatusDraft,
	}
	for i, status := range statuses {
		svc := demoServices[i%len(demoServices)]
		obj := domain.Objectives[i%len(domain.Objectives)]
		// Stable ids keep the seed idempotent.
		id := uuid.NewSHA1(uuid.NameSpaceOID, []byte(fmt.Sprintf("promo-ads/demo/%d", i)))

		start := today.AddDate(0, 0, -14)
		var end *time.Time
		switch status {
		case domain.StatusEnded:
			e := today.AddDate(0, 0, -1)
			end = &e
		case domain.StatusPaused:
			e := today.AddDate(0, 1, 0)
			end = &e
		}

		daily := int64(500 * (i + 2))
		var m domain.Metrics
		if status != domain.StatusDraft {
			impressions := int64(1000 + r.Intn(4000))
			m.Clicks = impressions * int64(1+r.Intn(5)) / 100
			m.Bookings = m.Clicks * int64(r.Intn(10)) / 100
			m.SpendCents = daily * 7
			if m.Clicks > 0 {
				m.AvgCPCCents = m.SpendCents / m.Clicks
			}
			m.CTR = float64(m.Clicks) * 100 / float64(impressions)
		}

		_, err := db.Exec(ctx, `INSERT INTO campaigns
    (id, owner_id, name, objective, service_id, service_name, service_price_cents,
     radius_km, time_windows, exclude_areas, message, image_url,
     daily_budget_cents, start_date, end_date, max_cpc_cents, status,
     clicks, bookings, spend_cents, avg_cpc_cents, ctr, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,'',$12,$13,$14,NULL,$15,$16,$17,$18,$19,$20,$21,$21)
ON CONFLICT DO NOTHING`,
			id, DemoOwner, domain.DefaultCampaignName(obj, svc.Name), string(obj),
			svc.ID, svc.Name, svc.PriceCents,
			domain.DefaultRadiusKm+i, []string{}, []string{},
			fmt.Sprintf("%s com desconto esta semana", svc.Name),
			daily, start, end, string(status),
			m.Clicks, m.Bookings, m.SpendCents, m.AvgCPCCents, m.CTR,
			start.Add(time.Duration(i)*time.Hour))
		if err != nil {
			return err
		}
	}
	return nil
}
