package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"promo-ads/internal/core/domain"
)

// CatalogRepository implements port.ServiceCatalog over the services table.
type CatalogRepository struct {
	pool *pgxpool.Pool
}

// NewCatalogRepository returns a new repository instance.
func NewCatalogRepository(pool *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{pool: pool}
}

// Lookup returns the owner's service, or nil when it does not exist.
func (r *CatalogRepository) Lookup(ctx context.Context, ownerID, serviceID string) (*domain.Service, error) {
	var s domain.Service
	err := r.pool.QueryRow(ctx, `SELECT id, name, price_cents FROM services WHERE owner_id = $1 AND id = $2`,
		ownerID, serviceID).Scan(&s.ID, &s.Name, &s.PriceCents)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}
