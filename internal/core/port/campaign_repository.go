package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"promo-ads/internal/core/domain"
)

// CampaignRepository defines the persistence layer for submitted campaigns.
// It is an outbound port in hexagonal architecture. Lookups return nil and
// no error when nothing matches.
type CampaignRepository interface {
	// ListByOwner returns the owner's campaigns, newest first.
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Campaign, error)
	// Get returns one of the owner's campaigns.
	Get(ctx context.Context, ownerID string, id uuid.UUID) (*domain.Campaign, error)
	// Create stores a new campaign.
	Create(ctx context.Context, c *domain.Campaign) error
	// Update stores the editable fields of a campaign. Status is not
	// written.
	Update(ctx context.Context, c *domain.Campaign) error
	// UpdateStatus stores a status decided by the lifecycle.
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.Status, updatedAt time.Time) error
	// Delete removes a campaign permanently.
	Delete(ctx context.Context, ownerID string, id uuid.UUID) error
	// ListExpired returns active or paused campaigns of every owner whose
	// end date lies before today.
	ListExpired(ctx context.Context, today time.Time) ([]domain.Campaign, error)
}

// ServiceCatalog resolves service references chosen in the wizard.
type ServiceCatalog interface {
	// Lookup returns the owner's service with the given id, or nil.
	Lookup(ctx context.Context, ownerID, serviceID string) (*domain.Service, error)
}

// CampaignCreator is the campaign creation endpoint used on submit. It
// persists a finalized draft and returns the stored campaign, either at
// StatusDraft or already active. Delivery is at-most-once intended; a
// retry after a failure may create a second campaign.
type CampaignCreator interface {
	CreateCampaign(ctx context.Context, ownerID string, d domain.CampaignDraft) (*domain.Campaign, error)
}

// BillingScheduler hands the daily amount and date range of a new campaign
// to the billing side.
type BillingScheduler interface {
	ScheduleCharges(ctx context.Context, plan domain.ChargePlan) error
}
