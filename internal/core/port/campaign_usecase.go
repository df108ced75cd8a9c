package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"promo-ads/internal/core/domain"
	"promo-ads/internal/core/estimate"
)

// CampaignUseCase defines the business operations exposed by the campaign
// service. This interface represents the primary port into the application
// domain.
type CampaignUseCase interface {
	// StartDraft opens a new creation wizard owned by the user.
	StartDraft(ctx context.Context, user domain.UserContext) (*DraftState, error)
	// GetDraft returns the current state of a wizard.
	GetDraft(ctx context.Context, user domain.UserContext, draftID uuid.UUID) (*DraftState, error)
	// UpdateDraft merges a partial update; the stage does not change.
	UpdateDraft(ctx context.Context, user domain.UserContext, draftID uuid.UUID, patch domain.DraftPatch) (*DraftState, error)
	// AdvanceDraft moves to the next stage, or returns
	// domain.ErrCannotAdvance when the current stage is incomplete.
	AdvanceDraft(ctx context.Context, user domain.UserContext, draftID uuid.UUID) (*DraftState, error)
	// RetreatDraft moves back one stage keeping every entered value.
	RetreatDraft(ctx context.Context, user domain.UserContext, draftID uuid.UUID) (*DraftState, error)
	// SubmitDraft creates and activates the campaign. A concurrent second
	// call fails with domain.ErrSubmissionInProgress without side effects.
	SubmitDraft(ctx context.Context, user domain.UserContext, draftID uuid.UUID) (*domain.Campaign, error)
	// CancelDraft discards a wizard.
	CancelDraft(ctx context.Context, user domain.UserContext, draftID uuid.UUID) error

	// ListCampaigns returns the filtered roster and its summary.
	ListCampaigns(ctx context.Context, user domain.UserContext, f CampaignFilter) (*CampaignList, error)
	// GetCampaign returns one campaign.
	GetCampaign(ctx context.Context, user domain.UserContext, id uuid.UUID) (*domain.Campaign, error)
	// EditCampaign applies a validated partial edit.
	EditCampaign(ctx context.Context, user domain.UserContext, id uuid.UUID, patch domain.CampaignPatch) (*domain.Campaign, error)
	// DuplicateCampaign copies a campaign as a new draft.
	DuplicateCampaign(ctx context.Context, user domain.UserContext, id uuid.UUID) (*domain.Campaign, error)
	// DeleteCampaign removes a campaign permanently.
	DeleteCampaign(ctx context.Context, user domain.UserContext, id uuid.UUID) error
	// SetCampaignStatus requests a lifecycle transition.
	SetCampaignStatus(ctx context.Context, user domain.UserContext, id uuid.UUID, status domain.Status) (*domain.Campaign, error)

	// EndExpired ends every campaign whose end date lies before today and
	// returns how many were ended.
	EndExpired(ctx context.Context, today time.Time) (int, error)
}

// DraftState is a snapshot of a creation wizard. View holds the data of the
// current stage and its concrete type depends on Stage.
type DraftState struct {
	ID         uuid.UUID
	Stage      int
	StageName  string
	StageCount int
	CanAdvance bool
	CanSubmit  bool
	Submitting bool
	Submitted  bool
	// LastError is the message of the last failed submission, if any.
	LastError  string
	Draft      domain.CampaignDraft
	Projection estimate.Projection
	View       any
}

// CampaignFilter selects campaigns from the roster. Empty values match
// everything.
type CampaignFilter struct {
	Search  string
	Status  string
	Service string
}

// CampaignList is a filtered roster with totals for the listed campaigns.
type CampaignList struct {
	Campaigns []domain.Campaign
	Total     int
	ByStatus  map[domain.Status]int
	// SpendCents, Clicks and Bookings are summed over Campaigns.
	SpendCents int64
	Clicks     int64
	Bookings   int64
	AvgCTR     float64
}
