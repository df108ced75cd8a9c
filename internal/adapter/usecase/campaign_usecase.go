package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"promo-ads/internal/core/domain"
	"promo-ads/internal/core/lifecycle"
	"promo-ads/internal/core/port"
	"promo-ads/internal/core/roster"
	"promo-ads/internal/core/wizard"
)

// DefaultSubmitTimeout bounds a call to the campaign creation endpoint when
// no other value is configured.
const DefaultSubmitTimeout = 10 * time.Second

// CampaignUseCase implements port.CampaignUseCase. It keeps the open
// creation wizards in memory and runs roster operations against the
// campaign repository.
type CampaignUseCase struct {
	repo    port.CampaignRepository
	catalog port.ServiceCatalog
	billing port.BillingScheduler
	logger  *slog.Logger

	submitTimeout time.Duration
	now           func() time.Time

	mu     sync.Mutex
	drafts map[uuid.UUID]*wizard.Controller
}

// Option configures a CampaignUseCase.
type Option func(*CampaignUseCase)

// WithSubmitTimeout bounds the creation endpoint call made on submit.
func WithSubmitTimeout(d time.Duration) Option {
	return func(u *CampaignUseCase) {
		if d > 0 {
			u.submitTimeout = d
		}
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(u *CampaignUseCase) { u.now = now }
}

// NewCampaignUseCase creates a usecase over the given collaborators.
func NewCampaignUseCase(
	repo port.CampaignRepository,
	catalog port.ServiceCatalog,
	billing port.BillingScheduler,
	logger *slog.Logger,
	opts ...Option,
) *CampaignUseCase {
	u := &CampaignUseCase{
		repo:          repo,
		catalog:       catalog,
		billing:       billing,
		logger:        logger,
		submitTimeout: DefaultSubmitTimeout,
		now:           time.Now,
		drafts:        make(map[uuid.UUID]*wizard.Controller),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// CreateCampaign is the creation endpoint handed to every wizard. The
// finalized draft is stored as a new campaign already at StatusActive.
func (u *CampaignUseCase) CreateCampaign(ctx context.Context, ownerID string, d domain.CampaignDraft) (*domain.Campaign, error) {
	ctx, cancel := context.WithTimeout(ctx, u.submitTimeout)
	defer cancel()

	now := u.now()
	c := domain.NewCampaign(uuid.New(), ownerID, d, now)
	if err := lifecycle.Activate(c, now); err != nil {
		return nil, err
	}
	if err := u.repo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create campaign: %w", err)
	}
	return c, nil
}

// StartDraft opens a new wizard for the user.
func (u *CampaignUseCase) StartDraft(_ context.Context, user domain.UserContext) (*port.DraftState, error) {
	ctl := wizard.New(user.UserID, u, u.catalog,
		wizard.WithClock(u.now),
		wizard.WithLogger(u.logger))

	u.mu.Lock()
	u.drafts[ctl.ID()] = ctl
	u.mu.Unlock()

	u.logger.Debug("draft started",
		slog.String("user_id", user.UserID),
		slog.String("draft_id", ctl.ID().String()))
	return state(ctl), nil
}

// GetDraft returns the current state of one of the user's wizards.
func (u *CampaignUseCase) GetDraft(_ context.Context, user domain.UserContext, draftID uuid.UUID) (*port.DraftState, error) {
	ctl, err := u.draft(user, draftID)
	if err != nil {
		return nil, err
	}
	return state(ctl), nil
}

// UpdateDraft merges a partial update into a wizard's draft.
func (u *CampaignUseCase) UpdateDraft(ctx context.Context, user domain.UserContext, draftID uuid.UUID, patch domain.DraftPatch) (*port.DraftState, error) {
	ctl, err := u.draft(user, draftID)
	if err != nil {
		return nil, err
	}
	if err = ctl.Update(ctx, patch); err != nil {
		return nil, err
	}
	return state(ctl), nil
}

// AdvanceDraft moves a wizard to its next stage.
func (u *CampaignUseCase) AdvanceDraft(_ context.Context, user domain.UserContext, draftID uuid.UUID) (*port.DraftState, error) {
	ctl, err := u.draft(user, draftID)
	if err != nil {
		return nil, err
	}
	if !ctl.Advance() {
		return nil, domain.ErrCannotAdvance
	}
	return state(ctl), nil
}

// RetreatDraft moves a wizard back one stage. On the first stage it is a
// no-op.
func (u *CampaignUseCase) RetreatDraft(_ context.Context, user domain.UserContext, draftID uuid.UUID) (*port.DraftState, error) {
	ctl, err := u.draft(user, draftID)
	if err != nil {
		return nil, err
	}
	ctl.Retreat()
	return state(ctl), nil
}

// SubmitDraft submits a wizard. On success the campaign is stored as
// active, its charges are scheduled and the wizard is closed. A failed
// store keeps the wizard open for a retry. A failed
// billing hand-off is logged and does not undo the campaign.
func (u *CampaignUseCase) SubmitDraft(ctx context.Context, user domain.UserContext, draftID uuid.UUID) (*domain.Campaign, error) {
	ctl, err := u.draft(user, draftID)
	if err != nil {
		return nil, err
	}

	created, err := ctl.Submit(ctx)
	if err != nil {
		submissionsTotal.WithLabelValues(submissionOutcome(err)).Inc()
		return nil, err
	}
	submissionsTotal.WithLabelValues("created").Inc()

	transitionsTotal.WithLabelValues(string(domain.StatusDraft), string(created.Status)).Inc()

	if err = u.billing.ScheduleCharges(ctx, created.ChargePlan()); err != nil {
		u.logger.Error("failed to schedule charges",
			slog.String("campaign_id", created.ID.String()),
			slog.Any("error", err))
	}

	u.mu.Lock()
	delete(u.drafts, draftID)
	u.mu.Unlock()

	u.logger.Info("campaign created",
		slog.String("user_id", user.UserID),
		slog.String("campaign_id", created.ID.String()))
	return created, nil
}

// CancelDraft discards a wizard.
func (u *CampaignUseCase) CancelDraft(_ context.Context, user domain.UserContext, draftID uuid.UUID) error {
	if _, err := u.draft(user, draftID); err != nil {
		return err
	}
	u.mu.Lock()
	delete(u.drafts, draftID)
	u.mu.Unlock()
	return nil
}

// ListCampaigns returns the user's campaigns matching f, newest first, with
// totals over the listed campaigns.
func (u *CampaignUseCase) ListCampaigns(ctx context.Context, user domain.UserContext, f port.CampaignFilter) (*port.CampaignList, error) {
	campaigns, err := u.repo.ListByOwner(ctx, user.UserID)
	if err != nil {
		return nil, err
	}
	listed := roster.New(campaigns).Filter(roster.Filter{
		Search:  f.Search,
		Status:  f.Status,
		Service: f.Service,
	})
	s := roster.Summarize(listed)
	return &port.CampaignList{
		Campaigns:  listed,
		Total:      s.Total,
		ByStatus:   s.ByStatus,
		SpendCents: s.SpendCents,
		Clicks:     s.Clicks,
		Bookings:   s.Bookings,
		AvgCTR:     s.AvgCTR,
	}, nil
}

// GetCampaign returns one of the user's campaigns.
func (u *CampaignUseCase) GetCampaign(ctx context.Context, user domain.UserContext, id uuid.UUID) (*domain.Campaign, error) {
	c, err := u.repo.Get(ctx, user.UserID, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrCampaignNotFound
	}
	return c, nil
}

// EditCampaign applies a partial edit and stores the result.
func (u *CampaignUseCase) EditCampaign(ctx context.Context, user domain.UserContext, id uuid.UUID, patch domain.CampaignPatch) (*domain.Campaign, error) {
	r, err := u.load(ctx, user, id)
	if err != nil {
		return nil, err
	}
	edited, err := r.Edit(id, patch)
	if err != nil {
		return nil, err
	}
	if err = u.repo.Update(ctx, &edited); err != nil {
		return nil, err
	}
	return &edited, nil
}

// DuplicateCampaign stores a copy of a campaign as a new draft.
func (u *CampaignUseCase) DuplicateCampaign(ctx context.Context, user domain.UserContext, id uuid.UUID) (*domain.Campaign, error) {
	r, err := u.load(ctx, user, id)
	if err != nil {
		return nil, err
	}
	dup, err := r.Duplicate(id)
	if err != nil {
		return nil, err
	}
	if err = u.repo.Create(ctx, &dup); err != nil {
		return nil, err
	}
	return &dup, nil
}

// DeleteCampaign removes a campaign permanently.
func (u *CampaignUseCase) DeleteCampaign(ctx context.Context, user domain.UserContext, id uuid.UUID) error {
	r, err := u.load(ctx, user, id)
	if err != nil {
		return err
	}
	if _, err = r.Delete(id); err != nil {
		return err
	}
	return u.repo.Delete(ctx, user.UserID, id)
}

// SetCampaignStatus moves a campaign through the lifecycle and stores the
// new status.
func (u *CampaignUseCase) SetCampaignStatus(ctx context.Context, user domain.UserContext, id uuid.UUID, status domain.Status) (*domain.Campaign, error) {
	before, err := u.GetCampaign(ctx, user, id)
	if err != nil {
		return nil, err
	}
	r := roster.New([]domain.Campaign{*before}, roster.WithClock(u.now))
	updated, err := r.SetStatus(id, status)
	if err != nil {
		return nil, err
	}
	if err = u.repo.UpdateStatus(ctx, id, updated.Status, updated.UpdatedAt); err != nil {
		return nil, err
	}
	transitionsTotal.WithLabelValues(string(before.Status), string(updated.Status)).Inc()
	return &updated, nil
}

// EndExpired ends every active or paused campaign whose end date lies
// before today. Campaigns that fail to store are logged and skipped.
func (u *CampaignUseCase) EndExpired(ctx context.Context, today time.Time) (int, error) {
	expired, err := u.repo.ListExpired(ctx, today)
	if err != nil {
		return 0, err
	}

	var (
		n    int
		errs []error
	)
	ended := roster.New(expired, roster.WithClock(u.now)).Expire(today)
	for _, c := range ended {
		if err = u.repo.UpdateStatus(ctx, c.ID, c.Status, c.UpdatedAt); err != nil {
			u.logger.Error("failed to end campaign",
				slog.String("campaign_id", c.ID.String()),
				slog.Any("error", err))
			errs = append(errs, err)
			continue
		}
		n++
	}
	expiredTotal.Add(float64(n))
	return n, errors.Join(errs...)
}

// load returns a roster holding the single campaign id of the user.
func (u *CampaignUseCase) load(ctx context.Context, user domain.UserContext, id uuid.UUID) (*roster.Roster, error) {
	c, err := u.repo.Get(ctx, user.UserID, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrCampaignNotFound
	}
	return roster.New([]domain.Campaign{*c}, roster.WithClock(u.now)), nil
}

// draft returns the user's wizard. Wizards of other users are reported as
// missing.
func (u *CampaignUseCase) draft(user domain.UserContext, id uuid.UUID) (*wizard.Controller, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	ctl, ok := u.drafts[id]
	if !ok || ctl.OwnerID() != user.UserID {
		return nil, domain.ErrDraftNotFound
	}
	return ctl, nil
}

func state(ctl *wizard.Controller) *port.DraftState {
	s := ctl.State()
	return &s
}

func submissionOutcome(err error) string {
	switch {
	case errors.Is(err, domain.ErrSubmissionInProgress):
		return "in_progress"
	case errors.Is(err, domain.ErrSubmissionFailed):
		return "failed"
	default:
		return "rejected"
	}
}
