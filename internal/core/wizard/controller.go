// Package wizard sequences the five-stage campaign creation flow. A
// Controller owns exactly one draft; two creations in progress use two
// controllers and never share state.
package wizard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"promo-ads/internal/core/domain"
	"promo-ads/internal/core/estimate"
	"promo-ads/internal/core/lifecycle"
	"promo-ads/internal/core/port"
	"promo-ads/internal/validation"
)

// Controller owns one CampaignDraft across the wizard stages and drives its
// submission.
//
// Operations are expected from a single actor. The mutex only makes the
// submit guard hold when requests arrive on different goroutines; it is
// released while the creation endpoint is awaited, so Update, Advance and
// Retreat stay callable during a submission without affecting it.
type Controller struct {
	mu sync.Mutex

	id      uuid.UUID
	ownerID string
	stage   StageID
	draft   domain.CampaignDraft

	submitting bool
	submitted  *domain.Campaign
	lastErr    error

	creator port.CampaignCreator
	catalog port.ServiceCatalog
	now     func() time.Time
	logger  *slog.Logger
}

// Option configures a Controller.
type Option func(*Controller)

// WithID sets the controller id. A random id is used otherwise.
func WithID(id uuid.UUID) Option {
	return func(c *Controller) { c.id = id }
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// WithLogger sets the logger used for submission outcomes.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) { c.logger = logger }
}

// New returns a controller on the first stage with an empty draft created
// today.
func New(ownerID string, creator port.CampaignCreator, catalog port.ServiceCatalog, opts ...Option) *Controller {
	c := &Controller{
		id:      uuid.New(),
		ownerID: ownerID,
		stage:   StageObjective,
		creator: creator,
		catalog: catalog,
		now:     time.Now,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.draft = domain.NewDraft(c.now())
	return c
}

// ID returns the controller id.
func (c *Controller) ID() uuid.UUID {
	return c.id
}

// OwnerID returns the user the draft belongs to.
func (c *Controller) OwnerID() string {
	return c.ownerID
}

// Stage returns the current stage.
func (c *Controller) Stage() StageID {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stage
}

// Draft returns a copy of the draft.
func (c *Controller) Draft() domain.CampaignDraft {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft.Clone()
}

// CanAdvance reports whether the current stage predicate holds.
func (c *Controller) CanAdvance() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.canAdvance()
}

func (c *Controller) canAdvance() bool {
	return StageAt(c.stage).CanAdvance(c.draft)
}

// CanSubmit reports whether Submit would reach the creation endpoint.
func (c *Controller) CanSubmit() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.canSubmit()
}

func (c *Controller) canSubmit() bool {
	return c.stage == StageReview && !c.submitting && c.submitted == nil && readyToSubmit(c.draft)
}

// Submitting reports whether a submission is awaiting the creation
// endpoint.
func (c *Controller) Submitting() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.submitting
}

// Submitted returns the created campaign once submission succeeded.
func (c *Controller) Submitted() *domain.Campaign {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.submitted == nil {
		return nil
	}
	cp := c.submitted.Clone()
	return &cp
}

// Advance moves to the next stage when the current stage predicate holds
// and reports whether it moved. On the last stage it never moves; use
// Submit.
func (c *Controller) Advance() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stage >= StageReview || !c.canAdvance() {
		return false
	}
	c.stage++
	return true
}

// Retreat moves back one stage and reports whether it moved. Entered data
// is kept.
func (c *Controller) Retreat() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stage <= StageObjective {
		return false
	}
	c.stage--
	return true
}

// Update merges a partial update into the draft without changing the stage.
// A new service reference is resolved through the catalog. When the merged
// draft is invalid the draft is left unchanged and a *domain.ValidationError
// is returned.
func (c *Controller) Update(ctx context.Context, patch domain.DraftPatch) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.submitted != nil {
		return domain.ErrAlreadySubmitted
	}

	next, err := patch.Apply(c.draft)
	if err != nil {
		return err
	}
	if next.Service.ID != "" && next.Service.ID != c.draft.Service.ID {
		svc, err := c.catalog.Lookup(ctx, c.ownerID, next.Service.ID)
		if err != nil {
			return fmt.Errorf("lookup service %q: %w", next.Service.ID, err)
		}
		if svc == nil {
			return domain.NewValidationError("service_id", domain.ErrServiceNotFound.Error())
		}
		next.Service = *svc
	}
	if err = validation.Draft(next); err != nil {
		return err
	}
	c.draft = next
	return nil
}

// Submit sends the draft to the creation endpoint and promotes the created
// campaign to active. It is permitted only on the review stage with both
// acknowledgements given.
//
// While a submission is in flight a second call returns
// domain.ErrSubmissionInProgress and does nothing. A failed submission
// leaves the draft unchanged and may be retried.
func (c *Controller) Submit(ctx context.Context) (*domain.Campaign, error) {
	c.mu.Lock()
	switch {
	case c.submitted != nil:
		c.mu.Unlock()
		return nil, domain.ErrAlreadySubmitted
	case c.submitting:
		c.mu.Unlock()
		return nil, domain.ErrSubmissionInProgress
	case c.stage != StageReview || !readyToSubmit(c.draft):
		c.mu.Unlock()
		return nil, domain.ErrCannotAdvance
	}
	if err := validation.Draft(c.draft); err != nil {
		c.mu.Unlock()
		return nil, err
	}
	c.submitting = true
	c.lastErr = nil
	draft := c.draft.Clone()
	c.mu.Unlock()

	created, err := c.creator.CreateCampaign(ctx, c.ownerID, draft)
	if err == nil && created == nil {
		err = errors.New("creation endpoint returned no campaign")
	}
	if err == nil && created.Status == domain.StatusDraft {
		err = lifecycle.Activate(created, c.now())
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.submitting = false
	if err != nil {
		c.lastErr = err
		c.logger.Warn("campaign submission failed",
			slog.String("draft_id", c.id.String()),
			slog.Any("error", err))
		return nil, fmt.Errorf("%w: %w", domain.ErrSubmissionFailed, err)
	}
	c.submitted = created
	c.logger.Info("campaign submitted",
		slog.String("draft_id", c.id.String()),
		slog.String("campaign_id", created.ID.String()))
	cp := created.Clone()
	return &cp, nil
}

// State returns a snapshot of the wizard for presentation.
func (c *Controller) State() port.DraftState {
	c.mu.Lock()
	defer c.mu.Unlock()
	st := StageAt(c.stage)
	s := port.DraftState{
		ID:         c.id,
		Stage:      int(c.stage),
		StageName:  st.Name(),
		StageCount: StageCount,
		CanAdvance: c.canAdvance(),
		CanSubmit:  c.canSubmit(),
		Submitting: c.submitting,
		Submitted:  c.submitted != nil,
		Draft:      c.draft.Clone(),
		Projection: estimate.ProjectDraft(c.draft),
		View:       st.View(c.draft),
	}
	if c.lastErr != nil {
		s.LastError = c.lastErr.Error()
	}
	return s
}
