// Package roster holds the campaigns of one acting user and implements the
// list-level operations on them. Status changes are delegated to the
// lifecycle package; the roster never writes a status itself.
//
// A Roster is used by a single actor: every operation completes before the
// next one starts, so it carries no lock.
package roster

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"

	"promo-ads/internal/core/domain"
	"promo-ads/internal/core/lifecycle"
	"promo-ads/internal/validation"
)

// All is the wildcard value for the status and service filters.
const All = "all"

// Filter selects campaigns. Empty Status or Service behave as All.
type Filter struct {
	Search  string
	Status  string
	Service string
}

// Roster is an ordered collection of campaigns, newest first.
type Roster struct {
	campaigns []domain.Campaign
	now       func() time.Time
	newID     func() uuid.UUID
}

// Option configures a Roster.
type Option func(*Roster)

// WithClock overrides the time source used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(r *Roster) { r.now = now }
}

// WithIDGenerator overrides how duplicate ids are generated.
func WithIDGenerator(newID func() uuid.UUID) Option {
	return func(r *Roster) { r.newID = newID }
}

// New returns a roster holding campaigns in the given order. The slice is
// copied.
func New(campaigns []domain.Campaign, opts ...Option) *Roster {
	r := &Roster{
		campaigns: make([]domain.Campaign, 0, len(campaigns)),
		now:       time.Now,
		newID:     uuid.New,
	}
	for _, c := range campaigns {
		r.campaigns = append(r.campaigns, c.Clone())
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Len returns the number of campaigns.
func (r *Roster) Len() int {
	return len(r.campaigns)
}

// All returns a copy of every campaign in order.
func (r *Roster) All() []domain.Campaign {
	out := make([]domain.Campaign, len(r.campaigns))
	for i, c := range r.campaigns {
		out[i] = c.Clone()
	}
	return out
}

// Get returns the campaign with the given id.
func (r *Roster) Get(id uuid.UUID) (domain.Campaign, error) {
	i := r.index(id)
	if i < 0 {
		return domain.Campaign{}, domain.ErrCampaignNotFound
	}
	return r.campaigns[i].Clone(), nil
}

// Add inserts c at the head of the roster.
func (r *Roster) Add(c domain.Campaign) {
	r.campaigns = slices.Insert(r.campaigns, 0, c.Clone())
}

// Filter returns, in roster order, the campaigns matching every predicate
// of f: the search text as a case-insensitive substring of the name or the
// service name, the status, and the service id.
func (r *Roster) Filter(f Filter) []domain.Campaign {
	fold := cases.Fold()
	search := fold.String(f.Search)

	out := make([]domain.Campaign, 0, len(r.campaigns))
	for _, c := range r.campaigns {
		if search != "" &&
			!strings.Contains(fold.String(c.Name), search) &&
			!strings.Contains(fold.String(c.Service.Name), search) {
			continue
		}
		if !wildcard(f.Status) && string(c.Status) != f.Status {
			continue
		}
		if !wildcard(f.Service) && c.Service.ID != f.Service {
			continue
		}
		out = append(out, c.Clone())
	}
	return out
}

// Duplicate copies a campaign under a fresh id and creation time, at
// StatusDraft, with CopySuffix appended to the name. The copy goes to the
// head of the roster and is returned.
func (r *Roster) Duplicate(id uuid.UUID) (domain.Campaign, error) {
	i := r.index(id)
	if i < 0 {
		return domain.Campaign{}, domain.ErrCampaignNotFound
	}
	now := r.now()
	dup := r.campaigns[i].Clone()
	dup.ID = r.newID()
	dup.Name += domain.CopySuffix
	dup.Status = domain.StatusDraft
	dup.CreatedAt = now
	dup.UpdatedAt = now
	r.Add(dup)
	return dup.Clone(), nil
}

// Delete removes a campaign permanently and returns it.
func (r *Roster) Delete(id uuid.UUID) (domain.Campaign, error) {
	i := r.index(id)
	if i < 0 {
		return domain.Campaign{}, domain.ErrCampaignNotFound
	}
	removed := r.campaigns[i]
	r.campaigns = slices.Delete(r.campaigns, i, i+1)
	return removed, nil
}

// SetStatus asks the lifecycle to move a campaign to status. Ending is only
// accepted once the end date has passed. Rejected transitions leave the
// roster unchanged.
func (r *Roster) SetStatus(id uuid.UUID, status domain.Status) (domain.Campaign, error) {
	i := r.index(id)
	if i < 0 {
		return domain.Campaign{}, domain.ErrCampaignNotFound
	}
	c := r.campaigns[i].Clone()
	now := r.now()
	var err error
	if status == domain.StatusEnded {
		err = lifecycle.End(&c, now, now)
	} else {
		err = lifecycle.Transition(&c, status, now)
	}
	if err != nil {
		return domain.Campaign{}, err
	}
	r.campaigns[i] = c
	return c.Clone(), nil
}

// Edit merges a patch into a campaign after validating the result. Ended
// campaigns cannot be edited.
func (r *Roster) Edit(id uuid.UUID, p domain.CampaignPatch) (domain.Campaign, error) {
	i := r.index(id)
	if i < 0 {
		return domain.Campaign{}, domain.ErrCampaignNotFound
	}
	current := r.campaigns[i]
	if current.Status == domain.StatusEnded {
		return domain.Campaign{}, domain.ErrCampaignEnded
	}
	edited := p.Apply(current)
	if err := validation.Campaign(edited); err != nil {
		return domain.Campaign{}, err
	}
	edited.UpdatedAt = r.now()
	r.campaigns[i] = edited
	return edited.Clone(), nil
}

// Expire ends every active or paused campaign whose end date lies before
// today and returns the ended campaigns.
func (r *Roster) Expire(today time.Time) []domain.Campaign {
	var ended []domain.Campaign
	now := r.now()
	for i := range r.campaigns {
		c := &r.campaigns[i]
		if !c.Expired(today) || !lifecycle.CanTransition(c.Status, domain.StatusEnded) {
			continue
		}
		if err := lifecycle.End(c, today, now); err == nil {
			ended = append(ended, c.Clone())
		}
	}
	return ended
}

func (r *Roster) index(id uuid.UUID) int {
	return slices.IndexFunc(r.campaigns, func(c domain.Campaign) bool { return c.ID == id })
}

func wildcard(v string) bool {
	return v == "" || v == All
}
