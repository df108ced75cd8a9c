package domain

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Status is the lifecycle state of a persisted campaign. Changes go through
// the lifecycle package only.
type Status string

const (
	StatusDraft  Status = "draft"
	StatusActive Status = "active"
	StatusPaused Status = "paused"
	StatusEnded  Status = "ended"
)

// Statuses lists every status in lifecycle order.
var Statuses = []Status{StatusDraft, StatusActive, StatusPaused, StatusEnded}

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	return slices.Contains(Statuses, s)
}

func (s Status) String() string {
	return string(s)
}

// Objective is what the provider wants the campaign to produce.
type Objective string

const (
	ObjectiveBookings       Objective = "bookings"
	ObjectiveProfileVisits  Objective = "profile_visits"
	ObjectiveWhatsAppClicks Objective = "whatsapp_clicks"
)

// Objectives lists the selectable objectives in display order.
var Objectives = []Objective{ObjectiveBookings, ObjectiveProfileVisits, ObjectiveWhatsAppClicks}

// Valid reports whether o is a known objective.
func (o Objective) Valid() bool {
	return slices.Contains(Objectives, o)
}

// Label returns the display name of the objective.
func (o Objective) Label() string {
	switch o {
	case ObjectiveBookings:
		return "Bookings"
	case ObjectiveProfileVisits:
		return "Profile visits"
	case ObjectiveWhatsAppClicks:
		return "WhatsApp clicks"
	default:
		return string(o)
	}
}

// Service is an entry of the provider's service catalog.
type Service struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	PriceCents int64  `json:"price_cents"`
}

// Budget holds spend settings. Amounts are integer minor units. A nil
// EndDate means the campaign runs until stopped.
type Budget struct {
	DailyAmountCents int64      `validate:"gte=0"`
	StartDate        time.Time
	EndDate          *time.Time
	MaxCPCCents      *int64 `validate:"omitempty,gt=0"`
}

// OpenEnded reports whether the budget has no end date.
func (b Budget) OpenEnded() bool {
	return b.EndDate == nil
}

// Clone returns a deep copy of b.
func (b Budget) Clone() Budget {
	if b.EndDate != nil {
		end := *b.EndDate
		b.EndDate = &end
	}
	if b.MaxCPCCents != nil {
		c := *b.MaxCPCCents
		b.MaxCPCCents = &c
	}
	return b
}

// CopySuffix is appended to the name of a duplicated campaign.
const CopySuffix = " (copy)"

// Campaign is a submitted campaign: the finalized draft plus identity,
// status and delivery metrics.
type Campaign struct {
	ID        uuid.UUID
	OwnerID   string
	Name      string    `validate:"required,max=120"`
	Objective Objective `validate:"required,objective"`
	Service   Service
	Audience  Audience
	Creative  Creative
	Budget    Budget
	Status    Status
	Metrics   Metrics
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Clone returns a deep copy of c.
func (c Campaign) Clone() Campaign {
	c.Audience = c.Audience.Clone()
	c.Budget = c.Budget.Clone()
	return c
}

// Expired reports whether the campaign's end date lies before today.
func (c Campaign) Expired(today time.Time) bool {
	return c.Budget.EndDate != nil && DateOf(*c.Budget.EndDate).Before(DateOf(today))
}

// NewCampaign builds a campaign at StatusDraft from a finalized draft. When
// the draft carries no name one is derived from the objective and the
// service.
func NewCampaign(id uuid.UUID, ownerID string, d CampaignDraft, now time.Time) *Campaign {
	d = d.Clone()
	name := d.Name
	if name == "" {
		name = DefaultCampaignName(d.Objective, d.Service.Name)
	}
	return &Campaign{
		ID:        id,
		OwnerID:   ownerID,
		Name:      name,
		Objective: d.Objective,
		Service:   d.Service,
		Audience:  d.Audience,
		Creative:  d.Creative,
		Budget:    d.Budget,
		Status:    StatusDraft,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// DefaultCampaignName derives a name for a campaign created without one.
func DefaultCampaignName(o Objective, serviceName string) string {
	if serviceName == "" {
		return o.Label()
	}
	return o.Label() + " · " + serviceName
}

// ChargePlan is what the billing collaborator needs to schedule charges for
// a campaign.
type ChargePlan struct {
	CampaignID       uuid.UUID
	DailyAmountCents int64
	StartDate        time.Time
	EndDate          *time.Time
}

// ChargePlan returns the billing view of the campaign budget.
func (c Campaign) ChargePlan() ChargePlan {
	b := c.Budget.Clone()
	return ChargePlan{
		CampaignID:       c.ID,
		DailyAmountCents: b.DailyAmountCents,
		StartDate:        b.StartDate,
		EndDate:          b.EndDate,
	}
}

// CampaignPatch is a partial edit of a submitted campaign. Nil fields are
// left untouched. Status cannot be edited.
type CampaignPatch struct {
	Name             *string
	Message          *string
	ImageURL         *string
	RadiusKm         *int
	TimeWindows      *[]TimeWindow
	ExcludeAreas     *[]string
	DailyAmountCents *int64
	EndDate          *time.Time
	ClearEndDate     bool
	MaxCPCCents      *int64
	ClearMaxCPC      bool
}

// Apply returns a copy of c with the patch merged in. The result still has
// to be validated.
func (p CampaignPatch) Apply(c Campaign) Campaign {
	c = c.Clone()
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Message != nil {
		c.Creative.Message = *p.Message
	}
	if p.ImageURL != nil {
		c.Creative.ImageURL = *p.ImageURL
	}
	if p.RadiusKm != nil {
		c.Audience.RadiusKm = *p.RadiusKm
	}
	if p.TimeWindows != nil {
		c.Audience.TimeWindows = NormalizeTimeWindows(*p.TimeWindows)
	}
	if p.ExcludeAreas != nil {
		c.Audience.ExcludeAreas = slices.Clone(*p.ExcludeAreas)
	}
	if p.DailyAmountCents != nil {
		c.Budget.DailyAmountCents = *p.DailyAmountCents
	}
	switch {
	case p.ClearEndDate:
		c.Budget.EndDate = nil
	case p.EndDate != nil:
		end := DateOf(*p.EndDate)
		c.Budget.EndDate = &end
	}
	switch {
	case p.ClearMaxCPC:
		c.Budget.MaxCPCCents = nil
	case p.MaxCPCCents != nil:
		v := *p.MaxCPCCents
		c.Budget.MaxCPCCents = &v
	}
	return c
}
