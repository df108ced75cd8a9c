package domain

import (
	"slices"
	"strconv"
	"time"
)

// Daily budget range offered by the budget stage, in minor units. Only a
// positive amount is required to advance; the range bounds the slider.
const (
	MinDailyAmountCents = 500
	MaxDailyAmountCents = 10000
)

// Acknowledgements are the policy confirmations the provider must give on
// the review stage before submitting.
type Acknowledgements struct {
	Terms    bool `json:"terms"`
	AdPolicy bool `json:"ad_policy"`
}

// Accepted reports whether both acknowledgements were given.
func (a Acknowledgements) Accepted() bool {
	return a.Terms && a.AdPolicy
}

// CampaignDraft is a campaign being assembled by the creation wizard. It is
// owned by a single wizard and never shared. Objective and Service.ID are
// empty until chosen.
type CampaignDraft struct {
	Name             string    `validate:"max=120"`
	Objective        Objective `validate:"omitempty,objective"`
	Service          Service
	Audience         Audience
	Creative         Creative
	Budget           Budget
	Acknowledgements Acknowledgements
	// CreatedOn is the calendar date the draft was started; the budget
	// cannot start earlier.
	CreatedOn time.Time
}

// NewDraft returns an empty draft started at now: default radius, budget
// starting on the creation date and no end date.
func NewDraft(now time.Time) CampaignDraft {
	today := DateOf(now)
	return CampaignDraft{
		Audience:  Audience{RadiusKm: DefaultRadiusKm},
		Budget:    Budget{StartDate: today},
		CreatedOn: today,
	}
}

// Clone returns a deep copy of d.
func (d CampaignDraft) Clone() CampaignDraft {
	d.Audience = d.Audience.Clone()
	d.Budget = d.Budget.Clone()
	return d
}

// DraftPatch is a partial update of a draft. Nil fields are left untouched.
// ExcludeAreas are edited by appending a label or removing one by index.
type DraftPatch struct {
	Name             *string
	Objective        *Objective
	ServiceID        *string
	RadiusKm         *int
	TimeWindows      *[]TimeWindow
	AddExcludeArea   *string
	RemoveExcludeAt  *int
	Message          *string
	ImageURL         *string
	DailyAmountCents *int64
	StartDate        *time.Time
	EndDate          *time.Time
	ClearEndDate     bool
	MaxCPCCents      *int64
	ClearMaxCPC      bool
	AcceptTerms      *bool
	AcceptAdPolicy   *bool
}

// Apply returns a copy of d with the patch merged in. Service resolution is
// left to the caller: only the reference is stored here. An out of range
// RemoveExcludeAt is the only failure; the result still has to be
// validated.
func (p DraftPatch) Apply(d CampaignDraft) (CampaignDraft, error) {
	d = d.Clone()
	if p.Name != nil {
		d.Name = *p.Name
	}
	if p.Objective != nil {
		d.Objective = *p.Objective
	}
	if p.ServiceID != nil && *p.ServiceID != d.Service.ID {
		d.Service = Service{ID: *p.ServiceID}
	}
	if p.RadiusKm != nil {
		d.Audience.RadiusKm = *p.RadiusKm
	}
	if p.TimeWindows != nil {
		d.Audience.TimeWindows = NormalizeTimeWindows(*p.TimeWindows)
	}
	if p.RemoveExcludeAt != nil {
		i := *p.RemoveExcludeAt
		if i < 0 || i >= len(d.Audience.ExcludeAreas) {
			return d, NewValidationError("exclude_areas", "no area at index "+strconv.Itoa(i))
		}
		d.Audience.ExcludeAreas = slices.Delete(d.Audience.ExcludeAreas, i, i+1)
	}
	if p.AddExcludeArea != nil {
		d.Audience.ExcludeAreas = append(d.Audience.ExcludeAreas, *p.AddExcludeArea)
	}
	if p.Message != nil {
		d.Creative.Message = *p.Message
	}
	if p.ImageURL != nil {
		d.Creative.ImageURL = *p.ImageURL
	}
	if p.DailyAmountCents != nil {
		d.Budget.DailyAmountCents = *p.DailyAmountCents
	}
	if p.StartDate != nil {
		d.Budget.StartDate = DateOf(*p.StartDate)
	}
	switch {
	case p.ClearEndDate:
		d.Budget.EndDate = nil
	case p.EndDate != nil:
		end := DateOf(*p.EndDate)
		d.Budget.EndDate = &end
	}
	switch {
	case p.ClearMaxCPC:
		d.Budget.MaxCPCCents = nil
	case p.MaxCPCCents != nil:
		v := *p.MaxCPCCents
		d.Budget.MaxCPCCents = &v
	}
	if p.AcceptTerms != nil {
		d.Acknowledgements.Terms = *p.AcceptTerms
	}
	if p.AcceptAdPolicy != nil {
		d.Acknowledgements.AdPolicy = *p.AcceptAdPolicy
	}
	return d, nil
}
