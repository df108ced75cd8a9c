package validation

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promo-ads/internal/core/domain"
)

var created = time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)

func validDraft() domain.CampaignDraft {
	d := domain.NewDraft(created)
	d.Objective = domain.ObjectiveBookings
	d.Service = domain.Service{ID: "svc-1", Name: "Banho"}
	d.Creative.Message = "Banho e tosa"
	d.Budget.DailyAmountCents = 2000
	return d
}

func fields(t *testing.T, err error) map[string]string {
	t.Helper()
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	return verr.Fields
}

func TestDraftValid(t *testing.T) {
	assert.NoError(t, Draft(validDraft()))
	assert.NoError(t, Draft(domain.NewDraft(created)), "an empty draft is structurally valid")
}

func TestDraftInvalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(d *domain.CampaignDraft)
		field  string
	}{
		{"radius below range", func(d *domain.CampaignDraft) { d.Audience.RadiusKm = 0 }, "Audience.radius_km"},
		{"radius above range", func(d *domain.CampaignDraft) { d.Audience.RadiusKm = 31 }, "Audience.radius_km"},
		{"unknown window", func(d *domain.CampaignDraft) {
			d.Audience.TimeWindows = []domain.TimeWindow{domain.TimeWindowMorning, "night"}
		}, "Audience.time_windows[1]"},
		{"long message", func(d *domain.CampaignDraft) {
			d.Creative.Message = strings.Repeat("é", domain.MaxMessageLength+1)
		}, "Creative.message"},
		{"unknown objective", func(d *domain.CampaignDraft) { d.Objective = "sales" }, "Objective"},
		{"negative amount", func(d *domain.CampaignDraft) { d.Budget.DailyAmountCents = -5 }, "Budget.DailyAmountCents"},
		{"zero max cpc", func(d *domain.CampaignDraft) {
			zero := int64(0)
			d.Budget.MaxCPCCents = &zero
		}, "Budget.MaxCPCCents"},
		{"end before start", func(d *domain.CampaignDraft) {
			end := created.AddDate(0, 0, -1)
			d.Budget.EndDate = &end
		}, "Budget.EndDate"},
		{"start before creation", func(d *domain.CampaignDraft) {
			d.Budget.StartDate = created.AddDate(0, 0, -2)
		}, "StartDate"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDraft()
			tt.mutate(&d)
			err := Draft(d)
			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.Contains(t, fields(t, err), tt.field)
		})
	}
}

func TestMessageLengthCountsCharacters(t *testing.T) {
	d := validDraft()
	d.Creative.Message = strings.Repeat("é", domain.MaxMessageLength)
	assert.NoError(t, Draft(d))
}

func TestEndDateOnStartDateIsValid(t *testing.T) {
	d := validDraft()
	end := d.Budget.StartDate
	d.Budget.EndDate = &end
	assert.NoError(t, Draft(d))
}

func TestCampaign(t *testing.T) {
	d := validDraft()
	c := *domain.NewCampaign(uuid.New(), "u1", d, created)
	require.NoError(t, Campaign(c))

	c.Budget.DailyAmountCents = 0
	f := fields(t, Campaign(c))
	assert.Contains(t, f, "DailyAmountCents")

	c.Budget.DailyAmountCents = 100
	c.Name = ""
	f = fields(t, Campaign(c))
	assert.Equal(t, "This field is required", f["Name"])
}

func TestVar(t *testing.T) {
	assert.NoError(t, Var("status", "paused", "status"))

	err := Var("status", "archived", "status")
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, "Invalid status. Must be: draft, active, paused or ended", fields(t, err)["status"])
}
