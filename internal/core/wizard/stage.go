package wizard

import (
	"time"

	"promo-ads/internal/core/domain"
	"promo-ads/internal/core/estimate"
)

// StageID is the 1-based position of a stage in the wizard.
type StageID int

const (
	StageObjective StageID = iota + 1
	StageAudience
	StageCreative
	StageBudget
	StageReview
)

// StageCount is the number of stages.
const StageCount = int(StageReview)

// Stage is one step of the wizard. Each stage owns a slice of the draft:
// it decides whether that slice is complete and renders it.
type Stage interface {
	ID() StageID
	Name() string
	// CanAdvance reports whether the stage's part of the draft allows
	// moving on.
	CanAdvance(d domain.CampaignDraft) bool
	// View returns the data shown on this stage.
	View(d domain.CampaignDraft) any
}

var stages = [StageCount]Stage{
	objectiveStage{},
	audienceStage{},
	creativeStage{},
	budgetStage{},
	reviewStage{},
}

// StageAt returns the stage with the given id, or nil when out of range.
func StageAt(id StageID) Stage {
	if id < StageObjective || id > StageReview {
		return nil
	}
	return stages[id-1]
}

// Stages returns every stage in order.
func Stages() []Stage {
	return stages[:]
}

type ObjectiveOption struct {
	Value domain.Objective `json:"value"`
	Label string           `json:"label"`
}

type ObjectiveView struct {
	Selected domain.Objective  `json:"selected"`
	Options  []ObjectiveOption `json:"options"`
}

type objectiveStage struct{}

func (objectiveStage) ID() StageID  { return StageObjective }
func (objectiveStage) Name() string { return "objective" }

func (objectiveStage) CanAdvance(d domain.CampaignDraft) bool {
	return d.Objective != ""
}

func (objectiveStage) View(d domain.CampaignDraft) any {
	opts := make([]ObjectiveOption, 0, len(domain.Objectives))
	for _, o := range domain.Objectives {
		opts = append(opts, ObjectiveOption{Value: o, Label: o.Label()})
	}
	return ObjectiveView{Selected: d.Objective, Options: opts}
}

type AudienceView struct {
	Service      domain.Service      `json:"service"`
	RadiusKm     int                 `json:"radius_km"`
	MinRadiusKm  int                 `json:"min_radius_km"`
	MaxRadiusKm  int                 `json:"max_radius_km"`
	TimeWindows  []domain.TimeWindow `json:"time_windows"`
	AllHours     bool                `json:"all_hours"`
	ExcludeAreas []string            `json:"exclude_areas"`
	Reach        int64               `json:"reach"`
}

// audienceStage only requires the service; radius always has a valid
// default and the other fields are optional.
type audienceStage struct{}

func (audienceStage) ID() StageID  { return StageAudience }
func (audienceStage) Name() string { return "audience" }

func (audienceStage) CanAdvance(d domain.CampaignDraft) bool {
	return d.Service.ID != ""
}

func (audienceStage) View(d domain.CampaignDraft) any {
	a := d.Audience.Clone()
	return AudienceView{
		Service:      d.Service,
		RadiusKm:     a.RadiusKm,
		MinRadiusKm:  domain.MinRadiusKm,
		MaxRadiusKm:  domain.MaxRadiusKm,
		TimeWindows:  a.TimeWindows,
		AllHours:     a.AllHours(),
		ExcludeAreas: a.ExcludeAreas,
		Reach:        estimate.Reach(a.RadiusKm, len(a.ExcludeAreas)),
	}
}

type CreativeView struct {
	Message   string `json:"message"`
	ImageURL  string `json:"image_url"`
	Length    int    `json:"length"`
	MaxLength int    `json:"max_length"`
	Remaining int    `json:"remaining"`
}

type creativeStage struct{}

func (creativeStage) ID() StageID  { return StageCreative }
func (creativeStage) Name() string { return "creative" }

func (creativeStage) CanAdvance(d domain.CampaignDraft) bool {
	return d.Creative.HasValidMessage()
}

func (creativeStage) View(d domain.CampaignDraft) any {
	n := d.Creative.MessageLength()
	return CreativeView{
		Message:   d.Creative.Message,
		ImageURL:  d.Creative.ImageURL,
		Length:    n,
		MaxLength: domain.MaxMessageLength,
		Remaining: max(domain.MaxMessageLength-n, 0),
	}
}

type BudgetView struct {
	DailyAmountCents    int64               `json:"daily_amount_cents"`
	MinDailyAmountCents int64               `json:"min_daily_amount_cents"`
	MaxDailyAmountCents int64               `json:"max_daily_amount_cents"`
	StartDate           time.Time           `json:"start_date"`
	EndDate             *time.Time          `json:"end_date"`
	MaxCPCCents         *int64              `json:"max_cpc_cents"`
	Projection          estimate.Projection `json:"projection"`
}

type budgetStage struct{}

func (budgetStage) ID() StageID  { return StageBudget }
func (budgetStage) Name() string { return "budget" }

func (budgetStage) CanAdvance(d domain.CampaignDraft) bool {
	return d.Budget.DailyAmountCents > 0
}

func (budgetStage) View(d domain.CampaignDraft) any {
	b := d.Budget.Clone()
	return BudgetView{
		DailyAmountCents:    b.DailyAmountCents,
		MinDailyAmountCents: domain.MinDailyAmountCents,
		MaxDailyAmountCents: domain.MaxDailyAmountCents,
		StartDate:           b.StartDate,
		EndDate:             b.EndDate,
		MaxCPCCents:         b.MaxCPCCents,
		Projection:          estimate.ProjectDraft(d),
	}
}

type ReviewView struct {
	Name             string                  `json:"name"`
	Objective        ObjectiveOption         `json:"objective"`
	Service          domain.Service          `json:"service"`
	Audience         domain.Audience         `json:"audience"`
	Creative         domain.Creative         `json:"creative"`
	Budget           BudgetView              `json:"budget"`
	Acknowledgements domain.Acknowledgements `json:"acknowledgements"`
	CanSubmit        bool                    `json:"can_submit"`
}

// reviewStage never blocks navigation; submitting additionally needs both
// acknowledgements, checked by the controller.
type reviewStage struct{}

func (reviewStage) ID() StageID  { return StageReview }
func (reviewStage) Name() string { return "review" }

func (reviewStage) CanAdvance(domain.CampaignDraft) bool {
	return true
}

func (reviewStage) View(d domain.CampaignDraft) any {
	name := d.Name
	if name == "" {
		name = domain.DefaultCampaignName(d.Objective, d.Service.Name)
	}
	return ReviewView{
		Name:             name,
		Objective:        ObjectiveOption{Value: d.Objective, Label: d.Objective.Label()},
		Service:          d.Service,
		Audience:         d.Audience.Clone(),
		Creative:         d.Creative,
		Budget:           budgetStage{}.View(d).(BudgetView),
		Acknowledgements: d.Acknowledgements,
		CanSubmit:        readyToSubmit(d),
	}
}

// readyToSubmit reports whether every stage predicate holds and both
// acknowledgements were given.
func readyToSubmit(d domain.CampaignDraft) bool {
	return objectiveStage{}.CanAdvance(d) &&
		audienceStage{}.CanAdvance(d) &&
		creativeStage{}.CanAdvance(d) &&
		budgetStage{}.CanAdvance(d) &&
		d.Acknowledgements.Accepted()
}
