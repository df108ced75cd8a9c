package httpadapter

import (
	"time"

	"github.com/google/uuid"

	"promo-ads/internal/core/domain"
	"promo-ads/internal/core/estimate"
	"promo-ads/internal/core/port"
)

// draftPatchRequest is the body of PATCH /drafts/{id}. Absent fields are
// left unchanged. Dates use domain.DateLayout.
type draftPatchRequest struct {
	Name             *string   `json:"name" validate:"omitempty,max=120"`
	Objective        *string   `json:"objective" validate:"omitempty,objective"`
	ServiceID        *string   `json:"service_id"`
	RadiusKm         *int      `json:"radius_km" validate:"omitempty,min=1,max=30"`
	TimeWindows      *[]string `json:"time_windows"`
	AddExcludeArea   *string   `json:"add_exclude_area"`
	RemoveExcludeAt  *int      `json:"remove_exclude_at" validate:"omitempty,gte=0"`
	Message          *string   `json:"message"`
	ImageURL         *string   `json:"image_url"`
	DailyAmountCents *int64    `json:"daily_amount_cents" validate:"omitempty,gte=0"`
	StartDate        *string   `json:"start_date"`
	EndDate          *string   `json:"end_date"`
	ClearEndDate     bool      `json:"clear_end_date"`
	MaxCPCCents      *int64    `json:"max_cpc_cents" validate:"omitempty,gt=0"`
	ClearMaxCPC      bool      `json:"clear_max_cpc"`
	AcceptTerms      *bool     `json:"accept_terms"`
	AcceptAdPolicy   *bool     `json:"accept_ad_policy"`
}

func (req draftPatchRequest) toDomain() (domain.DraftPatch, error) {
	p := domain.DraftPatch{
		Name:             req.Name,
		ServiceID:        req.ServiceID,
		RadiusKm:         req.RadiusKm,
		AddExcludeArea:   req.AddExcludeArea,
		RemoveExcludeAt:  req.RemoveExcludeAt,
		Message:          req.Message,
		ImageURL:         req.ImageURL,
		DailyAmountCents: req.DailyAmountCents,
		ClearEndDate:     req.ClearEndDate,
		MaxCPCCents:      req.MaxCPCCents,
		ClearMaxCPC:      req.ClearMaxCPC,
		AcceptTerms:      req.AcceptTerms,
		AcceptAdPolicy:   req.AcceptAdPolicy,
	}
	if req.Objective != nil {
		o := domain.Objective(*req.Objective)
		p.Objective = &o
	}
	if req.TimeWindows != nil {
		ws := toWindows(*req.TimeWindows)
		p.TimeWindows = &ws
	}
	var err error
	if p.StartDate, err = parseDate("start_date", req.StartDate); err != nil {
		return p, err
	}
	if p.EndDate, err = parseDate("end_date", req.EndDate); err != nil {
		return p, err
	}
	return p, nil
}

// campaignPatchRequest is the body of PATCH /campaigns/{id}.
type campaignPatchRequest struct {
	Name             *string   `json:"name" validate:"omitempty,max=120"`
	Message          *string   `json:"message"`
	ImageURL         *string   `json:"image_url"`
	RadiusKm         *int      `json:"radius_km" validate:"omitempty,min=1,max=30"`
	TimeWindows      *[]string `json:"time_windows"`
	ExcludeAreas     *[]string `json:"exclude_areas"`
	DailyAmountCents *int64    `json:"daily_amount_cents" validate:"omitempty,gt=0"`
	EndDate          *string   `json:"end_date"`
	ClearEndDate     bool      `json:"clear_end_date"`
	MaxCPCCents      *int64    `json:"max_cpc_cents" validate:"omitempty,gt=0"`
	ClearMaxCPC      bool      `json:"clear_max_cpc"`
}

func (req campaignPatchRequest) toDomain() (domain.CampaignPatch, error) {
	p := domain.CampaignPatch{
		Name:             req.Name,
		Message:          req.Message,
		ImageURL:         req.ImageURL,
		RadiusKm:         req.RadiusKm,
		ExcludeAreas:     req.ExcludeAreas,
		DailyAmountCents: req.DailyAmountCents,
		ClearEndDate:     req.ClearEndDate,
		MaxCPCCents:      req.MaxCPCCents,
		ClearMaxCPC:      req.ClearMaxCPC,
	}
	if req.TimeWindows != nil {
		ws := toWindows(*req.TimeWindows)
		p.TimeWindows = &ws
	}
	var err error
	p.EndDate, err = parseDate("end_date", req.EndDate)
	return p, err
}

type statusRequest struct {
	Status string `json:"status" validate:"required,status"`
}

type budgetResponse struct {
	DailyAmountCents int64   `json:"daily_amount_cents"`
	StartDate        string  `json:"start_date"`
	EndDate          *string `json:"end_date"`
	MaxCPCCents      *int64  `json:"max_cpc_cents"`
}

func toBudgetResponse(b domain.Budget) budgetResponse {
	return budgetResponse{
		DailyAmountCents: b.DailyAmountCents,
		StartDate:        formatDate(b.StartDate),
		EndDate:          formatDatePtr(b.EndDate),
		MaxCPCCents:      b.MaxCPCCents,
	}
}

type draftResponse struct {
	Name             string                  `json:"name"`
	Objective        domain.Objective        `json:"objective"`
	Service          domain.Service          `json:"service"`
	Audience         domain.Audience         `json:"audience"`
	Creative         domain.Creative         `json:"creative"`
	Budget           budgetResponse          `json:"budget"`
	Acknowledgements domain.Acknowledgements `json:"acknowledgements"`
	CreatedOn        string                  `json:"created_on"`
}

type draftStateResponse struct {
	ID         uuid.UUID           `json:"id"`
	Stage      int                 `json:"stage"`
	StageName  string              `json:"stage_name"`
	StageCount int                 `json:"stage_count"`
	CanAdvance bool                `json:"can_advance"`
	CanSubmit  bool                `json:"can_submit"`
	Submitting bool                `json:"submitting"`
	Submitted  bool                `json:"submitted"`
	LastError  string              `json:"last_error,omitempty"`
	Draft      draftResponse       `json:"draft"`
	Projection estimate.Projection `json:"projection"`
	View       any                 `json:"view"`
}

func toDraftStateResponse(s *port.DraftState) draftStateResponse {
	d := s.Draft
	return draftStateResponse{
		ID:         s.ID,
		Stage:      s.Stage,
		StageName:  s.StageName,
		StageCount: s.StageCount,
		CanAdvance: s.CanAdvance,
		CanSubmit:  s.CanSubmit,
		Submitting: s.Submitting,
		Submitted:  s.Submitted,
		LastError:  s.LastError,
		Draft: draftResponse{
			Name:             d.Name,
			Objective:        d.Objective,
			Service:          d.Service,
			Audience:         d.Audience,
			Creative:         d.Creative,
			Budget:           toBudgetResponse(d.Budget),
			Acknowledgements: d.Acknowledgements,
			CreatedOn:        formatDate(d.CreatedOn),
		},
		Projection: s.Projection,
		View:       s.View,
	}
}

type campaignResponse struct {
	ID        uuid.UUID        `json:"id"`
	Name      string           `json:"name"`
	Objective domain.Objective `json:"objective"`
	Service   domain.Service   `json:"service"`
	Audience  domain.Audience  `json:"audience"`
	Creative  domain.Creative  `json:"creative"`
	Budget    budgetResponse   `json:"budget"`
	Status    domain.Status    `json:"status"`
	Metrics   domain.Metrics   `json:"metrics"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

func (h *Handler) toCampaignResponse(c domain.Campaign) campaignResponse {
	creative := c.Creative
	creative.ImageURL = creative.EffectiveImageURL(h.fallbackImageURL)
	return campaignResponse{
		ID:        c.ID,
		Name:      c.Name,
		Objective: c.Objective,
		Service:   c.Service,
		Audience:  c.Audience,
		Creative:  creative,
		Budget:    toBudgetResponse(c.Budget),
		Status:    c.Status,
		Metrics:   c.Metrics,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

type summaryResponse struct {
	Total      int                   `json:"total"`
	ByStatus   map[domain.Status]int `json:"by_status"`
	SpendCents int64                 `json:"spend_cents"`
	Clicks     int64                 `json:"clicks"`
	Bookings   int64                 `json:"bookings"`
	AvgCTR     float64               `json:"avg_ctr"`
}

type campaignListResponse struct {
	Campaigns []campaignResponse `json:"campaigns"`
	Summary   summaryResponse    `json:"summary"`
}

func (h *Handler) toCampaignListResponse(l *port.CampaignList) campaignListResponse {
	out := campaignListResponse{
		Campaigns: make([]campaignResponse, 0, len(l.Campaigns)),
		Summary: summaryResponse{
			Total:      l.Total,
			ByStatus:   l.ByStatus,
			SpendCents: l.SpendCents,
			Clicks:     l.Clicks,
			Bookings:   l.Bookings,
			AvgCTR:     l.AvgCTR,
		},
	}
	for _, c := range l.Campaigns {
		out.Campaigns = append(out.Campaigns, h.toCampaignResponse(c))
	}
	return out
}

type errorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

func toWindows(ss []string) []domain.TimeWindow {
	out := make([]domain.TimeWindow, len(ss))
	for i, s := range ss {
		out[i] = domain.TimeWindow(s)
	}
	return out
}

func parseDate(field string, s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	t, err := domain.ParseDate(*s)
	if err != nil {
		return nil, domain.NewValidationError(field, "Date must use the YYYY-MM-DD format")
	}
	return &t, nil
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(domain.DateLayout)
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(domain.DateLayout)
	return &s
}
