package httpadapter

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"promo-ads/internal/adapter/usecase"
	"promo-ads/internal/core/domain"
	"promo-ads/internal/core/port/mocks"
)

var now = time.Date(2024, 12, 1, 12, 0, 0, 0, time.UTC)

type env struct {
	srv     http.Handler
	repo    *mocks.MockCampaignRepository
	catalog *mocks.MockServiceCatalog
	billing *mocks.MockBillingScheduler
}

func newEnv(t *testing.T) env {
	t.Helper()
	e := env{
		repo:    mocks.NewMockCampaignRepository(t),
		catalog: mocks.NewMockServiceCatalog(t),
		billing: mocks.NewMockBillingScheduler(t),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	uc := usecase.NewCampaignUseCase(e.repo, e.catalog, e.billing, logger,
		usecase.WithClock(func() time.Time { return now }))
	e.srv = NewHandler(uc, logger,
		WithFallbackImage("img://placeholder"),
		WithMetrics("/metrics")).Router()
	return e
}

func (e env) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set(UserHeader, "u1")
	rec := httptest.NewRecorder()
	e.srv.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

type stateBody struct {
	ID         uuid.UUID `json:"id"`
	Stage      int       `json:"stage"`
	StageName  string    `json:"stage_name"`
	CanAdvance bool      `json:"can_advance"`
	CanSubmit  bool      `json:"can_submit"`
	Draft      struct {
		Objective string `json:"objective"`
		Service   struct {
			Name string `json:"name"`
		} `json:"service"`
		Budget struct {
			StartDate string  `json:"start_date"`
			EndDate   *string `json:"end_date"`
		} `json:"budget"`
	} `json:"draft"`
	Projection struct {
		Reach            int64  `json:"reach"`
		TotalBudgetCents *int64 `json:"total_budget_cents"`
	} `json:"projection"`
}

type campaignBody struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Status   string    `json:"status"`
	Creative struct {
		ImageURL string `json:"image_url"`
	} `json:"creative"`
}

func TestRequiresUser(t *testing.T) {
	e := newEnv(t)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/drafts", nil)
	rec := httptest.NewRecorder()
	e.srv.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestWizardOverHTTP(t *testing.T) {
	e := newEnv(t)

	rec := e.do(t, http.MethodPost, "/api/v1/drafts", "")
	require.Equal(t, http.StatusCreated, rec.Code)
	st := decodeBody[stateBody](t, rec)
	assert.Equal(t, 1, st.Stage)
	assert.Equal(t, "objective", st.StageName)
	assert.Equal(t, "2024-12-01", st.Draft.Budget.StartDate)
	path := "/api/v1/drafts/" + st.ID.String()

	rec = e.do(t, http.MethodPost, path+"/advance", "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = e.do(t, http.MethodPatch, path, `{"objective":"bookings"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = e.do(t, http.MethodPost, path+"/advance", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, decodeBody[stateBody](t, rec).Stage)

	e.catalog.EXPECT().Lookup(mock.Anything, "u1", "svc-bath").
		Return(&domain.Service{ID: "svc-bath", Name: "Banho"}, nil).Once()
	rec = e.do(t, http.MethodPatch, path, `{"service_id":"svc-bath","radius_km":10}`)
	require.Equal(t, http.StatusOK, rec.Code)
	st = decodeBody[stateBody](t, rec)
	assert.Equal(t, "Banho", st.Draft.Service.Name)
	assert.Equal(t, int64(15000), st.Projection.Reach)

	rec = e.do(t, http.MethodPatch, path, `{"radius_km":31}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	eb := decodeBody[errorResponse](t, rec)
	assert.Contains(t, eb.Fields, "radius_km")

	rec = e.do(t, http.MethodPatch, path, `{"end_date":"08/12/2024"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = e.do(t, http.MethodPatch, path, `{"radius_km":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = e.do(t, http.MethodPost, path+"/advance", "")
	require.Equal(t, http.StatusOK, rec.Code)
	rec = e.do(t, http.MethodPatch, path, `{"message":"Banho com desconto"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = e.do(t, http.MethodPost, path+"/advance", "")
	require.Equal(t, http.StatusOK, rec.Code)
	rec = e.do(t, http.MethodPatch, path, `{"daily_amount_cents":2000,"end_date":"2024-12-08"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	st = decodeBody[stateBody](t, rec)
	require.NotNil(t, st.Projection.TotalBudgetCents)
	assert.Equal(t, int64(14000), *st.Projection.TotalBudgetCents)

	rec = e.do(t, http.MethodPost, path+"/advance", "")
	require.Equal(t, http.StatusOK, rec.Code)
	st = decodeBody[stateBody](t, rec)
	assert.Equal(t, "review", st.StageName)
	assert.False(t, st.CanSubmit)

	rec = e.do(t, http.MethodPost, path+"/submit", "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = e.do(t, http.MethodPatch, path, `{"accept_terms":true,"accept_ad_policy":true}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeBody[stateBody](t, rec).CanSubmit)

	e.repo.EXPECT().Create(mock.Anything, mock.Anything).Return(errors.New("timeout")).Once()
	rec = e.do(t, http.MethodPost, path+"/submit", "")
	assert.Equal(t, http.StatusBadGateway, rec.Code)

	e.repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()
	e.billing.EXPECT().ScheduleCharges(mock.Anything, mock.Anything).Return(nil).Once()
	rec = e.do(t, http.MethodPost, path+"/submit", "")
	require.Equal(t, http.StatusCreated, rec.Code)
	c := decodeBody[campaignBody](t, rec)
	assert.Equal(t, "active", c.Status)
	assert.Equal(t, "Bookings · Banho", c.Name)
	assert.Equal(t, "img://placeholder", c.Creative.ImageURL)

	rec = e.do(t, http.MethodGet, path, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDraftBadID(t *testing.T) {
	e := newEnv(t)
	rec := e.do(t, http.MethodGet, "/api/v1/drafts/not-a-uuid", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = e.do(t, http.MethodDelete, "/api/v1/drafts/"+uuid.NewString(), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func testCampaign(status domain.Status) domain.Campaign {
	return domain.Campaign{
		ID:        uuid.New(),
		OwnerID:   "u1",
		Name:      "Natal",
		Objective: domain.ObjectiveBookings,
		Service:   domain.Service{ID: "svc-bath", Name: "Banho"},
		Audience:  domain.Audience{RadiusKm: 5},
		Creative:  domain.Creative{Message: "Natal", ImageURL: "img://own"},
		Budget:    domain.Budget{DailyAmountCents: 1000, StartDate: now},
		Status:    status,
		Metrics:   domain.Metrics{SpendCents: 700, Clicks: 10},
	}
}

func TestListCampaigns(t *testing.T) {
	e := newEnv(t)
	a := testCampaign(domain.StatusActive)
	p := testCampaign(domain.StatusPaused)
	p.Name = "Tosa"
	e.repo.EXPECT().ListByOwner(mock.Anything, "u1").Return([]domain.Campaign{a, p}, nil).Once()

	rec := e.do(t, http.MethodGet, "/api/v1/campaigns?q=tosa&status=all&service=svc-bath", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Campaigns []campaignBody `json:"campaigns"`
		Summary   struct {
			Total      int            `json:"total"`
			ByStatus   map[string]int `json:"by_status"`
			SpendCents int64          `json:"spend_cents"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Campaigns, 1)
	assert.Equal(t, p.ID, body.Campaigns[0].ID)
	assert.Equal(t, "img://own", body.Campaigns[0].Creative.ImageURL)
	assert.Equal(t, 1, body.Summary.Total)
	assert.Equal(t, 1, body.Summary.ByStatus["paused"])
	assert.Equal(t, int64(700), body.Summary.SpendCents)

	rec = e.do(t, http.MethodGet, "/api/v1/campaigns?status=archived", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCampaignStatus(t *testing.T) {
	e := newEnv(t)
	active := testCampaign(domain.StatusActive)
	ended := testCampaign(domain.StatusEnded)
	e.repo.EXPECT().Get(mock.Anything, "u1", active.ID).Return(&active, nil).Once()
	e.repo.EXPECT().Get(mock.Anything, "u1", ended.ID).Return(&ended, nil).Once()
	e.repo.EXPECT().UpdateStatus(mock.Anything, active.ID, domain.StatusPaused, mock.Anything).Return(nil).Once()

	rec := e.do(t, http.MethodPost, "/api/v1/campaigns/"+active.ID.String()+"/status", `{"status":"paused"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "paused", decodeBody[campaignBody](t, rec).Status)

	rec = e.do(t, http.MethodPost, "/api/v1/campaigns/"+ended.ID.String()+"/status", `{"status":"active"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = e.do(t, http.MethodPost, "/api/v1/campaigns/"+ended.ID.String()+"/status", `{"status":"archived"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestDuplicateAndDelete(t *testing.T) {
	e := newEnv(t)
	c := testCampaign(domain.StatusActive)
	e.repo.EXPECT().Get(mock.Anything, "u1", c.ID).Return(&c, nil).Times(2)
	e.repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()
	e.repo.EXPECT().Delete(mock.Anything, "u1", c.ID).Return(nil).Once()

	rec := e.do(t, http.MethodPost, "/api/v1/campaigns/"+c.ID.String()+"/duplicate", "")
	require.Equal(t, http.StatusCreated, rec.Code)
	dup := decodeBody[campaignBody](t, rec)
	assert.Equal(t, "Natal (copy)", dup.Name)
	assert.Equal(t, "draft", dup.Status)

	rec = e.do(t, http.MethodDelete, "/api/v1/campaigns/"+c.ID.String(), "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	missing := uuid.New()
	e.repo.EXPECT().Get(mock.Anything, "u1", missing).Return(nil, nil).Once()
	rec = e.do(t, http.MethodGet, "/api/v1/campaigns/"+missing.String(), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestEditEndedCampaign(t *testing.T) {
	e := newEnv(t)
	c := testCampaign(domain.StatusEnded)
	e.repo.EXPECT().Get(mock.Anything, "u1", c.ID).Return(&c, nil).Once()

	rec := e.do(t, http.MethodPatch, "/api/v1/campaigns/"+c.ID.String(), `{"name":"Outro"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRepositoryFailureIsInternal(t *testing.T) {
	e := newEnv(t)
	e.repo.EXPECT().ListByOwner(mock.Anything, "u1").Return(nil, errors.New("pool closed")).Once()

	rec := e.do(t, http.MethodGet, "/api/v1/campaigns", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "pool closed")
}

func TestEstimate(t *testing.T) {
	e := newEnv(t)

	rec := e.do(t, http.MethodGet, "/api/v1/estimates?radius_km=5&exclude_areas=0&daily_amount_cents=2500&start_date=2024-12-01&end_date=2024-12-08", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var p struct {
		Reach            int64   `json:"reach"`
		DailyImpressions int64   `json:"daily_impressions"`
		DailyClicks      int64   `json:"daily_clicks"`
		DailyBookings    int64   `json:"daily_bookings"`
		CPC              float64 `json:"cpc"`
		TotalBudgetCents *int64  `json:"total_budget_cents"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	assert.Equal(t, int64(3750), p.Reach)
	assert.Equal(t, int64(12500), p.DailyImpressions)
	assert.Equal(t, int64(375), p.DailyClicks)
	assert.Equal(t, int64(30), p.DailyBookings)
	require.NotNil(t, p.TotalBudgetCents)
	assert.Equal(t, int64(17500), *p.TotalBudgetCents)

	rec = e.do(t, http.MethodGet, "/api/v1/estimates?radius_km=abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = e.do(t, http.MethodGet, "/api/v1/estimates?radius_km=50", "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = e.do(t, http.MethodGet, "/api/v1/estimates?start_date=2024-12-08&end_date=2024-12-01", "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	e := newEnv(t)
	e.do(t, http.MethodPost, "/api/v1/drafts", "")

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	e.srv.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "http_requests_total")
}
