package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"promo-ads/internal/core/domain"
	"promo-ads/internal/core/port"
	"promo-ads/internal/core/port/mocks"
)

var (
	now   = time.Date(2024, 12, 1, 12, 0, 0, 0, time.UTC)
	user  = domain.UserContext{UserID: "u1"}
	other = domain.UserContext{UserID: "u2"}
	bath  = domain.Service{ID: "svc-bath", Name: "Banho", PriceCents: 6000}
)

func ptr[T any](v T) *T { return &v }

type deps struct {
	repo    *mocks.MockCampaignRepository
	catalog *mocks.MockServiceCatalog
	billing *mocks.MockBillingScheduler
}

func newUseCase(t *testing.T) (*CampaignUseCase, deps) {
	t.Helper()
	d := deps{
		repo:    mocks.NewMockCampaignRepository(t),
		catalog: mocks.NewMockServiceCatalog(t),
		billing: mocks.NewMockBillingScheduler(t),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	uc := NewCampaignUseCase(d.repo, d.catalog, d.billing, logger,
		WithClock(func() time.Time { return now }),
		WithSubmitTimeout(time.Second))
	return uc, d
}

// readyDraft walks a new wizard to the review stage with everything
// accepted.
func readyDraft(t *testing.T, uc *CampaignUseCase, d deps) uuid.UUID {
	t.Helper()
	ctx := context.Background()
	d.catalog.EXPECT().Lookup(mock.Anything, "u1", "svc-bath").Return(&bath, nil).Once()

	st, err := uc.StartDraft(ctx, user)
	require.NoError(t, err)
	id := st.ID

	patches := []domain.DraftPatch{
		{Objective: ptr(domain.ObjectiveBookings)},
		{ServiceID: ptr("svc-bath")},
		{Message: ptr("Banho com 10% off")},
		{DailyAmountCents: ptr(int64(2000)), EndDate: ptr(now.AddDate(0, 0, 7))},
	}
	for _, p := range patches {
		_, err = uc.UpdateDraft(ctx, user, id, p)
		require.NoError(t, err)
		_, err = uc.AdvanceDraft(ctx, user, id)
		require.NoError(t, err)
	}
	_, err = uc.UpdateDraft(ctx, user, id, domain.DraftPatch{AcceptTerms: ptr(true), AcceptAdPolicy: ptr(true)})
	require.NoError(t, err)
	return id
}

func campaign(status domain.Status) domain.Campaign {
	end := time.Date(2024, 12, 20, 0, 0, 0, 0, time.UTC)
	return domain.Campaign{
		ID:        uuid.New(),
		OwnerID:   "u1",
		Name:      "Natal",
		Objective: domain.ObjectiveBookings,
		Service:   bath,
		Audience:  domain.Audience{RadiusKm: 5},
		Creative:  domain.Creative{Message: "Natal no pet shop"},
		Budget: domain.Budget{
			DailyAmountCents: 1500,
			StartDate:        time.Date(2024, 11, 20, 0, 0, 0, 0, time.UTC),
			EndDate:          &end,
		},
		Status:  status,
		Metrics: domain.Metrics{Clicks: 40, Bookings: 3, SpendCents: 4500, CTR: 2},
	}
}

func TestDraftFlow(t *testing.T) {
	uc, _ := newUseCase(t)
	ctx := context.Background()

	st, err := uc.StartDraft(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, 1, st.Stage)
	assert.False(t, st.CanAdvance)

	_, err = uc.AdvanceDraft(ctx, user, st.ID)
	assert.ErrorIs(t, err, domain.ErrCannotAdvance)

	st, err = uc.UpdateDraft(ctx, user, st.ID, domain.DraftPatch{Objective: ptr(domain.ObjectiveBookings)})
	require.NoError(t, err)
	assert.Equal(t, 1, st.Stage)

	st, err = uc.AdvanceDraft(ctx, user, st.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, st.Stage)

	st, err = uc.RetreatDraft(ctx, user, st.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, st.Stage)
	assert.Equal(t, domain.ObjectiveBookings, st.Draft.Objective)

	_, err = uc.GetDraft(ctx, other, st.ID)
	assert.ErrorIs(t, err, domain.ErrDraftNotFound)

	require.NoError(t, uc.CancelDraft(ctx, user, st.ID))
	_, err = uc.GetDraft(ctx, user, st.ID)
	assert.ErrorIs(t, err, domain.ErrDraftNotFound)
}

func TestSubmitDraft(t *testing.T) {
	uc, d := newUseCase(t)
	ctx := context.Background()
	id := readyDraft(t, uc, d)

	var stored *domain.Campaign
	d.repo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*domain.Campaign")).
		Run(func(_ context.Context, c *domain.Campaign) {
			assert.Equal(t, domain.StatusActive, c.Status)
			assert.Equal(t, now, c.UpdatedAt)
			stored = c
		}).
		Return(nil).
		Once()
	d.billing.EXPECT().
		ScheduleCharges(mock.Anything, mock.MatchedBy(func(p domain.ChargePlan) bool {
			return p.DailyAmountCents == 2000 && p.EndDate != nil
		})).
		Return(nil).
		Once()

	created, err := uc.SubmitDraft(ctx, user, id)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, stored.ID, created.ID)
	assert.Equal(t, domain.StatusActive, created.Status)
	assert.Equal(t, "Bookings · Banho", created.Name)
	assert.Equal(t, "u1", created.OwnerID)

	_, err = uc.GetDraft(ctx, user, id)
	assert.ErrorIs(t, err, domain.ErrDraftNotFound, "submitted wizard is closed")
}

func TestSubmitDraftBillingFailureKeepsCampaign(t *testing.T) {
	uc, d := newUseCase(t)
	id := readyDraft(t, uc, d)

	d.repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()
	d.billing.EXPECT().ScheduleCharges(mock.Anything, mock.Anything).Return(errors.New("billing down")).Once()

	created, err := uc.SubmitDraft(context.Background(), user, id)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusActive, created.Status)
}

func TestSubmitDraftCreateFailure(t *testing.T) {
	uc, d := newUseCase(t)
	ctx := context.Background()
	id := readyDraft(t, uc, d)

	d.repo.EXPECT().Create(mock.Anything, mock.Anything).Return(errors.New("connection reset")).Once()

	_, err := uc.SubmitDraft(ctx, user, id)
	assert.ErrorIs(t, err, domain.ErrSubmissionFailed)

	st, err := uc.GetDraft(ctx, user, id)
	require.NoError(t, err)
	assert.True(t, st.CanSubmit)
	assert.Contains(t, st.LastError, "connection reset")
	assert.Equal(t, int64(2000), st.Draft.Budget.DailyAmountCents)
}

func TestSubmitDraftRetryAfterStoreFailure(t *testing.T) {
	uc, d := newUseCase(t)
	ctx := context.Background()
	id := readyDraft(t, uc, d)

	var attempts []uuid.UUID
	d.repo.EXPECT().
		Create(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, c *domain.Campaign) error {
			attempts = append(attempts, c.ID)
			if len(attempts) == 1 {
				return errors.New("conn reset")
			}
			return nil
		}).
		Times(2)
	d.billing.EXPECT().ScheduleCharges(mock.Anything, mock.Anything).Return(nil).Once()

	_, err := uc.SubmitDraft(ctx, user, id)
	require.ErrorIs(t, err, domain.ErrSubmissionFailed)

	st, err := uc.GetDraft(ctx, user, id)
	require.NoError(t, err)
	assert.False(t, st.Submitted)
	assert.True(t, st.CanSubmit)

	created, err := uc.SubmitDraft(ctx, user, id)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusActive, created.Status)
	require.Len(t, attempts, 2)
	assert.Equal(t, attempts[1], created.ID)

	_, err = uc.GetDraft(ctx, user, id)
	assert.ErrorIs(t, err, domain.ErrDraftNotFound)
	d.repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmitDraftConcurrent(t *testing.T) {
	uc, d := newUseCase(t)
	ctx := context.Background()
	id := readyDraft(t, uc, d)

	entered := make(chan struct{})
	release := make(chan struct{})
	d.repo.EXPECT().
		Create(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, *domain.Campaign) error {
			close(entered)
			<-release
			return nil
		}).
		Once()
	d.billing.EXPECT().ScheduleCharges(mock.Anything, mock.Anything).Return(nil).Once()

	var (
		wg  sync.WaitGroup
		err error
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err = uc.SubmitDraft(ctx, user, id)
	}()

	<-entered
	_, second := uc.SubmitDraft(ctx, user, id)
	assert.ErrorIs(t, second, domain.ErrSubmissionInProgress)

	close(release)
	wg.Wait()
	require.NoError(t, err)
	d.repo.AssertNumberOfCalls(t, "Create", 1)
}

func TestCreateCampaignAppliesTimeout(t *testing.T) {
	uc, d := newUseCase(t)

	d.repo.EXPECT().
		Create(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, _ *domain.Campaign) {
			deadline, ok := ctx.Deadline()
			assert.True(t, ok)
			assert.WithinDuration(t, time.Now().Add(time.Second), deadline, time.Second)
		}).
		Return(nil).
		Once()

	draft := domain.NewDraft(now)
	draft.Objective = domain.ObjectiveWhatsAppClicks
	c, err := uc.CreateCampaign(context.Background(), "u1", draft)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusActive, c.Status)
	assert.Equal(t, now, c.CreatedAt)
}

func TestListCampaigns(t *testing.T) {
	uc, d := newUseCase(t)

	active := campaign(domain.StatusActive)
	paused := campaign(domain.StatusPaused)
	paused.Name = "Tosa"
	ended := campaign(domain.StatusEnded)
	d.repo.EXPECT().ListByOwner(mock.Anything, "u1").Return([]domain.Campaign{active, paused, ended}, nil).Times(2)

	list, err := uc.ListCampaigns(context.Background(), user, port.CampaignFilter{Status: "all"})
	require.NoError(t, err)
	assert.Equal(t, 3, list.Total)
	assert.Equal(t, int64(13500), list.SpendCents)
	assert.Equal(t, 1, list.ByStatus[domain.StatusPaused])

	list, err = uc.ListCampaigns(context.Background(), user, port.CampaignFilter{Search: "NATAL", Status: "active"})
	require.NoError(t, err)
	require.Len(t, list.Campaigns, 1)
	assert.Equal(t, active.ID, list.Campaigns[0].ID)
}

func TestGetCampaignNotFound(t *testing.T) {
	uc, d := newUseCase(t)
	id := uuid.New()
	d.repo.EXPECT().Get(mock.Anything, "u1", id).Return(nil, nil).Once()

	_, err := uc.GetCampaign(context.Background(), user, id)
	assert.ErrorIs(t, err, domain.ErrCampaignNotFound)
}

func TestEditCampaign(t *testing.T) {
	uc, d := newUseCase(t)
	c := campaign(domain.StatusActive)
	d.repo.EXPECT().Get(mock.Anything, "u1", c.ID).Return(&c, nil).Times(2)
	d.repo.EXPECT().
		Update(mock.Anything, mock.MatchedBy(func(e *domain.Campaign) bool {
			return e.Audience.RadiusKm == 12 && e.UpdatedAt.Equal(now)
		})).
		Return(nil).
		Once()

	edited, err := uc.EditCampaign(context.Background(), user, c.ID, domain.CampaignPatch{RadiusKm: ptr(12)})
	require.NoError(t, err)
	assert.Equal(t, 12, edited.Audience.RadiusKm)
	assert.Equal(t, domain.StatusActive, edited.Status)

	_, err = uc.EditCampaign(context.Background(), user, c.ID, domain.CampaignPatch{RadiusKm: ptr(40)})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestDuplicateCampaign(t *testing.T) {
	uc, d := newUseCase(t)
	c := campaign(domain.StatusPaused)
	d.repo.EXPECT().Get(mock.Anything, "u1", c.ID).Return(&c, nil).Once()
	d.repo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*domain.Campaign")).Return(nil).Once()

	dup, err := uc.DuplicateCampaign(context.Background(), user, c.ID)
	require.NoError(t, err)
	assert.NotEqual(t, c.ID, dup.ID)
	assert.Equal(t, "Natal (copy)", dup.Name)
	assert.Equal(t, domain.StatusDraft, dup.Status)
	assert.Equal(t, now, dup.CreatedAt)
	assert.Equal(t, c.Metrics, dup.Metrics)
}

func TestDeleteCampaign(t *testing.T) {
	uc, d := newUseCase(t)
	c := campaign(domain.StatusEnded)
	d.repo.EXPECT().Get(mock.Anything, "u1", c.ID).Return(&c, nil).Once()
	d.repo.EXPECT().Delete(mock.Anything, "u1", c.ID).Return(nil).Once()

	require.NoError(t, uc.DeleteCampaign(context.Background(), user, c.ID))

	missing := uuid.New()
	d.repo.EXPECT().Get(mock.Anything, "u1", missing).Return(nil, nil).Once()
	assert.ErrorIs(t, uc.DeleteCampaign(context.Background(), user, missing), domain.ErrCampaignNotFound)
}

func TestSetCampaignStatus(t *testing.T) {
	uc, d := newUseCase(t)
	active := campaign(domain.StatusActive)
	ended := campaign(domain.StatusEnded)
	d.repo.EXPECT().Get(mock.Anything, "u1", active.ID).Return(&active, nil).Once()
	d.repo.EXPECT().Get(mock.Anything, "u1", ended.ID).Return(&ended, nil).Once()
	d.repo.EXPECT().UpdateStatus(mock.Anything, active.ID, domain.StatusPaused, now).Return(nil).Once()

	paused, err := uc.SetCampaignStatus(context.Background(), user, active.ID, domain.StatusPaused)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPaused, paused.Status)

	_, err = uc.SetCampaignStatus(context.Background(), user, ended.ID, domain.StatusActive)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestEndExpired(t *testing.T) {
	uc, d := newUseCase(t)
	today := time.Date(2024, 12, 21, 0, 0, 0, 0, time.UTC)

	a := campaign(domain.StatusActive)
	p := campaign(domain.StatusPaused)
	broken := campaign(domain.StatusActive)
	d.repo.EXPECT().ListExpired(mock.Anything, today).Return([]domain.Campaign{a, p, broken}, nil).Once()
	d.repo.EXPECT().UpdateStatus(mock.Anything, a.ID, domain.StatusEnded, now).Return(nil).Once()
	d.repo.EXPECT().UpdateStatus(mock.Anything, p.ID, domain.StatusEnded, now).Return(nil).Once()
	d.repo.EXPECT().UpdateStatus(mock.Anything, broken.ID, domain.StatusEnded, now).Return(errors.New("deadlock")).Once()

	n, err := uc.EndExpired(context.Background(), today)
	assert.Equal(t, 2, n)
	assert.Error(t, err)
}
