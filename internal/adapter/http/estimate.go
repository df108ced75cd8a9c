package httpadapter

import (
	"net/http"
	"strconv"
	"time"

	"promo-ads/internal/core/domain"
	"promo-ads/internal/core/estimate"
	"promo-ads/internal/validation"
)

// handleEstimate returns the projection for ad-hoc inputs. It accepts
// `radius_km` (default 5), `exclude_areas` (count, default 0),
// `daily_amount_cents` (default 0), `start_date` (default today) and
// `end_date` (optional) query parameters. Malformed numbers or dates
// result in HTTP 400; out of range values in HTTP 422.
func (h *Handler) handleEstimate(w http.ResponseWriter, r *http.Request) {
	var (
		q        = r.URL.Query()
		radius   = domain.DefaultRadiusKm
		excluded int
		b        = domain.Budget{StartDate: domain.DateOf(time.Now())}
		err      error
	)

	if s := q.Get("radius_km"); s != "" {
		if radius, err = strconv.Atoi(s); err != nil {
			http.Error(w, "invalid 'radius_km'", http.StatusBadRequest)
			return
		}
	}
	if s := q.Get("exclude_areas"); s != "" {
		if excluded, err = strconv.Atoi(s); err != nil {
			http.Error(w, "invalid 'exclude_areas'", http.StatusBadRequest)
			return
		}
	}
	if s := q.Get("daily_amount_cents"); s != "" {
		if b.DailyAmountCents, err = strconv.ParseInt(s, 10, 64); err != nil {
			http.Error(w, "invalid 'daily_amount_cents'", http.StatusBadRequest)
			return
		}
	}
	if s := q.Get("start_date"); s != "" {
		if b.StartDate, err = domain.ParseDate(s); err != nil {
			http.Error(w, "invalid 'start_date'", http.StatusBadRequest)
			return
		}
	}
	if s := q.Get("end_date"); s != "" {
		end, err := domain.ParseDate(s)
		if err != nil {
			http.Error(w, "invalid 'end_date'", http.StatusBadRequest)
			return
		}
		b.EndDate = &end
	}

	if err = validation.Var("radius_km", radius, "min=1,max=30"); err != nil {
		h.fail(w, r, err)
		return
	}
	if err = validation.Var("exclude_areas", excluded, "gte=0,lte=1000"); err != nil {
		h.fail(w, r, err)
		return
	}
	if err = validation.Struct(b); err != nil {
		h.fail(w, r, err)
		return
	}

	a := domain.Audience{RadiusKm: radius, ExcludeAreas: make([]string, excluded)}
	h.writeJSON(w, http.StatusOK, estimate.Project(a, b))
}
