package httpadapter

import (
	"net/http"

	"promo-ads/internal/core/domain"
	"promo-ads/internal/core/port"
)

// handleListCampaigns returns the acting user's campaigns matching the
// optional `q`, `status` and `service` query parameters, newest first,
// together with totals for the listed campaigns. `all` or an absent value
// matches every status or service.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := port.CampaignFilter{
		Search:  q.Get("q"),
		Status:  q.Get("status"),
		Service: q.Get("service"),
	}
	if f.Status != "" && f.Status != "all" && !domain.Status(f.Status).Valid() {
		http.Error(w, "invalid status", http.StatusBadRequest)
		return
	}

	list, err := h.svc.ListCampaigns(r.Context(), userFrom(r), f)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, h.toCampaignListResponse(list))
}

func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	c, err := h.svc.GetCampaign(r.Context(), userFrom(r), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, h.toCampaignResponse(*c))
}

// handleEditCampaign applies a partial edit. Ended campaigns cannot be
// edited (HTTP 409).
func (h *Handler) handleEditCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	var req campaignPatchRequest
	if !h.decodeOrFail(w, r, &req) {
		return
	}
	patch, err := req.toDomain()
	if err != nil {
		h.fail(w, r, err)
		return
	}
	c, err := h.svc.EditCampaign(r.Context(), userFrom(r), id, patch)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, h.toCampaignResponse(*c))
}

// handleDuplicateCampaign copies a campaign as a new draft and returns the
// copy with HTTP 201.
func (h *Handler) handleDuplicateCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	c, err := h.svc.DuplicateCampaign(r.Context(), userFrom(r), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, h.toCampaignResponse(*c))
}

func (h *Handler) handleDeleteCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	if err := h.svc.DeleteCampaign(r.Context(), userFrom(r), id); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleSetStatus requests a lifecycle transition. Transitions the
// lifecycle does not define result in HTTP 409.
func (h *Handler) handleSetStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	var req statusRequest
	if !h.decodeOrFail(w, r, &req) {
		return
	}
	c, err := h.svc.SetCampaignStatus(r.Context(), userFrom(r), id, domain.Status(req.Status))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, h.toCampaignResponse(*c))
}
