package httpadapter

import (
	"net/http"
)

// handleStartDraft opens a new creation wizard and returns its first stage
// with HTTP 201.
func (h *Handler) handleStartDraft(w http.ResponseWriter, r *http.Request) {
	st, err := h.svc.StartDraft(r.Context(), userFrom(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, toDraftStateResponse(st))
}

// handleGetDraft returns the current stage, the draft, the stage view and
// the navigation flags.
func (h *Handler) handleGetDraft(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	st, err := h.svc.GetDraft(r.Context(), userFrom(r), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toDraftStateResponse(st))
}

// handleUpdateDraft merges a partial update into the draft. Invalid input
// results in HTTP 422 with the offending fields and leaves the draft as it
// was.
func (h *Handler) handleUpdateDraft(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	var req draftPatchRequest
	if !h.decodeOrFail(w, r, &req) {
		return
	}
	patch, err := req.toDomain()
	if err != nil {
		h.fail(w, r, err)
		return
	}
	st, err := h.svc.UpdateDraft(r.Context(), userFrom(r), id, patch)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toDraftStateResponse(st))
}

// handleAdvanceDraft moves to the next stage. An incomplete stage results
// in HTTP 422.
func (h *Handler) handleAdvanceDraft(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	st, err := h.svc.AdvanceDraft(r.Context(), userFrom(r), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toDraftStateResponse(st))
}

func (h *Handler) handleRetreatDraft(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	st, err := h.svc.RetreatDraft(r.Context(), userFrom(r), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toDraftStateResponse(st))
}

// handleSubmitDraft creates the campaign and returns it with HTTP 201. A
// submission already in flight results in HTTP 409 and a failure of the
// creation endpoint in HTTP 502; the draft can then be submitted again.
func (h *Handler) handleSubmitDraft(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	c, err := h.svc.SubmitDraft(r.Context(), userFrom(r), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, h.toCampaignResponse(*c))
}

func (h *Handler) handleCancelDraft(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	if err := h.svc.CancelDraft(r.Context(), userFrom(r), id); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
