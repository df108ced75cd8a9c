package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"promo-ads/internal/core/domain"
	"promo-ads/internal/validation"
)

// writeJSON encodes v with the given status code.
func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// fail maps domain errors to status codes. Validation failures are answered
// with the offending fields; anything unexpected is logged and reported as
// an internal error.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		h.writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: domain.ErrValidation.Error(), Fields: verr.Fields})
	case errors.Is(err, domain.ErrCannotAdvance):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, domain.ErrDraftNotFound), errors.Is(err, domain.ErrCampaignNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrSubmissionInProgress),
		errors.Is(err, domain.ErrAlreadySubmitted),
		errors.Is(err, domain.ErrCampaignEnded):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, domain.ErrSubmissionFailed):
		h.logger.Warn("campaign submission failed",
			slog.String("path", r.URL.Path),
			slog.Any("error", err))
		http.Error(w, domain.ErrSubmissionFailed.Error(), http.StatusBadGateway)
	default:
		h.logger.Error("request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// decode reads a JSON body into v and validates it.
func decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errInvalidJSON
	}
	return validation.Struct(v)
}

var errInvalidJSON = errors.New("invalid JSON")

// decodeOrFail decodes the body and answers the request on failure. It
// reports whether the handler may continue.
func (h *Handler) decodeOrFail(w http.ResponseWriter, r *http.Request, v any) bool {
	err := decode(r, v)
	switch {
	case err == nil:
		return true
	case errors.Is(err, errInvalidJSON):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		h.fail(w, r, err)
	}
	return false
}

// idParam parses the {id} path parameter and answers with 400 when it is
// not a UUID.
func idParam(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return uuid.Nil, false
	}
	return id, true
}
