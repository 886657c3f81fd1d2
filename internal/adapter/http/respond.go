package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"spotplan/internal/core/distribution"
	"spotplan/internal/core/domain"
	"spotplan/internal/core/port"
)

// errorBody is the single error shape returned by every route.
type errorBody struct {
	Error      string                   `json:"error"`
	Details    string                   `json:"details,omitempty"`
	Hint       string                   `json:"hint,omitempty"`
	Violations []distribution.Violation `json:"violations,omitempty"`
	Status     int                      `json:"status"`
}

// badRequest lists the errors caused by what the client sent.
var badRequest = []error{
	port.ErrInvalidRecordID,
	domain.ErrInvalidPeriod,
	domain.ErrNoWeekdays,
	domain.ErrNoValidDays,
	domain.ErrInvalidSpec,
	domain.ErrInvalidDate,
	domain.ErrUnknownProduct,
	domain.ErrUnknownWeekday,
	distribution.ErrUnknownDay,
	distribution.ErrNegativeValue,
	errBadInput,
}

var errBadInput = errors.New("bad input")

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError maps err to a status code and writes the error body. Server side
// failures are logged, client mistakes are not.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	body := errorBody{Error: "internal error", Details: err.Error(), Status: http.StatusInternalServerError}

	var (
		validation *distribution.ValidationError
		capacity   *distribution.CapacityError
		store      *port.RecordStoreError
	)
	switch {
	case errors.As(err, &validation):
		body.Error, body.Status = "invalid distribution", http.StatusBadRequest
		body.Violations = validation.Violations
	case errors.As(err, &capacity):
		body.Error, body.Status = "distribution too large", http.StatusUnprocessableEntity
	case errors.Is(err, port.ErrMissingCredential):
		body.Error = "record store is not configured"
	case errors.As(err, &store):
		body.Error, body.Status = "record store error", store.Status
		if body.Status < 400 || body.Status > 599 {
			body.Status = http.StatusBadGateway
		}
		body.Details, body.Hint = store.Detail, store.Hint
	case errors.Is(err, port.ErrRecordStore):
		body.Error, body.Status = "record store error", http.StatusBadGateway
	case errors.Is(err, port.ErrHistoryDisabled):
		body.Error, body.Status = "history disabled", http.StatusNotFound
	default:
		for _, target := range badRequest {
			if errors.Is(err, target) {
				body.Error, body.Status = "bad request", http.StatusBadRequest
				break
			}
		}
	}

	if body.Status >= http.StatusInternalServerError {
		h.logger.Error("request failed",
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.String("path", r.URL.Path),
			slog.Int("status", body.Status),
			slog.Any("error", err))
	}
	h.writeJSON(w, body.Status, body)
}
