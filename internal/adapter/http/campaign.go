package httpadapter

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"spotplan/internal/core/distribution"
	"spotplan/internal/core/domain"
	"spotplan/internal/core/port"
)

// maxBody bounds request bodies. An encoded distribution never exceeds a few
// kilobytes; its JSON form for a full year stays well below this.
const maxBody = 1 << 20

// handleLoad returns the plan of a stored campaign.
func (h *Handler) handleLoad(w http.ResponseWriter, r *http.Request) {
	plan, err := h.svc.Load(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newPlanView(plan))
}

// handleSave persists the distribution sent as the request body. Every
// problem found in the body is reported at once.
func (h *Handler) handleSave(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBody))
	if err != nil {
		h.writeError(w, r, fmt.Errorf("%w: %v", errBadInput, err))
		return
	}
	d, err := distribution.ValidateJSON(data)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	res, err := h.svc.Save(r.Context(), chi.URLParam(r, "id"), port.SaveRequest{Distribution: d})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, res)
}

type periodRequest struct {
	Start    string   `json:"inicio"`
	End      string   `json:"fim"`
	Weekdays []string `json:"dias"`
}

// handleChangePeriod stores a new period and weekday set. Dates are accepted
// as DD/MM/YYYY or YYYY-MM-DD.
func (h *Handler) handleChangePeriod(w http.ResponseWriter, r *http.Request) {
	var req periodRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody)).Decode(&req); err != nil {
		h.writeError(w, r, fmt.Errorf("%w: invalid JSON: %v", errBadInput, err))
		return
	}
	var (
		change port.PeriodChange
		err    error
	)
	if change.Start, err = domain.ParseDate(req.Start); err != nil {
		h.writeError(w, r, fmt.Errorf("inicio: %w", err))
		return
	}
	if change.End, err = domain.ParseDate(req.End); err != nil {
		h.writeError(w, r, fmt.Errorf("fim: %w", err))
		return
	}
	if change.Weekdays, err = domain.ParseWeekdayList(req.Weekdays); err != nil {
		h.writeError(w, r, err)
		return
	}

	plan, err := h.svc.ChangePeriod(r.Context(), chi.URLParam(r, "id"), change)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newPlanView(plan))
}

// handleExport returns one month of the plan. The month query parameter is
// required and uses the YYYY-MM layout.
func (h *Handler) handleExport(w http.ResponseWriter, r *http.Request) {
	month, err := time.Parse("2006-01", r.URL.Query().Get("month"))
	if err != nil {
		h.writeError(w, r, fmt.Errorf("%w: month must be YYYY-MM", errBadInput))
		return
	}
	exp, err := h.svc.Export(r.Context(), chi.URLParam(r, "id"), month.Year(), month.Month())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, exp)
}

// handleHistory lists saved snapshots, newest first. An optional limit query
// parameter narrows the result.
func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	var limit int
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			h.writeError(w, r, fmt.Errorf("%w: invalid limit %q", errBadInput, s))
			return
		}
		limit = n
	}
	snapshots, err := h.svc.History(r.Context(), chi.URLParam(r, "id"), limit)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if snapshots == nil {
		snapshots = []port.Snapshot{}
	}
	h.writeJSON(w, http.StatusOK, snapshots)
}
