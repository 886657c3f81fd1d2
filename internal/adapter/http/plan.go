package httpadapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"spotplan/internal/core/distribution"
	"spotplan/internal/core/domain"
	"spotplan/internal/core/port"
	"spotplan/internal/fixtures"
)

// handlePreview builds a plan from query parameters alone: one parameter per
// product code plus inicio, fim, dias, pmm and emissora. Omitted fields take
// the same defaults as stored campaigns. Without any parameter the example
// campaign is returned.
func (h *Handler) handlePreview(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var (
		spec domain.CampaignSpec
		err  error
	)
	if len(q) == 0 {
		spec, err = fixtures.ExampleCampaign()
	} else {
		spec, err = specFromQuery(q)
	}
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	plan, err := h.svc.Preview(r.Context(), spec)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newPlanView(plan))
}

func specFromQuery(q url.Values) (domain.CampaignSpec, error) {
	spec := domain.CampaignSpec{Quantities: domain.Quantities{}, StationName: q.Get("emissora")}
	for _, p := range domain.Products {
		s := q.Get(string(p))
		if s == "" {
			continue
		}
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			return spec, fmt.Errorf("%w: invalid %s %q", errBadInput, p, s)
		}
		spec.Quantities[p] = n
	}
	spec.PeriodStart, spec.PeriodEnd = domain.DefaultPeriodStart, domain.DefaultPeriodEnd
	var err error
	if s := q.Get("inicio"); s != "" {
		if spec.PeriodStart, err = domain.ParseDate(s); err != nil {
			return spec, fmt.Errorf("inicio: %w", err)
		}
	}
	if s := q.Get("fim"); s != "" {
		if spec.PeriodEnd, err = domain.ParseDate(s); err != nil {
			return spec, fmt.Errorf("fim: %w", err)
		}
	}
	if spec.Weekdays, err = domain.ParseWeekdays(q.Get("dias")); err != nil {
		return spec, err
	}
	if s := q.Get("pmm"); s != "" {
		if spec.ImpactWeight, err = strconv.ParseFloat(s, 64); err != nil || spec.ImpactWeight <= 0 {
			return spec, fmt.Errorf("%w: invalid pmm %q", errBadInput, s)
		}
	}
	return spec.WithDefaults(), nil
}

type editsRequest struct {
	Quantities   map[string]int     `json:"quantities"`
	PMM          float64            `json:"pmm"`
	Distribution json.RawMessage    `json:"distribution"`
	Commands     []port.EditCommand `json:"commands"`
}

// handleEdits applies a batch of edit commands to the distribution held by
// the client and returns the new grid with its statistics.
func (h *Handler) handleEdits(w http.ResponseWriter, r *http.Request) {
	var req editsRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody)).Decode(&req); err != nil {
		h.writeError(w, r, fmt.Errorf("%w: invalid JSON: %v", errBadInput, err))
		return
	}
	d, err := distribution.ValidateJSON(req.Distribution)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	quantities, err := parseQuantities(req.Quantities)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	res, err := h.svc.ApplyEdits(r.Context(), port.EditRequest{
		Quantities:   quantities,
		ImpactWeight: req.PMM,
		Distribution: d,
		Commands:     req.Commands,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, res)
}
