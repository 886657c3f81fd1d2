package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"

	"spotplan/internal/config/configs"
	"spotplan/internal/core/domain"
	"spotplan/internal/core/port"
)

// maxErrorBody bounds how much of a failed response is read for details.
const maxErrorBody = 64 << 10

// Gateway implements port.RecordGateway on top of the Notion pages API.
type Gateway struct {
	client  *http.Client
	baseURL string
	token   string
	version string
	logger  *slog.Logger
}

// NewGateway returns a gateway configured from cfg. A missing token is not an
// error here; every call reports port.ErrMissingCredential instead.
func NewGateway(cfg configs.Notion, logger *slog.Logger) *Gateway {
	return &Gateway{
		client:  &http.Client{Timeout: cfg.Timeout},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		token:   strings.TrimSpace(cfg.Token),
		version: cfg.Version,
		logger:  logger,
	}
}

// Close releases idle connections held by the HTTP client.
func (g *Gateway) Close() {
	g.client.CloseIdleConnections()
}

// Fetch reads the page and maps its properties to a campaign record.
func (g *Gateway) Fetch(ctx context.Context, id string) (*domain.CampaignRecord, error) {
	id, err := port.NormalizeRecordID(id)
	if err != nil {
		return nil, err
	}
	var p page
	if err = g.do(ctx, "fetch", http.MethodGet, id, nil, &p); err != nil {
		return nil, err
	}
	g.logger.Debug("record fetched", slog.String("id", id), slog.Int("properties", len(p.Properties)))
	return g.mapRecord(id, p.Properties)
}

// Update patches the properties present in patch.
func (g *Gateway) Update(ctx context.Context, id string, patch port.RecordPatch) error {
	id, err := port.NormalizeRecordID(id)
	if err != nil {
		return err
	}
	props, err := buildProperties(patch)
	if err != nil {
		return err
	}
	if len(props) == 0 {
		return nil
	}
	body := map[string]any{"properties": props}
	return g.do(ctx, "update", http.MethodPatch, id, body, nil)
}

func (g *Gateway) do(ctx context.Context, op, method, id string, body, out any) error {
	if g.token == "" {
		return port.ErrMissingCredential
	}
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: encode body: %w", op, err)
		}
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+"/pages/"+id, reader)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Authorization", "Bearer "+g.token)
	req.Header.Set("Notion-Version", g.version)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w: %w", op, port.ErrRecordStore, err)
	}
	defer resp.Body.Close()

	g.logger.Info("record store call", slog.String("op", op), slog.String("id", id), slog.Int("status", resp.StatusCode))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return responseError(op, resp)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: decode response: %w", op, err)
	}
	return nil
}

// responseError extracts the Notion error message when the body is JSON and
// falls back to the raw body, then to the status text.
func responseError(op string, resp *http.Response) error {
	e := &port.RecordStoreError{Op: op, Status: resp.StatusCode, Detail: resp.Status}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err == nil && len(bytes.TrimSpace(data)) > 0 {
		var apiErr struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		}
		if json.Unmarshal(data, &apiErr) == nil && apiErr.Message != "" {
			e.Detail = apiErr.Message
		} else {
			e.Detail = strings.TrimSpace(string(data))
		}
	}
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		e.Hint = "token has no access: check that the integration is connected to the database"
	case http.StatusNotFound:
		e.Hint = "page not found: check the record id"
	}
	return e
}

// mapRecord turns raw properties into a record, applying defaultFor to every
// absent or empty field.
func (g *Gateway) mapRecord(id string, props map[string]property) (*domain.CampaignRecord, error) {
	value := func(field string) string {
		name, p, ok := lookup(props, field)
		if !ok {
			g.logger.Debug("property not found, using default", slog.String("field", field))
			return defaultFor(field)
		}
		v, ok := p.text()
		if !ok {
			g.logger.Warn("unsupported property type", slog.String("property", name), slog.String("type", p.Type))
			return defaultFor(field)
		}
		if strings.TrimSpace(v) == "" {
			return defaultFor(field)
		}
		return v
	}

	spec := domain.CampaignSpec{Quantities: domain.Quantities{}}
	for _, product := range domain.Products {
		n, err := parseQuantity(value(string(product)))
		if err != nil {
			return nil, fmt.Errorf("property %s: %w", product, err)
		}
		if n < 0 {
			g.logger.Warn("negative quantity read as zero", slog.String("product", string(product)), slog.Int("value", n))
			n = 0
		}
		spec.Quantities[product] = n
	}

	var err error
	if spec.PeriodStart, err = domain.ParseDate(value(fieldStart)); err != nil {
		return nil, fmt.Errorf("start date: %w", err)
	}
	if spec.PeriodEnd, err = domain.ParseDate(value(fieldEnd)); err != nil {
		return nil, fmt.Errorf("end date: %w", err)
	}
	if spec.Weekdays, err = domain.ParseWeekdays(value(fieldWeekdays)); err != nil {
		return nil, fmt.Errorf("weekdays: %w", err)
	}

	pmm, err := strconv.ParseFloat(strings.TrimSpace(value(fieldPMM)), 64)
	if err != nil || pmm <= 0 {
		g.logger.Warn("invalid PMM, using default", slog.String("value", value(fieldPMM)))
		pmm = domain.DefaultImpactWeight
	}
	spec.ImpactWeight = pmm
	spec.StationName = value(fieldStation)

	return &domain.CampaignRecord{
		ID:                 id,
		Spec:               spec.WithDefaults(),
		CustomDistribution: value(fieldDistribution),
	}, nil
}

func parseQuantity(s string) (int, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	return int(math.Round(f)), nil
}

// buildProperties converts patch into Notion property values keyed by the
// canonical property names.
func buildProperties(patch port.RecordPatch) (map[string]any, error) {
	props := map[string]any{}
	for _, product := range domain.Products {
		n, ok := patch.Quantities[product]
		if !ok {
			continue
		}
		if n < 0 {
			return nil, fmt.Errorf("negative quantity for %s: %d", product, n)
		}
		props[propertyName(string(product))] = map[string]any{"number": n}
	}
	if patch.PeriodStart != nil {
		props[propertyName(fieldStart)] = map[string]any{"date": dateValue{Start: domain.DateKey(*patch.PeriodStart)}}
	}
	if patch.PeriodEnd != nil {
		props[propertyName(fieldEnd)] = map[string]any{"date": dateValue{Start: domain.DateKey(*patch.PeriodEnd)}}
	}
	if patch.Weekdays != nil {
		names := domain.WeekdayNames(patch.Weekdays)
		options := make([]option, len(names))
		for i, name := range names {
			options[i] = option{Name: name}
		}
		props[propertyName(fieldWeekdays)] = map[string]any{"multi_select": options}
	}
	if patch.CustomDistribution != nil {
		props[propertyName(fieldDistribution)] = map[string]any{"rich_text": splitText(*patch.CustomDistribution)}
	}
	return props, nil
}

var _ port.RecordGateway = (*Gateway)(nil)
