package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"spotplan/internal/core/distribution"
	"spotplan/internal/core/domain"
	"spotplan/internal/core/port"
	"spotplan/internal/core/port/mocks"
)

const recordID = "0a1b2c3d4e5f60718293a4b5c6d7e8f9"

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestHandler(t *testing.T) (*mocks.MockPlannerUseCase, http.Handler) {
	t.Helper()
	svc := mocks.NewMockPlannerUseCase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return svc, NewHandler(svc, logger, nil).Router()
}

func serve(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func samplePlan() *port.Plan {
	start, _ := domain.ParseDate("02/06/2025")
	end, _ := domain.ParseDate("03/06/2025")
	spec := domain.CampaignSpec{
		Quantities:   domain.Quantities{domain.Spots30: 2},
		PeriodStart:  start,
		PeriodEnd:    end,
		Weekdays:     []time.Weekday{time.Tuesday, time.Monday},
		ImpactWeight: 1000,
		StationName:  "Rádio Central",
	}
	d := domain.Distribution{
		"2025-06-02": {Total: 1, Products: map[domain.Product]int{domain.Spots30: 1}},
		"2025-06-03": {Total: 1, Products: map[domain.Product]int{domain.Spots30: 1}},
	}
	return &port.Plan{
		RecordID:     recordID,
		Spec:         spec,
		ValidDays:    []string{"2025-06-02", "2025-06-03"},
		Distribution: d,
		Source:       port.SourceAuto,
		Impact:       2000,
		Summary:      distribution.Summarize(spec, d),
	}
}

func TestLoad(t *testing.T) {
	svc, h := newTestHandler(t)
	svc.EXPECT().Load(mock.Anything, recordID).Return(samplePlan(), nil)

	rec := serve(h, http.MethodGet, "/api/v1/campaigns/"+recordID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var view planView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, recordID, view.RecordID)
	assert.Equal(t, "2025-06-02", view.Campaign.Start)
	assert.Equal(t, []string{"Seg.", "Ter."}, view.Campaign.Weekdays)
	assert.Equal(t, []domain.Product{domain.Spots30}, view.Campaign.Products)
	assert.Equal(t, 2000, view.Impact)
	assert.Equal(t, 1, view.Distribution["2025-06-03"].Products[domain.Spots30])
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		label  string
	}{
		{"bad id", fmt.Errorf("%w: %q", port.ErrInvalidRecordID, "x"), http.StatusBadRequest, "bad request"},
		{"no valid days", domain.ErrNoValidDays, http.StatusBadRequest, "bad request"},
		{"not found", &port.RecordStoreError{Op: "fetch", Status: 404, Detail: "page not found", Hint: "check the id"}, http.StatusNotFound, "record store error"},
		{"upstream garbage", &port.RecordStoreError{Op: "fetch", Status: 0}, http.StatusBadGateway, "record store error"},
		{"unreachable", fmt.Errorf("fetch page: %w: %w", port.ErrRecordStore, errors.New("dial tcp 10.0.0.1:443: connection refused")), http.StatusBadGateway, "record store error"},
		{"no token", port.ErrMissingCredential, http.StatusInternalServerError, "record store is not configured"},
		{"unexpected", io.ErrUnexpectedEOF, http.StatusInternalServerError, "internal error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, h := newTestHandler(t)
			svc.EXPECT().Load(mock.Anything, "some-id").Return(nil, tt.err)

			rec := serve(h, http.MethodGet, "/api/v1/campaigns/some-id", "")
			assert.Equal(t, tt.status, rec.Code)
			body := decodeError(t, rec)
			assert.Equal(t, tt.label, body.Error)
			assert.Equal(t, tt.status, body.Status)
		})
	}
}

func TestLoadErrorCarriesHint(t *testing.T) {
	svc, h := newTestHandler(t)
	svc.EXPECT().Load(mock.Anything, recordID).
		Return(nil, &port.RecordStoreError{Op: "fetch", Status: 401, Detail: "API token is invalid.", Hint: "connect the integration"})

	rec := serve(h, http.MethodGet, "/api/v1/campaigns/"+recordID, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "API token is invalid.", body.Details)
	assert.Equal(t, "connect the integration", body.Hint)
}

func TestSave(t *testing.T) {
	svc, h := newTestHandler(t)
	svc.EXPECT().
		Save(mock.Anything, recordID, mock.AnythingOfType("port.SaveRequest")).
		Run(func(_ context.Context, _ string, req port.SaveRequest) {
			assert.Equal(t, 3, req.Distribution["2025-06-02"].Total)
		}).
		Return(&port.SaveResult{Encoded: "20250602:3:s30=3", Length: 16, Impact: 3000}, nil)

	rec := serve(h, http.MethodPut, "/api/v1/campaigns/"+recordID+"/distribution",
		`{"2025-06-02":{"total":1,"products":{"spots30":3}}}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var res port.SaveResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "20250602:3:s30=3", res.Encoded)
}

func TestSaveRejectsInvalidBody(t *testing.T) {
	_, h := newTestHandler(t)

	rec := serve(h, http.MethodPut, "/api/v1/campaigns/"+recordID+"/distribution",
		`{"2025-06-02":{"total":1,"products":{"spots30":-1,"spots90":2}},"junho":{"total":0,"products":{}}}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeError(t, rec)
	assert.Equal(t, "invalid distribution", body.Error)
	assert.Len(t, body.Violations, 3)
}

func TestSaveCapacityExceeded(t *testing.T) {
	svc, h := newTestHandler(t)
	svc.EXPECT().Save(mock.Anything, recordID, mock.Anything).
		Return(nil, &distribution.CapacityError{Length: 2100, Limit: 1900})

	rec := serve(h, http.MethodPut, "/api/v1/campaigns/"+recordID+"/distribution", `{}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, decodeError(t, rec).Details, "2100")
}

func TestChangePeriod(t *testing.T) {
	svc, h := newTestHandler(t)
	svc.EXPECT().
		ChangePeriod(mock.Anything, recordID, port.PeriodChange{
			Start:    time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
			End:      time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC),
			Weekdays: []time.Weekday{time.Monday, time.Tuesday},
		}).
		Return(samplePlan(), nil)

	rec := serve(h, http.MethodPut, "/api/v1/campaigns/"+recordID+"/period",
		`{"inicio":"02/06/2025","fim":"2025-06-03","dias":["Ter.","Seg."]}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestChangePeriodBadInput(t *testing.T) {
	_, h := newTestHandler(t)

	for _, body := range []string{
		`{"inicio":"32/06/2025","fim":"2025-06-03","dias":["Seg."]}`,
		`{"inicio":"02/06/2025","fim":"2025-06-03","dias":["Funday"]}`,
		`not json`,
	} {
		rec := serve(h, http.MethodPut, "/api/v1/campaigns/"+recordID+"/period", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
	}
}

func TestExport(t *testing.T) {
	svc, h := newTestHandler(t)
	svc.EXPECT().Export(mock.Anything, recordID, 2025, time.June).
		Return(&port.MonthExport{RecordID: recordID, Months: []string{"2025-06"}}, nil)

	rec := serve(h, http.MethodGet, "/api/v1/campaigns/"+recordID+"/export?month=2025-06", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(h, http.MethodGet, "/api/v1/campaigns/"+recordID+"/export?month=junho", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHistory(t *testing.T) {
	svc, h := newTestHandler(t)
	svc.EXPECT().History(mock.Anything, recordID, 5).Return(nil, nil)
	svc.EXPECT().History(mock.Anything, recordID, 0).Return(nil, port.ErrHistoryDisabled)

	rec := serve(h, http.MethodGet, "/api/v1/campaigns/"+recordID+"/history?limit=5", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = serve(h, http.MethodGet, "/api/v1/campaigns/"+recordID+"/history", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(h, http.MethodGet, "/api/v1/campaigns/"+recordID+"/history?limit=-1", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPreviewWithoutParametersUsesExample(t *testing.T) {
	svc, h := newTestHandler(t)
	svc.EXPECT().
		Preview(mock.Anything, mock.MatchedBy(func(spec domain.CampaignSpec) bool {
			return spec.StationName == "Rádio Exemplo FM" && spec.Quantities[domain.Spots30] == 40
		})).
		Return(samplePlan(), nil)

	rec := serve(h, http.MethodGet, "/api/v1/plans/preview", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPreviewFromQuery(t *testing.T) {
	svc, h := newTestHandler(t)
	svc.EXPECT().
		Preview(mock.Anything, mock.AnythingOfType("domain.CampaignSpec")).
		Run(func(_ context.Context, spec domain.CampaignSpec) {
			assert.Equal(t, 10, spec.Quantities[domain.Spots15])
			assert.Equal(t, 4, spec.Quantities[domain.Test60])
			assert.Equal(t, []time.Weekday{time.Saturday}, spec.Weekdays)
			assert.Equal(t, 2500.0, spec.ImpactWeight)
			assert.Equal(t, domain.DefaultStationName, spec.StationName)
			assert.Equal(t, "2025-07-01", domain.DateKey(spec.PeriodStart))
		}).
		Return(samplePlan(), nil)

	rec := serve(h, http.MethodGet, "/api/v1/plans/preview?spots15=10&test60=4&inicio=01/07/2025&fim=31/07/2025&dias=S%C3%A1b.&pmm=2500", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(h, http.MethodGet, "/api/v1/plans/preview?spots15=ten&inicio=01/07/2025&fim=31/07/2025", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPreviewPartialQueryUsesDefaults(t *testing.T) {
	svc, h := newTestHandler(t)
	svc.EXPECT().
		Preview(mock.Anything, mock.AnythingOfType("domain.CampaignSpec")).
		Run(func(_ context.Context, spec domain.CampaignSpec) {
			assert.Equal(t, domain.Quantities{domain.Spots30: 5}, spec.Quantities)
			assert.Equal(t, "2025-01-01", domain.DateKey(spec.PeriodStart))
			assert.Equal(t, "2025-01-31", domain.DateKey(spec.PeriodEnd))
			assert.Equal(t, domain.DefaultWeekdays, spec.Weekdays)
			assert.Equal(t, float64(domain.DefaultImpactWeight), spec.ImpactWeight)
		}).
		Return(samplePlan(), nil)

	rec := serve(h, http.MethodGet, "/api/v1/plans/preview?spots30=5", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(h, http.MethodGet, "/api/v1/plans/preview?spots30=5&fim=31/13/2025", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEdits(t *testing.T) {
	svc, h := newTestHandler(t)
	svc.EXPECT().
		ApplyEdits(mock.Anything, mock.AnythingOfType("port.EditRequest")).
		Run(func(_ context.Context, req port.EditRequest) {
			assert.Equal(t, domain.Quantities{domain.Spots30: 2}, req.Quantities)
			assert.Equal(t, 1500.0, req.ImpactWeight)
			require.Len(t, req.Commands, 2)
			assert.Equal(t, "2025-06-03", req.Commands[1].Through)
		}).
		Return(&port.EditResult{Distribution: domain.Distribution{}}, nil)

	rec := serve(h, http.MethodPost, "/api/v1/distribution/edits", `{
		"quantities": {"spots30": 2},
		"pmm": 1500,
		"distribution": {"2025-06-02": {"total": 0, "products": {}}, "2025-06-03": {"total": 0, "products": {}}},
		"commands": [
			{"date": "2025-06-02", "product": "spots30", "value": 1},
			{"date": "2025-06-02", "through": "2025-06-03", "product": "spots5", "value": 2}
		]
	}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestEditsErrors(t *testing.T) {
	svc, h := newTestHandler(t)
	svc.EXPECT().ApplyEdits(mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("command 0: %w", distribution.ErrUnknownDay))

	rec := serve(h, http.MethodPost, "/api/v1/distribution/edits",
		`{"distribution": {}, "commands": [{"date": "2025-01-01", "product": "spots30", "value": 1}]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(h, http.MethodPost, "/api/v1/distribution/edits",
		`{"quantities": {"spots90": 1}, "distribution": {}}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCORS(t *testing.T) {
	svc := mocks.NewMockPlannerUseCase(t)
	h := NewHandler(svc, slog.New(slog.NewTextHandler(io.Discard, nil)), []string{"https://calendar.example"}).Router()

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/plans/preview", nil)
	req.Header.Set("Origin", "https://calendar.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "https://calendar.example", rec.Header().Get("Access-Control-Allow-Origin"))
}
