package port

import (
	"context"
	"time"

	"spotplan/internal/core/distribution"
	"spotplan/internal/core/domain"
)

// PlannerUseCase defines the operations behind the distribution calendar.
// This interface is the primary port into the application domain. Mock
// implementations can be generated from it for testing.
type PlannerUseCase interface {
	// Load fetches a campaign and returns its plan. The persisted custom
	// distribution is used when it decodes to at least one day, otherwise a
	// fresh allocation is computed.
	Load(ctx context.Context, id string) (*Plan, error)

	// Preview builds a plan for a campaign that is not stored anywhere.
	Preview(ctx context.Context, spec domain.CampaignSpec) (*Plan, error)

	// ApplyEdits runs edit commands against a client held distribution and
	// returns the result with fresh statistics. Nothing is persisted.
	ApplyEdits(ctx context.Context, req EditRequest) (*EditResult, error)

	// Save validates, encodes and persists a whole distribution together with
	// the product quantities recomputed from it.
	Save(ctx context.Context, id string, req SaveRequest) (*SaveResult, error)

	// ChangePeriod stores a new period and weekday set, drops the custom
	// distribution and returns the re-allocated plan.
	ChangePeriod(ctx context.Context, id string, req PeriodChange) (*Plan, error)

	// Export lays out one calendar month of the campaign plan.
	Export(ctx context.Context, id string, year int, month time.Month) (*MonthExport, error)

	// History lists previously saved distributions, newest first.
	History(ctx context.Context, id string, limit int) ([]Snapshot, error)
}

// Plan source values.
const (
	SourceAuto   = "auto"
	SourceCustom = "custom"
)

// Plan is a campaign ready to be rendered as a grid.
type Plan struct {
	RecordID     string
	Spec         domain.CampaignSpec
	ValidDays    []string
	Distribution domain.Distribution
	// Source tells whether Distribution was decoded or allocated.
	Source string
	// Impact is computed from the contracted quantities.
	Impact  int
	Summary distribution.Summary
	// Skipped lists the encoded records that could not be decoded.
	Skipped []distribution.SkippedRecord
}

// EditCommand changes one cell, or with Through set, fills the product row
// from Date to Through inclusive.
type EditCommand struct {
	Date    string         `json:"date"`
	Through string         `json:"through,omitempty"`
	Product domain.Product `json:"product"`
	Value   int            `json:"value"`
}

type EditRequest struct {
	Quantities   domain.Quantities
	ImpactWeight float64
	Distribution domain.Distribution
	Commands     []EditCommand
}

type EditResult struct {
	Distribution domain.Distribution  `json:"distribution"`
	Summary      distribution.Summary `json:"summary"`
}

type SaveRequest struct {
	Distribution domain.Distribution
}

// SaveResult reports what was written. QuantitiesChanged is set when the
// persisted quantities differ from the contracted ones.
type SaveResult struct {
	Encoded           string               `json:"encoded"`
	Length            int                  `json:"length"`
	Quantities        domain.Quantities    `json:"quantities"`
	Impact            int                  `json:"impact"`
	QuantitiesChanged bool                 `json:"quantities_changed"`
	Drift             []distribution.Drift `json:"drift,omitempty"`
	SnapshotID        string               `json:"snapshot_id,omitempty"`
}

type PeriodChange struct {
	Start    time.Time
	End      time.Time
	Weekdays []time.Weekday
}

// MonthExport is the month frame handed to spreadsheet exporters.
type MonthExport struct {
	RecordID    string                  `json:"record_id"`
	StationName string                  `json:"station_name"`
	Months      []string                `json:"months"`
	Frame       distribution.MonthFrame `json:"frame"`
}
