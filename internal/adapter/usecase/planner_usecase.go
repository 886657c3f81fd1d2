package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"spotplan/internal/core/distribution"
	"spotplan/internal/core/domain"
	"spotplan/internal/core/port"
)

// PlannerUseCase provides the business logic behind the distribution
// calendar. It orchestrates the record gateway, the distribution engine and
// the optional snapshot history to implement the port.PlannerUseCase
// interface.
type PlannerUseCase struct {
	records   port.RecordGateway
	snapshots port.SnapshotRepository
	logger    *slog.Logger

	// fieldLimit is the capacity of the record store field holding the
	// encoded distribution.
	fieldLimit int
	// historyLimit caps History results.
	historyLimit int
	now          func() time.Time
}

// Option customises a PlannerUseCase.
type Option func(*PlannerUseCase)

// WithSnapshots enables the save history.
func WithSnapshots(repo port.SnapshotRepository) Option {
	return func(u *PlannerUseCase) { u.snapshots = repo }
}

// WithFieldLimit overrides distribution.FieldCapacity.
func WithFieldLimit(limit int) Option {
	return func(u *PlannerUseCase) {
		if limit > 0 {
			u.fieldLimit = limit
		}
	}
}

// WithHistoryLimit overrides the default of 20 snapshots per History call.
func WithHistoryLimit(limit int) Option {
	return func(u *PlannerUseCase) {
		if limit > 0 {
			u.historyLimit = limit
		}
	}
}

// NewPlannerUseCase creates a use case backed by records.
func NewPlannerUseCase(records port.RecordGateway, logger *slog.Logger, opts ...Option) *PlannerUseCase {
	u := &PlannerUseCase{
		records:      records,
		logger:       logger,
		fieldLimit:   distribution.FieldCapacity,
		historyLimit: 20,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Load fetches the campaign and returns its plan. A custom distribution that
// decodes to nothing falls back to a fresh allocation.
func (u *PlannerUseCase) Load(ctx context.Context, id string) (*port.Plan, error) {
	rec, err := u.records.Fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	days, err := distribution.ValidDaysFor(rec.Spec)
	if err != nil {
		return nil, err
	}
	plan := &port.Plan{RecordID: rec.ID}

	if rec.CustomDistribution != "" {
		decoded, report := distribution.Decode(rec.CustomDistribution)
		for _, s := range report.Skipped {
			u.logger.Warn("skipped malformed distribution record",
				slog.String("id", rec.ID), slog.Int("index", s.Index), slog.String("reason", s.Reason))
		}
		if report.Err != nil {
			u.logger.Warn("custom distribution unreadable, allocating", slog.String("id", rec.ID), slog.Any("error", report.Err))
		}
		if len(decoded) > 0 {
			plan.Source = port.SourceCustom
			plan.Distribution = distribution.Align(decoded, days)
			plan.Skipped = report.Skipped
		}
	}
	if plan.Distribution == nil {
		plan.Source = port.SourceAuto
		plan.Distribution = distribution.Align(distribution.Allocate(rec.Spec.Quantities, days), days)
	}
	u.fill(plan, rec.Spec, days)
	return plan, nil
}

// Preview builds the plan of a campaign that only exists in the request.
func (u *PlannerUseCase) Preview(_ context.Context, spec domain.CampaignSpec) (*port.Plan, error) {
	spec = spec.WithDefaults()
	days, err := distribution.ValidDaysFor(spec)
	if err != nil {
		return nil, err
	}
	plan := &port.Plan{
		Source:       port.SourceAuto,
		Distribution: distribution.Align(distribution.Allocate(spec.Quantities, days), days),
	}
	u.fill(plan, spec, days)
	return plan, nil
}

func (u *PlannerUseCase) fill(plan *port.Plan, spec domain.CampaignSpec, days []time.Time) {
	plan.Spec = spec
	plan.ValidDays = distribution.DateKeys(days)
	plan.Impact = distribution.Impact(spec.Quantities, spec.ImpactWeight)
	plan.Summary = distribution.Summarize(spec, plan.Distribution)
}

// ApplyEdits runs the commands in order. The first failing command aborts the
// batch and nothing is returned.
func (u *PlannerUseCase) ApplyEdits(_ context.Context, req port.EditRequest) (*port.EditResult, error) {
	if err := distribution.Validate(req.Distribution); err != nil {
		return nil, err
	}
	d := distribution.RecomputeTotals(req.Distribution)
	for i, cmd := range req.Commands {
		var err error
		if cmd.Through != "" {
			d, err = distribution.FillRange(d, cmd.Product, cmd.Date, cmd.Through, cmd.Value)
		} else {
			d, err = distribution.ApplyEdit(d, cmd.Date, cmd.Product, cmd.Value)
		}
		if err != nil {
			return nil, fmt.Errorf("command %d: %w", i, err)
		}
	}
	weight := req.ImpactWeight
	if weight <= 0 {
		weight = domain.DefaultImpactWeight
	}
	spec := domain.CampaignSpec{Quantities: req.Quantities, ImpactWeight: weight}
	return &port.EditResult{Distribution: d, Summary: distribution.Summarize(spec, d)}, nil
}

// Save persists the whole distribution and the quantities recomputed from it
// in a single update. The encoded form must fit the record field; it is never
// truncated.
func (u *PlannerUseCase) Save(ctx context.Context, id string, req port.SaveRequest) (*port.SaveResult, error) {
	if err := distribution.Validate(req.Distribution); err != nil {
		return nil, err
	}
	rec, err := u.records.Fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	d := distribution.RecomputeTotals(req.Distribution)
	encoded, err := distribution.EncodeWithin(d, u.fieldLimit)
	if err != nil {
		return nil, err
	}

	sums := domain.Quantities{}
	scheduled := distribution.SumByProduct(d)
	for _, p := range domain.Products {
		sums[p] = scheduled[p]
	}
	drift := distribution.CompareQuantities(rec.Spec.Quantities, d)
	if len(drift) > 0 {
		u.logger.Info("quantities changed by manual edits", slog.String("id", rec.ID), slog.Any("drift", drift))
	}

	patch := port.RecordPatch{Quantities: sums, CustomDistribution: &encoded}
	if err = u.records.Update(ctx, rec.ID, patch); err != nil {
		return nil, err
	}

	res := &port.SaveResult{
		Encoded:           encoded,
		Length:            len([]rune(encoded)),
		Quantities:        sums,
		Impact:            distribution.Impact(sums, rec.Spec.ImpactWeight),
		QuantitiesChanged: len(drift) > 0,
		Drift:             drift,
	}
	res.SnapshotID = u.snapshot(ctx, rec.ID, res)
	return res, nil
}

// snapshot records a successful save. Failures are logged only because the
// record store already holds the data.
func (u *PlannerUseCase) snapshot(ctx context.Context, recordID string, res *port.SaveResult) string {
	if u.snapshots == nil {
		return ""
	}
	s := &port.Snapshot{
		RecordID:          recordID,
		Encoded:           res.Encoded,
		Quantities:        res.Quantities,
		Impact:            res.Impact,
		QuantitiesChanged: res.QuantitiesChanged,
		CreatedAt:         u.now().UTC(),
	}
	if err := u.snapshots.SaveSnapshot(ctx, s); err != nil {
		u.logger.Error("snapshot not saved", slog.String("id", recordID), slog.Any("error", err))
		return ""
	}
	return s.ID
}

// ChangePeriod stores the new period and weekday set. The custom
// distribution no longer matches the valid days, so it is cleared and the
// plan is allocated again from the contracted quantities.
func (u *PlannerUseCase) ChangePeriod(ctx context.Context, id string, req port.PeriodChange) (*port.Plan, error) {
	rec, err := u.records.Fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	spec := rec.Spec
	spec.PeriodStart = domain.Midnight(req.Start)
	spec.PeriodEnd = domain.Midnight(req.End)
	spec.Weekdays = req.Weekdays
	days, err := distribution.ValidDaysFor(spec)
	if err != nil {
		return nil, err
	}

	cleared := ""
	patch := port.RecordPatch{
		PeriodStart:        &spec.PeriodStart,
		PeriodEnd:          &spec.PeriodEnd,
		Weekdays:           spec.Weekdays,
		CustomDistribution: &cleared,
	}
	if err = u.records.Update(ctx, rec.ID, patch); err != nil {
		return nil, err
	}
	plan := &port.Plan{
		RecordID:     rec.ID,
		Source:       port.SourceAuto,
		Distribution: distribution.Align(distribution.Allocate(spec.Quantities, days), days),
	}
	u.fill(plan, spec, days)
	return plan, nil
}

// Export loads the plan and lays out one month of it.
func (u *PlannerUseCase) Export(ctx context.Context, id string, year int, month time.Month) (*port.MonthExport, error) {
	plan, err := u.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	frame, err := distribution.Month(plan.Spec, plan.Distribution, year, month)
	if err != nil {
		return nil, err
	}
	exp := &port.MonthExport{
		RecordID:    plan.RecordID,
		StationName: plan.Spec.StationName,
		Frame:       frame,
	}
	for _, m := range distribution.Months(plan.Spec) {
		exp.Months = append(exp.Months, m.Format("2006-01"))
	}
	return exp, nil
}

// History returns the latest snapshots of a record.
func (u *PlannerUseCase) History(ctx context.Context, id string, limit int) ([]port.Snapshot, error) {
	if u.snapshots == nil {
		return nil, port.ErrHistoryDisabled
	}
	id, err := port.NormalizeRecordID(id)
	if err != nil {
		return nil, err
	}
	if limit <= 0 || limit > u.historyLimit {
		limit = u.historyLimit
	}
	return u.snapshots.ListSnapshots(ctx, id, limit)
}

var _ port.PlannerUseCase = (*PlannerUseCase)(nil)
