package port

import (
	"context"
	"errors"
	"time"

	"spotplan/internal/core/domain"
)

// ErrHistoryDisabled is returned by history lookups when no snapshot
// repository is configured.
var ErrHistoryDisabled = errors.New("save history is disabled")

// SnapshotRepository keeps the history of saved distributions. It is an
// optional outbound port: the record store stays the source of truth.
type SnapshotRepository interface {
	// SaveSnapshot appends a snapshot. ID and CreatedAt are assigned by the
	// repository when empty.
	SaveSnapshot(ctx context.Context, s *Snapshot) error
	// ListSnapshots returns the newest snapshots of a record first.
	ListSnapshots(ctx context.Context, recordID string, limit int) ([]Snapshot, error)
}

// Snapshot is one saved distribution.
type Snapshot struct {
	ID                string            `json:"id"`
	RecordID          string            `json:"record_id"`
	Encoded           string            `json:"encoded"`
	Quantities        domain.Quantities `json:"quantities"`
	Impact            int               `json:"impact"`
	QuantitiesChanged bool              `json:"quantities_changed"`
	CreatedAt         time.Time         `json:"created_at"`
}
