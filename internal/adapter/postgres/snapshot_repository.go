package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"spotplan/internal/core/domain"
	"spotplan/internal/core/port"
)

// SnapshotRepository implements port.SnapshotRepository using pgxpool for
// PostgreSQL.
type SnapshotRepository struct {
	pool *pgxpool.Pool
}

// NewSnapshotRepository returns a new repository instance.
func NewSnapshotRepository(pool *pgxpool.Pool) *SnapshotRepository {
	return &SnapshotRepository{pool: pool}
}

// SaveSnapshot inserts s, assigning its id and timestamp when they are empty.
func (r *SnapshotRepository) SaveSnapshot(ctx context.Context, s *port.Snapshot) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
	quantities, err := json.Marshal(s.Quantities)
	if err != nil {
		return fmt.Errorf("encode quantities: %w", err)
	}
	_, err = r.pool.Exec(ctx, `INSERT INTO distribution_snapshots
    (id, record_id, encoded, quantities, impact, quantities_changed, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		s.ID, s.RecordID, s.Encoded, quantities, s.Impact, s.QuantitiesChanged, s.CreatedAt)
	return err
}

// ListSnapshots returns the newest snapshots of recordID first.
func (r *SnapshotRepository) ListSnapshots(ctx context.Context, recordID string, limit int) ([]port.Snapshot, error) {
	query := `
        SELECT
            id::text,
            record_id,
            encoded,
            quantities,
            impact,
            quantities_changed,
            created_at
        FROM distribution_snapshots
        WHERE record_id = $1
        ORDER BY created_at DESC
        LIMIT $2`
	rows, err := r.pool.Query(ctx, query, recordID, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (port.Snapshot, error) {
		var (
			s   port.Snapshot
			raw []byte
		)
		if err := row.Scan(&s.ID, &s.RecordID, &s.Encoded, &raw, &s.Impact, &s.QuantitiesChanged, &s.CreatedAt); err != nil {
			return s, err
		}
		s.Quantities = domain.Quantities{}
		if err := json.Unmarshal(raw, &s.Quantities); err != nil {
			return s, fmt.Errorf("snapshot %s: decode quantities: %w", s.ID, err)
		}
		return s, nil
	})
}

var _ port.SnapshotRepository = (*SnapshotRepository)(nil)
