package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"spotplan/internal/core/distribution"
	"spotplan/internal/fixtures"
)

// DemoRecordID is the record the seeded snapshot belongs to.
const DemoRecordID = "5e3d0c1a9b7f4e2d8c6a4b2f0e1d3c5a"

// seedSnapshotID is derived from the record id so reseeding is a no-op.
var seedSnapshotID = uuid.NewSHA1(uuid.NameSpaceOID, []byte("spotplan/seed/"+DemoRecordID))

// Seed stores one snapshot of the example campaign under DemoRecordID.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	spec, err := fixtures.ExampleCampaign()
	if err != nil {
		return err
	}
	days, err := distribution.ValidDaysFor(spec)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	dist := distribution.Allocate(spec.Quantities, days)
	quantities, err := json.Marshal(distribution.SumByProduct(dist))
	if err != nil {
		return err
	}

	_, err = db.Exec(ctx, `INSERT INTO distribution_snapshots
    (id, record_id, encoded, quantities, impact, quantities_changed, created_at)
VALUES ($1,$2,$3,$4,$5,false,now()) ON CONFLICT DO NOTHING`,
		seedSnapshotID.String(), DemoRecordID, distribution.Encode(dist), quantities,
		distribution.Impact(spec.Quantities, spec.ImpactWeight))
	return err
}
