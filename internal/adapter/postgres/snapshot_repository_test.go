package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spotplan/internal/config/configs"
	"spotplan/internal/core/domain"
	"spotplan/internal/core/port"
	"spotplan/internal/db"
)

// newTestRepository connects to PSQL_TEST_ADDRESS and migrates it. The test
// is skipped when the variable is not set.
func newTestRepository(t *testing.T) *SnapshotRepository {
	t.Helper()
	addr := os.Getenv("PSQL_TEST_ADDRESS")
	if addr == "" {
		t.Skip("PSQL_TEST_ADDRESS not set")
	}
	_, err := db.Migrate(addr)
	require.NoError(t, err)

	var cfg configs.Postgres
	require.NoError(t, cfg.Addr.UnmarshalBinary([]byte(addr)))
	pool, err := db.NewPostgresPool(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return NewSnapshotRepository(pool)
}

func TestSnapshotRepository(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	recordID := "ffeeddccbbaa99887766554433221100"

	base := time.Now().UTC().Truncate(time.Millisecond)
	for i, impact := range []int{1000, 2000, 3000} {
		s := &port.Snapshot{
			RecordID:   recordID,
			Encoded:    "20250602:1:s30=1",
			Quantities: domain.Quantities{domain.Spots30: i + 1},
			Impact:     impact,
			CreatedAt:  base.Add(time.Duration(i) * time.Second),
		}
		require.NoError(t, repo.SaveSnapshot(ctx, s))
		assert.NotEmpty(t, s.ID)
	}

	got, err := repo.ListSnapshots(ctx, recordID, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 3000, got[0].Impact)
	assert.Equal(t, 3, got[0].Quantities[domain.Spots30])
	assert.Equal(t, 2000, got[1].Impact)
}
