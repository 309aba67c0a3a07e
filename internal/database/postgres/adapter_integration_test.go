//go:build integration

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/Rana718/spotseed/internal/database/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

type walletRow struct {
	wallet string
	id     int64
}

func (w *walletRow) TableName() string { return "user" }
func (w *walletRow) Columns() []string { return []string{"wallet_id", "contract_address", "is_contract_deployed"} }
func (w *walletRow) Values() []interface{} { return []interface{}{w.wallet, "addr", true} }
func (w *walletRow) SetID(id int64) { w.id = id }

// setupAdapter starts a PostgreSQL container and returns a connected adapter
// with the schema applied.
func setupAdapter(t *testing.T) *Adapter {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err, "failed to start postgres container")
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	adapter := New(2)
	require.NoError(t, adapter.Connect(ctx, dsn))
	t.Cleanup(func() { adapter.Close() })
	require.NoError(t, adapter.ApplySchema(ctx))
	return adapter
}

func TestAddBatchAssignsIDs(t *testing.T) {
	adapter := setupAdapter(t)
	ctx := context.Background()

	rows := []*walletRow{{wallet: "a"}, {wallet: "b"}, {wallet: "c"}}
	records := make([]common.Record, len(rows))
	for i, r := range rows {
		records[i] = r
	}

	require.NoError(t, adapter.AddBatch(ctx, records))
	require.NoError(t, adapter.Commit(ctx))

	assert.Equal(t, int64(1), rows[0].id)
	assert.Equal(t, int64(2), rows[1].id)
	assert.Equal(t, int64(3), rows[2].id)

	var count int
	require.NoError(t, adapter.pool.QueryRow(ctx, `SELECT count(*) FROM "user"`).Scan(&count))
	assert.Equal(t, 3, count)
}

func TestAddBatchReportsUniqueViolation(t *testing.T) {
	adapter := setupAdapter(t)
	ctx := context.Background()

	err := adapter.AddBatch(ctx, []common.Record{&walletRow{wallet: "dup"}, &walletRow{wallet: "dup"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unique violation")
}

func TestTruncateResetsIdentity(t *testing.T) {
	adapter := setupAdapter(t)
	ctx := context.Background()

	require.NoError(t, adapter.AddBatch(ctx, []common.Record{&walletRow{wallet: "x"}}))
	require.NoError(t, adapter.Commit(ctx))
	require.NoError(t, adapter.Truncate(ctx, []string{"transaction", "telegram_user", "airdrop", "vault", "position", "user"}))

	row := &walletRow{wallet: "y"}
	require.NoError(t, adapter.AddBatch(ctx, []common.Record{row}))
	require.NoError(t, adapter.Commit(ctx))
	assert.Equal(t, int64(1), row.id)
}
