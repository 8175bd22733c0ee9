//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// empties the ledger state between subtests
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, "TRUNCATE ledger_state")
	return err
}

// counts stored keys under a prefix
func CountKeys(t *testing.T, db DBLike, prefix string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM ledger_state WHERE starts_with(key, $1)", prefix).Scan(&n)
	require.NoError(t, err)
	return n
}

// reads a raw stored value, for asserting on the persisted layout
func RawValue(t *testing.T, db DBLike, key string) []byte {
	t.Helper()

	var v []byte
	err := db.QueryRow(context.Background(),
		"SELECT value FROM ledger_state WHERE key = $1", key).Scan(&v)
	require.NoError(t, err)
	return v
}
