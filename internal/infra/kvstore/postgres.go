package kvstore

import (
	"context"
	"errors"

	"adslot-ledger/internal/runtime"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is satisfied by *pgxpool.Pool, *pgxpool.Conn and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const (
	getQuery = `SELECT value FROM ledger_state WHERE key = $1`

	putQuery = `INSERT INTO ledger_state (key, value, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`

	deleteQuery = `DELETE FROM ledger_state WHERE key = $1`

	scanQuery = `SELECT key, value FROM ledger_state WHERE starts_with(key, $1) ORDER BY key COLLATE "C"`
)

// PostgresStore maps the ledger key space onto the ledger_state table.
// Transaction boundaries belong to the caller; see uow.PostgresUoW.
type PostgresStore struct {
	db       DBTX
	readOnly bool
}

var _ runtime.Store = (*PostgresStore)(nil)

func NewPostgresStore(db DBTX, readOnly bool) *PostgresStore {
	return &PostgresStore{db: db, readOnly: readOnly}
}

func (s *PostgresStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRow(ctx, getQuery, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, runtime.ErrKeyNotFound
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (s *PostgresStore) Put(ctx context.Context, key string, value []byte) error {
	if s.readOnly {
		return runtime.ErrReadOnly
	}
	_, err := s.db.Exec(ctx, putQuery, key, value)
	return err
}

func (s *PostgresStore) Delete(ctx context.Context, key string) error {
	if s.readOnly {
		return runtime.ErrReadOnly
	}
	_, err := s.db.Exec(ctx, deleteQuery, key)
	return err
}

func (s *PostgresStore) Scan(ctx context.Context, prefix string) ([]runtime.Entry, error) {
	rows, err := s.db.Query(ctx, scanQuery, prefix)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []runtime.Entry
	for rows.Next() {
		var e runtime.Entry
		if err := rows.Scan(&e.Key, &e.Value); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
