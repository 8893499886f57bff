// Package pgx implements store.Storage on PostgreSQL using jackc/pgx/v5.
// The schema is created by the golang-migrate files under migrations/.
package pgx

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/wolyn-genealogy/explorer/pkg/store"
)

// pgxIConn is the subset of pgxpool.Pool and pgx.Tx the store needs. Both
// satisfy it, which lets Transact hand out a transaction-bound Store.
type pgxIConn interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, optionsAndArgs ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, optionsAndArgs ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Store implements store.Storage against a PostgreSQL connection pool or an
// open transaction.
type Store struct {
	conn pgxIConn
}

// NewStore creates a Store using an existing database connection. The
// connection is typically a *pgxpool.Pool; Transact hands out Stores bound
// to a pgx.Tx instead.
func NewStore(conn pgxIConn) *Store {
	return &Store{conn: conn}
}

var _ store.Storage = (*Store)(nil)

// Transact runs fn against a transaction-bound Store. pgx.Tx supports
// nested Begin via savepoints, so Transact composes.
func (s *Store) Transact(ctx context.Context, fn func(store.Storage) error) error {
	tx, err := s.conn.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := fn(&Store{conn: tx}); err != nil {
		return err
	}
	return tx.Commit(ctx)
}
