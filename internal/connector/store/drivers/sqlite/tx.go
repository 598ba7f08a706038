package sqlite

import (
	"context"
	"database/sql"

	"github.com/talentwire/jobconnect/internal/connector/store"
)

type txStore struct {
	tx *sql.Tx
}

func newTx(tx *sql.Tx) *txStore {
	return &txStore{tx: tx}
}

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }

func (t *txStore) Close() error { return nil } // nothing to close; caller will commit/rollback and outer DB stays open

// Ping is a no-op for transactions; the connection is already established.
func (t *txStore) Ping(ctx context.Context) error {
	return nil
}

func (t *txStore) Tx(ctx context.Context) (store.Tx, error) {
	// Nested tx not supported; could emulate with SAVEPOINT if needed
	return nil, sql.ErrTxDone
}

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	// Nested tx not supported; could emulate with SAVEPOINT if needed
	return sql.ErrTxDone
}

func (t *txStore) Seekers() store.Seekers       { return &seekersRepo{db: t.tx} }
func (t *txStore) Providers() store.Providers   { return &providersRepo{db: t.tx} }
func (t *txStore) Admins() store.Admins         { return &adminsRepo{db: t.tx} }
func (t *txStore) Challenges() store.Challenges { return &challengesRepo{db: t.tx} }
func (t *txStore) Jobs() store.Jobs             { return &jobsRepo{db: t.tx} }

func (t *txStore) ApplyMigrations() error { return nil } // no-op; migrations are applied before starting a tx
