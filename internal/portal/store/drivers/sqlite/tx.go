package sqlite

import (
	"context"
	"database/sql"

	"github.com/educonnect/portal/internal/portal/store"
)

type txStore struct {
	tx *sql.Tx
}

func newTx(tx *sql.Tx) *txStore {
	return &txStore{tx: tx}
}

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }

func (t *txStore) Close() error { return nil } // caller commits/rollbacks; outer DB stays open

// Ping is a no-op for transactions; the connection already exists.
func (t *txStore) Ping(ctx context.Context) error { return nil }

func (t *txStore) Tx(ctx context.Context) (store.Tx, error) {
	// Nested tx not supported; could emulate with SAVEPOINT if needed
	return nil, sql.ErrTxDone
}

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return sql.ErrTxDone
}

func (t *txStore) Users() store.Users               { return &usersRepo{db: t.tx} }
func (t *txStore) Sessions() store.Sessions         { return &sessionsRepo{db: t.tx} }
func (t *txStore) OtpCodes() store.OtpCodes         { return &otpCodesRepo{db: t.tx} }
func (t *txStore) Whitelist() store.Whitelist       { return &whitelistRepo{db: t.tx} }
func (t *txStore) KycDocuments() store.KycDocuments { return &kycDocumentsRepo{db: t.tx} }
func (t *txStore) Solutions() store.Solutions       { return &solutionsRepo{db: t.tx} }
func (t *txStore) Orders() store.Orders             { return &ordersRepo{db: t.tx} }
func (t *txStore) Library() store.Library           { return &libraryRepo{db: t.tx} }

func (t *txStore) ApplyMigrations() error { return nil } // migrations run before any tx
