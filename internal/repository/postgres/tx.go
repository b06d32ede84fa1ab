package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
)

type txCtxKey struct{}

// querier is the subset of sqlx.DB/sqlx.Tx the repositories need.
type querier interface {
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// conn returns the transaction carried by the context, or the bare connection.
func conn(ctx context.Context, db *sqlx.DB) querier {
	if tx, ok := ctx.Value(txCtxKey{}).(*sqlx.Tx); ok {
		return tx
	}
	return db
}

// inTx reports whether the context carries an open transaction. Repositories
// use it to take row locks on reads that feed check-then-act sequences.
func inTx(ctx context.Context) bool {
	_, ok := ctx.Value(txCtxKey{}).(*sqlx.Tx)
	return ok
}

// TxManager implements repository.TxManager on a sqlx connection pool.
type TxManager struct {
	db     *sqlx.DB
	logger *slog.Logger
}

func NewTxManager(db *sqlx.DB, logger *slog.Logger) *TxManager {
	return &TxManager{db: db, logger: logger}
}

// WithinTx runs fn inside a database transaction carried through the context.
// Nested calls reuse the open transaction.
func (m *TxManager) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if inTx(ctx) {
		return fn(ctx)
	}

	tx, err := m.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	if err := fn(context.WithValue(ctx, txCtxKey{}, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			m.logger.Error("failed to rollback transaction", "error", rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}
