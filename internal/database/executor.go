package database

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/deppfellow/member-directory/internal/sqlerr"
)

// Beginner is the part of the pool the executor needs.
//
// *pgxpool.Pool satisfies it; tests pass a pgxmock pool.
type Beginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// TxFunc runs the statements of one unit of work.
type TxFunc func(ctx context.Context, tx pgx.Tx) error

// Executor wraps operations in a transaction boundary.
type Executor struct {
	pool Beginner
	log  *zerolog.Logger
}

// NewExecutor creates an Executor over pool.
func NewExecutor(pool Beginner, logger *zerolog.Logger) *Executor {
	return &Executor{pool: pool, log: logger}
}

// Do runs fn inside one transaction.
//
// Flow:
//   - Begin acquires a pooled connection (blocking while the pool is exhausted)
//   - fn executes its statements in order on tx
//   - success commits, any error or panic rolls back
//   - pgx returns the connection to the pool on commit and on rollback
//
// The returned error is always an *errs.Error labelled with op, classified
// by sqlerr. Nothing is retried.
func (e *Executor) Do(ctx context.Context, op string, fn TxFunc) (err error) {
	tx, err := e.pool.Begin(ctx)
	if err != nil {
		return sqlerr.HandleError(op, err)
	}

	defer func() {
		if p := recover(); p != nil {
			e.rollback(ctx, op, tx)
			panic(p)
		}
	}()

	if err := fn(ctx, tx); err != nil {
		e.rollback(ctx, op, tx)
		return sqlerr.HandleError(op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return sqlerr.HandleError(op, err)
	}

	return nil
}

func (e *Executor) rollback(ctx context.Context, op string, tx pgx.Tx) {
	// Rollback must run even when ctx is already cancelled.
	if err := tx.Rollback(context.WithoutCancel(ctx)); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		e.log.Error().Err(err).Str("op", op).Msg("transaction rollback failed")
	}
}
