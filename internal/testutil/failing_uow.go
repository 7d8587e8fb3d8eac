package testutil

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/herdsync/internal/db"
)

// FailOnNthExecUoW behaves like db.SQLUnitOfWork but makes the FailOn-th
// write (1-based) inside the transaction return Err. Reads are not counted.
// Use it to prove multi-write operations such as reminder batches roll back.
type FailOnNthExecUoW struct {
	DB     *db.Database
	FailOn int
	Err    error
}

func (u *FailOnNthExecUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	tx, err := u.DB.SQL.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	failing := &writeCounter{DBTX: u.DB.Dialect.Wrap(tx), failOn: u.FailOn, err: u.Err}
	if err := fn(ctx, failing); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

// writeCounter is used by one transaction at a time, so a plain int counts.
type writeCounter struct {
	db.DBTX
	writes int
	failOn int
	err    error
}

func (w *writeCounter) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	w.writes++
	if w.writes == w.failOn {
		return nil, w.err
	}
	return w.DBTX.ExecContext(ctx, query, args...)
}
