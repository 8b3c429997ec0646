package testutil

import (
	"context"
	"database/sql"

	"github.com/alexanderramin/planview/internal/db"
)

// WriteFaultUoW runs transactions on a real SQLite unit of work but makes
// the FailAt-th write inside each transaction return Err. Reads are not
// counted.
type WriteFaultUoW struct {
	inner  db.UnitOfWork
	FailAt int
	Err    error
}

func NewWriteFaultUoW(database *sql.DB, failAt int, err error) *WriteFaultUoW {
	return &WriteFaultUoW{inner: db.NewSQLiteUnitOfWork(database), FailAt: failAt, Err: err}
}

func (u *WriteFaultUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	return u.inner.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return fn(ctx, &faultyWrites{DBTX: tx, left: u.FailAt, err: u.Err})
	})
}

// faultyWrites counts down ExecContext calls and fails when left hits zero.
type faultyWrites struct {
	db.DBTX
	left int
	err  error
}

func (f *faultyWrites) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	f.left--
	if f.left == 0 {
		return nil, f.err
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}
