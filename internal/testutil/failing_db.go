package testutil

import (
	"context"
	"database/sql"
	"strings"
	"sync/atomic"

	"github.com/alexanderramin/wbsimport/internal/db"
)

// FailOnNthExec wraps a DBTX and returns Err from the Nth ExecContext call
// whose query starts with Prefix (all calls when Prefix is empty). Counting
// starts at 1; reads pass through untouched. It lets tests break one specific
// insert in the middle of an import.
type FailOnNthExec struct {
	db.DBTX
	Prefix string
	FailOn int32
	Err    error

	count atomic.Int32
}

// NewFailOnNthExec wraps inner so that the nth insert matching prefix fails with err.
func NewFailOnNthExec(inner db.DBTX, prefix string, n int32, err error) *FailOnNthExec {
	return &FailOnNthExec{DBTX: inner, Prefix: prefix, FailOn: n, Err: err}
}

func (f *FailOnNthExec) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if f.Prefix == "" || strings.HasPrefix(strings.TrimSpace(query), f.Prefix) {
		if f.count.Add(1) == f.FailOn {
			return nil, f.Err
		}
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}

// Calls reports how many matching ExecContext calls were seen.
func (f *FailOnNthExec) Calls() int {
	return int(f.count.Load())
}
