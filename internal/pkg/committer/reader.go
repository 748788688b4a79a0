package committer

import (
	"context"

	"cloud.google.com/go/spanner"
)

// Reader is the read surface shared by Spanner single-use reads and
// read-write transactions. Repository read methods that must also work
// inside a read-write transaction take a Reader instead of touching the
// client directly, so a usecase can re-run its checks against the
// transaction's own snapshot.
type Reader interface {
	ReadRow(ctx context.Context, table string, key spanner.Key, columns []string) (*spanner.Row, error)
	Query(ctx context.Context, statement spanner.Statement) *spanner.RowIterator
}

var (
	_ Reader = (*spanner.ReadOnlyTransaction)(nil)
	_ Reader = (*spanner.ReadWriteTransaction)(nil)
)
