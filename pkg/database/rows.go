package database

import (
	"context"
	"iter"

	"github.com/jackc/pgx/v5"
)

// Querier is satisfied by both PgxIface and pgx.Tx.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// ScanFunc scans the current row into a new value.
type ScanFunc[T any] func(row pgx.Row) (*T, error)

// Seq returns a lazy sequence over the rows of query. Every range over the
// sequence runs the query again, so it can be iterated more than once.
// Iteration stops at the first error, which is yielded with a nil value.
func Seq[T any](ctx context.Context, q Querier, scan ScanFunc[T], query string, args ...any) iter.Seq2[*T, error] {
	return func(yield func(*T, error) bool) {
		rows, err := q.Query(ctx, query, args...)
		if err != nil {
			yield(nil, err)
			return
		}
		defer rows.Close()

		for rows.Next() {
			item, err := scan(rows)
			if err != nil {
				yield(nil, err)
				return
			}
			if !yield(item, nil) {
				return
			}
		}

		if err := rows.Err(); err != nil {
			yield(nil, err)
		}
	}
}

// Collect drains seq into a slice. An empty result is a non-nil empty slice.
func Collect[T any](seq iter.Seq2[*T, error]) ([]*T, error) {
	items := make([]*T, 0)
	for item, err := range seq {
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
