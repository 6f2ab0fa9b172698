package rowshape

import (
	"context"
	"database/sql"
	"iter"
	"reflect"
)

// Querier is implemented by *sql.DB, *sql.Tx, *sql.Conn, and any wrapper
// that can execute a query returning rows.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// Collect eagerly drains src into a slice of T, decoding one value per row
// in fetch order. It takes ownership of src and closes it on every exit
// path. The context is checked before each fetch; cancellation surfaces as
// the context's error, not a decode error.
//
// Leading rows whose every column is null are skipped; a result set made
// entirely of such rows is an empty result. For scalar targets, later rows
// whose single column is null are silently skipped as well.
func Collect[T any](ctx context.Context, src RowSource) (out []T, err error) {
	defer func() {
		if cerr := src.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	d, err := classifySource[T](src)
	if err != nil {
		return nil, err
	}

	sawRow := false
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !src.Next() {
			break
		}
		row, err := src.Row()
		if err != nil {
			return nil, err
		}
		if !sawRow {
			if row.allNull() {
				continue
			}
			sawRow = true
		}
		if d.kind == shapeScalar && row.IsNull(0) {
			continue
		}
		v, err := decodeAs[T](d, row)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if err := src.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Iter lazily decodes src one row per pull. The sequence is forward-only,
// single-pass and non-restartable: once the consumer stops or the source
// drains, the source is closed and a second range yields nothing. Row
// filtering matches Collect.
func Iter[T any](src RowSource) iter.Seq2[T, error] {
	spent := false
	return func(yield func(T, error) bool) {
		if spent {
			return
		}
		spent = true
		defer src.Close()

		var zero T
		d, err := classifySource[T](src)
		if err != nil {
			yield(zero, err)
			return
		}

		sawRow := false
		for src.Next() {
			row, err := src.Row()
			if err != nil {
				yield(zero, err)
				return
			}
			if !sawRow {
				if row.allNull() {
					continue
				}
				sawRow = true
			}
			if d.kind == shapeScalar && row.IsNull(0) {
				continue
			}
			v, err := decodeAs[T](d, row)
			if !yield(v, err) || err != nil {
				return
			}
		}
		if err := src.Err(); err != nil {
			yield(zero, err)
		}
	}
}

// Query executes the SQL query and collects every result row into a T.
// T may be any decodable shape: scalar, enum, positional tuple, or record.
func Query[T any](ctx context.Context, q Querier, query string, args ...any) ([]T, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return Collect[T](ctx, SQLRows(rows))
}

// QueryRow executes the SQL query and decodes the first result row into a
// T. It returns [sql.ErrNoRows] if the query yields no decodable rows;
// rows beyond the first are ignored.
func QueryRow[T any](ctx context.Context, q Querier, query string, args ...any) (T, error) {
	var zero T
	out, err := Query[T](ctx, q, query, args...)
	if err != nil {
		return zero, err
	}
	if len(out) == 0 {
		return zero, sql.ErrNoRows
	}
	return out[0], nil
}

func classifySource[T any](src RowSource) (*descriptor, error) {
	cols, err := src.Columns()
	if err != nil {
		return nil, err
	}
	return classify(reflect.TypeOf((*T)(nil)).Elem(), cols)
}
