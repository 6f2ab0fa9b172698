package rowshape

import (
	"context"
	"database/sql"
	"fmt"
)

// Execer is implemented by *sql.DB, *sql.Tx, *sql.Conn, and any wrapper
// that can execute a statement that does not return rows.
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// ExecResult is the uniform outcome of a non-query statement. Message is
// non-empty exactly when OK is false and carries the command text together
// with the underlying error text.
type ExecResult struct {
	OK           bool
	RowsAffected int64
	Message      string
}

// Exec executes a statement that does not return rows and converts any
// driver failure into a structured ExecResult instead of propagating it.
// Context cancellation is the one exception: it is returned as the error
// and never folded into the result's message.
func Exec(ctx context.Context, e Execer, query string, args ...any) (ExecResult, error) {
	res, err := e.ExecContext(ctx, query, args...)
	if err != nil {
		if ctx.Err() != nil {
			return ExecResult{}, err
		}
		return ExecResult{Message: fmt.Sprintf("%s: %s", query, err)}, nil
	}

	n, err := res.RowsAffected()
	if err != nil {
		return ExecResult{Message: fmt.Sprintf("%s: %s", query, err)}, nil
	}
	return ExecResult{OK: true, RowsAffected: n}, nil
}
