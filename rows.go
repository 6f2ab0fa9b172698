package rowshape

import "errors"

// Column describes one result-set column: its name and the database's
// declared type name (e.g. "INT8", "TEXT").
type Column struct {
	Name         string
	DatabaseType string
}

// RowSource is the boundary to the database driver: an ordered sequence of
// rows with per-column names and declared types. A source is forward-only
// and owned by exactly one collection call, which must close it on every
// exit path. Implementations are not safe for concurrent use.
type RowSource interface {
	// Columns returns the column metadata for the result set.
	Columns() ([]Column, error)

	// Next advances to the next row, returning false at end of data.
	Next() bool

	// Row returns a view of the current row. Valid only after a true Next.
	Row() (*RowView, error)

	// Err returns the error, if any, that ended iteration early.
	Err() error

	Close() error
}

// RowView is a read-only view over one fetched row: parallel lists of
// column names, declared type names, and raw values, where a nil value is
// the null marker. It is constructed per row by a RowSource and discarded
// after decoding.
type RowView struct {
	names []string
	types []string
	vals  []any
}

// NewRowView builds a RowView from parallel slices. All three must have the
// same length.
func NewRowView(names, types []string, vals []any) (*RowView, error) {
	if len(names) != len(types) || len(names) != len(vals) {
		return nil, errors.New("rowshape: column names, types and values must have equal length")
	}
	return &RowView{names: names, types: types, vals: vals}, nil
}

// Len returns the column count.
func (r *RowView) Len() int { return len(r.vals) }

// Name returns the name of column i.
func (r *RowView) Name(i int) string { return r.names[i] }

// DeclaredType returns the database's declared type name for column i.
func (r *RowView) DeclaredType(i int) string { return r.types[i] }

// Value returns the raw driver value of column i; nil means SQL NULL.
func (r *RowView) Value(i int) any { return r.vals[i] }

// IsNull reports whether column i holds SQL NULL.
func (r *RowView) IsNull(i int) bool { return r.vals[i] == nil }

func (r *RowView) allNull() bool {
	for _, v := range r.vals {
		if v != nil {
			return false
		}
	}
	return true
}
