package rowshape_test

import (
	"github.com/dacohen/rowshape"
)

type Status string

func (Status) EnumMembers() []string {
	return []string{"Active", "Inactive", "Banned"}
}

type Priority int

const (
	PriorityLow Priority = iota
	PriorityMedium
	PriorityHigh
)

func (Priority) EnumMembers() []string {
	return []string{"Low", "Medium", "High"}
}

type Author struct {
	ID        int64   `db:"id"`
	Name      string  `db:"name"`
	Publisher *string `db:"publisher"`
	Status    Status  `db:"status"`
}

type Book struct {
	ID    int64  `db:"id"`
	Title string `db:"title"`
	Pages int    `db:"pages"`
}

// memSource is an in-memory RowSource for testing the decoding engine
// without a driver in the loop.
type memSource struct {
	cols   []rowshape.Column
	data   [][]any
	i      int
	closed bool
}

func newMemSource(cols []rowshape.Column, data ...[]any) *memSource {
	return &memSource{cols: cols, data: data}
}

func (m *memSource) Columns() ([]rowshape.Column, error) { return m.cols, nil }

func (m *memSource) Next() bool {
	if m.i >= len(m.data) {
		return false
	}
	m.i++
	return true
}

func (m *memSource) Row() (*rowshape.RowView, error) {
	names := make([]string, len(m.cols))
	types := make([]string, len(m.cols))
	for i, c := range m.cols {
		names[i] = c.Name
		types[i] = c.DatabaseType
	}
	return rowshape.NewRowView(names, types, m.data[m.i-1])
}

func (m *memSource) Err() error   { return nil }
func (m *memSource) Close() error { m.closed = true; return nil }

// cols builds column metadata from name/type pairs.
func cols(pairs ...string) []rowshape.Column {
	out := make([]rowshape.Column, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		out = append(out, rowshape.Column{Name: pairs[i], DatabaseType: pairs[i+1]})
	}
	return out
}

func ptr[T any](v T) *T { return &v }
