package rowshape_test

import (
	"context"
	"testing"

	"github.com/dacohen/rowshape"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePgxRows satisfies pgx.Rows so the adapter can be tested without a
// live PostgreSQL.
type fakePgxRows struct {
	fields []pgconn.FieldDescription
	data   [][]any
	i      int
	closed bool
}

var _ pgx.Rows = (*fakePgxRows)(nil)

func (r *fakePgxRows) Close()                                       { r.closed = true }
func (r *fakePgxRows) Err() error                                   { return nil }
func (r *fakePgxRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakePgxRows) FieldDescriptions() []pgconn.FieldDescription { return r.fields }
func (r *fakePgxRows) RawValues() [][]byte                          { return nil }
func (r *fakePgxRows) Conn() *pgx.Conn                              { return nil }

func (r *fakePgxRows) Next() bool {
	if r.i >= len(r.data) {
		return false
	}
	r.i++
	return true
}

func (r *fakePgxRows) Scan(...any) error {
	return pgx.ErrNoRows
}

func (r *fakePgxRows) Values() ([]any, error) {
	return r.data[r.i-1], nil
}

func field(name string, oid uint32) pgconn.FieldDescription {
	return pgconn.FieldDescription{Name: name, DataTypeOID: oid}
}

func TestPgxRecords(t *testing.T) {
	rows := &fakePgxRows{
		fields: []pgconn.FieldDescription{
			field("id", pgtype.Int8OID),
			field("title", pgtype.TextOID),
			field("pages", pgtype.Int4OID),
		},
		data: [][]any{
			{int64(1), "Cryptonomicon", int32(918)},
			{int64(2), "Snow Crash", int32(480)},
		},
	}

	got, err := rowshape.Collect[Book](context.Background(), rowshape.PgxRows(rows))
	require.NoError(t, err)
	assert.Equal(t, []Book{
		{ID: 1, Title: "Cryptonomicon", Pages: 918},
		{ID: 2, Title: "Snow Crash", Pages: 480},
	}, got)
	assert.True(t, rows.closed)
}

func TestPgxNarrowIntegerWidening(t *testing.T) {
	// pgx produces int16/int32 for the narrower postgres integer types;
	// they widen into any integer field.
	rows := &fakePgxRows{
		fields: []pgconn.FieldDescription{field("n", pgtype.Int2OID)},
		data:   [][]any{{int16(42)}},
	}

	got, err := rowshape.Collect[int64](context.Background(), rowshape.PgxRows(rows))
	require.NoError(t, err)
	assert.Equal(t, []int64{42}, got)
}

func TestPgxDeclaredTypeInErrors(t *testing.T) {
	rows := &fakePgxRows{
		fields: []pgconn.FieldDescription{
			field("id", pgtype.Int8OID),
			field("pages", pgtype.TextOID),
		},
		data: [][]any{{int64(1), "many"}},
	}

	_, err := rowshape.Collect[Book](context.Background(), rowshape.PgxRows(rows))
	var mismatch *rowshape.TypeMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "pages", mismatch.Column)
	assert.Equal(t, "TEXT", mismatch.Declared)
	assert.True(t, rows.closed)
}

func TestPgxEnumColumn(t *testing.T) {
	rows := &fakePgxRows{
		fields: []pgconn.FieldDescription{field("status", pgtype.TextOID)},
		data:   [][]any{{"active"}, {"Banned"}},
	}

	got, err := rowshape.Collect[Status](context.Background(), rowshape.PgxRows(rows))
	require.NoError(t, err)
	assert.Equal(t, []Status{"Active", "Banned"}, got)
}
