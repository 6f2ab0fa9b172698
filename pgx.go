package rowshape

import (
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type pgxSource struct {
	rows  pgx.Rows
	tmap  *pgtype.Map
	cols  []Column
	names []string
	types []string
}

// PgxRows adapts a pgx.Rows result set into a RowSource. The returned
// source takes ownership of rows. Declared type names are resolved from
// the field description OIDs through a pgtype.Map, so custom types outside
// the default map report an empty declared type.
func PgxRows(rows pgx.Rows) RowSource {
	return &pgxSource{rows: rows, tmap: pgtype.NewMap()}
}

func (p *pgxSource) Columns() ([]Column, error) {
	if p.cols != nil {
		return p.cols, nil
	}
	fields := p.rows.FieldDescriptions()
	p.cols = make([]Column, len(fields))
	p.names = make([]string, len(fields))
	p.types = make([]string, len(fields))
	for i, fd := range fields {
		typeName := ""
		if dt, ok := p.tmap.TypeForOID(fd.DataTypeOID); ok {
			typeName = strings.ToUpper(dt.Name)
		}
		p.cols[i] = Column{Name: fd.Name, DatabaseType: typeName}
		p.names[i] = fd.Name
		p.types[i] = typeName
	}
	return p.cols, nil
}

func (p *pgxSource) Next() bool { return p.rows.Next() }

func (p *pgxSource) Row() (*RowView, error) {
	if _, err := p.Columns(); err != nil {
		return nil, err
	}
	vals, err := p.rows.Values()
	if err != nil {
		return nil, err
	}
	return NewRowView(p.names, p.types, vals)
}

func (p *pgxSource) Err() error { return p.rows.Err() }

func (p *pgxSource) Close() error {
	p.rows.Close()
	return nil
}
