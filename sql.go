package rowshape

import "database/sql"

type sqlSource struct {
	rows  *sql.Rows
	cols  []Column
	names []string
	types []string
}

// SQLRows adapts a *sql.Rows result set into a RowSource. The returned
// source takes ownership of rows.
func SQLRows(rows *sql.Rows) RowSource {
	return &sqlSource{rows: rows}
}

func (s *sqlSource) Columns() ([]Column, error) {
	if s.cols != nil {
		return s.cols, nil
	}
	columnTypes, err := s.rows.ColumnTypes()
	if err != nil {
		return nil, err
	}
	s.cols = make([]Column, len(columnTypes))
	s.names = make([]string, len(columnTypes))
	s.types = make([]string, len(columnTypes))
	for i, ct := range columnTypes {
		s.cols[i] = Column{Name: ct.Name(), DatabaseType: ct.DatabaseTypeName()}
		s.names[i] = ct.Name()
		s.types[i] = ct.DatabaseTypeName()
	}
	return s.cols, nil
}

func (s *sqlSource) Next() bool { return s.rows.Next() }

func (s *sqlSource) Row() (*RowView, error) {
	if _, err := s.Columns(); err != nil {
		return nil, err
	}

	// Scanning into *any yields the driver's raw values, with nil as the
	// null marker.
	vals := make([]any, len(s.names))
	targets := make([]any, len(s.names))
	for i := range vals {
		targets[i] = &vals[i]
	}
	if err := s.rows.Scan(targets...); err != nil {
		return nil, err
	}

	return NewRowView(s.names, s.types, vals)
}

func (s *sqlSource) Err() error { return s.rows.Err() }

func (s *sqlSource) Close() error { return s.rows.Close() }
