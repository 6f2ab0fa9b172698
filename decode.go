package rowshape

import "reflect"

// decode produces one value of the classified shape from one row. Errors
// are fatal to the row and carry the offending column and both types.
func (d *descriptor) decode(row *RowView) (reflect.Value, error) {
	switch d.kind {
	case shapeScalar:
		return coerce(row.Value(0), row.Name(0), -1, row.DeclaredType(0), d.target)

	case shapeEnum:
		raw := row.Value(0)
		if raw == nil {
			return reflect.Zero(d.target), nil
		}
		s, ok := rawText(raw)
		if !ok {
			return reflect.Value{}, mismatch(raw, row.Name(0), -1, row.DeclaredType(0), d.target)
		}
		// A pointer target is the nullable wrapper; parse the element and
		// re-wrap.
		base := d.target
		if base.Kind() == reflect.Pointer {
			base = base.Elem()
		}
		v, err := parseEnum(base, s, row.Name(0))
		if err != nil || base == d.target {
			return v, err
		}
		p := reflect.New(base)
		p.Elem().Set(v)
		return p, nil

	case shapeTuple:
		out := reflect.New(d.target).Elem()
		for i := 0; i < row.Len(); i++ {
			ep := d.elems[i]
			v, err := coerce(row.Value(i), row.Name(i), i, row.DeclaredType(i), ep.typ)
			if err != nil {
				return reflect.Value{}, err
			}
			out.Field(ep.index).Set(v)
		}
		return out, nil

	default: // shapeRecord
		out := reflect.New(d.target).Elem()
		for i, fp := range d.fields {
			if fp == nil || row.IsNull(i) {
				// Unmatched columns are ignored; null values leave the
				// field at its zero value.
				continue
			}
			v, err := coerce(row.Value(i), row.Name(i), -1, row.DeclaredType(i), fp.typ)
			if err != nil {
				return reflect.Value{}, err
			}
			out.Field(fp.index).Set(v)
		}
		return out, nil
	}
}

func decodeAs[T any](d *descriptor, row *RowView) (T, error) {
	var zero T
	v, err := d.decode(row)
	if err != nil {
		return zero, err
	}
	return v.Interface().(T), nil
}
