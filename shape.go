package rowshape

import (
	"database/sql"
	"reflect"
	"strings"
	"time"
)

const dbTag = "db"

const maxTupleArity = 8

type shapeKind int

const (
	shapeScalar shapeKind = iota
	shapeEnum
	shapeTuple
	shapeRecord
)

// fieldPlan binds one struct field to the column that feeds it.
type fieldPlan struct {
	index int
	typ   reflect.Type
}

// descriptor is the classified target shape plus the per-column decode plan
// for the session's column set. Built once per collection call and reused
// across rows; it carries no mutable state.
type descriptor struct {
	target reflect.Type
	kind   shapeKind
	elems  []fieldPlan  // tuple: plan per position
	fields []*fieldPlan // record: plan per column index, nil ignores the column
}

// classify decides which decoding strategy applies to the target type and
// validates it against the result set's column count. It is pure and runs
// once per collection call, before any row is fetched.
func classify(t reflect.Type, cols []Column) (*descriptor, error) {
	switch {
	case isEnum(t):
		base := t
		if base.Kind() == reflect.Pointer {
			base = base.Elem()
		}
		if !isEnumKind(base.Kind()) {
			return nil, &UnsupportedShapeError{
				Target:  t,
				Columns: len(cols),
				Reason:  "enum must be a named string or integer type",
			}
		}
		if len(cols) == 0 {
			return nil, &UnsupportedShapeError{Target: t, Columns: 0, Reason: "enum targets need at least one column"}
		}
		return &descriptor{target: t, kind: shapeEnum}, nil

	case isTuple(t):
		return classifyTuple(t, cols)

	case isScalarType(t):
		if len(cols) != 1 {
			return nil, &UnsupportedShapeError{
				Target:  t,
				Columns: len(cols),
				Reason:  "scalar targets need exactly one column; use a struct",
			}
		}
		return &descriptor{target: t, kind: shapeScalar}, nil

	case t.Kind() == reflect.Struct:
		return classifyRecord(t, cols)
	}

	return nil, &UnsupportedShapeError{
		Target:  t,
		Columns: len(cols),
		Reason:  "target is neither a scalar, an enum, a positional tuple, nor a struct with mappable fields",
	}
}

func classifyTuple(t reflect.Type, cols []Column) (*descriptor, error) {
	var elems []fieldPlan
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Type == positionalMarker {
			continue
		}
		if !f.IsExported() {
			continue
		}
		elems = append(elems, fieldPlan{index: i, typ: f.Type})
	}

	if len(elems) > maxTupleArity || len(cols) > len(elems) {
		return nil, &TupleArityError{Target: t, Arity: len(elems), Columns: len(cols)}
	}
	for _, ep := range elems {
		if invalidEnumType(ep.typ) {
			return nil, &UnsupportedShapeError{
				Target:  t,
				Columns: len(cols),
				Reason:  "enum elements must be named string or integer types",
			}
		}
	}

	return &descriptor{target: t, kind: shapeTuple, elems: elems}, nil
}

func classifyRecord(t reflect.Type, cols []Column) (*descriptor, error) {
	fieldMap := make(map[string]fieldPlan)
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(f.Tag.Get(dbTag), ",")
		if name == "-" {
			continue
		}
		if name == "" {
			name = f.Name
		}
		key := strings.ToLower(name)
		if _, dup := fieldMap[key]; dup {
			continue
		}
		fieldMap[key] = fieldPlan{index: i, typ: f.Type}
	}
	if len(fieldMap) == 0 {
		return nil, &UnsupportedShapeError{
			Target:  t,
			Columns: len(cols),
			Reason:  "struct has no settable mapped fields",
		}
	}

	fields := make([]*fieldPlan, len(cols))
	for i, col := range cols {
		fp, ok := fieldMap[strings.ToLower(col.Name)]
		if !ok {
			continue
		}
		if invalidEnumType(fp.typ) {
			return nil, &UnsupportedShapeError{
				Target:  t,
				Columns: len(cols),
				Reason:  "enum fields must be named string or integer types",
			}
		}
		fields[i] = &fp
	}

	return &descriptor{target: t, kind: shapeRecord, fields: fields}, nil
}

var scannerIface = reflect.TypeOf((*sql.Scanner)(nil)).Elem()
var timeType = reflect.TypeOf(time.Time{})

func implementsScanner(t reflect.Type) bool {
	return reflect.PointerTo(t).Implements(scannerIface)
}

func isScalarType(t reflect.Type) bool {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64,
		reflect.String:
		return true
	case reflect.Slice:
		return t.Elem().Kind() == reflect.Uint8
	}
	return t == timeType || implementsScanner(t)
}
