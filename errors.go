package rowshape

import (
	"fmt"
	"reflect"
)

// UnsupportedShapeError reports a target type that cannot be decoded into at
// all: it is neither a scalar, an enum, a positional tuple, nor a struct
// with mappable fields, or its shape is incompatible with the result set's
// column count. It is raised by classification, before any row is fetched.
type UnsupportedShapeError struct {
	Target  reflect.Type
	Columns int
	Reason  string
}

func (e *UnsupportedShapeError) Error() string {
	return fmt.Sprintf("rowshape: cannot decode %d column(s) into %s: %s",
		e.Columns, e.Target, e.Reason)
}

// TupleArityError reports a positional target whose slot count is
// incompatible with decoding: more than eight slots, or fewer slots than the
// result set has columns. Raised before any row is fetched.
type TupleArityError struct {
	Target  reflect.Type
	Arity   int
	Columns int
}

func (e *TupleArityError) Error() string {
	return fmt.Sprintf("rowshape: tuple %s declares %d element(s) but the result set has %d column(s); at most 8 elements are supported",
		e.Target, e.Arity, e.Columns)
}

// TypeMismatchError reports a column value with no defined conversion to the
// target field's type. It names the offending column, the column's declared
// database type, the Go type the driver actually produced, and the target
// type. Err carries the underlying cause when the target's own sql.Scanner
// rejected the value.
type TypeMismatchError struct {
	Column   string
	Position int // tuple position, -1 when not positional
	Declared string
	Value    string // Go type of the raw value
	Target   reflect.Type
	Err      error
}

func (e *TypeMismatchError) Error() string {
	msg := fmt.Sprintf("rowshape: column %q (declared %s): cannot convert %s to %s",
		e.Column, e.Declared, e.Value, e.Target)
	if e.Position >= 0 {
		msg = fmt.Sprintf("rowshape: tuple position %d (column %q, declared %s): cannot convert %s to %s",
			e.Position, e.Column, e.Declared, e.Value, e.Target)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *TypeMismatchError) Unwrap() error { return e.Err }

// EnumValueError reports text that matches no member of the target enum.
type EnumValueError struct {
	Target reflect.Type
	Value  string
	Column string
}

func (e *EnumValueError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("rowshape: column %q: %q is not a member of %s", e.Column, e.Value, e.Target)
	}
	return fmt.Sprintf("rowshape: %q is not a member of %s", e.Value, e.Target)
}
