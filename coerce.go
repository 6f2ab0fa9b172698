package rowshape

import (
	"database/sql"
	"fmt"
	"math"
	"reflect"
)

// coerce converts one raw column value into one target value. pos is the
// tuple position, or -1 outside positional decoding. It is pure: nulls
// produce the target's zero value (nil for pointer targets) and are never
// an error; everything else either has a defined conversion or fails with
// a typed error naming the column and both types.
func coerce(raw any, col string, pos int, declared string, target reflect.Type) (reflect.Value, error) {
	if raw == nil {
		return reflect.Zero(target), nil
	}

	// A pointer target is the nullable wrapper; decode the element and
	// re-wrap.
	if target.Kind() == reflect.Pointer {
		elem, err := coerce(raw, col, pos, declared, target.Elem())
		if err != nil {
			return reflect.Value{}, err
		}
		p := reflect.New(target.Elem())
		p.Elem().Set(elem)
		return p, nil
	}

	if isEnum(target) {
		s, ok := rawText(raw)
		if !ok {
			return reflect.Value{}, mismatch(raw, col, pos, declared, target)
		}
		v, err := parseEnum(target, s, col)
		if err != nil {
			return reflect.Value{}, annotatePosition(err, pos)
		}
		return v, nil
	}

	if implementsScanner(target) {
		p := reflect.New(target)
		if err := p.Interface().(sql.Scanner).Scan(raw); err != nil {
			return reflect.Value{}, &TypeMismatchError{
				Column:   col,
				Position: pos,
				Declared: declared,
				Value:    fmt.Sprintf("%T", raw),
				Target:   target,
				Err:      err,
			}
		}
		return p.Elem(), nil
	}

	rv := reflect.ValueOf(raw)

	switch target.Kind() {
	case reflect.Bool:
		if b, ok := raw.(bool); ok {
			return scalarValue(target, func(v reflect.Value) { v.SetBool(b) }), nil
		}

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if i, ok := rawInt64(rv); ok {
			v := reflect.New(target).Elem()
			if v.OverflowInt(i) {
				return reflect.Value{}, mismatch(raw, col, pos, declared, target)
			}
			v.SetInt(i)
			return v, nil
		}

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if i, ok := rawInt64(rv); ok && i >= 0 {
			v := reflect.New(target).Elem()
			if v.OverflowUint(uint64(i)) {
				return reflect.Value{}, mismatch(raw, col, pos, declared, target)
			}
			v.SetUint(uint64(i))
			return v, nil
		}

	case reflect.Float32, reflect.Float64:
		if f, ok := rawFloat64(rv); ok {
			v := reflect.New(target).Elem()
			if v.OverflowFloat(f) {
				return reflect.Value{}, mismatch(raw, col, pos, declared, target)
			}
			v.SetFloat(f)
			return v, nil
		}

	case reflect.String:
		if s, ok := rawText(raw); ok {
			return scalarValue(target, func(v reflect.Value) { v.SetString(s) }), nil
		}

	case reflect.Slice:
		if target.Elem().Kind() == reflect.Uint8 {
			if b, ok := raw.([]byte); ok {
				out := reflect.MakeSlice(target, len(b), len(b))
				reflect.Copy(out, reflect.ValueOf(b))
				return out, nil
			}
			if s, ok := raw.(string); ok {
				return reflect.ValueOf([]byte(s)).Convert(target), nil
			}
		}
	}

	// Exact and named-type matches not covered by the kind switch
	// (e.g. time.Time, driver-specific struct values).
	if rv.Type().AssignableTo(target) {
		return rv, nil
	}

	return reflect.Value{}, mismatch(raw, col, pos, declared, target)
}

func mismatch(raw any, col string, pos int, declared string, target reflect.Type) error {
	return &TypeMismatchError{
		Column:   col,
		Position: pos,
		Declared: declared,
		Value:    fmt.Sprintf("%T", raw),
		Target:   target,
	}
}

func annotatePosition(err error, pos int) error {
	if pos < 0 {
		return err
	}
	return fmt.Errorf("rowshape: tuple position %d: %w", pos, err)
}

func scalarValue(target reflect.Type, set func(reflect.Value)) reflect.Value {
	v := reflect.New(target).Elem()
	set(v)
	return v
}

// rawText reads a textual raw value.
func rawText(raw any) (string, bool) {
	switch s := raw.(type) {
	case string:
		return s, true
	case []byte:
		return string(s), true
	}
	return "", false
}

// rawInt64 reads an integer raw value of any width. Drivers mostly produce
// int64; pgx produces int16/int32 for the narrower postgres types.
func rawInt64(rv reflect.Value) (int64, bool) {
	if rv.CanInt() {
		return rv.Int(), true
	}
	if rv.CanUint() {
		u := rv.Uint()
		if u > math.MaxInt64 {
			return 0, false
		}
		return int64(u), true
	}
	return 0, false
}

// rawFloat64 reads a numeric raw value; integer columns widen into float
// targets.
func rawFloat64(rv reflect.Value) (float64, bool) {
	if rv.CanFloat() {
		return rv.Float(), true
	}
	if i, ok := rawInt64(rv); ok {
		return float64(i), true
	}
	return 0, false
}
