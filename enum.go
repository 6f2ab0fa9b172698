package rowshape

import (
	"reflect"
	"strings"
)

// Enum is implemented by named types whose values are drawn from a fixed
// set of named members. Column text is matched against the member names
// case-insensitively. A string-based enum decodes to the canonical member
// spelling; an integer-based enum decodes to the member's index, matching
// the usual iota declaration order.
type Enum interface {
	EnumMembers() []string
}

var enumIface = reflect.TypeOf((*Enum)(nil)).Elem()

func isEnum(t reflect.Type) bool {
	return t.Implements(enumIface) || reflect.PointerTo(t).Implements(enumIface)
}

func isEnumKind(k reflect.Kind) bool {
	switch k {
	case reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}

// invalidEnumType reports an enum (or pointer-to-enum) field type whose
// kind cannot hold a member value.
func invalidEnumType(t reflect.Type) bool {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return isEnum(t) && !isEnumKind(t.Kind())
}

func enumMembers(t reflect.Type) []string {
	v := reflect.New(t)
	if e, ok := v.Interface().(Enum); ok {
		return e.EnumMembers()
	}
	if e, ok := v.Elem().Interface().(Enum); ok {
		return e.EnumMembers()
	}
	return nil
}

// parseEnum matches s against t's members and constructs the matching
// value. col annotates the error on failure.
func parseEnum(t reflect.Type, s, col string) (reflect.Value, error) {
	for i, m := range enumMembers(t) {
		if !strings.EqualFold(m, s) {
			continue
		}
		v := reflect.New(t).Elem()
		switch t.Kind() {
		case reflect.String:
			v.SetString(m)
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			v.SetInt(int64(i))
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			v.SetUint(uint64(i))
		default:
			return reflect.Value{}, &UnsupportedShapeError{
				Target:  t,
				Columns: 1,
				Reason:  "enum must be a named string or integer type",
			}
		}
		return v, nil
	}
	return reflect.Value{}, &EnumValueError{Target: t, Value: s, Column: col}
}
