package rowshape

import "reflect"

// Positional marks a struct as a positional tuple target. Embed it to have
// columns matched to the remaining fields strictly by position instead of
// by name. The T2 through T8 types embed it already.
type Positional struct{}

func (Positional) positionalTuple() {}

type positionalTuple interface{ positionalTuple() }

var positionalIface = reflect.TypeOf((*positionalTuple)(nil)).Elem()
var positionalMarker = reflect.TypeOf(Positional{})

func isTuple(t reflect.Type) bool {
	return t.Kind() == reflect.Struct && t.Implements(positionalIface)
}

// T2 holds a two-column row decoded by position.
type T2[A, B any] struct {
	Positional
	V1 A
	V2 B
}

// T3 holds a three-column row decoded by position.
type T3[A, B, C any] struct {
	Positional
	V1 A
	V2 B
	V3 C
}

// T4 holds a four-column row decoded by position.
type T4[A, B, C, D any] struct {
	Positional
	V1 A
	V2 B
	V3 C
	V4 D
}

// T5 holds a five-column row decoded by position.
type T5[A, B, C, D, E any] struct {
	Positional
	V1 A
	V2 B
	V3 C
	V4 D
	V5 E
}

// T6 holds a six-column row decoded by position.
type T6[A, B, C, D, E, F any] struct {
	Positional
	V1 A
	V2 B
	V3 C
	V4 D
	V5 E
	V6 F
}

// T7 holds a seven-column row decoded by position.
type T7[A, B, C, D, E, F, G any] struct {
	Positional
	V1 A
	V2 B
	V3 C
	V4 D
	V5 E
	V6 F
	V7 G
}

// T8 holds an eight-column row decoded by position.
type T8[A, B, C, D, E, F, G, H any] struct {
	Positional
	V1 A
	V2 B
	V3 C
	V4 D
	V5 E
	V6 F
	V7 G
	V8 H
}
