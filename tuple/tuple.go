// Package tuple provides immutable fixed-arity tuple value types with
// structural equality, lexicographic ordering, element-wise combination and a
// canonical string form.
//
// Tuple values are plain immutable data and may be shared across any number of
// goroutines without synchronization, provided the stored elements are
// themselves immutable or independently thread-safe.
package tuple

import (
	"fmt"
	"reflect"
)

var _ = Tuple(Pair[int, int]{})
var _ = Tuple(Triple[int, int, int]{})

// Tuple is the arity-agnostic view shared by all tuple types in this package.
type Tuple interface {
	// Size returns the number of elements held, a constant per tuple type.
	Size() int
	// Elements returns the elements as a fresh slice in slot order. Mutating
	// the returned slice never affects the tuple.
	Elements() []any
}

// notNil panics if v is nil, including a typed nil stored in the interface.
// Tuple slots must never hold nil.
func notNil(slot string, v any) {
	if v == nil {
		panic(fmt.Sprintf("tuple: %s must not be nil", slot))
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		if rv.IsNil() {
			panic(fmt.Sprintf("tuple: %s must not be nil", slot))
		}
	}
}
